package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"melodyland/internal/audio"
	"melodyland/internal/game"
	"melodyland/internal/results"
)

var (
	flagSeed   uint64
	flagVolume float64
	flagDB     string
	flagSilent bool
)

var rootCmd = &cobra.Command{
	Use:   "melodyland",
	Short: "Music mini-games for kids",
	Long: `Melodyland is a set of music mini-games: Rhythm Master, Pitch Perfect,
Music Memory, Piano Beat Builder and a Virtual Piano.

Play them in a terminal, in a window, or serve them to a browser front-end.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Uint64Var(&flagSeed, "seed", envUint("MELODYLAND_SEED", 0), "random seed, 0 picks one from the clock (env MELODYLAND_SEED)")
	pf.Float64Var(&flagVolume, "volume", envFloat("MELODYLAND_VOLUME", 0.7), "master volume in [0, 1] (env MELODYLAND_VOLUME)")
	pf.StringVar(&flagDB, "db", os.Getenv("MELODYLAND_DB"), "SQLite results log, empty disables it (env MELODYLAND_DB)")
	pf.BoolVar(&flagSilent, "silent", false, "do not open the audio device")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func envUint(name string, def uint64) uint64 {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return def
}

func envFloat(name string, def float64) float64 {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return def
}

func envString(name, def string) string {
	if s := os.Getenv(name); s != "" {
		return s
	}
	return def
}

// app is the shared setup of every command that plays games.
type app struct {
	env    game.Env
	device *audio.Device
	store  *results.Store
}

func newApp(stderr io.Writer) (*app, error) {
	a := &app{}

	var out audio.Renderer = audio.Discard
	if !flagSilent {
		dev, err := audio.Open()
		if err != nil {
			fmt.Fprintf(stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			dev.WaitReady(500 * time.Millisecond)
			a.device = dev
			out = dev
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	bus := game.NewEventBus()
	a.env = game.Env{
		Synth: game.NewSynth(out, flagVolume, bus, log.New(stderr, "[audio] ", log.LstdFlags)),
		Rand:  game.NewRand(seed),
		Bus:   bus,
	}

	if flagDB != "" {
		store, err := results.Open(flagDB, log.New(stderr, "[results] ", log.LstdFlags))
		if err != nil {
			a.Close()
			return nil, err
		}
		store.Subscribe(bus)
		a.store = store
	}
	return a, nil
}

// start runs a game loop until stop is called or one of sig arrives. stop
// waits for the loop to return before closing the device and the store.
func (a *app) start(parent context.Context, sig ...os.Signal) (ctx context.Context, loop *game.Loop, stop func()) {
	ctx, cancel := signal.NotifyContext(parent, sig...)
	loop = game.NewLoop()
	go loop.Run(ctx)
	return ctx, loop, func() {
		cancel()
		<-loop.Done()
		a.Close()
	}
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.device != nil {
		a.device.Close()
	}
}
