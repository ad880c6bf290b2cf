package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"melodyland/internal/game"
	"melodyland/internal/midiio"
	"melodyland/internal/view"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Plays a game in the terminal",
	Long: `Plays one game as a line-by-line session on stdin. Type "help" for the
commands of the game, "quit" to leave.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: catalogIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := game.Lookup(args[0]); !ok {
			return fmt.Errorf("%w: %q (see 'melodyland games')", game.ErrUnknownGame, args[0])
		}
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx, loop, stop := a.start(cmd.Context(), os.Interrupt)
		defer stop()

		return runREPL(ctx, loop, a.env, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func catalogIDs() []string {
	ids := make([]string, len(game.Catalog))
	for i, info := range game.Catalog {
		ids[i] = info.ID
	}
	return ids
}

var helpText = map[string]string{
	"rhythm":  "start | 0 1 2 3 (repeat the pads) | reset | dismiss | state | quit",
	"pitch":   "start | C D E F G A B (name the note) | replay | reset | dismiss | state | quit",
	"memory":  "flip N (0-11) | restart | state | quit",
	"builder": "C D E F G A B (add a note) | play | clear | load FILE.mid | save FILE.mid | state | quit",
	"piano":   "C C# D ... B (tap a note) | down KEY | up KEY | state | quit",
}

// command is one parsed REPL line.
type command struct {
	action game.Action
	load   string
	save   string
	state  bool
}

func parseCommand(gameID, line string) (command, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return command{}, errors.New("empty command")
	}
	name := strings.ToLower(f[0])
	arg := ""
	if len(f) > 1 {
		arg = f[1]
	}

	switch name {
	case "state":
		return command{state: true}, nil
	case "load", "save":
		if gameID != "builder" {
			return command{}, fmt.Errorf("%s only works in builder", name)
		}
		if arg == "" {
			return command{}, fmt.Errorf("usage: %s FILE.mid", name)
		}
		if name == "load" {
			return command{load: arg}, nil
		}
		return command{save: arg}, nil
	case "flip":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return command{}, errors.New("usage: flip N")
		}
		return command{action: game.Action{Name: name, Card: n}}, nil
	case "input", "submit":
		return command{action: game.Action{Name: name, Symbol: strings.ToUpper(arg)}}, nil
	case "press", "tap":
		return command{action: game.Action{Name: name, Note: strings.ToUpper(arg)}}, nil
	case "down", "up":
		return command{action: game.Action{Name: name, Key: strings.ToLower(arg)}}, nil
	}

	if len(f) == 1 {
		sym := strings.ToUpper(f[0])
		switch gameID {
		case "rhythm":
			if _, ok := game.BeatPads.Frequency(sym); ok {
				return command{action: game.Action{Name: "input", Symbol: sym}}, nil
			}
		case "pitch":
			if _, ok := game.NaturalNotes.Frequency(sym); ok {
				return command{action: game.Action{Name: "input", Symbol: sym}}, nil
			}
		case "builder":
			if _, ok := game.NaturalNotes.Frequency(sym); ok {
				return command{action: game.Action{Name: "press", Note: sym}}, nil
			}
		case "piano":
			if _, ok := game.ChromaticNotes.Frequency(sym); ok {
				return command{action: game.Action{Name: "tap", Note: sym}}, nil
			}
		}
	}
	return command{action: game.Action{Name: name}}, nil
}

// repl prints from both the input goroutine and the game loop.
type repl struct {
	mu    sync.Mutex
	out   io.Writer
	title string
}

func (r *repl) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

// status prints the title line if it changed since the last one.
func (r *repl) status(gameID string, state any) {
	t := view.Title(gameID, state)
	r.mu.Lock()
	defer r.mu.Unlock()
	if t == r.title {
		return
	}
	r.title = t
	fmt.Fprintln(r.out, t)
}

func runREPL(ctx context.Context, loop *game.Loop, env game.Env, gameID string, in io.Reader, out io.Writer) error {
	env.Sched = loop
	if env.Bus == nil {
		env.Bus = game.NewEventBus()
	}
	r := &repl{out: out}

	var sess *game.Session
	var err error
	callErr := loop.Call(func() {
		sess, err = game.NewSession(gameID, env)
		if err != nil {
			return
		}
		mine := func(fn game.EventHandler) game.EventHandler {
			return func(e game.Event) {
				if e.Game == gameID {
					fn(e)
				}
			}
		}
		env.Bus.Subscribe(game.EventStateChanged, mine(func(game.Event) { r.status(gameID, sess.State()) }))
		env.Bus.Subscribe(game.EventSymbolPresented, mine(func(e game.Event) { r.printf("  ♪ %s\n", e.Symbol) }))
		finished := func(what string) game.EventHandler {
			return mine(func(e game.Event) {
				r.printf("%s after %s\n", what, durafmt.Parse(e.Elapsed).LimitFirstN(2))
			})
		}
		env.Bus.Subscribe(game.EventSessionComplete, finished("Passed!"))
		env.Bus.Subscribe(game.EventBoardCleared, finished("All pairs matched"))
		env.Bus.Subscribe(game.EventSessionFailed, finished("Game Over"))
		r.status(gameID, sess.State())
	})
	if callErr != nil {
		return callErr
	}
	if err != nil {
		return err
	}
	r.printf("commands: %s\n", helpText[gameID])

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			r.printf("commands: %s\n", helpText[gameID])
			continue
		}

		c, err := parseCommand(gameID, line)
		if err != nil {
			r.printf("error: %v\n", err)
			continue
		}
		if err := r.run(loop, sess, c); err != nil {
			if errors.Is(err, game.ErrLoopStopped) {
				return nil
			}
			r.printf("error: %v\n", err)
		}
	}
	return sc.Err()
}

func (r *repl) run(loop *game.Loop, sess *game.Session, c command) error {
	var (
		accepted = true
		state    any
		err      error
	)
	switch {
	case c.load != "":
		notes, rerr := readMelodyFile(c.load)
		if rerr != nil {
			return rerr
		}
		if err := loop.Call(func() { accepted = sess.Builder.Load(notes); state = sess.State() }); err != nil {
			return err
		}
	case c.save != "":
		var melody []string
		if err := loop.Call(func() { melody = sess.Builder.State().Melody; state = sess.State() }); err != nil {
			return err
		}
		if err := writeMelodyFile(c.save, melody, game.MelodyGap); err != nil {
			return err
		}
		r.printf("saved %d notes to %s\n", len(melody), c.save)
	case c.state:
		if err := loop.Call(func() { state = sess.State() }); err != nil {
			return err
		}
	default:
		if cerr := loop.Call(func() { accepted, err = sess.Apply(c.action); state = sess.State() }); cerr != nil {
			return cerr
		}
		if err != nil {
			return err
		}
	}

	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if !accepted {
		r.printf("(ignored) ")
	}
	r.printf("%s\n", b)
	return nil
}

func readMelodyFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return midiio.ReadMelody(f)
}

func writeMelodyFile(path string, notes []string, gap time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := midiio.WriteMelody(f, notes, gap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
