package game

import "fmt"

// Phase is where a challenge session stands.
type Phase int

const (
	PhaseIdle          Phase = iota
	PhasePresenting          // target is being played, input blocked
	PhaseAwaitingInput       // player reproduces the target
	PhaseAdvancing           // level cleared, next target pending
	PhaseFailed              // mistake made, reset pending
	PhaseComplete            // final level cleared
)

var phaseNames = [...]string{
	PhaseIdle:          "idle",
	PhasePresenting:    "presenting",
	PhaseAwaitingInput: "awaiting_input",
	PhaseAdvancing:     "advancing",
	PhaseFailed:        "failed",
	PhaseComplete:      "complete",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Active reports whether a session is running in this phase.
func (p Phase) Active() bool {
	return p != PhaseIdle && p != PhaseComplete
}
