package view

import (
	"fmt"
	"strings"

	"melodyland/internal/game"
)

const appName = "Melodyland"

// Title is a one-line status for a window title or a terminal.
func Title(gameID string, state any) string {
	name := gameID
	if info, ok := game.Lookup(gameID); ok {
		name = info.Title
	}
	parts := []string{appName, name}

	switch st := state.(type) {
	case game.ChallengeState:
		parts = append(parts,
			fmt.Sprintf("level %d/%d", st.Level, st.MaxLevel),
			fmt.Sprintf("score %d", st.Score),
			challengeStatus(st))
	case game.MatchState:
		parts = append(parts, fmt.Sprintf("moves %d", st.Moves), fmt.Sprintf("score %d", st.Score))
		if st.GameOver {
			parts = append(parts, "all matched!")
		}
	case game.MelodyState:
		melody := "(empty)"
		if len(st.Melody) > 0 {
			melody = strings.Join(st.Melody, " ")
		}
		parts = append(parts, fmt.Sprintf("%s %d/%d", melody, len(st.Melody), st.MaxLength))
		if st.IsPlaying {
			parts = append(parts, "playing")
		}
	case game.PianoState:
		if len(st.Active) > 0 {
			parts = append(parts, strings.Join(st.Active, " "))
		}
	}
	return strings.Join(parts, " | ")
}

func challengeStatus(st game.ChallengeState) string {
	switch st.Phase {
	case game.PhaseIdle:
		if st.FailNotice {
			return "Game Over! Try again"
		}
		return "press start"
	case game.PhasePresenting:
		return "listen..."
	case game.PhaseAwaitingInput:
		return fmt.Sprintf("your turn %d/%d", len(st.Input), st.TargetLength)
	case game.PhaseFailed:
		return "Game Over!"
	}
	return st.Feedback
}
