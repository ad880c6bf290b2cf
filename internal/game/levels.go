package game

// LengthFunc maps a level to the number of symbols its target holds.
type LengthFunc func(level int) int

// RhythmSequenceLength returns how many beats a Rhythm Master level plays.
// Levels past the table keep the longest sequence.
func RhythmSequenceLength(level int) int {
	switch level {
	case 1:
		return 2
	case 2:
		return 3
	case 3:
		return 4
	case 4:
		return 5
	default:
		if level < 1 {
			return 2
		}
		return RhythmMaxLength
	}
}

// PitchSequenceLength is always one note: Pitch Perfect asks for a single pitch per level.
func PitchSequenceLength(int) int { return 1 }
