package game

import "time"

// Points awarded per cleared level or matched pair.
const PointsPerClear = 10

// Shared challenge timing.
const (
	LeadIn       = 100 * time.Millisecond
	AdvanceDelay = 1000 * time.Millisecond
	FailDelay    = 300 * time.Millisecond
)

// Rhythm Master.
const (
	RhythmMaxLevel  = 4
	RhythmMaxLength = 5
	RhythmGap       = 800 * time.Millisecond
	RhythmTone      = 200 * time.Millisecond
)

// Pitch Perfect.
const (
	PitchMaxLevel = 6
	PitchTone     = 1000 * time.Millisecond
)

// Piano Beat Builder.
const (
	MelodyMaxLength = 8
	MelodyLeadIn    = 50 * time.Millisecond
	MelodyGap       = 450 * time.Millisecond
	MelodyTone      = 400 * time.Millisecond
)

// Music Memory.
const (
	MatchFlipBack = 1000 * time.Millisecond
	MatchCueTone  = 250 * time.Millisecond
	MatchCueFreq  = 659.25 // E5
	MissCueFreq   = 196.00 // G3
)

// Virtual Piano.
const (
	PianoTone    = 1000 * time.Millisecond
	PianoTapHold = 100 * time.Millisecond
)

// Feedback messages.
const (
	FeedbackPassed  = "Passed!"
	FeedbackGreat   = "Great job!"
	FeedbackCorrect = "Correct!"
)
