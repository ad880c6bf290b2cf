package game

import "time"

type EventType int

const (
	EventStateChanged EventType = iota
	EventSymbolPresented
	EventLevelCleared
	EventSessionComplete
	EventSessionFailed
	EventBoardCleared
	EventAudioFailed
)

var eventNames = [...]string{
	EventStateChanged:    "state_changed",
	EventSymbolPresented: "symbol_presented",
	EventLevelCleared:    "level_cleared",
	EventSessionComplete: "session_complete",
	EventSessionFailed:   "session_failed",
	EventBoardCleared:    "board_cleared",
	EventAudioFailed:     "audio_failed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Game    string
	Symbol  string // EventSymbolPresented
	Level   int
	Score   int
	Moves   int           // Music Memory only
	Elapsed time.Duration // since the session started
	Err     error         // EventAudioFailed
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the game loop.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
