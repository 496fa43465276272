package race

type EventType int

const (
	EventStart EventType = iota
	EventSpawn
	EventCollision
	EventPickup
	EventLap
	EventGameOver
	EventReset
	EventView
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventSpawn:
		return "spawn"
	case EventCollision:
		return "collision"
	case EventPickup:
		return "pickup"
	case EventLap:
		return "lap"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	case EventView:
		return "view"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Kind Kind
	X, Y float64
	Data int // lap count, score, spawn total or view index depending on Type.
}

type EventHandler func(Event)

// EventBus fans tick events out to frontends (sound, camera shake).
type EventBus struct {
	handlers map[EventType][]EventHandler
	any      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.any = append(eb.any, fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.any {
		fn(e)
	}
}
