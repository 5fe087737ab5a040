package event

// Log records events in publication order, used by traces and tests
type Log struct {
	Events []Event
}

// Record is a Handler appending ev
func (l *Log) Record(ev Event) {
	l.Events = append(l.Events, ev)
}

// Count returns how many events of type t were recorded
func (l *Log) Count(t EventType) int {
	n := 0
	for _, ev := range l.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Types returns recorded event types in order
func (l *Log) Types() []EventType {
	out := make([]EventType, len(l.Events))
	for i, ev := range l.Events {
		out[i] = ev.Type
	}
	return out
}

// Last returns the most recent event of type t
func (l *Log) Last(t EventType) (Event, bool) {
	for i := len(l.Events) - 1; i >= 0; i-- {
		if l.Events[i].Type == t {
			return l.Events[i], true
		}
	}
	return Event{}, false
}

// Reset discards recorded events
func (l *Log) Reset() {
	l.Events = l.Events[:0]
}
