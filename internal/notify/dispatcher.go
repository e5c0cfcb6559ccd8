package notify

import (
	"github.com/rs/zerolog"
)

type Event struct {
	UserID  uint
	Event   string
	Title   string
	Message string
	Payload any
}

// Dispatcher decouples notification delivery from the request path: an
// event is queued and a single worker persists and publishes it. The
// queue never blocks and never reports failure to the caller.
type Dispatcher struct {
	sink  *Sink
	log   zerolog.Logger
	queue chan Event
}

func NewDispatcher(sink *Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Deliver(ev); err != nil {
			d.log.Warn().Err(err).
				Uint("user_id", ev.UserID).
				Str("event", ev.Event).
				Msg("notification delivery failed")
		}
	}
}

// Notify enqueues an event. When the queue is full the event is dropped
// rather than ever stalling a state transition.
func (d *Dispatcher) Notify(userID uint, event, title, message string, payload any) {
	select {
	case d.queue <- Event{
		UserID:  userID,
		Event:   event,
		Title:   title,
		Message: message,
		Payload: payload,
	}:
	default:
		d.log.Warn().Str("event", event).Msg("notification queue full, dropping event")
	}
}
