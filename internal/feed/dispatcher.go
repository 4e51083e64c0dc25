package feed

import "log"

type Event struct {
	Type      string
	Title     string
	Message   string
	BookingID *uint
}

// Dispatcher persists admin feed events asynchronously so a slow insert
// never sits on the booking path.
type Dispatcher struct {
	writer *Writer
	queue  chan Event
}

func NewDispatcher(writer *Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Write(
			ev.Type,
			ev.Title,
			ev.Message,
			ev.BookingID,
		); err != nil {
			log.Println("feed error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop the event rather than break the API
		log.Println("feed queue full, dropping event")
	}
}
