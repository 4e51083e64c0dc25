package notification

import (
	"context"
	"log"
	"time"
)

type Message struct {
	To   string
	Body string
}

// Dispatcher sends SMS off the request path. A failed or dropped message
// is logged and never fails the booking that triggered it.
type Dispatcher struct {
	sender Sender
	queue  chan Message
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		res := d.sender.Send(ctx, msg.To, msg.Body)
		cancel()

		if !res.Success {
			log.Printf("sms send failed to %s: %s", msg.To, res.Err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		// queue full; dropping is preferable to blocking the API
		log.Println("sms queue full, dropping message")
	}
}
