package mailer

import (
	"sync"

	"github.com/rs/zerolog"
)

// Dispatcher queues emails for best-effort delivery. Enqueue never blocks
// and never reports delivery state: the queue is unbounded, a single
// goroutine drains it, and a failed send is logged and dropped. Callers
// get no acknowledgment; that discard is the contract, not an accident.
type Dispatcher struct {
	sender Sender
	from   string
	log    zerolog.Logger

	mu     sync.Mutex
	queue  []Email
	closed bool

	wake chan struct{}
	done chan struct{}
}

func NewDispatcher(sender Sender, from string, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		from:   from,
		log:    log,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue hands off an email and returns immediately. Emails enqueued
// after Close are dropped.
func (d *Dispatcher) Enqueue(e Email) {
	if e.From == "" {
		e.From = d.from
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, e)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) run() {
	for {
		d.mu.Lock()
		batch := d.queue
		d.queue = nil
		closed := d.closed
		d.mu.Unlock()

		for _, e := range batch {
			if err := d.sender.Send(e); err != nil {
				d.log.Warn().Err(err).Str("to", e.To).Msg("dropping undeliverable email")
			}
		}

		if closed {
			close(d.done)
			return
		}

		<-d.wake
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	<-d.done
}
