package gateway

import "sync"

// eventQueue is an unbounded FIFO between the reader and the dispatcher.
// The reader must never block on a slow handler: a handler waiting for a
// send acknowledgement needs the reader to keep going.
type eventQueue struct {
	mu     sync.Mutex
	items  []frame
	closed bool
	notify chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{notify: make(chan struct{}, 1)}
}

func (q *eventQueue) push(f frame) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, f)
	q.mu.Unlock()

	q.signal()
}

// pop blocks until a frame is available. It returns false once the queue
// is closed and drained.
func (q *eventQueue) pop() (frame, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			f := q.items[0]
			q.items[0] = frame{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return f, true
		}
		if q.closed {
			q.mu.Unlock()
			return frame{}, false
		}
		q.mu.Unlock()

		<-q.notify
	}
}

func (q *eventQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.signal()
}

func (q *eventQueue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
