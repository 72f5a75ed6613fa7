package frame

// Handle identifies one requested frame callback. The zero Handle is never issued.
type Handle uint64

// Scheduler requests callbacks on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func()) Handle
	CancelFrame(h Handle)
}

type request struct {
	h  Handle
	fn func()
}

// Queue is a cooperative Scheduler. The host calls Pump once per refresh; every
// callback pending at that moment runs, in request order. Callbacks requested
// while pumping wait for the next Pump.
type Queue struct {
	next    Handle
	pending []request
	batch   []request // being pumped
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) RequestFrame(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, request{h: q.next, fn: fn})
	return q.next
}

// CancelFrame drops the callback with handle h, including one still waiting in
// the batch currently being pumped. Unknown or already-run handles are ignored.
func (q *Queue) CancelFrame(h Handle) {
	if h == 0 {
		return
	}
	for i := range q.batch {
		if q.batch[i].h == h {
			q.batch[i].fn = nil
			return
		}
	}
	for i, r := range q.pending {
		if r.h == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next Pump.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Pump runs the callbacks that were pending when it was called and returns how
// many ran.
func (q *Queue) Pump() int {
	q.batch, q.pending = q.pending, nil
	ran := 0
	for i := range q.batch {
		fn := q.batch[i].fn
		if fn == nil {
			continue
		}
		q.batch[i].fn = nil
		fn()
		ran++
	}
	q.batch = nil
	return ran
}
