package intro

import (
	"time"

	"github.com/iburimskiy/particle-intro/internal/config"
)

// Stage is one caption of the intro, shown from At until the next stage begins.
type Stage struct {
	ID      string
	Caption string
	At      time.Duration
}

// DefaultStages is the intro timeline; the logo comes last.
var DefaultStages = []Stage{
	{ID: "stage1", Caption: "Every little life", At: 0},
	{ID: "stage2", Caption: "begins with a heartbeat", At: 1200 * time.Millisecond},
	{ID: "stage3", Caption: "nurtured with love", At: 2400 * time.Millisecond},
	{ID: "stage4", Caption: "and expert care", At: 3600 * time.Millisecond},
	{ID: "introLogo", Caption: "Baby Bloom", At: 4800 * time.Millisecond},
}

// Session is the per-process record of whether the intro has been seen.
type Session struct {
	seen bool
}

func (s *Session) SeenIntro() bool { return s.seen }
func (s *Session) MarkSeen()       { s.seen = true }

// Sequence plays stages against an advancing clock.
type Sequence struct {
	stages  []Stage
	end     time.Duration
	session *Session

	elapsed time.Duration
	next    int // index of the next stage to fire
	current int // index of the active stage, -1 before the first
	done    bool

	OnStage func(i int, s Stage)
	OnEnd   func()
}

// NewSequence returns a sequence over stages that ends at end. Stages must be
// ordered by At.
func NewSequence(stages []Stage, end time.Duration, session *Session) *Sequence {
	return &Sequence{stages: stages, end: end, session: session, current: -1}
}

// Default returns the standard intro timeline bound to session.
func Default(session *Session) *Sequence {
	return NewSequence(DefaultStages, config.IntroEnd, session)
}

// Begin fires the stages due at time zero. If the session has already seen the
// intro, the sequence ends immediately instead.
func (q *Sequence) Begin() {
	if q.session != nil && q.session.SeenIntro() {
		q.Skip()
		return
	}
	q.Advance(0)
}

// Advance moves the clock forward by dt, firing every stage whose time has come
// and then the end.
func (q *Sequence) Advance(dt time.Duration) {
	if q.done {
		return
	}
	q.elapsed += dt
	for q.next < len(q.stages) && q.stages[q.next].At <= q.elapsed {
		q.current = q.next
		q.next++
		if q.OnStage != nil {
			q.OnStage(q.current, q.stages[q.current])
		}
		if q.done {
			return
		}
	}
	if q.elapsed >= q.end {
		q.finish()
	}
}

// Skip ends the sequence now. It is safe to call more than once.
func (q *Sequence) Skip() {
	if q.done {
		return
	}
	q.finish()
}

func (q *Sequence) finish() {
	q.done = true
	if q.session != nil {
		q.session.MarkSeen()
	}
	if q.OnEnd != nil {
		q.OnEnd()
	}
}

func (q *Sequence) Done() bool             { return q.done }
func (q *Sequence) Elapsed() time.Duration { return q.elapsed }

// Current returns the active stage; ok is false before the first stage.
func (q *Sequence) Current() (s Stage, ok bool) {
	if q.current < 0 {
		return Stage{}, false
	}
	return q.stages[q.current], true
}

// Remaining is the time left until the sequence ends on its own.
func (q *Sequence) Remaining() time.Duration {
	if q.done || q.elapsed >= q.end {
		return 0
	}
	return q.end - q.elapsed
}
