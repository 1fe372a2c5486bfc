// Package session drives one play-through of a fixed question sequence.
//
// A Machine moves Presenting -> Revealing -> Presenting ... -> Completed.
// Time only enters through the injected Scheduler: a tick every second while
// a question is presented, and a fixed delay before advancing past a revealed
// answer. All transitions are serialized, so a timer firing after a manual
// answer is ignored.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/sirupsen/logrus"
)

const (
	QuestionTime = 30
	TickInterval = time.Second
	RevealDelay  = 2 * time.Second
)

var ErrNoQuestions = errors.New("session needs at least one question")

type Phase int

const (
	Presenting Phase = iota
	Revealing
	Completed
)

func (p Phase) String() string {
	switch p {
	case Presenting:
		return "presenting"
	case Revealing:
		return "revealing"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Answer is a selected option or NoAnswer. NoAnswer never matches an option
// index, including a correct answer of 0.
type Answer struct {
	index int
	given bool
}

var NoAnswer = Answer{}

func Choice(index int) Answer {
	return Answer{index: index, given: true}
}

// Index returns the selected option, false for NoAnswer.
func (a Answer) Index() (int, bool) {
	return a.index, a.given
}

// Host owns navigation around the session.
type Host interface {
	OnQuizComplete(Result)
	OnBackToHome()
}

type Snapshot struct {
	Phase         Phase
	Index         int
	Total         int
	Question      quiz.Question
	TimeRemaining int
	Selected      Answer
	Answered      bool
	Score         int
	Result        *Result
}

type Option func(*Machine)

// WithObserver registers fn to receive a Snapshot after every transition.
func WithObserver(fn func(Snapshot)) Option {
	return func(m *Machine) {
		m.observers = append(m.observers, fn)
	}
}

type Machine struct {
	mu sync.Mutex

	questions []quiz.Question
	scheduler Scheduler
	host      Host
	observers []func(Snapshot)
	log       *logrus.Entry

	phase         Phase
	index         int
	timeRemaining int
	selected      Answer
	answered      bool
	score         int

	// generation invalidates callbacks scheduled before the last transition.
	generation uint64
	timer      Timer
	started    bool
	aborted    bool
}

func New(questions []quiz.Question, scheduler Scheduler, host Host, opts ...Option) (*Machine, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if scheduler == nil {
		scheduler = SystemScheduler{}
	}

	m := &Machine{
		questions:     append([]quiz.Question(nil), questions...),
		scheduler:     scheduler,
		host:          host,
		log:           config.Logger.WithField("component", "session"),
		phase:         Presenting,
		timeRemaining: QuestionTime,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Start begins the countdown for the first question. Calling it again is a
// no-op.
func (m *Machine) Start() {
	m.mu.Lock()
	if m.started || m.aborted || m.phase != Presenting {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.scheduleTickLocked()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

// Submit answers the current question. It returns false when the session is
// not presenting a question, leaving the state untouched.
func (m *Machine) Submit(a Answer) bool {
	m.mu.Lock()
	if m.aborted || m.phase != Presenting {
		m.mu.Unlock()
		return false
	}
	m.submitLocked(a)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return true
}

// Abort tears the session down and returns the host to the home view.
func (m *Machine) Abort() bool {
	m.mu.Lock()
	if m.aborted {
		m.mu.Unlock()
		return false
	}
	m.aborted = true
	m.cancelLocked()
	m.mu.Unlock()

	m.log.Debug("Session aborted")
	if m.host != nil {
		m.host.OnBackToHome()
	}
	return true
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) tick(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.aborted || m.phase != Presenting || m.timeRemaining <= 0 {
		m.mu.Unlock()
		return
	}

	m.timeRemaining--
	if m.timeRemaining == 0 {
		m.log.WithField("question", m.index).Debug("Question timed out")
		m.submitLocked(NoAnswer)
	} else {
		m.scheduleTickLocked()
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

func (m *Machine) advance(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.aborted || m.phase != Revealing {
		m.mu.Unlock()
		return
	}
	m.cancelLocked()

	if m.index+1 < len(m.questions) {
		m.index++
		m.phase = Presenting
		m.timeRemaining = QuestionTime
		m.selected = NoAnswer
		m.answered = false
		m.scheduleTickLocked()
		snap := m.snapshotLocked()
		m.mu.Unlock()

		m.notify(snap)
		return
	}

	m.phase = Completed
	result := Result{Score: m.score, Total: len(m.questions)}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"score": result.Score,
		"total": result.Total,
	}).Info("Session completed")
	m.notify(snap)
	if m.host != nil {
		m.host.OnQuizComplete(result)
	}
}

func (m *Machine) submitLocked(a Answer) {
	m.cancelLocked()

	m.selected = a
	m.answered = true
	if idx, ok := a.Index(); ok && m.questions[m.index].IsCorrect(idx) {
		m.score++
	}
	m.phase = Revealing

	gen := m.generation
	m.timer = m.scheduler.AfterFunc(RevealDelay, func() { m.advance(gen) })
}

func (m *Machine) scheduleTickLocked() {
	gen := m.generation
	m.timer = m.scheduler.AfterFunc(TickInterval, func() { m.tick(gen) })
}

// cancelLocked stops the pending timer and bumps the generation so a
// callback already in flight is discarded.
func (m *Machine) cancelLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.generation++
}

func (m *Machine) snapshotLocked() Snapshot {
	s := Snapshot{
		Phase:         m.phase,
		Index:         m.index,
		Total:         len(m.questions),
		Question:      m.questions[m.index],
		TimeRemaining: m.timeRemaining,
		Selected:      m.selected,
		Answered:      m.answered,
		Score:         m.score,
	}
	if m.phase == Completed {
		s.Result = &Result{Score: m.score, Total: len(m.questions)}
	}
	return s
}

func (m *Machine) notify(s Snapshot) {
	for _, fn := range m.observers {
		fn(s)
	}
}
