package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/session"
)

var ErrAborted = errors.New("quiz aborted")

// Player runs sessions against a line-oriented terminal.
type Player struct {
	lines     <-chan string
	out       io.Writer
	mu        sync.Mutex
	scheduler session.Scheduler
}

func NewPlayer(in io.Reader, out io.Writer, scheduler session.Scheduler) *Player {
	return &Player{
		lines:     readLines(in),
		out:       out,
		scheduler: scheduler,
	}
}

func readLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}

func (p *Player) printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

type terminalHost struct {
	done    chan session.Result
	aborted chan struct{}
}

func (h *terminalHost) OnQuizComplete(r session.Result) {
	h.done <- r
}

func (h *terminalHost) OnBackToHome() {
	close(h.aborted)
}

// Play runs one session over questions. Typing a letter answers, "q" goes
// back home. Lines typed while no question is open are discarded, so an
// early keypress never answers the next question.
func (p *Player) Play(ctx context.Context, questions []quiz.Question) (session.Result, error) {
	host := &terminalHost{
		done:    make(chan session.Result, 1),
		aborted: make(chan struct{}),
	}
	m, err := session.New(questions, p.scheduler, host, session.WithObserver(p.render))
	if err != nil {
		return session.Result{}, err
	}
	m.Start()

	lines := p.lines
	for {
		select {
		case r := <-host.done:
			p.printResult(r)
			return r, nil
		case <-host.aborted:
			return session.Result{}, ErrAborted
		case <-ctx.Done():
			m.Abort()
			return session.Result{}, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// stdin closed: the remaining questions time out
				lines = nil
				continue
			}
			p.handleInput(m, line)
		}
	}
}

func (p *Player) handleInput(m *session.Machine, line string) {
	input := strings.ToUpper(strings.TrimSpace(line))
	if input == "Q" {
		m.Abort()
		return
	}

	snap := m.Snapshot()
	if snap.Phase != session.Presenting {
		return
	}
	idx, ok := parseLetter(input, len(snap.Question.Options))
	if !ok {
		p.printf("Please enter a letter A-%c, or Q to quit.\n", 'A'+len(snap.Question.Options)-1)
		return
	}
	m.Submit(session.Choice(idx))
}

func parseLetter(input string, optionCount int) (int, bool) {
	if len(input) != 1 || optionCount < 1 {
		return -1, false
	}
	idx := int(input[0] - 'A')
	if idx < 0 || idx >= optionCount {
		return -1, false
	}
	return idx, true
}

func (p *Player) render(s session.Snapshot) {
	switch s.Phase {
	case session.Presenting:
		switch {
		case s.TimeRemaining == session.QuestionTime:
			p.printQuestion(s)
		case s.TimeRemaining == 10 || s.TimeRemaining == 5:
			p.printf("  %ds left\n", s.TimeRemaining)
		}
	case session.Revealing:
		idx, answered := s.Selected.Index()
		switch {
		case answered && s.Question.IsCorrect(idx):
			p.printf("Correct!  Score: %d\n\n", s.Score)
		case !answered:
			p.printf("Time's up!%s\n\n", answerHint(s.Question))
		default:
			p.printf("Wrong.%s\n\n", answerHint(s.Question))
		}
	}
}

func answerHint(q quiz.Question) string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ""
	}
	return " The answer was " + q.Options[q.CorrectAnswer]
}

func (p *Player) printQuestion(s session.Snapshot) {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d of %d  (%ds)\n", s.Index+1, s.Total, s.TimeRemaining)
	fmt.Fprintf(&b, "%s\n", s.Question.Text)
	for i, opt := range s.Question.Options {
		fmt.Fprintf(&b, "  %c. %s\n", 'A'+i, opt)
	}
	p.printf("%s", b.String())
}

func (p *Player) printResult(r session.Result) {
	stars := strings.Repeat("*", r.Stars()) + strings.Repeat(".", 5-r.Stars())
	p.printf("Quiz Complete! %s\n", r.Message())
	p.printf("%d out of %d questions (%.0f%%)  %s\n", r.Score, r.Total, r.Percentage(), stars)
	if a := r.Achievement(); a != "" {
		p.printf("Achievement unlocked: %s - Scored 80%% or higher!\n", a)
	}
}

// Confirm asks a yes/no question and reports a "y" answer.
func (p *Player) Confirm(ctx context.Context, prompt string) bool {
	p.printf("%s [y/N] ", prompt)
	select {
	case line, ok := <-p.lines:
		return ok && strings.EqualFold(strings.TrimSpace(line), "y")
	case <-ctx.Done():
		return false
	}
}
