// Package session runs the interactive score collection loop on a console.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/scoretrack/internal/grades"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Phase is the state of the collection loop.
type Phase int

const (
	PhaseCollecting  Phase = iota // Reading names and scores
	PhaseSummarizing              // Printing the class summary
)

func (p Phase) String() string {
	switch p {
	case PhaseCollecting:
		return "collecting"
	case PhaseSummarizing:
		return "summarizing"
	default:
		return "unknown"
	}
}

const maxLineBytes = 1 << 20

// Options holds the dependencies of a Session.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Tracker *grades.Tracker
	Logger  log.Logger
	Config  Config
}

// Session drives one run of the tracker over a line-oriented console.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	tracker *grades.Tracker
	logger  log.Logger
	cfg     Config
	phase   Phase
}

// New creates a Session. A nil Tracker or Logger is replaced with an empty
// tracker or a no-op logger; zero Config fields take DefaultConfig values.
func New(opts Options) *Session {
	sc := bufio.NewScanner(opts.In)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	s := &Session{
		in:      sc,
		out:     opts.Out,
		tracker: opts.Tracker,
		logger:  opts.Logger,
		cfg:     opts.Config,
		phase:   PhaseCollecting,
	}
	if s.tracker == nil {
		s.tracker = grades.NewTracker()
	}
	if s.logger == nil {
		s.logger = log.NewNopLogger()
	}
	def := DefaultConfig()
	if s.cfg.PassingScore == 0 {
		s.cfg.PassingScore = def.PassingScore
	}
	if s.cfg.Sentinel == "" {
		s.cfg.Sentinel = def.Sentinel
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Tracker returns the tracker the session fills.
func (s *Session) Tracker() *grades.Tracker {
	return s.tracker
}

// Run prints the banner, collects students until the sentinel or end of
// input, then prints the summary.
func (s *Session) Run(ctx context.Context) error {
	s.printf("Welcome to the Student Performance Tracker!\n")
	s.printf("Enter student data (name and scores for %d subjects). Type '%s' to finish.\n",
		grades.SubjectCount, s.cfg.Sentinel)

	for s.phase == PhaseCollecting {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.step(); err != nil {
			return err
		}
	}

	return s.summarize()
}

// step handles one name/scores exchange.
func (s *Session) step() error {
	s.printf("\nEnter the student's name (or type '%s' to finish): ", s.cfg.Sentinel)
	name, ok, err := s.readLine()
	if err != nil {
		return err
	}
	if !ok {
		level.Debug(s.logger).Log("msg", "end of input at name prompt")
		s.transition(PhaseSummarizing)
		return nil
	}

	name = strings.TrimSpace(name)
	if strings.EqualFold(name, s.cfg.Sentinel) {
		s.transition(PhaseSummarizing)
		return nil
	}

	s.printf("Enter scores for %s (%d subjects, separated by spaces): ", name, grades.SubjectCount)
	line, ok, err := s.readLine()
	if err != nil {
		return err
	}
	if !ok {
		level.Debug(s.logger).Log("msg", "end of input at scores prompt, entry discarded", "student", name)
		s.transition(PhaseSummarizing)
		return nil
	}

	scores, err := grades.ParseScores(line)
	if err != nil {
		level.Debug(s.logger).Log("msg", "scores rejected", "student", name, "err", err)
		s.printf("Invalid input: %s. Please try again.\n", err)
		return nil
	}

	s.tracker.AddStudent(name, scores[:])
	level.Debug(s.logger).Log("msg", "student added", "student", name, "students", s.tracker.Len())
	s.printf("Student '%s' added successfully!\n", name)
	return nil
}

func (s *Session) summarize() error {
	if s.tracker.Len() > 0 {
		s.printf("\n--- Class Summary ---\n")
		s.printf("Class Average Score: %.2f\n", s.tracker.ClassAverage())
		if err := s.tracker.WritePerformance(s.out, s.cfg.PassingScore); err != nil {
			return fmt.Errorf("write performance: %w", err)
		}
	} else {
		s.printf("No student data available to display.\n")
	}

	s.printf("\nThank you for using the tracker!\n")
	level.Info(s.logger).Log("msg", "session finished", "students", s.tracker.Len())
	return nil
}

// readLine returns the next input line. ok is false at end of input.
func (s *Session) readLine() (line string, ok bool, err error) {
	if s.in.Scan() {
		return s.in.Text(), true, nil
	}
	if err := s.in.Err(); err != nil {
		return "", false, fmt.Errorf("read input: %w", err)
	}
	return "", false, nil
}

func (s *Session) transition(to Phase) {
	level.Debug(s.logger).Log("msg", "phase change", "from", s.phase, "to", to)
	s.phase = to
}

// printf writes to the console. Write errors are ignored.
func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
