// Package grades records student scores and derives averages and pass/fail status.
package grades

// SubjectCount is the number of subject scores recorded per student.
const SubjectCount = 3

// DefaultPassingScore is the minimum score required in every subject.
const DefaultPassingScore = 40

// Status is the pass/fail classification shown in reports.
type Status int

const (
	StatusPassing Status = iota
	StatusNeedsImprovement
)

func (s Status) String() string {
	switch s {
	case StatusPassing:
		return "Passing"
	case StatusNeedsImprovement:
		return "Needs Improvement"
	default:
		return "Unknown"
	}
}

// Student holds a name and the scores recorded for it.
type Student struct {
	Name   string
	Scores []int
}

// NewStudent creates a Student with its own copy of scores.
func NewStudent(name string, scores []int) *Student {
	return &Student{
		Name:   name,
		Scores: append([]int(nil), scores...),
	}
}

// Average returns the arithmetic mean of the scores, or 0 with no scores.
func (s *Student) Average() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Scores {
		sum += float64(v)
	}
	return sum / float64(len(s.Scores))
}

// IsPassing reports whether every score is at least passingScore.
// A student without scores is passing.
func (s *Student) IsPassing(passingScore int) bool {
	for _, v := range s.Scores {
		if v < passingScore {
			return false
		}
	}
	return true
}

// Passing is IsPassing with DefaultPassingScore.
func (s *Student) Passing() bool {
	return s.IsPassing(DefaultPassingScore)
}

// Status classifies the student against passingScore.
func (s *Student) Status(passingScore int) Status {
	if s.IsPassing(passingScore) {
		return StatusPassing
	}
	return StatusNeedsImprovement
}
