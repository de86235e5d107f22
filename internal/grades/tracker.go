package grades

import (
	"fmt"
	"io"
	"strings"
)

// Tracker keeps students keyed by name in insertion order.
type Tracker struct {
	order    []string
	students map[string]*Student
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{students: make(map[string]*Student)}
}

// AddStudent stores a student under name. An existing entry with the same
// name is replaced and keeps its position in the display order.
func (t *Tracker) AddStudent(name string, scores []int) {
	if _, ok := t.students[name]; !ok {
		t.order = append(t.order, name)
	}
	t.students[name] = NewStudent(name, scores)
}

// Len returns the number of distinct students.
func (t *Tracker) Len() int {
	return len(t.order)
}

// Student looks up a student by name.
func (t *Tracker) Student(name string) (*Student, bool) {
	s, ok := t.students[name]
	return s, ok
}

// Students returns all students in insertion order.
func (t *Tracker) Students() []*Student {
	out := make([]*Student, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.students[name])
	}
	return out
}

// ClassAverage returns the unweighted mean of the per-student averages,
// or 0 when the tracker is empty.
func (t *Tracker) ClassAverage() float64 {
	if len(t.order) == 0 {
		return 0
	}
	var total float64
	for _, name := range t.order {
		total += t.students[name].Average()
	}
	return total / float64(len(t.order))
}

// ReportRow is one student's line in a Report.
type ReportRow struct {
	Name    string
	Average float64
	Status  Status
}

// Report is a snapshot of the tracker for display. Values are unrounded.
type Report struct {
	ClassAverage float64
	Rows         []ReportRow
}

// Report builds a Report, classifying students against passingScore.
func (t *Tracker) Report(passingScore int) Report {
	rows := make([]ReportRow, 0, len(t.order))
	for _, s := range t.Students() {
		rows = append(rows, ReportRow{
			Name:    s.Name,
			Average: s.Average(),
			Status:  s.Status(passingScore),
		})
	}
	return Report{
		ClassAverage: t.ClassAverage(),
		Rows:         rows,
	}
}

// WritePerformance writes the per-student performance table to w.
func (t *Tracker) WritePerformance(w io.Writer, passingScore int) error {
	var b strings.Builder

	b.WriteString("\nStudent Performance:\n")
	b.WriteString(strings.Repeat("-", 30))
	b.WriteString("\n")

	for _, row := range t.Report(passingScore).Rows {
		fmt.Fprintf(&b, "Name: %s, Average Score: %.2f, Status: %s\n",
			row.Name, row.Average, row.Status)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
