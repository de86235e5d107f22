package session

import "github.com/abhisek/scoretrack/internal/grades"

// Config controls how a Session classifies and terminates.
type Config struct {
	// PassingScore is the per-subject minimum used for the report status.
	PassingScore int

	// Sentinel is the name entry that ends collection. Compared
	// case-insensitively after trimming.
	Sentinel string
}

// DefaultConfig returns the standard tracker settings.
func DefaultConfig() Config {
	return Config{
		PassingScore: grades.DefaultPassingScore,
		Sentinel:     "done",
	}
}
