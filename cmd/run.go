package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/scoretrack/internal/grades"
	"github.com/abhisek/scoretrack/internal/logging"
	"github.com/abhisek/scoretrack/internal/session"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// runTracker builds the tracker and logger, then runs one console session.
func runTracker(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Nop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger = logging.New(cmd.ErrOrStderr(), true)
	}
	logger = log.With(logger, "run", uuid.NewString())
	level.Debug(logger).Log("msg", "starting tracker", "version", version)

	s := session.New(session.Options{
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Tracker: grades.NewTracker(),
		Logger:  logger,
		Config:  session.DefaultConfig(),
	})
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("run tracker: %w", err)
	}
	return nil
}
