package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_RunsTracker(t *testing.T) {
	stdout, stderr, err := execute(t, "Alice\n90 80 70\nBob\n30 20 10\ndone\n")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Class Average Score: 50.00\n")
	assert.Contains(t, stdout, "Name: Bob, Average Score: 20.00, Status: Needs Improvement\n")
	assert.True(t, strings.HasSuffix(stdout, "Thank you for using the tracker!\n"))
	assert.Empty(t, stderr)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "done\n", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stdout, "No student data available to display.")
	assert.NotContains(t, stdout, "level=")
	assert.Contains(t, stderr, `msg="starting tracker"`)
	assert.Contains(t, stderr, "run=")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "extra")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "scoretrack (devel)\n", stdout)
}
