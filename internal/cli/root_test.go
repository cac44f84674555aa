package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "aoc", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, flag := range []string{"config", "input-dir", "answers-file", "verbose", "output", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "list", "verify", "version", "completion"})
}
