// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/feynman/fixtures"
	"github.com/katalvlaran/feynman/internal/config"
)

// run executes feyngen with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFixturesCmd(t *testing.T) {
	out, _, err := run(t, "fixtures")
	require.NoError(t, err)
	for _, name := range fixtures.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "loops=2")

	out, _, err = run(t, "fixtures", "moller")
	require.NoError(t, err)
	assert.Contains(t, out, "ElectronAbsorbVertex(0) 0,4 -> 2")
	assert.Contains(t, out, "IncomingVertex(2) _ -> 0")
	assert.Contains(t, out, "loops=0 components=1")
	assert.Contains(t, out, "time order: [3 1 5 2 0 4]")
	assert.Contains(t, out, "spanning trees=1")

	_, _, err = run(t, "fixtures", "penguin")
	assert.ErrorIs(t, err, fixtures.ErrUnknownFixture)
}

func TestGenerateCmd(t *testing.T) {
	out, _, err := run(t, "generate", "--seed", "3", "--count", "2", "--inputs", "electron,positron", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "process: e⁻ e⁺ ->")
	assert.Contains(t, out, "diagram 1")
	assert.Contains(t, out, "diagram 2")
	assert.Contains(t, out, "feynman_generator_diagrams_total 2")
	assert.Contains(t, out, "feynman_generator_iterations count=2")
}

func TestGenerateCmd_Verbose(t *testing.T) {
	_, trace, err := run(t, "generate", "--seed", "1", "-v")
	require.NoError(t, err)
	assert.Contains(t, trace, "new vertex")
	assert.Contains(t, trace, "run=")
}

func TestGenerateCmd_Invalid(t *testing.T) {
	_, _, err := run(t, "generate", "--count", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "generate", "--inputs", "electron,muon")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestStatsCmd(t *testing.T) {
	out, _, err := run(t, "stats", "--seed", "1", "--count", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "diagrams: 25")
	assert.Contains(t, out, "time-ordered:")
	assert.Contains(t, out, "loop orders:")
	assert.Contains(t, out, "ElectronEmitVertex")
}
