package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_FoundOnCompleteGraph(t *testing.T) {
	stdout, stderr, err := execute(t, "4",
		"--vertices", "5", "--density", "1", "--start", "0", "--end", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\.\d{4}\n$`, stdout)
	assert.Contains(t, stderr, "Path verified")
}

func TestRoot_Orders(t *testing.T) {
	for _, args := range [][]string{
		{"--order", "lex"},
		{"--order", "shortest"},
		{"--order", "lex", "--exhaustive"},
	} {
		t.Run(args[1], func(t *testing.T) {
			base := []string{"5", "--vertices", "6", "--density", "1", "--end", "5", "--seed", "3"}
			_, _, err := execute(t, append(base, args...)...)
			require.NoError(t, err)
		})
	}
}

func TestRoot_DFSEngine(t *testing.T) {
	stdout, stderr, err := execute(t, "5",
		"--vertices", "6", "--density", "1", "--end", "5", "--seed", "3", "--engine", "dfs")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\.\d{4}\n$`, stdout)
	assert.Contains(t, stderr, "Path verified")
}

func TestRoot_DebugLogsConfirmations(t *testing.T) {
	_, stderr, err := execute(t, "4",
		"--vertices", "5", "--density", "1", "--end", "4", "--seed", "1", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Confirmed")
	assert.Contains(t, stderr, "Search complete")
}

func TestRoot_NotFound(t *testing.T) {
	stdout, _, err := execute(t, "3",
		"--vertices", "4", "--density", "0", "--end", "3", "--seed", "1")
	require.ErrorIs(t, err, errNoPath)
	// Timing is printed even when the search fails.
	assert.Regexp(t, `^\d+\.\d{4}\n$`, stdout)
}

func TestRoot_BadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"NoLength", []string{}},
		{"TwoArgs", []string{"3", "4"}},
		{"NotNumber", []string{"abc"}},
		{"Negative", []string{"--", "-1"}},
		{"BadEngine", []string{"3", "--engine", "bfs"}},
		{"BadOrder", []string{"3", "--order", "longest"}},
		{"NoVertices", []string{"3", "--vertices", "0"}},
		{"BadDensity", []string{"3", "--density", "1.5"}},
		{"EndOutOfRange", []string{"3", "--vertices", "5", "--end", "10"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}
