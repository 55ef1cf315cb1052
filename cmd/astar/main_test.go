package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlearchive/astar/puzzles"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ASTAR_WORKERS", "")
	t.Setenv("ASTAR_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const maze = "S..\n.#.\n..E\n"

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, p := range puzzles.All() {
		assert.Contains(t, out, p.Name)
	}
	assert.Contains(t, out, "parts 1,2")
}

func TestRun_BothParts(t *testing.T) {
	first := writeInput(t, "first.txt", maze)
	second := writeInput(t, "second.txt", "S.E\n")

	out, err := execute(t, "run", "maze", first, second, "--workers", "2")
	require.NoError(t, err)

	got := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		first + " part 1: 4",
		first + " part 2: 2",
		second + " part 1: 2",
		second + " part 2: 1",
	}, got)
}

func TestRun_SinglePart(t *testing.T) {
	path := writeInput(t, "lights.txt", "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}\n")

	out, err := execute(t, "run", "lights", path)
	require.NoError(t, err)
	assert.Equal(t, path+" part 1: 2\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	cfgPath := writeInput(t, "astar.yaml", "puzzles:\n  bytes:\n    size: 3\n    fallen: 1\n")
	input := writeInput(t, "bytes.txt", "1,1\n1,2\n2,1\n")

	t.Setenv("ASTAR_WORKERS", "")
	t.Setenv("ASTAR_LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "bytes", input, "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, input+" part 1: 4\n"+input+" part 2: 2,1\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	path := writeInput(t, "maze.txt", maze)
	blocked := writeInput(t, "blocked.txt", "S#E\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown puzzle", args: []string{"run", "nope", path}, want: "unknown puzzle"},
		{name: "bad part", args: []string{"run", "maze", path, "--part", "3"}, want: "part must be"},
		{name: "missing file", args: []string{"run", "maze", filepath.Join(t.TempDir(), "gone.txt")}, want: "open input"},
		{name: "no path", args: []string{"run", "maze", blocked, "--part", "1"}, want: "no path found"},
		{name: "no part two", args: []string{"run", "lights", path, "--part", "2"}, want: "no part two"},
		{name: "negative workers", args: []string{"run", "maze", path, "--workers=-1"}, want: "workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTrace(t *testing.T) {
	path := writeInput(t, "maze.txt", maze)

	out, err := execute(t, "trace", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S"))
	assert.Contains(t, out, "steps: 4")
	assert.Equal(t, 3, strings.Count(out, "O"))
}

func TestTrace_Partial(t *testing.T) {
	path := writeInput(t, "maze.txt", maze)

	out, err := execute(t, "trace", path, "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "stopped after 1 expansions")
}

func TestTrace_NoPath(t *testing.T) {
	path := writeInput(t, "blocked.txt", "S#E\n")

	out, err := execute(t, "trace", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no path, expanded: 1")
}
