package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLogTags(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Info("loading %s", "session.yaml")
	Success("%d blocks assigned", 3)
	Fail("block %d failed", 2)
	Debug("hidden")

	out := buf.String()
	require.Contains(t, out, "[INFO]\033[0m loading session.yaml")
	require.Contains(t, out, "[DONE]\033[0m 3 blocks assigned")
	require.Contains(t, out, "[FAIL]\033[0m block 2 failed")
	require.NotContains(t, out, "hidden")

	SetVerbose(true)
	t.Cleanup(func() { SetVerbose(false) })
	Debug("search nodes=%d", 4)
	require.Contains(t, buf.String(), "[DEBUG]\033[0m search nodes=4")
}

func TestLogFile(t *testing.T) {
	SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, SetLogFile(path))
	Info("to file")
	Success("finished")
	CloseLogFile()
	Info("after close")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "[INFO] to file"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], "[DONE] finished"), lines[1])
	require.NotContains(t, string(b), "\033[")
}

func TestNewUUID(t *testing.T) {
	id := NewUUID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.NotEqual(t, id, NewUUID())
	require.Equal(t, id[:8], ShortID(id))
	require.Equal(t, "abc", ShortID("abc"))
}
