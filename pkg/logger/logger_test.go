/* pkg/logger/logger_test.go */

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRaw(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, AppendRaw(root, "alert.json wazuh https://hook  "))
	require.NoError(t, AppendRaw(root, "# ERROR: Wrong arguments"))

	data, err := os.ReadFile(LogFilePath(root))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "alert.json wazuh https://hook  ", lines[0])
	assert.Equal(t, "# ERROR: Wrong arguments", lines[1])
}

func TestAppendRawRecreatesFile(t *testing.T) {
	// the sink opens and closes per write, so removing the file between
	// writes must not break the next append
	root := t.TempDir()

	require.NoError(t, AppendRaw(root, "first"))
	require.NoError(t, os.Remove(LogFilePath(root)))
	require.NoError(t, AppendRaw(root, "second"))

	data, err := os.ReadFile(LogFilePath(root))
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestNewDebugWritesConsoleAndFile(t *testing.T) {
	root := t.TempDir()
	var console bytes.Buffer

	log := New(Config{Root: root, Debug: true, Console: &console})
	log.Debug("# Running Discord integration")
	require.NoError(t, log.Sync())

	assert.Contains(t, console.String(), "# Running Discord integration")

	data, err := os.ReadFile(LogFilePath(root))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Running Discord integration")
}

func TestNewWithoutDebugIsSilent(t *testing.T) {
	root := t.TempDir()
	var console bytes.Buffer

	log := New(Config{Root: root, Debug: false, Console: &console})
	log.Debug("hidden")
	log.Error("also hidden")

	assert.Empty(t, console.String())
	_, err := os.Stat(LogFilePath(root))
	assert.True(t, os.IsNotExist(err))
}

func TestLogFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/var/ossec", "logs", "integrations.log"),
		LogFilePath("/var/ossec"))
}
