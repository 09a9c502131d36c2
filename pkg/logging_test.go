package inventorize

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T, level int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetVerboseLevel(level)
	t.Cleanup(func() {
		SetLogOutput(os.Stderr)
		SetVerboseLevel(0)
	})
	return &buf
}

func TestVerboseLevels(t *testing.T) {
	buf := captureLogs(t, 0)
	VerboseLog(1, "debug message")
	VerboseLog(0, "info message")
	assert.NotContains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "info message")

	buf = captureLogs(t, 1)
	VerboseLog(1, "debug message")
	VerboseLog(2, "trace message")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.NotContains(t, buf.String(), "trace message")
	assert.Equal(t, 1, GetVerboseLevel())

	buf = captureLogs(t, 2)
	VerboseLog(2, "trace message\n")
	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Contains(t, buf.String(), `msg="trace message"`)
}

func TestVerboseEnter(t *testing.T) {
	buf := captureLogs(t, 1)
	VerboseEnter()()
	assert.Empty(t, buf.String())

	buf = captureLogs(t, 2)
	func() {
		defer VerboseEnter()()
	}()
	assert.Contains(t, buf.String(), "entering function")
	assert.Contains(t, buf.String(), "exiting function")
}

func TestDebugFlags(t *testing.T) {
	t.Cleanup(func() { SetDebugFlags("") })

	SetDebugFlags("walk, HASH:on ,skip:off")
	assert.True(t, IsDebugEnabled("walk"))
	assert.True(t, IsDebugEnabled("hash"))
	assert.False(t, IsDebugEnabled("skip"))
	assert.False(t, IsDebugEnabled("other"))

	SetDebugFlags("")
	assert.False(t, IsDebugEnabled("walk"))
}
