package stdlogger_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshop/partshop/internal/logger"
	"github.com/partshop/partshop/internal/logger/adapter/stdlogger"
)

func TestLogger_Levels(t *testing.T) {
	out := captureOutput(t, func() {
		require.NoError(t, logger.Init(logger.Log{
			LogLevel:    "info",
			AppName:     "test",
			ServiceName: "test",
			Console:     logger.Console{Enabled: true},
		}))

		l := stdlogger.New()
		l.Debugf("stdlogger %s", "debug")
		l.Infof("stdlogger %s", "info")
		l.Warningf("stdlogger %s", "warning")
		l.Errorf("stdlogger %s", "error")
	})

	levels := decodeLevels(t, out)

	// debug is below the configured level
	assert.Equal(t, []string{"info", "warn", "error"}, levels)
}

func TestLogger_PrintfLevel(t *testing.T) {
	out := captureOutput(t, func() {
		require.NoError(t, logger.Init(logger.Log{
			LogLevel:    "info",
			AppName:     "test",
			ServiceName: "test",
			Console:     logger.Console{Enabled: true},
		}))

		stdlogger.New().Printf("\n%s slow query\n", "info")
		stdlogger.NewWithLevel(zerolog.WarnLevel).Printf("%s slow query", "warn")
	})

	assert.Equal(t, []string{"info", "warn"}, decodeLevels(t, out))
	assert.Contains(t, out, `"message":"info slow query"`)
}

func decodeLevels(t *testing.T, out string) []string {
	t.Helper()

	var levels []string

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}

		var entry struct {
			Level string `json:"level"`
		}

		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		levels = append(levels, entry.Level)
	}

	return levels
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	os.Stderr = w

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr

	return <-outC
}
