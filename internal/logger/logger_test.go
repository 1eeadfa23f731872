package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chapterquiz/internal/config"
)

func TestNew_Fallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Log: config.Log{Level: "warn"}}

	log, closeFn, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "quiz.log")
	cfg := &config.Config{Log: config.Log{Level: "debug", File: p}}

	log, closeFn, err := New(cfg, nil)
	require.NoError(t, err)
	log.WithField("line", 3).Debug("skipped")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"line":3`)
	assert.Contains(t, string(data), `"msg":"skipped"`)
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(&config.Config{Log: config.Log{Level: "loud"}}, nil)
	assert.Error(t, err)
}
