package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(&filteringHandler{underlying: slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})})
}

func TestSectionFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := testLogger(buf)

	logger.With("section", "solver").Debug("kept")
	assert.Contains(t, buf.String(), "kept")

	buf.Reset()
	logger.With("section", "unknown").Debug("dropped")
	assert.Empty(t, buf.String())

	buf.Reset()
	logger.Debug("inline", "section", "parser")
	assert.Contains(t, buf.String(), "inline")
}

func TestWarningsAlwaysPass(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := testLogger(buf)

	logger.With("section", "unknown").Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestEnableSections(t *testing.T) {
	previous := enabledSections
	defer func() { enabledSections = previous }()

	EnableSections("eval")
	buf := &bytes.Buffer{}
	logger := testLogger(buf)

	logger.With("section", "solver").Debug("dropped")
	assert.Empty(t, buf.String())
	logger.With("section", "eval").Debug("kept")
	assert.Contains(t, buf.String(), "kept")
}
