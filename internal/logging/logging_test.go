package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Str("file", "tasks.txt").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "file=tasks.txt")
	assert.NotContains(t, out, "\x1b[")
}

func TestNew_DefaultsToInfo(t *testing.T) {
	logger, err := New("", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("chatty", &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
