package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedgate/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("json format produces parseable records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.FormatJSON),
			logger.WithOutput(&buf),
		)

		log.Info("validated", slog.Int("records", 3))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "validated", record["msg"])
		assert.Equal(t, float64(3), record["records"])
	})

	t.Run("static attributes appear on every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.FormatJSON),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("run_id", "abc")),
		)

		log.Info("one")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "abc", record["run_id"])
	})

	t.Run("level filters records below it", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)

		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("invalid format falls back to text", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.Format("xml")),
			logger.WithOutput(&buf),
		)

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})
}
