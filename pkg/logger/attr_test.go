package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pollkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}), "nil error must produce an empty attr")

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}), "all-nil errors must produce an empty attr")

	attr := logger.Errors(errors.New("one"), nil, errors.New("two"))
	assert.Equal(t, "errors", attr.Key)
	assert.Len(t, attr.Value.Group(), 2, "nil errors must be skipped")
}

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("join", logger.Slot(1), logger.Cycle(4))
	assert.Equal(t, "join", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}

func TestScalarAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "slot", logger.Slot(0).Key)
	assert.Equal(t, "cycle", logger.Cycle(1).Key)

	d := logger.Duration(250 * time.Millisecond)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, 250*time.Millisecond, d.Value.Duration())
}
