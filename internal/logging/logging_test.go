package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMockLogger_CapturesEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("first", F("count", 3))
	mock.Warn("second")

	entries := mock.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, []Field{{Key: "count", Value: 3}}, entries[0].Fields)
	assert.Equal(t, "warn", entries[1].Level)
}

func TestMockLogger_WithFieldSharesSink(t *testing.T) {
	mock := NewMockLogger()

	mock.WithField("component", "store").Debug("loaded")
	mock.WithField("a", 1).WithField("b", 2).Info("chained")

	entries := mock.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, []Field{{Key: "component", Value: "store"}}, entries[0].Fields)
	assert.Equal(t, []Field{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, entries[1].Fields)
}

func TestMockLogger_WithErrorAttachesError(t *testing.T) {
	mock := NewMockLogger()
	boom := errors.New("boom")

	mock.WithError(boom).Error("failed")

	entries := mock.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, boom, entries[0].Err)
}

func TestNewLogrusAdapter_NilLogger(t *testing.T) {
	adapter := NewLogrusAdapter(nil)

	assert.NotNil(t, adapter)
	assert.NotPanics(t, func() {
		adapter.WithField("k", "v").Info("ok")
		adapter.WithError(errors.New("x")).Warn("warned")
	})
}

func TestNewLogrusAdapter_UsesGivenLogger(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	adapter := NewLogrusAdapter(logger)

	assert.NotPanics(t, func() {
		adapter.Debug("suppressed")
	})
}

func TestF(t *testing.T) {
	f := F("key", 42)

	assert.Equal(t, "key", f.Key)
	assert.Equal(t, 42, f.Value)
}
