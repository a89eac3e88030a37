package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(false, &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	verbose := New(true, &buf)
	assert.Equal(t, logrus.DebugLevel, verbose.GetLevel())
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.IsLevelEnabled(logrus.WarnLevel))
}
