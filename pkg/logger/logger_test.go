package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("hello", StringField("k", "v"), IntField("n", 1), FloatField("f", 0.5), Field("any", []string{"a"}), ErrorField(errors.New("boom")))

	l, err = New("INFO", "")
	require.NoError(t, err)
	assert.NotNil(t, l.Logger)
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("loud", "json")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("ignored", ErrorField(errors.New("x")))
	})
}
