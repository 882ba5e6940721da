package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrConfig, "No targets configured", "Add targets or pass --ip")

	msg := err.Error()
	assert.Contains(t, msg, "✗ No targets configured")
	assert.Contains(t, msg, "Add targets or pass --ip")
}

func TestErrorIncludesCause(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := WrapWithCode(cause, ErrConfig, "Failed to read config file", "Check the YAML syntax")

	msg := err.Error()
	assert.Contains(t, msg, "Failed to read config file")
	assert.Contains(t, msg, "yaml: line 3")
	assert.Contains(t, msg, "Check the YAML syntax")
}

func TestWrapDefaultsToProbe(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "Probe failed")
	assert.Equal(t, ErrProbe, err.Code)
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := WrapWithCode(cause, ErrUI, "Dashboard crashed", "")

	assert.True(t, stderrors.Is(err, cause))

	var structured *Error
	require.True(t, stderrors.As(err, &structured))
	assert.Equal(t, ErrUI, structured.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "bad config", "")
	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrProbe))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrConfig))

	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, IsCode(wrapped, ErrConfig))
}
