package errors_test

import (
	"testing"

	"github.com/habiliai/agentprovisioner/errors"
	"github.com/stretchr/testify/assert"
)

func TestRemoteRequestError(t *testing.T) {
	var err error = &errors.RemoteRequestError{StatusCode: 500, Body: "boom"}

	assert.True(t, errors.Is(err, errors.ErrRemoteRequest))
	assert.False(t, errors.Is(err, errors.ErrConfiguration))
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.Contains(t, err.Error(), "boom")

	wrapped := errors.Wrapf(err, "failed to create agent")
	var remoteErr *errors.RemoteRequestError
	assert.True(t, errors.As(wrapped, &remoteErr))
	assert.Equal(t, 500, remoteErr.StatusCode)
	assert.True(t, errors.Is(wrapped, errors.ErrRemoteRequest))
}

func TestWrappedSentinel(t *testing.T) {
	err := errors.Wrapf(errors.ErrConfiguration, "environment variable %s is required", "AZURE_AI_PROJECT_ID")

	assert.True(t, errors.Is(err, errors.ErrConfiguration))
	assert.Contains(t, err.Error(), "AZURE_AI_PROJECT_ID")
}
