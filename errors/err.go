package errors

import (
	"fmt"
)

var (
	ErrConfiguration  = fmt.Errorf("agentprovisioner: missing configuration")
	ErrAuthentication = fmt.Errorf("agentprovisioner: authentication failed")
	ErrRemoteRequest  = fmt.Errorf("agentprovisioner: remote request failed")
	ErrSerialization  = fmt.Errorf("agentprovisioner: invalid response body")
)

// RemoteRequestError is returned when the management API answers with a non-success status.
type RemoteRequestError struct {
	StatusCode int
	Body       string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", ErrRemoteRequest, e.StatusCode, e.Body)
}

func (e *RemoteRequestError) Is(target error) bool {
	return target == ErrRemoteRequest
}
