package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrInvalidStatus                = errors.New("invalid leave request status")
)
