package overtime

import "errors"

// Overtime domain errors
var (
	ErrOvertimeRequestNotFound         = errors.New("overtime request not found")
	ErrOvertimeRequestAlreadyProcessed = errors.New("overtime request has already been approved or rejected")
)
