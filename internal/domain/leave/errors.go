package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("leave period not found")
	ErrOverlappingLeave    = errors.New("leave period overlaps an existing request")
	ErrLeaveAlreadyHandled = errors.New("leave period already accepted")
	ErrNotLeaveOwner       = errors.New("leave period belongs to another user")
)
