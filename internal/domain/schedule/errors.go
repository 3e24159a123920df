package schedule

import "errors"

var ErrTeamNotFound = errors.New("team not found")
