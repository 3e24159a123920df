package attendance

import "errors"

var (
	ErrInvalidMode = errors.New("lateness mode must be tolerance or badge")
)
