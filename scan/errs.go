package scan

import "errors"

var (
	ErrPolicy      = errors.New("invalid growth policy")
	ErrBufferLimit = errors.New("scan buffer limit exceeded")
	ErrBorrowed    = errors.New("borrowed buffer cannot grow")
)
