package ir

import "errors"

var ErrUnbalanced = errors.New("imbalanced document")
