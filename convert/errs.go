package convert

import "errors"

var ErrConvert = errors.New("cannot convert")
