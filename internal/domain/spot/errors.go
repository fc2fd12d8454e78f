package spot

import "errors"

var ErrNotFound = errors.New("spot not found")
