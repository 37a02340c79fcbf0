package domain

import "errors"

var ErrStoreUnavailable = errors.New("room store unavailable")
