package resp

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/wanderlust"
)

// These wrap their wanderlust counterparts,
// so callers may check either.
var (
	ErrBadConfig   = fmt.Errorf("resp: %w", wanderlust.ErrBadConfig)
	ErrInvalid     = fmt.Errorf("resp: %w", wanderlust.ErrNotValid)
	ErrMissingData = fmt.Errorf("resp: %w", wanderlust.ErrMissingData)
	ErrNotFound    = fmt.Errorf("resp: %w", wanderlust.ErrNotExist)
	ErrNoUser      = fmt.Errorf("resp: no user: %w", wanderlust.ErrNotExist)
)

// ErrDone reports the request's context.Context ended before a response could be composed.
var ErrDone = errors.New("resp: request ctx done")
