package session

import (
	"fmt"

	"github.com/xy-planning-network/wanderlust"
)

// ErrNoUser reports a Session nobody is registered to.
var ErrNoUser = fmt.Errorf("%w: no user in session", wanderlust.ErrNotExist)

// ErrNotValid reports a Session holding something other than a username.
var ErrNotValid = fmt.Errorf("%w: user in session is not a username", wanderlust.ErrNotValid)
