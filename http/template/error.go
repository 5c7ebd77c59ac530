package template

import (
	"fmt"

	"github.com/xy-planning-network/wanderlust"
)

// ErrNoFiles reports a Render call naming no templates.
var ErrNoFiles = fmt.Errorf("%w: no template files", wanderlust.ErrMissingData)
