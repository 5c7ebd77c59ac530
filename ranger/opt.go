package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/logger"
	"github.com/xy-planning-network/wanderlust/users"
)

// A RangerOption configures a *Ranger under construction.
// Options run before New fills in whatever they leave unset.
type RangerOption func(rng *Ranger) error

// WithConfig uses cfg instead of reading one from the environment.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) error {
		if err := cfg.Env.Valid(); err != nil {
			return fmt.Errorf("%w: env %q", wanderlust.ErrBadConfig, cfg.Env)
		}

		if cfg.BaseURL == nil {
			return fmt.Errorf("%w: nil BaseURL", wanderlust.ErrBadConfig)
		}

		rng.cfg = &cfg
		return nil
	}
}

// WithContext exposes the provided context.Context to the wanderlust app.
// Cancelling ctx stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context.Context", wanderlust.ErrBadConfig)
		}

		rng.ctx = ctx
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the wanderlust app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.l = l
		return nil
	}
}

// WithServer serves the wanderlust app with s.
// The handler set on s is replaced.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		rng.srv = s
		return nil
	}
}

// WithTemplates parses templates from files ahead of the embedded ones,
// so a file in files overrides the embedded file of the same name.
func WithTemplates(files fs.FS) RangerOption {
	return func(rng *Ranger) error {
		if files != nil {
			rng.tmpls = append(rng.tmpls, files)
		}

		return nil
	}
}

// WithUserStore persists Users with store instead of connecting to PostgreSQL.
func WithUserStore(store users.Storer) RangerOption {
	return func(rng *Ranger) error {
		if store == nil {
			return fmt.Errorf("%w: nil users.Storer", wanderlust.ErrBadConfig)
		}

		rng.store = store
		return nil
	}
}
