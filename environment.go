package wanderlust

import (
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// An Environment names where a wanderlust app is deployed.
// It decides whether cookies need HTTPS and whether built-in session keys may be used.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

var environments = []Environment{Development, Production, Staging, Testing}

func (e Environment) String() string { return string(e) }

// Valid returns ErrNotValid for anything but the four known Environments.
func (e Environment) Valid() error {
	if !slices.Contains(environments, e) {
		return ErrNotValid
	}

	return nil
}

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool { return e == Development }

// IsLocal reports whether e runs on a developer's machine or under test.
// Local Environments serve plain HTTP and may boot with the built-in session keys.
func (e Environment) IsLocal() bool { return e == Development || e == Testing }

// envVarOr reads key and parses it,
// falling back to def when key is unset or parse fails.
func envVarOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}

	val, err := parse(raw)
	if err != nil {
		return def
	}

	return val
}

// EnvVarOrDuration reads key as a time.Duration like "5s".
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	return envVarOr(key, def, time.ParseDuration)
}

// EnvVarOrEnv reads key as an Environment in any case.
// An unknown Environment yields def.
func EnvVarOrEnv(key string, def Environment) Environment {
	return envVarOr(key, def, func(raw string) (Environment, error) {
		env := Environment(strings.ToUpper(strings.TrimSpace(raw)))
		return env, env.Valid()
	})
}

// EnvVarOrInt reads key as a base 10 int.
func EnvVarOrInt(key string, def int) int {
	return envVarOr(key, def, strconv.Atoi)
}

// EnvVarOrString reads key, treating an empty value as unset.
func EnvVarOrString(key, def string) string {
	return envVarOr(key, def, func(raw string) (string, error) { return raw, nil })
}

// EnvVarOrURL reads key as an absolute URL.
// def is parsed the same way and trimmed to its root;
// nil is returned only when def itself does not parse.
func EnvVarOrURL(key, def string) *url.URL {
	root, err := url.ParseRequestURI(def)
	if err != nil {
		return nil
	}
	root.Path = "/"

	return envVarOr(key, root, url.ParseRequestURI)
}
