package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/xy-planning-network/wanderlust"
)

// DefaultReturnTTL is how long a signed return path remains valid.
const DefaultReturnTTL = time.Hour

const returnIssuer = "wanderlust"

type returnClaims struct {
	Path string `json:"path"`
	jwt.RegisteredClaims
}

// ReturnPaths signs and verifies the page a form submission returns to.
// A signed path travels with the form so handlers never trust a client-supplied header.
type ReturnPaths struct {
	key    []byte
	now    func() time.Time
	parser *jwt.Parser
	ttl    time.Duration
}

// NewReturnPaths constructs a *ReturnPaths signing with key.
func NewReturnPaths(key []byte, ttl time.Duration) (*ReturnPaths, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: return path key cannot be empty", wanderlust.ErrBadConfig)
	}

	if ttl <= 0 {
		ttl = DefaultReturnTTL
	}

	return &ReturnPaths{
		key:    key,
		now:    time.Now,
		parser: &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}},
		ttl:    ttl,
	}, nil
}

// Sign produces a token carrying path.
// Only local paths are signed.
func (rp *ReturnPaths) Sign(path string) (string, error) {
	if !IsLocalPath(path) {
		return "", fmt.Errorf("%w: %q is not a local path", wanderlust.ErrNotValid, path)
	}

	now := rp.now()
	claims := returnClaims{
		Path: path,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    returnIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(rp.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(rp.key)
	if err != nil {
		return "", fmt.Errorf("%w: %s", wanderlust.ErrUnexpected, err)
	}

	return signed, nil
}

// Verify checks token and returns the path it carries.
// Tampered, expired, foreign, or non-local tokens return an error wrapping [wanderlust.ErrNotValid].
func (rp *ReturnPaths) Verify(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: no return path", wanderlust.ErrNotValid)
	}

	claims := new(returnClaims)
	_, err := rp.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return rp.key, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", wanderlust.ErrNotValid, err)
	}

	if claims.Issuer != returnIssuer || !IsLocalPath(claims.Path) {
		return "", fmt.Errorf("%w: bad return path claims", wanderlust.ErrNotValid)
	}

	return claims.Path, nil
}

// IsLocalPath asserts whether path points within this application:
// it must begin with a single slash.
func IsLocalPath(path string) bool {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return false
	}

	return !strings.ContainsAny(path, "\\\r\n")
}
