package session

import "net/http"

// FlashError styles a Flash reporting a failure.
const FlashError = "error"

// DefaultErrMsg is shown whenever a failure has nothing more specific to say.
const DefaultErrMsg = "An error occurred."

// A FlashSessionable stores Flashes to be shown on the next page rendered.
type FlashSessionable interface {
	// Flashes returns and clears every Flash stored.
	Flashes(w http.ResponseWriter, r *http.Request) []Flash
	SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error
}

// A Flash is a one-time message shown to the user.
type Flash struct {
	Class string `json:"class"`
	Msg   string `json:"msg"`
}
