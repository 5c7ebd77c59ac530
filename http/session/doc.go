// Package session manages wanderlust's server-tracked sessions
// on top of gorilla/sessions, backed by cookies or Redis.
package session
