// Package users persists wanderlust Users and their want-to-go lists.
//
// The database is the sole arbiter of the two invariants a [Store] promises:
// usernames are unique and a want-to-go list holds each destination at most once.
package users
