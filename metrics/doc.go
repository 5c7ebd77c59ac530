// Package metrics counts logins, registrations, want-to-go additions, searches and HTTP responses,
// exposing them for Prometheus to scrape.
package metrics
