// Package views holds the presentational components of the to-do app.
//
// Views never build their own client. They are mounted with the service handle
// owned by a provider, and every view mounted by the same App shares that one
// handle.
package views

import "errors"

var (
	// ErrNotMounted is returned by a view constructed without a service handle.
	ErrNotMounted = errors.New("view is not mounted beneath a provider")

	// ErrTitleRequired is returned when submitting an empty title.
	ErrTitleRequired = errors.New("title required")
)
