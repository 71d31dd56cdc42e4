// Package clock abstracts wall-clock time so build timestamps, acquisition
// times and the builder's yield schedule can be pinned in tests.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=clockmock github.com/KirkDiggler/rpg-alchemy/internal/pkg/clock Clock

type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time { return time.Now() }

// New returns the process clock.
func New() Clock {
	return system{}
}

// Fixed always reports At.
type Fixed struct {
	At time.Time
}

func (f *Fixed) Now() time.Time {
	return f.At
}
