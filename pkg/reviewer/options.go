package reviewer

import (
	"time"
)

// Option is a functional option for customizing a Reviewer.
type Option func(*options)

type options struct {
	now          func() time.Time
	destinations []string
	checkDDL     bool
}

func defaultOptions() *options {
	return &options{
		now:      time.Now,
		checkDDL: true,
	}
}

// WithClock sets the time source used for every timestamp the Reviewer
// produces.
//
// Tests use it to get reproducible reports:
//
//	r := reviewer.New(columns, reviewer.WithClock(func() time.Time { return fixed }))
func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

// WithDestinations overrides the lineage destinations reported by Analyze.
//
// Example:
//
//	r := reviewer.New(columns, reviewer.WithDestinations("Lakehouse"))
func WithDestinations(destinations ...string) Option {
	return func(opts *options) {
		opts.destinations = append([]string(nil), destinations...)
	}
}

// WithDDLCheck controls whether WriteDocuments parses the generated DDL with
// the MySQL grammar before returning. It is enabled by default.
func WithDDLCheck(enabled bool) Option {
	return func(opts *options) {
		opts.checkDDL = enabled
	}
}
