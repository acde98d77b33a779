package emitter

import "errors"

// ErrSinkUnavailable indicates the output destination could not be opened or written.
var ErrSinkUnavailable = errors.New("emitter: sink unavailable")

// Option configures token formatting.
type Option func(*Options)

// Options controls how moves are rendered.
type Options struct {
	// Magnitude prefixes every token with its step count ("1E").
	Magnitude bool
	// Separator goes between tokens; defaults to a single space.
	Separator string
	// TrailingSeparator appends Separator after the last token too.
	TrailingSeparator bool
}

// DefaultOptions returns bare tokens separated by one space.
func DefaultOptions() Options {
	return Options{Separator: " "}
}

// WithMagnitude toggles the numeric step prefix.
func WithMagnitude(on bool) Option {
	return func(o *Options) {
		o.Magnitude = on
	}
}

// WithSeparator sets the token separator.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithTrailingSeparator writes the separator after the final token as well.
func WithTrailingSeparator() Option {
	return func(o *Options) {
		o.TrailingSeparator = true
	}
}
