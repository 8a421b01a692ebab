package svgmap

import "github.com/google/uuid"

// BoundsMode selects how the extent of a region is measured.
type BoundsMode uint8

const (
	// InclusiveBounds uses every point of the outline,
	// curve control points included.
	InclusiveBounds BoundsMode = iota
	// TightBounds uses the extrema of the curves instead of
	// their control points.
	TightBounds
)

// Option configures the parsing of a document.
type Option func(*options)

type options struct {
	errorMode ErrorMode
	newID     func() string
	bounds    BoundsMode
}

func defaultOptions() options {
	return options{
		errorMode: WarnErrorMode,
		newID:     uuid.NewString,
		bounds:    InclusiveBounds,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithErrorMode sets how problems are reported.
// The default is WarnErrorMode.
func WithErrorMode(mode ErrorMode) Option {
	return func(o *options) {
		o.errorMode = mode
	}
}

// WithIDGenerator replaces the random UUIDs given to
// regions without `id` and `name` attributes.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// WithBoundsMode selects how regions are measured.
// The default, InclusiveBounds, matches the historical
// behavior of map documents.
func WithBoundsMode(mode BoundsMode) Option {
	return func(o *options) {
		o.bounds = mode
	}
}
