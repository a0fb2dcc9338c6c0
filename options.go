package hwframe

import "github.com/gogpu/hwframe/va"

// Option configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Best available display, 4:2:0 surfaces
//	s, err := hwframe.Open()
//
//	// Force the software display with a larger pool
//	s, err := hwframe.Open(hwframe.WithDisplay("software"), hwframe.WithPoolSize(16))
type Option func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	display  string
	rtFormat va.RTFormat
	poolSize int
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		display:  "", // Best registered display
		rtFormat: va.RTFormatYUV420,
		poolSize: DefaultPoolSize,
	}
}

// DefaultPoolSize is the number of free frames kept per size and format.
const DefaultPoolSize = 8

// WithDisplay selects a display by its registry name instead of the best
// available one.
func WithDisplay(name string) Option {
	return func(o *sessionOptions) {
		o.display = name
	}
}

// WithRTFormat sets the render target format of pooled surfaces.
func WithRTFormat(rt va.RTFormat) Option {
	return func(o *sessionOptions) {
		o.rtFormat = rt
	}
}

// WithPoolSize sets how many free surfaces and downloaded frames are kept
// for reuse, per size and format. Zero means unlimited.
func WithPoolSize(n int) Option {
	return func(o *sessionOptions) {
		if n >= 0 {
			o.poolSize = n
		}
	}
}
