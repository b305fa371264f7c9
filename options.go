package paint

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := paint.NewSession(
//	    paint.WithBlendStrength(0.6),
//	    paint.WithHistoryLimit(32),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	brush        *Brush
	strength     float64
	linear       bool
	tileSize     int
	historyLimit int
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		brush:    nil, // NewBrush() if nil
		strength: DefaultBlendStrength,
	}
}

// WithBrush sets the initial brush. The session takes ownership of b and
// mutates it through its setters.
func WithBrush(b *Brush) SessionOption {
	return func(o *sessionOptions) {
		o.brush = b
	}
}

// WithBlendStrength sets the blend strength used by the rasterizer.
// Values are clamped to [0, 1] when painting.
func WithBlendStrength(t float64) SessionOption {
	return func(o *sessionOptions) {
		o.strength = t
	}
}

// WithLinearBlend blends brush color in linear light instead of sRGB.
func WithLinearBlend(enabled bool) SessionOption {
	return func(o *sessionOptions) {
		o.linear = enabled
	}
}

// WithDamageTileSize sets the edge length of the tiles reported by
// Session.Damage. Non-positive values use the default of 64 pixels.
func WithDamageTileSize(px int) SessionOption {
	return func(o *sessionOptions) {
		o.tileSize = px
	}
}

// WithHistoryLimit caps the number of undoable commands. Zero, the default,
// keeps every command.
func WithHistoryLimit(n int) SessionOption {
	return func(o *sessionOptions) {
		o.historyLimit = n
	}
}
