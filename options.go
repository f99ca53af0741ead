package pocketcube

// Option configures a Tracker.
type Option func(*config)

type config struct {
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all applied moves are stored and accessible
// via Moves(). Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
