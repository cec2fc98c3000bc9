package doldoc

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	softWrap    bool
	clearScreen bool
}

// WithSoftWrap hard-breaks words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithClearScreen makes a $CL$ entry also clear the terminal before output.
func WithClearScreen(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.clearScreen = enabled
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
