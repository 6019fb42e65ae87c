package requestid

// Config holds environment-driven binder settings.
type Config struct {
	// Strategy is "counter" or "random".
	Strategy string `env:"REQUEST_ID_STRATEGY" envDefault:"counter"`

	// Header is the response header the identifier is echoed in.
	Header string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`

	// HeaderDisabled turns the echo header off.
	HeaderDisabled bool `env:"REQUEST_ID_HEADER_DISABLED" envDefault:"false"`
}

// NewFromConfig creates a Binder from cfg. Options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Binder, error) {
	configOpts := make([]Option, 0, 2+len(opts))

	if cfg.Strategy != "" {
		s, err := ParseStrategy(cfg.Strategy)
		if err != nil {
			return nil, err
		}
		g, err := NewGenerator(s)
		if err != nil {
			return nil, err
		}
		configOpts = append(configOpts, WithGenerator(g))
	}

	switch {
	case cfg.HeaderDisabled:
		configOpts = append(configOpts, WithoutHeader())
	case cfg.Header != "":
		if !headerNameRegex.MatchString(cfg.Header) {
			return nil, ErrInvalidHeader
		}
		configOpts = append(configOpts, WithHeader(cfg.Header))
	}

	return New(append(configOpts, opts...)...), nil
}
