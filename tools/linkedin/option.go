package linkedin

import "github.com/bububa/linkedin-agents/tools"

// Config carries the shared settings of the linkedin tools
type Config struct {
	tools.Config
	scheme  LengthScheme
	catalog Catalog
}

type Option func(*Config)

// WithScheme selects the length advisory scheme
func WithScheme(scheme LengthScheme) Option {
	return func(c *Config) {
		c.scheme = scheme
	}
}

// WithCatalog replaces the canonical industry catalog, e.g. to prune it for
// a demo surface
func WithCatalog(catalog Catalog) Option {
	return func(c *Config) {
		c.catalog = catalog
	}
}

// WithToolOptions applies base tool options (title, description, hooks)
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}
