package graphqlimport

import (
	"github.com/graph-gophers/graphql-import/internal/source"
	"github.com/graph-gophers/graphql-import/log"
)

// Option configures an Import call, using the functional-options style
// common across this module's dependency surface.
type Option func(*config)

type config struct {
	sources        map[string]string
	moduleResolver source.ModuleResolver
	tracer         log.Tracer
}

func newConfig(opts []Option) *config {
	cfg := &config{sources: map[string]string{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSources supplies the optional mapping from logical source names to
// SDL strings that `from` targets resolve against, unless both the target
// and the importing source end in ".graphql".
func WithSources(sources map[string]string) Option {
	return func(c *config) {
		for name, sdl := range sources {
			c.sources[name] = sdl
		}
	}
}

// WithModuleResolver supplies the package-style lookup consulted when a
// relative ".graphql" import misses on disk. Without this
// option, such a miss fails immediately.
func WithModuleResolver(resolver source.ModuleResolver) Option {
	return func(c *config) { c.moduleResolver = resolver }
}

// WithTrace registers a Tracer to observe the traversal and closure steps
// of the Import call.
func WithTrace(tracer log.Tracer) Option {
	return func(c *config) { c.tracer = tracer }
}
