package di

import (
	"github.com/fingerpaintmarketing/themekit/cache"
	"github.com/fingerpaintmarketing/themekit/internal/cacheinfra"
	"github.com/fingerpaintmarketing/themekit/theme"
	"github.com/fingerpaintmarketing/themekit/userquery"
)

// Container provides dependency injection for the theme helper components.
// It manages singleton instances of the shared cache service and key
// serializer, and provides factory methods for per-request helpers and query
// services.
type Container struct {
	sharedCache   cache.Service
	keySerializer cache.KeySerializer
	config        cacheinfra.Config
}

// NewContainer creates a new DI container with the provided cache
// configuration. It initializes the shared cache service using the sturdyc
// adapter and sets up the default key serializer.
func NewContainer(config cacheinfra.Config) (*Container, error) {
	sharedCache, err := cacheinfra.NewSturdycService(config)
	if err != nil {
		return nil, err
	}

	return &Container{
		sharedCache:   sharedCache,
		keySerializer: cache.NewDefaultKeySerializer(),
		config:        config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default
// configuration. This is a convenience constructor for typical use cases
// where custom configuration is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(cacheinfra.DefaultConfig())
}

// SharedCache returns the singleton shared cache service. Entries here
// survive across requests, unlike the per-request memo stores handed to
// helpers.
func (c *Container) SharedCache() cache.Service {
	return c.sharedCache
}

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the cache configuration used by this container.
func (c *Container) Config() cacheinfra.Config {
	return c.config
}

// NewHelper creates a theme helper for one inbound request. Field option
// lookups go through the shared cache so option sets stay warm across
// requests; everything else the helper memoizes is request-scoped.
func (c *Container) NewHelper(req theme.RequestContext, fields theme.FieldProvider) *theme.Helper {
	return theme.NewHelper(req, fields, c.sharedCache)
}

// NewRequestHelper creates a theme helper whose cache lives and dies with the
// request, matching the classic one-instance-per-request lifecycle.
func (c *Container) NewRequestHelper(req theme.RequestContext, fields theme.FieldProvider) *theme.Helper {
	return theme.NewHelper(req, fields, nil)
}

// NewUserQueryService creates a query service bound to the given store.
func (c *Container) NewUserQueryService(store userquery.Store) *userquery.Service {
	return userquery.New(store)
}
