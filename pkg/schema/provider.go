package schema

import (
	"context"
	"errors"
)

const (
	// DefaultStaticSchemaURL is the published schema for Traefik static
	// configuration.
	DefaultStaticSchemaURL = "https://json.schemastore.org/traefik-v3.json"
	// DefaultDynamicSchemaURL is the published schema for Traefik dynamic
	// (file provider) configuration.
	DefaultDynamicSchemaURL = "https://json.schemastore.org/traefik-v3-file-provider.json"
)

// Config holds the schema endpoints a Provider serves. Endpoints are fixed at
// construction so multiple providers with different endpoints can coexist.
type Config struct {
	StaticSchemaURL  string
	DynamicSchemaURL string
}

// DefaultConfig returns a Config pointing at the published Traefik v3
// schemas.
func DefaultConfig() Config {
	return Config{
		StaticSchemaURL:  DefaultStaticSchemaURL,
		DynamicSchemaURL: DefaultDynamicSchemaURL,
	}
}

// Provider decides, per request, the source of truth for a schema: a fresh
// cache entry, a fresh download, a stale cache entry (offline only), or a
// failure. Create a Provider via NewProvider and share it across all
// subsystems that need schema access to avoid redundant downloads.
type Provider struct {
	config  Config
	store   *Store
	fetcher Fetcher
}

// NewProvider creates a Provider backed by the given store and fetcher.
func NewProvider(config Config, store *Store, fetcher Fetcher) *Provider {
	return &Provider{
		config:  config,
		store:   store,
		fetcher: fetcher,
	}
}

// GetSchema returns the schema document for the given identifier.
//
// A fresh cache entry is always served without touching the network. In
// offline mode a stale entry is still served, and a missing entry is an
// OfflineNoCacheError. Otherwise the schema is downloaded, written back to
// the cache, and returned; a download failure is propagated as a FetchError
// without falling back to a stale entry.
func (p *Provider) GetSchema(ctx context.Context, identifier string, offline bool) (map[string]interface{}, error) {
	location := p.store.Locate(identifier)

	if p.store.IsFresh(location) {
		schema, err := p.store.Read(location)
		if err == nil {
			return schema, nil
		}
		// An unreadable entry is treated as absent.
		var readErr *CacheReadError
		if !errors.As(err, &readErr) {
			return nil, err
		}
	}

	if offline {
		if p.store.Exists(location) {
			return p.store.Read(location)
		}
		return nil, &OfflineNoCacheError{Identifier: identifier}
	}

	schema, err := p.fetcher.Fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := p.store.Write(location, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// StaticSchema returns the schema for Traefik static configuration.
func (p *Provider) StaticSchema(ctx context.Context, offline bool) (map[string]interface{}, error) {
	return p.GetSchema(ctx, p.config.StaticSchemaURL, offline)
}

// DynamicSchema returns the schema for Traefik dynamic configuration.
func (p *Provider) DynamicSchema(ctx context.Context, offline bool) (map[string]interface{}, error) {
	return p.GetSchema(ctx, p.config.DynamicSchemaURL, offline)
}
