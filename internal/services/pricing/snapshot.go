package pricing

import (
	"context"
	"fmt"
	"log"
)

// CachedZoneProvider builds zone snapshots from the store, going through the
// cache first. Cache failures degrade to a store read.
type CachedZoneProvider struct {
	source ZoneSource
	cache  ZoneCache
}

// NewCachedZoneProvider creates a provider. cache may be nil.
func NewCachedZoneProvider(source ZoneSource, cache ZoneCache) *CachedZoneProvider {
	if source == nil {
		panic("zone source is required")
	}
	return &CachedZoneProvider{source: source, cache: cache}
}

func (p *CachedZoneProvider) Snapshot(ctx context.Context) (*ZoneTable, error) {
	if p.cache != nil {
		zones, found, err := p.cache.GetZones(ctx)
		switch {
		case err != nil:
			log.Printf("Warning: zone cache read failed: %v", err)
		case found:
			return NewZoneTable(zones)
		}
	}

	zones, err := p.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing zones: %w", err)
	}

	// Validate before caching so a broken catalog is never served from cache.
	table, err := NewZoneTable(zones)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.CacheZones(ctx, zones); err != nil {
			log.Printf("Warning: zone cache write failed: %v", err)
		}
	}
	return table, nil
}

// Invalidate drops the cached catalog so the next Snapshot reads the store.
func (p *CachedZoneProvider) Invalidate(ctx context.Context) error {
	if p.cache == nil {
		return nil
	}
	return p.cache.InvalidateZones(ctx)
}

// StaticZones serves one fixed snapshot, for offline quoting from a catalog file.
type StaticZones struct {
	Table *ZoneTable
}

func (s StaticZones) Snapshot(context.Context) (*ZoneTable, error) {
	return s.Table, nil
}
