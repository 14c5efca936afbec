// Package geo resolves lead ZIP codes to state and county and carries
// the state name tables used by coverage matching.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
	redispkg "github.com/docksidelabs/leadrouter-backend/pkg/redis"
)

// Location is the resolved geography for a ZIP code.
type Location struct {
	Zip       string `json:"zip"`
	StateCode string `json:"state_code"`
	StateName string `json:"state_name"`
	County    string `json:"county"`
}

// Resolver maps a ZIP code to its location. Implementations return
// (nil, nil) when the ZIP is well formed but unknown; coverage matching
// degrades to ZIP-exact and global in that case.
type Resolver interface {
	ResolveZip(ctx context.Context, zip string) (*Location, error)
}

// NormalizeZip trims input to the leading five digits.
func NormalizeZip(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 5 {
		trimmed = trimmed[:5]
	}
	if len(trimmed) != 5 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid zip code %q", raw))
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid zip code %q", raw))
		}
	}
	return trimmed, nil
}

// DBResolver looks ZIP codes up in the zip_locations table.
type DBResolver struct {
	db *gorm.DB
}

func NewDBResolver(db *gorm.DB) (*DBResolver, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	return &DBResolver{db: db}, nil
}

func (r *DBResolver) ResolveZip(ctx context.Context, zip string) (*Location, error) {
	normalized, err := NormalizeZip(zip)
	if err != nil {
		return nil, err
	}

	var row models.ZipLocation
	err = r.db.WithContext(ctx).Where("zip = ?", normalized).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving zip location")
	}

	name, _ := StateName(row.StateCode)
	return &Location{
		Zip:       normalized,
		StateCode: strings.ToUpper(row.StateCode),
		StateName: name,
		County:    row.County,
	}, nil
}

// CachedResolver decorates a Resolver with a redis read-through cache.
// Cache failures are logged and the lookup falls through to the inner
// resolver.
type CachedResolver struct {
	inner Resolver
	cache *redispkg.Client
	ttl   time.Duration
	logg  *logger.Logger
}

func NewCachedResolver(inner Resolver, cache *redispkg.Client, ttl time.Duration, logg *logger.Logger) (*CachedResolver, error) {
	if inner == nil {
		return nil, errors.New("inner resolver is required")
	}
	if cache == nil {
		return nil, errors.New("redis client is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachedResolver{inner: inner, cache: cache, ttl: ttl, logg: logg}, nil
}

func (r *CachedResolver) ResolveZip(ctx context.Context, zip string) (*Location, error) {
	normalized, err := NormalizeZip(zip)
	if err != nil {
		return nil, err
	}

	key := r.cache.GeoZipKey(normalized)
	if cached, getErr := r.cache.Get(ctx, key); getErr == nil {
		var loc Location
		if jsonErr := json.Unmarshal([]byte(cached), &loc); jsonErr == nil {
			return &loc, nil
		}
	} else if !redispkg.IsNil(getErr) && r.logg != nil {
		r.logg.Warn(ctx, "geo cache read failed")
	}

	loc, err := r.inner.ResolveZip(ctx, normalized)
	if err != nil || loc == nil {
		return loc, err
	}

	if encoded, jsonErr := json.Marshal(loc); jsonErr == nil {
		if setErr := r.cache.Set(ctx, key, string(encoded), r.ttl); setErr != nil && r.logg != nil {
			r.logg.Warn(ctx, "geo cache write failed")
		}
	}
	return loc, nil
}
