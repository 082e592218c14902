// Package geocoding resolves street addresses into GeoJSON locations.
package geocoding

import (
	"context"
	"fmt"
	"log"
	"time"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/mapquest/open"

	"bootcamp-api/internal/cache"
	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
)

// cacheTTL bounds how long a resolved address is reused before the
// provider is consulted again.
const cacheTTL = 24 * time.Hour

// Geocoder resolves a free-form address into a GeoJSON point with its
// normalized address parts.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Location, error)
}

// MapQuestGeocoder resolves addresses via the MapQuest Open API, with
// results cached to avoid repeated lookups for the same address.
type MapQuestGeocoder struct {
	geocoder geo.Geocoder
	cache    cache.Cache
}

// NewMapQuestGeocoder creates a Geocoder backed by MapQuest Open.
func NewMapQuestGeocoder(apiKey string, c cache.Cache) *MapQuestGeocoder {
	return &MapQuestGeocoder{
		geocoder: open.Geocoder(apiKey),
		cache:    c,
	}
}

// Geocode resolves an address, serving repeated lookups from cache.
// Provider failures surface as ErrGeocodingFailed so callers can reject
// the address without leaking provider details.
func (g *MapQuestGeocoder) Geocode(ctx context.Context, address string) (*models.Location, error) {
	key := cache.GeocodeCacheKey(address)

	var cached models.Location
	found, err := g.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("Failed to read geocode cache for %q: %v", address, err)
	}
	if found {
		return &cached, nil
	}

	location, err := g.resolve(address)
	if err != nil {
		return nil, err
	}

	if err := g.cache.Set(ctx, key, location, cacheTTL); err != nil {
		log.Printf("Failed to cache geocode result for %q: %v", address, err)
	}

	return location, nil
}

func (g *MapQuestGeocoder) resolve(address string) (*models.Location, error) {
	point, err := g.geocoder.Geocode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGeocodingFailed, err)
	}
	if point == nil {
		return nil, apperrors.ErrGeocodingFailed
	}

	location := &models.Location{
		Type:        "Point",
		Coordinates: []float64{point.Lng, point.Lat},
	}

	// The forward lookup only yields coordinates; a reverse lookup fills
	// in the normalized address parts. Losing them is not fatal.
	parts, err := g.geocoder.ReverseGeocode(point.Lat, point.Lng)
	if err != nil || parts == nil {
		log.Printf("Failed to reverse geocode %q: %v", address, err)
		return location, nil
	}

	location.FormattedAddress = parts.FormattedAddress
	location.Street = parts.Street
	location.City = parts.City
	location.State = parts.State
	location.Zipcode = parts.Postcode
	location.Country = parts.CountryCode

	return location, nil
}
