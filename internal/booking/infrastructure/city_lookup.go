package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/viajabus/booking/pkg/application"
)

// IBGECityLookup resolves city names against the IBGE localidades API. The
// full municipality list changes rarely, so it is cached in memory.
type IBGECityLookup struct {
	baseURL   string
	client    *http.Client
	logger    application.AppLogger
	mu        sync.Mutex
	cities    map[string]struct{}
	fetchedAt time.Time
	cacheTTL  time.Duration
}

type ibgeMunicipality struct {
	Name string `json:"nome"`
}

func NewIBGECityLookup(baseURL string, logger application.AppLogger) *IBGECityLookup {
	return &IBGECityLookup{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		cacheTTL: 24 * time.Hour,
	}
}

// Exists reports whether city is a known Brazilian municipality. The match is
// case-insensitive; accents must be supplied as registered.
func (l *IBGECityLookup) Exists(ctx context.Context, city string) (bool, error) {
	cities, err := l.loadCities(ctx)
	if err != nil {
		return false, err
	}
	_, ok := cities[strings.ToLower(city)]
	return ok, nil
}

func (l *IBGECityLookup) loadCities(ctx context.Context) (map[string]struct{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cities != nil && time.Since(l.fetchedAt) < l.cacheTTL {
		return l.cities, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/municipios", nil)
	if err != nil {
		return nil, fmt.Errorf("building city lookup request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying city directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("city directory returned status %d", resp.StatusCode)
	}

	var municipalities []ibgeMunicipality
	if err := json.NewDecoder(resp.Body).Decode(&municipalities); err != nil {
		return nil, fmt.Errorf("decoding city directory response: %w", err)
	}

	cities := make(map[string]struct{}, len(municipalities))
	for _, m := range municipalities {
		cities[strings.ToLower(m.Name)] = struct{}{}
	}

	l.cities = cities
	l.fetchedAt = time.Now()
	l.logger.Info(ctx, "city directory refreshed", map[string]interface{}{
		"cities": len(cities),
	})
	return cities, nil
}
