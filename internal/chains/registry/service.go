package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sahilm/fuzzy"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/metrics"
)

// Service is the chain catalog cache. All reads go through EnsureFresh,
// which refreshes the snapshot from the remote catalog once its TTL has
// expired.
type Service interface {
	EnsureFresh(ctx context.Context) error
	All(ctx context.Context) ([]chains.Record, error)
	Find(ctx context.Context, match func(chains.Record) bool) (*chains.Record, error)
	Names(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]chains.Record, error)
}

type service struct {
	url     string
	ttl     time.Duration
	client  *http.Client
	custom  []chains.Record
	metrics *metrics.Service

	mu       sync.RWMutex
	snapshot *snapshot
}

// snapshot is an immutable merged record list. It is replaced as a whole
// on refresh, never mutated in place.
type snapshot struct {
	records   []chains.Record
	fetchedAt time.Time
}

// New creates the catalog cache. A configured custom chains file is
// loaded eagerly so malformed operator input fails at startup, the
// remote catalog is only fetched on first use.
//
//nolint:ireturn
func New(cfg config.Server, m *metrics.Service) (Service, error) {
	custom, err := loadCustomChains(cfg.Catalog.CustomChainsPath)
	if err != nil {
		return nil, err
	}

	return &service{
		url:     cfg.Catalog.URL,
		ttl:     cfg.Catalog.TTL,
		client:  &http.Client{Timeout: cfg.Catalog.FetchTimeout},
		custom:  custom,
		metrics: m,
	}, nil
}

// EnsureFresh refreshes the snapshot if it is missing or expired.
// A failed refresh keeps serving the previous snapshot and only logs a
// warning. Without any previous snapshot the catalog is unavailable.
func (s *service) EnsureFresh(ctx context.Context) error {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil && time.Since(snap.fetchedAt) < s.ttl {
		return nil
	}

	// Concurrent callers past an expired TTL may fetch in parallel, the
	// last completed swap wins. That duplication is accepted over
	// serializing all reads behind one fetch.
	records, err := s.fetch(ctx)
	if err != nil {
		s.metrics.ObserveCatalogRefresh(false)

		if snap != nil {
			log.Warn().Err(err).Msg("Chain catalog refresh failed, serving stale snapshot")
			return nil
		}

		return errors.Wrapf(chains.ErrCatalogUnavailable, "%s", err)
	}

	s.metrics.ObserveCatalogRefresh(true)

	s.mu.Lock()
	s.snapshot = &snapshot{records: records, fetchedAt: time.Now()}
	s.mu.Unlock()

	log.Debug().Int("count", len(records)).Msg("Chain catalog refreshed")

	return nil
}

func (s *service) fetch(ctx context.Context) ([]chains.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog request")
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch chain catalog")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected catalog response status %d", res.StatusCode)
	}

	var doc chains.CatalogDocument
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode chain catalog")
	}

	return s.merge(doc), nil
}

// merge builds the snapshot record list: canonical chains first, then
// operator defined custom chains, then the remote document. Later
// duplicates of an already listed chain id are skipped.
func (s *service) merge(doc chains.CatalogDocument) []chains.Record {
	out := make([]chains.Record, 0, len(canonicalChains)+len(s.custom)+len(doc.Mainnet)+len(doc.Testnet))
	seen := make(map[int64]bool)

	add := func(r chains.Record) {
		if r.ChainID != 0 && seen[r.ChainID] {
			return
		}
		seen[r.ChainID] = true
		out = append(out, r)
	}

	for _, r := range canonicalChains {
		add(r)
	}
	for _, r := range s.custom {
		add(r)
	}
	for _, r := range doc.Mainnet {
		r.IsMainnet = true
		add(r)
	}
	for _, r := range doc.Testnet {
		r.IsTestnet = true
		add(r)
	}

	return out
}

func (s *service) All(ctx context.Context) ([]chains.Record, error) {
	if err := s.EnsureFresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.records, nil
}

func (s *service) Find(ctx context.Context, match func(chains.Record) bool) (*chains.Record, error) {
	records, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if match(records[i]) {
			record := records[i]
			return &record, nil
		}
	}

	return nil, nil //nolint:nilnil // nil record means no match, not an error
}

func (s *service) Names(ctx context.Context) ([]string, error) {
	records, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}

	return names, nil
}

// Search returns all records whose name or slug contains the query,
// case-insensitive, best fuzzy match first. An empty query returns the
// full catalog in snapshot order.
func (s *service) Search(ctx context.Context, query string) ([]chains.Record, error) {
	records, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records, nil
	}

	matched := make([]chains.Record, 0, len(records))
	keys := make([]string, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), query) || strings.Contains(strings.ToLower(r.Slug), query) {
			matched = append(matched, r)
			keys = append(keys, strings.ToLower(r.Name)+" "+strings.ToLower(r.Slug))
		}
	}

	// a substring hit is always a fuzzy hit as well, so ranking covers
	// every matched record
	ranked := fuzzy.Find(query, keys)

	out := make([]chains.Record, 0, len(matched))
	taken := make([]bool, len(matched))
	for _, m := range ranked {
		out = append(out, matched[m.Index])
		taken[m.Index] = true
	}
	for i := range matched {
		if !taken[i] {
			out = append(out, matched[i])
		}
	}

	return out, nil
}
