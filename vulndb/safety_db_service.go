package vulndb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
)

const safetyDBKey = "insecure_full"

// safetyDBService resolves pyup.io safety ids to cve ids.
// The advisory database is downloaded on first use and kept for a day.
type safetyDBService struct {
	httpClient *http.Client
	url        string

	mu    sync.Mutex
	cache *expirable.LRU[string, dtos.SafetyDB]
}

var _ shared.SafetyDBService = (*safetyDBService)(nil)

func NewSafetyDBService(cfg shared.Config) *safetyDBService {
	return newSafetyDBService(cfg.SafetyDBURL, 24*time.Hour)
}

func newSafetyDBService(url string, ttl time.Duration) *safetyDBService {
	return &safetyDBService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
		cache:      expirable.NewLRU[string, dtos.SafetyDB](1, nil, ttl),
	}
}

// LookupCVE returns the cve of the advisory and the nvd detail url.
// Unknown advisories are returned unchanged without url.
func (s *safetyDBService) LookupCVE(ctx context.Context, packageName, safetyID string) (string, string) {
	db, err := s.load(ctx)
	if err != nil {
		slog.Warn("safety database not available", "err", err)
		return safetyID, ""
	}

	for _, advisory := range db[packageName] {
		if advisory.ID != "pyup.io-"+safetyID {
			continue
		}
		if strings.HasPrefix(advisory.CVE, "CVE") {
			return advisory.CVE, "https://nvd.nist.gov/vuln/detail/" + advisory.CVE
		}
		return advisory.CVE, ""
	}
	return safetyID, ""
}

func (s *safetyDBService) load(ctx context.Context) (dtos.SafetyDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if db, ok := s.cache.Get(safetyDBKey); ok {
		return db, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not download safety database")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("safety database returned status %d", res.StatusCode)
	}

	db, err := decodeSafetyDB(res.Body)
	if err != nil {
		return nil, err
	}
	s.cache.Add(safetyDBKey, db)
	return db, nil
}

func decodeSafetyDB(r io.Reader) (dtos.SafetyDB, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "could not decode safety database")
	}

	db := make(dtos.SafetyDB, len(raw))
	for pkg, entry := range raw {
		if pkg == "$meta" {
			continue
		}
		var advisories []dtos.SafetyAdvisory
		if err := json.Unmarshal(entry, &advisories); err != nil {
			slog.Debug("skipping malformed safety advisories", "package", pkg, "err", err)
			continue
		}
		db[pkg] = advisories
	}
	return db, nil
}
