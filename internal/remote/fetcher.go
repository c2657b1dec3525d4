package remote

import (
	"cocoa/internal/cache"
	"cocoa/internal/state"
	"cocoa/internal/types"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// maxConfigurationSize bounds the downloaded document.
const maxConfigurationSize = 1 << 20

// ConfigurationFetcher downloads the exposure configuration document from the CDN and stores it
// in the configuration slot. Failed downloads and documents that do not validate leave the
// stored document untouched.
type ConfigurationFetcher struct {
	httpClient *http.Client
	state      *state.Store
	url        string
	refresh    time.Duration

	fetched *cache.TTL[string, time.Time]
}

func NewConfigurationFetcher(httpClient *http.Client, st *state.Store, settings types.Settings) *ConfigurationFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ConfigurationFetcher{
		httpClient: httpClient,
		state:      st,
		url:        settings.ConfigurationURL(),
		refresh:    settings.ConfigurationRefresh(),
		fetched:    cache.NewTTL[string, time.Time](),
	}
}

func (f *ConfigurationFetcher) URL() string {
	return f.url
}

// Fetch downloads and stores the configuration. It reports whether a new document was stored;
// a successful download less than the refresh interval ago is not repeated.
func (f *ConfigurationFetcher) Fetch(ctx context.Context) (bool, error) {
	logger := log.WithField("url", f.url)
	if at, ok := f.fetched.Get(f.url); ok {
		logger.WithField("fetched_at", at).Debug("configuration fetched recently, skipping")
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return false, types.Err(types.ErrInvalidSettings, err, "configuration url")
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("failed download of exposure notification configuration")
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.WithField("code", resp.StatusCode).Error("fail to download configuration")
		return false, types.Err(types.ErrNotFound, nil, "configuration download returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxConfigurationSize))
	if err != nil {
		logger.WithError(err).Error("reading configuration body failed")
		return false, err
	}
	if err := validate(body); err != nil {
		logger.WithError(err).Error("downloaded configuration rejected")
		return false, err
	}
	if err := f.state.SetConfiguration(ctx, string(body)); err != nil {
		logger.WithError(err).Error("storing configuration failed")
		return false, err
	}
	f.fetched.Set(f.url, time.Now(), f.refresh)
	logger.WithField("bytes", len(body)).Info("success to download configuration")
	return true, nil
}

// validate checks that body is a usable exposure configuration. The body itself is stored
// verbatim.
func validate(body []byte) error {
	var cfg types.Configuration
	if err := json.Unmarshal(body, &cfg); err != nil {
		return types.Err(types.ErrInvalidConfiguration, err, "configuration is not JSON")
	}
	return cfg.Validate()
}
