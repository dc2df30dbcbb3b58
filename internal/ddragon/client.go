package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ytget/lol-cooldowns/internal/config"
)

// URL templates, relative to the base URL
const (
	VersionsPathTemplate       = "%s/api/versions.json"
	ChampionListPathTemplate   = "%s/cdn/%s/data/%s/champion.json"
	ChampionDetailPathTemplate = "%s/cdn/%s/data/%s/champion/%s.json"
	SpellIconPathTemplate      = "%s/cdn/%s/img/spell/%s"
	SpellIconExtension         = ".png"
)

// Response limits
const (
	MaxDocumentBytes = 8 << 20
	MaxIconBytes     = 1 << 20
)

// Client fetches champion metadata from Data Dragon
type Client struct {
	httpClient *http.Client
	baseURL    string
	locale     string
	version    string
	retries    int
	backoff    time.Duration

	versionMu sync.Mutex
	resolved  string

	namesMu sync.Mutex
	names   map[string]string // id -> display name

	champions *lru.Cache[string, []Ability]
	icons     *lru.Cache[string, []byte]
}

// NewClient creates a Data Dragon client from the resolved configuration
func NewClient(cfg config.Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is empty")
	}
	if cfg.DataVersion == "" {
		return nil, fmt.Errorf("data version is empty")
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = config.DefaultCacheSize
	}

	champions, err := lru.New[string, []Ability](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create champion cache: %w", err)
	}
	icons, err := lru.New[string, []byte](size * 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create icon cache: %w", err)
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}

	locale := cfg.Locale
	if locale == "" {
		locale = config.DefaultLocale
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		locale:     locale,
		version:    cfg.DataVersion,
		retries:    cfg.Retries,
		backoff:    cfg.RetryBackoff,
		champions:  champions,
		icons:      icons,
	}, nil
}

// LatestVersion returns the newest data version published by the CDN
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf(VersionsPathTemplate, c.baseURL), MaxDocumentBytes)
	if err != nil {
		return "", fmt.Errorf("error fetching versions: %w", err)
	}

	var versions []string
	if err := json.Unmarshal(body, &versions); err != nil {
		return "", fmt.Errorf("%w: versions: %v", ErrMalformedData, err)
	}
	if len(versions) == 0 || strings.TrimSpace(versions[0]) == "" {
		return "", fmt.Errorf("%w: empty versions list", ErrMalformedData)
	}
	return versions[0], nil
}

// Version returns the data version in use, resolving "latest" once
func (c *Client) Version(ctx context.Context) (string, error) {
	if c.version != config.LatestDataVersion {
		return c.version, nil
	}

	c.versionMu.Lock()
	defer c.versionMu.Unlock()

	if c.resolved != "" {
		return c.resolved, nil
	}

	v, err := c.LatestVersion(ctx)
	if err != nil {
		return "", err
	}
	log.Printf("Resolved latest data version: %s", v)
	c.resolved = v
	return v, nil
}

// ChampionNames returns the valid champion ids mapped to their display names
func (c *Client) ChampionNames(ctx context.Context) (map[string]string, error) {
	c.namesMu.Lock()
	defer c.namesMu.Unlock()

	if c.names != nil {
		return copyNames(c.names), nil
	}

	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, fmt.Sprintf(ChampionListPathTemplate, c.baseURL, version, c.locale), MaxDocumentBytes)
	if err != nil {
		return nil, fmt.Errorf("error fetching champion list: %w", err)
	}

	var resp championListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: champion list: %v", ErrMalformedData, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: champion list is empty", ErrMalformedData)
	}

	names := make(map[string]string, len(resp.Data))
	for key, item := range resp.Data {
		id := item.ID
		if id == "" {
			id = key
		}
		display := item.Name
		if display == "" {
			display = id
		}
		names[id] = display
	}

	log.Printf("Loaded %d champion names for version %s", len(names), version)
	c.names = names
	return copyNames(names), nil
}

// ChampionAbilities returns the abilities of a champion, using the cache when possible
func (c *Client) ChampionAbilities(ctx context.Context, name string) ([]Ability, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: champion name is empty", ErrMalformedData)
	}

	if cached, ok := c.champions.Get(name); ok {
		return copyAbilities(cached), nil
	}

	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}

	detailURL := fmt.Sprintf(ChampionDetailPathTemplate, c.baseURL, version, c.locale, url.PathEscape(name))
	body, err := c.get(ctx, detailURL, MaxDocumentBytes)
	if err != nil {
		return nil, fmt.Errorf("error fetching champion %s: %w", name, err)
	}

	abilities, err := parseChampionDetail(name, body)
	if err != nil {
		return nil, err
	}

	c.champions.Add(name, abilities)
	return copyAbilities(abilities), nil
}

// AbilityIcon returns the raw icon bytes of one ability
func (c *Client) AbilityIcon(ctx context.Context, name, abilityID string) ([]byte, error) {
	abilities, err := c.ChampionAbilities(ctx, name)
	if err != nil {
		return nil, err
	}

	var iconFile string
	for _, ability := range abilities {
		if ability.ID == abilityID {
			iconFile = ability.IconFile
			break
		}
	}
	if iconFile == "" {
		return nil, fmt.Errorf("%w: %s has no ability %s", ErrIconMissing, name, abilityID)
	}

	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}

	iconURL := fmt.Sprintf(SpellIconPathTemplate, c.baseURL, version, url.PathEscape(iconFile))
	if cached, ok := c.icons.Get(iconURL); ok {
		return cached, nil
	}

	data, err := c.get(ctx, iconURL, MaxIconBytes)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrIconMissing, iconFile, err)
		}
		return nil, fmt.Errorf("error fetching icon %s: %w", iconFile, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrIconMissing, iconFile)
	}

	c.icons.Add(iconURL, data)
	return data, nil
}

// get performs a GET with retry and backoff on transient failures
func (c *Client) get(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(c.backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrFetchFailed, ctx.Err())
			}

			log.Printf("Retrying GET %s, attempt %d", rawURL, attempt+1)
		}

		body, err := c.getOnce(ctx, rawURL, limit)
		if err == nil {
			return body, nil
		}

		lastErr = err
		log.Printf("GET attempt %d failed for %s: %v", attempt+1, rawURL, err)

		if !retryable(err) || ctx.Err() != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetchFailed, err)
	}
	return body, nil
}

// parseChampionDetail extracts abilities from a champion document
func parseChampionDetail(name string, body []byte) ([]Ability, error) {
	var resp championDetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: champion %s: %v", ErrMalformedData, name, err)
	}

	detail, ok := resp.Data[name]
	if !ok {
		if len(resp.Data) != 1 {
			return nil, fmt.Errorf("%w: champion %s not found in document", ErrMalformedData, name)
		}
		for _, only := range resp.Data {
			detail = only
		}
	}

	if len(detail.Spells) == 0 {
		return nil, fmt.Errorf("%w: champion %s has no spells", ErrMalformedData, name)
	}

	abilities := make([]Ability, 0, len(detail.Spells))
	for i, s := range detail.Spells {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: champion %s spell %d has no id", ErrMalformedData, name, i)
		}
		if len(s.Cooldown) == 0 {
			return nil, fmt.Errorf("%w: spell %s has no cooldown table", ErrMalformedData, s.ID)
		}
		for _, cd := range s.Cooldown {
			if cd < 0 {
				return nil, fmt.Errorf("%w: spell %s has a negative cooldown", ErrMalformedData, s.ID)
			}
		}

		iconFile := s.Image.Full
		if iconFile == "" {
			iconFile = s.ID + SpellIconExtension
		}

		abilities = append(abilities, Ability{
			ID:        s.ID,
			Name:      s.Name,
			IconFile:  iconFile,
			Cooldowns: append([]float64(nil), s.Cooldown...),
		})
	}
	return abilities, nil
}

func copyNames(names map[string]string) map[string]string {
	out := make(map[string]string, len(names))
	for id, display := range names {
		out[id] = display
	}
	return out
}

func copyAbilities(abilities []Ability) []Ability {
	out := make([]Ability, len(abilities))
	for i, a := range abilities {
		out[i] = a
		out[i].Cooldowns = append([]float64(nil), a.Cooldowns...)
	}
	return out
}
