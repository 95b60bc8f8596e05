package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/Thenafi/chatwithproperties/internal/config"
)

// Pagination defaults applied when the caller passes zero values.
const (
	DefaultPage    = 1
	DefaultPerPage = 25
)

// includeParam requests the expanded property payload. The source had
// variants with and without it; the feature-complete one sends it on both
// endpoints, so that is the canonical behavior here.
const includeParam = "listings,details"

// Client is a thin pipe to the property-management API. It translates
// transport and HTTP-status failures into the Error taxonomy and otherwise
// passes payloads through unmodified. No retries, no caching, no pagination
// aggregation.
type Client struct {
	runtime    config.RuntimeConfig
	httpClient *http.Client
}

// NewClient creates a client reading base URL and bearer token live from the
// runtime config, so rotated credentials apply without restart.
func NewClient(runtime config.RuntimeConfig) *Client {
	timeout := time.Duration(0)
	if cfg := runtime.Get(); cfg != nil {
		timeout = cfg.Upstream.GetTimeoutOption().OrElse(0)
	}

	return &Client{
		runtime: runtime,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListProperties fetches one page of properties. Zero page/perPage fall back
// to the defaults. The returned bytes are the upstream JSON verbatim.
func (c *Client) ListProperties(ctx context.Context, page, perPage int) ([]byte, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("include", includeParam)

	body, err := c.get(ctx, "/properties", query, false)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("page", page).
		Int64("properties", gjson.GetBytes(body, "data.#").Int()).
		Msg("listed properties")

	return body, nil
}

// GetProperty fetches a single property by ID. The returned bytes are the
// upstream JSON verbatim.
func (c *Client) GetProperty(ctx context.Context, id string) ([]byte, error) {
	query := url.Values{}
	query.Set("include", includeParam)

	body, err := c.get(ctx, "/properties/"+url.PathEscape(id), query, true)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("property_id", id).
		Msg("fetched property details")

	return body, nil
}

// get issues a single authenticated GET and maps failures into the taxonomy.
// A missing bearer token fails before any connection is attempted.
func (c *Client) get(ctx context.Context, path string, query url.Values, detailsEndpoint bool) ([]byte, error) {
	cfg := c.runtime.Get()
	if cfg == nil || !cfg.Upstream.HasToken() {
		return nil, newError(KindTokenMissing, 0, "")
	}

	endpoint := cfg.Upstream.BaseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Upstream.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// DNS, connection, and timeout failures all land here
		return nil, newError(KindNetwork, 0, err.Error())
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			zerolog.Ctx(ctx).Warn().Err(cerr).Msg("failed to close upstream response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		mapped := mapStatus(resp.StatusCode, detailsEndpoint)
		zerolog.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Str("kind", string(mapped.Kind)).
			Str("path", path).
			Msg("upstream call failed")
		return nil, mapped
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindNetwork, 0, err.Error())
	}

	return body, nil
}
