package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
	"go.uber.org/zap"
)

const maxVersionResponseBytes = 1 << 16

// DefaultVersion is used when the gateway cannot report the latest one.
var DefaultVersion = domain.ProtocolVersion{2, 3000, 1015901307}

type VersionClient struct {
	URL            string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Fallback       domain.ProtocolVersion
	Logger         *zap.Logger
}

var _ ports.VersionSource = (*VersionClient)(nil)

type versionResponse struct {
	Version []int `json:"version"`
}

// LatestVersion asks the gateway for the current protocol version. Any
// failure other than cancellation falls back to the bundled version.
func (c *VersionClient) LatestVersion(ctx context.Context) (domain.ProtocolVersion, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProtocolVersion{}, err
	}

	version, err := c.fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return domain.ProtocolVersion{}, ctx.Err()
		}
		fallback := c.fallback()
		c.logger().Warn("fetch latest protocol version failed, using bundled version",
			zap.Ints("version", fallback[:]),
			zap.Error(err))
		return fallback, nil
	}

	c.logger().Debug("protocol version fetched", zap.Ints("version", version[:]))
	return version, nil
}

func (c *VersionClient) fetch(ctx context.Context) (domain.ProtocolVersion, error) {
	if c.URL == "" {
		return domain.ProtocolVersion{}, errors.New("version url is empty")
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, c.URL, nil)
	if err != nil {
		return domain.ProtocolVersion{}, fmt.Errorf("create version request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.ProtocolVersion{}, fmt.Errorf("request version: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.ProtocolVersion{}, fmt.Errorf("request version: unexpected status %d", resp.StatusCode)
	}

	var payload versionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxVersionResponseBytes)).Decode(&payload); err != nil {
		return domain.ProtocolVersion{}, fmt.Errorf("decode version response: %w", err)
	}
	if len(payload.Version) != 3 {
		return domain.ProtocolVersion{}, fmt.Errorf("version response has %d parts, want 3", len(payload.Version))
	}

	return domain.ProtocolVersion{payload.Version[0], payload.Version[1], payload.Version[2]}, nil
}

func (c *VersionClient) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.RequestTimeout)
}

func (c *VersionClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *VersionClient) fallback() domain.ProtocolVersion {
	if c.Fallback == (domain.ProtocolVersion{}) {
		return DefaultVersion
	}
	return c.Fallback
}

func (c *VersionClient) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
