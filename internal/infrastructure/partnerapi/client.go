// Package partnerapi is the HTTP client for the external subscriber API.
// Both endpoints are plain GETs authenticated by partner headers; response
// bodies are loosely typed and absorbed downstream by the datausage parser.
package partnerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/domain/subscriber"
	"github.com/roamstone/esim-portal/internal/core/ports"
)

type ClientConfig struct {
	BaseURL     string
	PartnerName string
	PartnerKey  string
	Timeout     time.Duration
}

// Client implements ports.PartnerClient.
type Client struct {
	config *ClientConfig
	http   *http.Client
	logger *logrus.Logger
}

func NewClient(config *ClientConfig, logger *logrus.Logger) ports.PartnerClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := strings.TrimSuffix(c.config.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build partner request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Partner-Name", c.config.PartnerName)
	req.Header.Set("X-Partner-Key", c.config.PartnerKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("partner request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read partner response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("partner API returned status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode partner response: %w", err)
	}
	return nil
}

// EsimStatus fetches the package/usage list for a subscriber.
func (c *Client) EsimStatus(ctx context.Context, subscriberID string) ([]subscriber.PartnerPackage, error) {
	query := url.Values{"id": {subscriberID}}
	var packages []subscriber.PartnerPackage
	if err := c.get(ctx, "/esim-status", query, &packages); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("subscriber_id", subscriberID).Warn("esim-status call failed")
		}
		return nil, err
	}
	return packages, nil
}

// SubscriberDetails fetches subscriber details, including the ICCID.
func (c *Client) SubscriberDetails(ctx context.Context, subscriberID string) (*subscriber.Details, error) {
	query := url.Values{"subscriber_id": {subscriberID}}
	var details subscriber.Details
	if err := c.get(ctx, "/subscriber", query, &details); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("subscriber_id", subscriberID).Warn("subscriber call failed")
		}
		return nil, err
	}
	return &details, nil
}
