// Package gallery fetches the remote image listing and implements the
// dedupe/search/paginate passes behind the grid view.
package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"picshelf/internal/logging"
	"picshelf/internal/models"
)

// Service performs the outbound listing request. The endpoint is treated as
// an opaque read-only data source: one GET per load, no retry, no backoff.
type Service struct {
	client   *http.Client
	endpoint string
	page     int
	limit    int
	logger   logging.Logger
}

// NewService constructs a Service for the given listing endpoint. page and
// limit parameterize the single listing request (the reference behavior
// fetches one large page and filters client-side).
func NewService(endpoint string, page, limit int, logger logging.Logger) *Service {
	return &Service{
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: endpoint,
		page:     page,
		limit:    limit,
		logger:   logger,
	}
}

// Load issues the listing request and decodes the response. On any network
// or parse failure it logs the error and returns it; the caller is expected
// to leave the gallery empty rather than retry.
func (s *Service) Load(ctx context.Context) ([]models.Image, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid listing endpoint: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(s.page))
	q.Set("limit", strconv.Itoa(s.limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error(ctx, "listing request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("listing request failed: %s", resp.Status)
		s.logger.Error(ctx, "listing request failed", "status", resp.Status)
		return nil, err
	}

	var images []models.Image
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		s.logger.Error(ctx, "failed to decode listing response", "error", err)
		return nil, fmt.Errorf("failed to decode listing response: %w", err)
	}

	s.logger.Debug(ctx, "listing loaded", "count", len(images))
	return images, nil
}
