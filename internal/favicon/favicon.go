// Package favicon decorates links with a best-effort icon URL resolved
// from the link's host. Resolution is fire-and-forget: a failure changes
// nothing in the data model.
package favicon

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Aakash17x08/linkhive/internal/logger"
	"github.com/Aakash17x08/linkhive/internal/utils"
)

// iconEndpoint is the favicon service, keyed by the link's domain.
const iconEndpoint = "https://www.google.com/s2/favicons?domain=%s&sz=64"

// LinkDecorator is the single hive operation the resolver needs.
type LinkDecorator interface {
	SetLinkFavicon(ctx context.Context, sectionID, linkID, faviconURL string) error
}

// Resolver probes the favicon service and stores successful resolutions
// on the owning link.
type Resolver struct {
	hive    LinkDecorator
	client  *http.Client
	logger  logger.Logger
	timeout time.Duration
}

// New creates a resolver with its own HTTP client.
func New(hive LinkDecorator, log logger.Logger, timeout time.Duration) *Resolver {
	return &Resolver{
		hive:    hive,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
		timeout: timeout,
	}
}

// IconURL derives the favicon service URL for a link's address.
func IconURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse link url: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("link url has no host: %s", rawURL)
	}
	return fmt.Sprintf(iconEndpoint, host), nil
}

// Decorate resolves the favicon for a link in the background. It never
// blocks the caller and never reports an error: a dead service, a bad
// host, or a link deleted in the meantime all end the same way, with the
// link left undecorated.
func (r *Resolver) Decorate(sectionID, linkID, rawURL string) {
	iconURL, err := IconURL(rawURL)
	if err != nil {
		r.logger.Debug("favicon resolution skipped",
			logger.String("link_id", linkID),
			logger.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if !r.probe(ctx, iconURL) {
			return
		}

		if err := r.hive.SetLinkFavicon(ctx, sectionID, linkID, iconURL); err != nil {
			r.logger.Debug("favicon discarded, link is gone",
				logger.String("link_id", linkID))
		}
	}()
}

// probe checks that the favicon service answers for this host.
func (r *Resolver) probe(ctx context.Context, iconURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("favicon probe failed",
			logger.String("url", iconURL),
			logger.Error(err))
		return false
	}
	defer utils.Close(resp.Body)

	return resp.StatusCode == http.StatusOK
}
