package enrich

import (
	"context"
	"fmt"
	"net/http"

	"deals_bot/internal/config"
	"deals_bot/internal/domain"
	"deals_bot/pkg/contextx"
	"deals_bot/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Thumbnail resolves an item id to its final image URL. The image service
// answers with a redirect chain; the URL after following it is the one the
// chat client can embed.
type Thumbnail struct {
	httpClient *http.Client
	baseURL    string
}

func NewThumbnail(cfg config.Enrich) *Thumbnail {
	return &Thumbnail{
		// Default client policy follows redirects, which is exactly what
		// the resolution relies on.
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.ThumbnailURL,
	}
}

func (t *Thumbnail) Resolve(ctx context.Context, itemID string) (string, error) {
	url := fmt.Sprintf("%s?assetId=%s&width=150&height=150&format=Png", t.baseURL, itemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(err, errcodes.ImageUnavailable, "thumbnail request failed")
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()

	logger(ctx).Debug("resolved thumbnail", "item-id", itemID, "url", final)

	return final, nil
}
