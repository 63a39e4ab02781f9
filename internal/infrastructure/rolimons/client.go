package rolimons

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"deals_bot/internal/config"
	"deals_bot/internal/domain"
	"deals_bot/internal/domain/entity"
	"deals_bot/pkg/contextx"
	"deals_bot/pkg/errcodes"
	"deals_bot/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Market payloads run to a few MB; keep the dumped bodies in logs short.
const logFieldMaxLen = 512

// Client reads the two public market datasets: the recent deal-activity feed
// and the item catalog. Stateless; both reads are a single GET with no retry,
// the caller's cadence is the backoff.
type Client struct {
	httpClient  *http.Client
	activityURL string
	itemsURL    string
}

func NewClient(cfg config.Market) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithLogFieldMaxLen(logFieldMaxLen),
			),
		},
		activityURL: cfg.ActivityURL,
		itemsURL:    cfg.ItemDetailsURL,
	}
}

type activityEnvelope struct {
	Activities []entity.Activity `json:"activities"`
}

// DealActivity fetches the recent-trade feed.
func (c *Client) DealActivity(ctx context.Context) ([]entity.Activity, error) {
	var envelope activityEnvelope
	if err := c.get(ctx, c.activityURL, &envelope); err != nil {
		return nil, err
	}

	if envelope.Activities == nil {
		return nil, domain.NewError(errcodes.MarketMalformed, "activity envelope missing activities key")
	}

	logger(ctx).Debug("fetched deal activity", "count", len(envelope.Activities))

	return envelope.Activities, nil
}

type itemsEnvelope struct {
	Items map[string]entity.ItemDetails `json:"items"`
}

// ItemDetails fetches the catalog, keyed by item id.
func (c *Client) ItemDetails(ctx context.Context) (map[string]entity.ItemDetails, error) {
	var envelope itemsEnvelope
	if err := c.get(ctx, c.itemsURL, &envelope); err != nil {
		return nil, err
	}

	if envelope.Items == nil {
		return nil, domain.NewError(errcodes.MarketMalformed, "items envelope missing items key")
	}

	logger(ctx).Debug("fetched item details", "count", len(envelope.Items))

	return envelope.Items, nil
}

func (c *Client) get(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(err, errcodes.MarketUnavailable, "market request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NewError(errcodes.MarketUnavailable, fmt.Sprintf("market returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.WrapError(err, errcodes.MarketMalformed, "market payload decode failed")
	}

	return nil
}
