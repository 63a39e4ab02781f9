package enrich

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"deals_bot/internal/config"
	"deals_bot/internal/domain"
	"deals_bot/internal/domain/entity"
	"deals_bot/pkg/errcodes"
)

// priceElementClass marks the displayed-price span on the storefront page.
const priceElementClass = "text-robux-lg"

// Storefront decides whether an item still sits on the shelf by scraping its
// public catalog page: a displayed price above the reference threshold means
// the original listing is gone and a reseller took over, i.e. still
// available. The markup and the threshold are both out of our control, so
// every failure mode degrades to AvailabilityUnknown.
type Storefront struct {
	httpClient     *http.Client
	baseURL        string
	referencePrice int64
}

func NewStorefront(cfg config.Enrich) *Storefront {
	return &Storefront{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        strings.TrimRight(cfg.StorefrontURL, "/"),
		referencePrice: cfg.ReferencePrice,
	}
}

// Availability fetches the item page and classifies it. A transport error is
// returned alongside AvailabilityUnknown; a page without a readable price
// element is not an error, only unknown.
func (s *Storefront) Availability(ctx context.Context, itemID string) (entity.Availability, error) {
	url := fmt.Sprintf("%s/%s/", s.baseURL, itemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return entity.AvailabilityUnknown, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return entity.AvailabilityUnknown, domain.WrapError(err, errcodes.StorefrontUnavailable, "storefront request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.AvailabilityUnknown, domain.NewError(
			errcodes.StorefrontUnavailable,
			fmt.Sprintf("storefront returned status %d", resp.StatusCode),
		)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return entity.AvailabilityUnknown, domain.WrapError(err, errcodes.StorefrontUnavailable, "storefront page parse failed")
	}

	priceText, found := findPriceText(doc)
	if !found {
		logger(ctx).Warn("price element not found on storefront page", "item-id", itemID)
		return entity.AvailabilityUnknown, nil
	}

	price, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(priceText), ",", ""), 10, 64)
	if err != nil {
		logger(ctx).Warn("unparseable storefront price", "item-id", itemID, "text", priceText)
		return entity.AvailabilityUnknown, nil
	}

	if price > s.referencePrice {
		return entity.AvailabilityAvailable, nil
	}

	return entity.AvailabilitySold, nil
}

// findPriceText walks the parsed document for the first span carrying the
// price class and returns its concatenated text.
func findPriceText(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "span" {
		for _, attr := range n.Attr {
			if attr.Key == "class" && strings.Contains(attr.Val, priceElementClass) {
				return textContent(n), true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text, found := findPriceText(c); found {
			return text, true
		}
	}

	return "", false
}

func textContent(n *html.Node) string {
	var sb strings.Builder

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		} else {
			sb.WriteString(textContent(c))
		}
	}

	return sb.String()
}
