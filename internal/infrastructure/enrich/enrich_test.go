package enrich_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deals_bot/internal/config"
	"deals_bot/internal/domain/entity"
	"deals_bot/internal/infrastructure/enrich"
)

func enrichConfig(baseURL string) config.Enrich {
	return config.Enrich{
		ThumbnailURL:   baseURL + "/images",
		StorefrontURL:  baseURL + "/catalog",
		Timeout:        5 * time.Second,
		ReferencePrice: 3600,
	}
}

func TestThumbnailResolveFollowsRedirects(t *testing.T) {
	rq := require.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/images", func(w http.ResponseWriter, r *http.Request) {
		rq.Equal(http.MethodHead, r.Method)
		rq.Equal("100", r.URL.Query().Get("assetId"))
		http.Redirect(w, r, "/cdn/100.png", http.StatusFound)
	})
	mux.HandleFunc("/cdn/100.png", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	thumbnail := enrich.NewThumbnail(enrichConfig(server.URL))

	url, err := thumbnail.Resolve(context.Background(), "100")
	rq.NoError(err)
	rq.Equal(server.URL+"/cdn/100.png", url)
}

func TestThumbnailResolveUnreachable(t *testing.T) {
	rq := require.New(t)

	cfg := enrichConfig("http://127.0.0.1:1")
	thumbnail := enrich.NewThumbnail(cfg)

	_, err := thumbnail.Resolve(context.Background(), "100")
	rq.Error(err)
}

func storefrontPage(price string) string {
	return fmt.Sprintf(
		`<html><body><div class="item-card"><span class="text-robux-lg">%s</span></div></body></html>`,
		price,
	)
}

func TestStorefrontAvailability(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		status  int
		want    entity.Availability
		wantErr bool
	}{
		{
			name:   "Price above reference means available",
			body:   storefrontPage("4,500"),
			status: http.StatusOK,
			want:   entity.AvailabilityAvailable,
		},
		{
			name:   "Price at reference means sold",
			body:   storefrontPage("3,600"),
			status: http.StatusOK,
			want:   entity.AvailabilitySold,
		},
		{
			name:   "Price below reference means sold",
			body:   storefrontPage("120"),
			status: http.StatusOK,
			want:   entity.AvailabilitySold,
		},
		{
			name:   "Missing price element is unknown",
			body:   `<html><body><div class="item-card">no price here</div></body></html>`,
			status: http.StatusOK,
			want:   entity.AvailabilityUnknown,
		},
		{
			name:   "Unparseable price is unknown",
			body:   storefrontPage("Free"),
			status: http.StatusOK,
			want:   entity.AvailabilityUnknown,
		},
		{
			name:    "Non-200 status is unknown with error",
			body:    "",
			status:  http.StatusTooManyRequests,
			want:    entity.AvailabilityUnknown,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				rq.Equal("/catalog/100/", r.URL.Path)
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			t.Cleanup(server.Close)

			storefront := enrich.NewStorefront(enrichConfig(server.URL))

			got, err := storefront.Availability(context.Background(), "100")
			if tc.wantErr {
				rq.Error(err)
			} else {
				rq.NoError(err)
			}

			rq.Equal(tc.want, got)
		})
	}
}

func TestStorefrontNestedPriceMarkup(t *testing.T) {
	rq := require.New(t)

	body := `<html><body><div><span class="icon-robux-price-container">
		<span class="text-robux-lg wait-for-i18n-format-render">10,500</span>
	</span></div></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	storefront := enrich.NewStorefront(enrichConfig(server.URL))

	got, err := storefront.Availability(context.Background(), "100")
	rq.NoError(err)
	rq.Equal(entity.AvailabilityAvailable, got)
}
