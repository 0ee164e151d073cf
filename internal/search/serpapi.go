package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://serpapi.com"
	defaultEngine  = "amazon"

	// defaults used when the engine omits rating data
	defaultRating  = 4.5
	defaultReviews = 100

	placeholderImage = "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?w=400"
)

// SerpAPIClient resolves queries through the SerpAPI product-search service.
type SerpAPIClient struct {
	apiKey       string
	engine       string
	affiliateTag string
	baseURL      string
	httpClient   *http.Client
}

// Option configures a SerpAPIClient.
type Option func(*SerpAPIClient)

// WithBaseURL overrides the service endpoint (tests).
func WithBaseURL(u string) Option {
	return func(c *SerpAPIClient) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *SerpAPIClient) { c.httpClient = h }
}

func NewSerpAPIClient(apiKey, engine, affiliateTag string, opts ...Option) *SerpAPIClient {
	c := &SerpAPIClient{
		apiKey:       strings.TrimSpace(apiKey),
		engine:       strings.TrimSpace(engine),
		affiliateTag: strings.TrimSpace(affiliateTag),
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: 12 * time.Second},
	}
	if c.engine == "" {
		c.engine = defaultEngine
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether a credential is present.
func (c *SerpAPIClient) Configured() bool { return c.apiKey != "" }

// searchResponse covers the engine shapes we consume. The amazon engine
// returns "search_results", google_shopping returns "shopping_results".
type searchResponse struct {
	Error           string       `json:"error"`
	SearchResults   []searchItem `json:"search_results"`
	ShoppingResults []searchItem `json:"shopping_results"`
}

type searchItem struct {
	ProductID string          `json:"product_id"`
	ASIN      string          `json:"asin"`
	Title     string          `json:"title"`
	Link      string          `json:"link"`
	Price     json.RawMessage `json:"price"`
	RawPrice  string          `json:"raw_price"`
	Image     string          `json:"image"`
	Thumbnail string          `json:"thumbnail"`
	Rating    float64         `json:"rating"`
	Reviews   int             `json:"reviews_count"`
}

// Search resolves a query to the top product result. See ProductSearcher for
// the fallback contract.
func (c *SerpAPIClient) Search(ctx context.Context, query string) (*Product, error) {
	if !c.Configured() {
		return c.placeholder(query), nil
	}

	u := fmt.Sprintf("%s/search.json?engine=%s&q=%s&api_key=%s",
		c.baseURL, url.QueryEscape(c.engine), url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("search: build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("search: decode response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("search: service error: %s", body.Error)
	}

	items := body.SearchResults
	if len(items) == 0 {
		items = body.ShoppingResults
	}
	if len(items) == 0 {
		// The service answered but matched nothing.
		return c.placeholder(query), nil
	}
	return c.fromItem(query, items[0]), nil
}

func (c *SerpAPIClient) fromItem(query string, item searchItem) *Product {
	title := item.Title
	if title == "" {
		title = query
	}

	link := item.Link
	if link == "" {
		link = c.marketSearchURL(query)
	} else {
		link = AppendAffiliateTag(link, c.affiliateTag)
	}

	image := item.Image
	if image == "" {
		image = item.Thumbnail
	}

	rating := item.Rating
	if rating == 0 {
		rating = defaultRating
	}
	reviews := item.Reviews
	if reviews == 0 {
		reviews = defaultReviews
	}

	id := item.ProductID
	if id == "" {
		id = item.ASIN
	}

	return &Product{
		ID:       id,
		Title:    title,
		Price:    coalescePrice(item),
		ImageURL: image,
		Link:     link,
		Rating:   rating,
		Reviews:  reviews,
	}
}

// placeholder synthesizes a deterministic product for a query: title echoes
// the query and the link is a marketplace search carrying the affiliate tag.
func (c *SerpAPIClient) placeholder(query string) *Product {
	return &Product{
		Title:    query,
		Price:    PriceUnknown,
		ImageURL: placeholderImage,
		Link:     c.marketSearchURL(query),
		Rating:   defaultRating,
		Reviews:  defaultReviews,
	}
}

func (c *SerpAPIClient) marketSearchURL(query string) string {
	return AppendAffiliateTag("https://www.amazon.com/s?k="+url.QueryEscape(query), c.affiliateTag)
}

// AppendAffiliateTag adds the revenue-attribution tag as a query parameter,
// joining with "&" when the link already has a query string and "?" otherwise.
func AppendAffiliateTag(link, tag string) string {
	if tag == "" {
		return link
	}
	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}
	return link + sep + "tag=" + url.QueryEscape(tag)
}

// coalescePrice reduces the engine's heterogeneous price shapes to a display
// string: plain string, {raw, value} object, or a separate raw_price field.
func coalescePrice(item searchItem) string {
	if len(item.Price) > 0 {
		var s string
		if err := json.Unmarshal(item.Price, &s); err == nil && s != "" {
			return s
		}
		var obj struct {
			Raw   string  `json:"raw"`
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(item.Price, &obj); err == nil {
			if obj.Raw != "" {
				return obj.Raw
			}
			if obj.Value != 0 {
				return fmt.Sprintf("$%.2f", obj.Value)
			}
		}
	}
	if item.RawPrice != "" {
		return item.RawPrice
	}
	return PriceUnknown
}
