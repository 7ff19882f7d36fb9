package moxfield

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"mtg-utils/core/cardlist"
	"mtg-utils/core/reconcile"

	"golang.org/x/time/rate"
)

const (
	rateLimitDelay = 250 * time.Millisecond
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 16 * time.Second
)

// StatusError is returned for responses that are neither 2xx nor retried away.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("moxfield: %s returned HTTP %d", e.URL, e.StatusCode)
}

// Client is a Moxfield API client with rate limiting and retries.
type Client struct {
	baseURL     string
	pageSize    int
	userAgent   string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	backoff     time.Duration
}

// NewClient creates a new Moxfield API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "mtg-utils/1.0"
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		pageSize:    pageSize,
		userAgent:   userAgent,
		httpClient:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		backoff:     initialBackoff,
	}
}

// FetchDeck returns the mainboard of a deck sorted by its "<qty> <name>" line,
// with each commander placed first at quantity 1.
func (c *Client) FetchDeck(ctx context.Context, deckID string) (cardlist.List, error) {
	endpoint := fmt.Sprintf("%s/v3/decks/all/%s", c.baseURL, url.PathEscape(deckID))

	var deck deckResponse
	if err := c.doRequest(ctx, endpoint, &deck); err != nil {
		return nil, fmt.Errorf("failed to get deck %s: %w", deckID, err)
	}

	mainboard := make(cardlist.List, 0, len(deck.Boards.Mainboard.Cards))
	for _, card := range deck.Boards.Mainboard.Cards {
		mainboard = append(mainboard, cardlist.Entry{Quantity: card.Quantity, Name: card.Card.Name})
	}
	sort.Slice(mainboard, func(i, j int) bool {
		return mainboard[i].String() < mainboard[j].String()
	})

	commanders := make([]string, 0, len(deck.Boards.Commanders.Cards))
	for _, card := range deck.Boards.Commanders.Cards {
		commanders = append(commanders, card.Card.Name)
	}
	sort.Strings(commanders)

	list := make(cardlist.List, 0, len(commanders)+len(mainboard))
	for _, name := range commanders {
		list = append(list, cardlist.Entry{Quantity: 1, Name: name})
	}
	return append(list, mainboard...), nil
}

// FetchBinder returns every card of a trade binder, quantities summed by name,
// in library order (snow-covered basics last).
func (c *Client) FetchBinder(ctx context.Context, binderID string) (cardlist.List, error) {
	totals := make(reconcile.QuantityMap)

	for page, totalPages := 1, 1; page <= totalPages; page++ {
		endpoint := fmt.Sprintf("%s/v1/trade-binders/%s/search?pageNumber=%d&pageSize=%d",
			c.baseURL, url.PathEscape(binderID), page, c.pageSize)

		var result binderPage
		if err := c.doRequest(ctx, endpoint, &result); err != nil {
			return nil, fmt.Errorf("failed to get binder %s page %d: %w", binderID, page, err)
		}
		if page == 1 {
			totalPages = result.TotalPages
		}

		for _, card := range result.Data {
			totals.Add(card.Card.Name, card.Quantity)
		}
	}

	return cardlist.FromMap(totals.Normalize(), cardlist.LibraryOrder), nil
}

// doRequest performs a GET request with rate limiting and retry logic.
func (c *Client) doRequest(ctx context.Context, endpoint string, result any) error {
	var lastErr error
	backoff := c.backoff

	var wait time.Duration

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if wait <= 0 {
				wait = backoff
				backoff = min(backoff*2, maxBackoff)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		retryAfter, retry, err := c.do(ctx, endpoint, result)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
		wait = retryAfter
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// do executes one attempt and reports whether a failure is worth retrying.
// retryAfter carries the server's Retry-After hint for rate limited responses.
func (c *Client) do(ctx context.Context, endpoint string, result any) (retryAfter time.Duration, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, ctx.Err() == nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return 0, true, fmt.Errorf("failed to read response body: %w", err)
		}
		if err := json.Unmarshal(body, result); err != nil {
			return 0, false, fmt.Errorf("failed to parse JSON response: %w", err)
		}
		return 0, false, nil

	case resp.StatusCode == http.StatusTooManyRequests:
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
			retryAfter = min(time.Duration(secs)*time.Second, maxBackoff)
		}
		return retryAfter, true, &StatusError{StatusCode: resp.StatusCode, URL: endpoint}

	case resp.StatusCode >= http.StatusInternalServerError:
		return 0, true, &StatusError{StatusCode: resp.StatusCode, URL: endpoint}

	default:
		return 0, false, &StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}
}
