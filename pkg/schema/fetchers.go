package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Fetcher retrieves a schema document by identifier from its authoritative
// source. Implementations own any transport concerns (timeouts, retries);
// callers perform a single Fetch per acquisition attempt.
type Fetcher interface {
	Fetch(ctx context.Context, identifier string) (map[string]interface{}, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, identifier string) (map[string]interface{}, error)

func (f FetcherFunc) Fetch(ctx context.Context, identifier string) (map[string]interface{}, error) {
	return f(ctx, identifier)
}

// HTTPFetcher downloads schema documents over HTTP(S). Transient transport
// failures are retried with exponential backoff before giving up; a non-2xx
// response or an undecodable body is a FetchError.
type HTTPFetcher struct {
	client *retryablehttp.Client
}

// NewHTTPFetcher creates an HTTPFetcher with a conservative retry policy.
func NewHTTPFetcher() *HTTPFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil
	return &HTTPFetcher{client: client}
}

// Fetch downloads the schema document at the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, identifier string) (map[string]interface{}, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, identifier, nil)
	if err != nil {
		return nil, &FetchError{Identifier: identifier, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Identifier: identifier, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{
			Identifier: identifier,
			Err:        fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Identifier: identifier, Err: err}
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(body, &schema); err != nil {
		return nil, &FetchError{Identifier: identifier, Err: err}
	}
	return schema, nil
}
