package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/bookstrack/contracts/internal/schema"
)

// maxModuleSize caps the body read from a remote module
const maxModuleSize = 8 << 20

// HTTP fetches schema modules over HTTP(S). Network errors and 5xx
// responses are retried with exponential backoff; other statuses fail
// immediately.
type HTTP struct {
	Client *http.Client
	// Retries after the first attempt; zero disables retrying
	Retries uint64
	// RetryWait is the initial backoff interval, 200ms when unset
	RetryWait time.Duration
}

// Load fetches the module at location and decodes it by extension
func (h *HTTP) Load(ctx context.Context, location string) (*schema.Module, error) {
	if strings.EqualFold(path.Ext(stripQuery(location)), ".go") {
		return nil, loadErr(location, ErrRemoteGo)
	}

	var data []byte
	err := backoff.Retry(func() error {
		var err error
		data, err = h.fetch(ctx, location)
		return err
	}, h.retryPolicy(ctx))
	if err != nil {
		return nil, loadErr(location, err)
	}
	mod, err := decodeByExtension(location, data)
	if err != nil {
		return nil, loadErr(location, err)
	}
	return mod, nil
}

func (h *HTTP) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create HTTP request: %w", err))
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from HTTP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxModuleSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxModuleSize {
		return nil, backoff.Permanent(fmt.Errorf("module larger than %d bytes", maxModuleSize))
	}
	return data, nil
}

func (h *HTTP) retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	if h.RetryWait > 0 {
		b.InitialInterval = h.RetryWait
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, h.Retries), ctx)
}
