package stygen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MetadataURL is the canonical location of the Font Awesome icon metadata.
const MetadataURL = "https://github.com/FortAwesome/Font-Awesome/raw/master/metadata/icons.yml"

// httpClient is shared by all fetches. The client timeout is a hard ceiling;
// callers bound individual requests through their context.
var httpClient = &http.Client{Timeout: 5 * time.Minute}

// FetchMetadata downloads the icon metadata from the given URL.
func FetchMetadata(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building metadata request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading metadata body: %w", err)
	}

	return data, nil
}
