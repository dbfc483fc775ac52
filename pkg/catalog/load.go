package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Load reads the raw catalog text from path, which is either a local file
// or an http(s) URL, and parses it. On any transport or read failure no
// catalog is installed: the error is returned and the caller keeps
// whatever state it had.
func Load(ctx context.Context, path string) (*Catalog, []Warning, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil, fmt.Errorf("catalog: no catalog source configured")
	}
	raw, err := fetch(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	res := Parse(raw)
	return New(res.Records), res.Warnings, nil
}

func fetch(ctx context.Context, path string) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return "", err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("unexpected status %s", resp.Status)
		}
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
