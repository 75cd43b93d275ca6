package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type addRequest struct {
	URL string `json:"url"`
}

type record struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Options struct {
	BaseURL            string
	Count              int
	Workers            int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Run creates Count ungrouped videos through POST /urls and returns their
// public ids in creation order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d videos (workers: %d)...\n", opts.Count, numWorkers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	ids := make([]string, opts.Count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for i := range opts.Count {
		g.Go(func() error {
			id, err := addVideo(gctx, client, opts.BaseURL, fmt.Sprintf("https://youtu.be/seed%07d", i), opts.BypassSecret)
			if err != nil {
				return fmt.Errorf("failed to seed video %d: %w", i, err)
			}
			ids[i] = id
			if done := progress.Add(1); done%500 == 0 || int(done) == opts.Count {
				fmt.Printf("\rProgress: %d/%d", done, opts.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d videos\n", len(ids))
	return ids, nil
}

func addVideo(ctx context.Context, client *http.Client, baseURL, location, bypassSecret string) (string, error) {
	body, err := json.Marshal(addRequest{URL: location})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/urls", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var rec record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}
