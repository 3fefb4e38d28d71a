// Package network is the game's client for the scoring service.
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/rs/zerolog/log"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("scoring service returned status %d", e.Code)
	}
	return fmt.Sprintf("scoring service returned status %d: %s", e.Code, e.Body)
}

// Client talks to the scoring service over JSON/HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxBody    int64
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: time.Duration(cfg.Network.SubmitTimeout * float64(time.Second))},
		maxBody:    cfg.Network.MaxResponseLen,
	}
}

// SubmitRun posts a finished run to /runs/submit and returns the
// authoritative score.
func (c *Client) SubmitRun(ctx context.Context, sub messages.RunSubmission) (*messages.SubmitResult, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encode run: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/runs/submit", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result messages.SubmitResult
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("submit run: %w", err)
	}

	log.Debug().
		Str("song", sub.Run.SongKey).
		Str("part", sub.Run.PartKey).
		Int("events", len(sub.Run.Events)).
		Int("score", result.Score).
		Msg("run accepted by scoring service")
	return &result, nil
}

// Leaderboard fetches the service's ranking for a song part. Ranking is the
// service's business; entries are returned as sent.
func (c *Client) Leaderboard(ctx context.Context, songKey, partKey string) ([]messages.LeaderboardEntry, error) {
	q := url.Values{}
	q.Set("song", songKey)
	q.Set("part", partKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/leaderboard?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build leaderboard request: %w", err)
	}

	var entries []messages.LeaderboardEntry
	if err := c.do(req, &entries); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return entries, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, c.maxBody)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
