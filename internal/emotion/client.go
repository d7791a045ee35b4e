package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// Client calls an external emotion-detection service. The coaching core
// never talks to it directly; callers feed its dominant-emotion label
// into the suggester as an optional input.
type Client struct {
	url  string
	http *http.Client
	log  *logrus.Entry
}

// Score is one labelled emotion with its strength
type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Result is the service response for one utterance
type Result struct {
	Emotions        []Score `json:"emotions"`
	DominantEmotion string  `json:"dominant_emotion"`
}

type request struct {
	Text string `json:"text"`
}

// NewClient creates a client for the service at url
func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  logrus.WithField("component", "emotion-client"),
	}
}

// Detect posts text to the service and returns its emotion labels,
// retrying transient failures with exponential backoff. Client errors
// (4xx) are permanent and not retried.
func (c *Client) Detect(ctx context.Context, text string) (*Result, error) {
	payload, err := json.Marshal(request{Text: text})
	if err != nil {
		return nil, fmt.Errorf("emotion encode: %w", err)
	}

	var out Result
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/detect", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.WithError(err).Warn("emotion request failed")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			err := fmt.Errorf("emotion %s: %s", resp.Status, string(body))
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return backoff.Permanent(fmt.Errorf("emotion decode: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"dominant": out.DominantEmotion,
		"labels":   len(out.Emotions),
	}).Debug("emotion detected")
	return &out, nil
}
