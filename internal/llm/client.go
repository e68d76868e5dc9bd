package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/revu/internal/logger"
)

// maxErrBody bounds how much of a failed response body is carried in errors.
const maxErrBody = 500

// retryableStatus is the set of HTTP statuses treated as transient.
// Read-only for the process lifetime.
var retryableStatus = map[int]bool{
	http.StatusRequestTimeout:      true, // 408
	http.StatusConflict:            true, // 409
	http.StatusTooEarly:            true, // 425
	http.StatusTooManyRequests:     true, // 429
	http.StatusInternalServerError: true, // 500
	http.StatusBadGateway:          true, // 502
	http.StatusServiceUnavailable:  true, // 503
	http.StatusGatewayTimeout:      true, // 504
}

// Message is one role/content pair in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// RetryPolicy bounds the attempt loop for a single completion call.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// Options configures a Client.
type Options struct {
	BaseURL     string // endpoint base, without the /chat/completions suffix
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int // 0 means no max_tokens bound
	Timeout     time.Duration
	Retry       RetryPolicy
}

// Client performs chat-completion exchanges against an OpenAI-compatible
// endpoint with exponential-backoff retry on transient failure. It holds
// no per-call state and is safe for concurrent use.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	retry       RetryPolicy
	client      *http.Client
}

// New creates a Client. Zero-valued retry fields get conservative defaults.
func New(opts Options) *Client {
	retry := opts.Retry
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = 5
	}
	if retry.BaseBackoff <= 0 {
		retry.BaseBackoff = 1 * time.Second
	}
	if retry.MaxBackoff <= 0 {
		retry.MaxBackoff = 10 * time.Second
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		apiKey:      opts.APIKey,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		retry:       retry,
		client:      &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// StatusError reports a non-200 response from the completion endpoint.
type StatusError struct {
	Code int
	Body string // truncated to maxErrBody bytes
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion endpoint returned HTTP %d: %s", e.Code, e.Body)
}

// Retryable reports whether the status is in the transient set.
func (e *StatusError) Retryable() bool { return retryableStatus[e.Code] }

// attemptResult carries the data a retry decision needs: the outcome of
// one attempt, whether it may be retried, and any server-requested wait.
type attemptResult struct {
	text       string
	err        error
	transient  bool
	retryAfter time.Duration
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			// Content is decoded loosely: a missing or non-string value
			// is treated as empty output, not a failure.
			Content any `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (r completionResponse) text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	s, ok := r.Choices[0].Message.Content.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Complete sends the messages to the completion endpoint and returns the
// assistant text. Transient failures are retried up to the policy budget
// with exponential backoff and jitter; a Retry-After header on a transient
// status raises the computed wait. Any other failure is terminal.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	body := completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		logger.Info("requesting model review", "model", c.model, "attempt", attempt, "max_attempts", c.retry.MaxAttempts)

		res := c.attempt(ctx, payload)
		if res.err == nil {
			return res.text, nil
		}
		if !res.transient {
			return "", res.err
		}
		if attempt == c.retry.MaxAttempts {
			var se *StatusError
			if errors.As(res.err, &se) {
				return "", res.err
			}
			return "", fmt.Errorf("completion request failed after %d attempts: %w", attempt, res.err)
		}

		wait := c.backoff(attempt)
		if res.retryAfter > wait {
			wait = res.retryAfter
		}
		logger.Warn("transient completion failure, retrying", "error", res.err, "wait", wait)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}

	// Unreachable: the loop always returns on its final attempt.
	return "", fmt.Errorf("completion request failed after %d attempts", c.retry.MaxAttempts)
}

// attempt performs one request/response exchange.
func (c *Client) attempt(ctx context.Context, payload []byte) attemptResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return attemptResult{err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return attemptResult{err: fmt.Errorf("sending request: %w", err), transient: true}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return attemptResult{err: fmt.Errorf("reading response: %w", err), transient: true}
	}

	if resp.StatusCode == http.StatusOK {
		var parsed completionResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return attemptResult{err: fmt.Errorf("invalid JSON response: %s", truncate(respBody))}
		}
		text := parsed.text()
		if text == "" {
			logger.Debug("completion returned no assistant content", "model", c.model)
		}
		return attemptResult{text: text}
	}

	se := &StatusError{Code: resp.StatusCode, Body: truncate(respBody)}
	return attemptResult{
		err:        se,
		transient:  se.Retryable(),
		retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}
}

// backoff computes min(maxBackoff, base*2^(attempt-1)) scaled by a jitter
// drawn uniformly from [0.7, 1.3).
func (c *Client) backoff(attempt int) time.Duration {
	d := c.retry.BaseBackoff << uint(attempt-1)
	if d <= 0 || d > c.retry.MaxBackoff {
		d = c.retry.MaxBackoff
	}
	jitter := 0.7 + 0.6*rand.Float64()
	return time.Duration(float64(d) * jitter)
}

// parseRetryAfter reads a numeric Retry-After value in seconds. HTTP-date
// values and garbage are ignored.
func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

func truncate(b []byte) string {
	if len(b) > maxErrBody {
		b = b[:maxErrBody]
	}
	return string(b)
}
