package gemini

import (
	"context"
	"fmt"
	"github.com/google/generative-ai-go/genai"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"strings"
	"time"
)

const (
	DefaultModel = "gemini-1.5-flash"

	maxAttempts   = 3
	retryDelay    = 2 * time.Second
	jsonMIMEType  = "application/json"
	temperature   = float32(0.2)
	internalError = "Error 500"
)

type Client struct {
	client            *genai.Client
	model             *genai.GenerativeModel
	minuteRateLimiter *rate.Limiter
	dayRateLimiter    *rate.Limiter
}

// NewClient creates a client whose responses are requested as JSON documents.
func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {

	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	genModel := client.GenerativeModel(model)
	genModel.ResponseMIMEType = jsonMIMEType
	genModel.SetTemperature(temperature)

	return &Client{
		client: client,
		model:  genModel,
	}, nil
}

func (c *Client) SetMinuteRateLimit(maxRequestsPerMinute float32) {
	if maxRequestsPerMinute <= 0 {
		c.minuteRateLimiter = nil
		return
	}
	c.minuteRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerMinute/60), 1)
}

func (c *Client) SetDayRateLimit(maxRequestsPerDay float32) {
	if maxRequestsPerDay <= 0 {
		c.dayRateLimiter = nil
		return
	}
	c.dayRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerDay/86400), int(maxRequestsPerDay))
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateResponse retries only on internal server errors of the API.
func (c *Client) GenerateResponse(ctx context.Context, text string) (string, error) {

	var resp string
	var err error

	_, _, _ = lo.AttemptWhileWithDelay(maxAttempts, retryDelay, func(i int, _ time.Duration) (error, bool) {
		if i > 0 {
			log.Warn("gemini api returned 500 error, retrying...")
		}
		resp, err = c.waitAndGenerateResponse(ctx, text)
		return err, isInternalError(err)
	})

	return resp, err
}

func (c *Client) waitAndGenerateResponse(ctx context.Context, text string) (string, error) {

	for _, limiter := range []*rate.Limiter{c.minuteRateLimiter, c.dayRateLimiter} {
		if limiter == nil {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	return c.tryGenerateResponse(ctx, text)
}

func (c *Client) tryGenerateResponse(ctx context.Context, text string) (string, error) {

	response, err := c.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", err
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil ||
		len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("response part is not text")
	}
	return sb.String(), nil
}

func isInternalError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), internalError)
}
