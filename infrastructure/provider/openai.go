package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jobpilot/jobpilot/domain/session"
	"github.com/jobpilot/jobpilot/internal/config"
)

const extractionPrompt = `You extract structured career data from resumes.
Respond with a JSON object with exactly these keys:
  "skills": array of technical skill strings,
  "seniority": one of "junior", "mid", "senior", "staff", "principal",
  "domains": array of industry domain strings,
  "experience": total years of experience as an integer.
Return JSON only, no prose.`

// OpenAIExtractor extracts skills from resume text via an OpenAI
// compatible chat completion endpoint.
type OpenAIExtractor struct {
	client       *openai.Client
	model        string
	maxRetries   int
	initialDelay time.Duration
}

// NewOpenAIExtractor creates an extractor from endpoint configuration.
func NewOpenAIExtractor(endpoint config.Endpoint) *OpenAIExtractor {
	cfg := openai.DefaultConfig(endpoint.APIKey())
	if endpoint.BaseURL() != "" {
		cfg.BaseURL = endpoint.BaseURL()
	}
	if endpoint.Timeout() > 0 {
		cfg.HTTPClient = &http.Client{Timeout: endpoint.Timeout()}
	}

	maxRetries := endpoint.MaxRetries()
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &OpenAIExtractor{
		client:       openai.NewClientWithConfig(cfg),
		model:        endpoint.Model(),
		maxRetries:   maxRetries,
		initialDelay: 2 * time.Second,
	}
}

// Extract sends the resume to the chat endpoint and parses the JSON
// response into a structured extraction.
func (p *OpenAIExtractor) Extract(ctx context.Context, resumeText string) (session.Extraction, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionPrompt},
			{Role: openai.ChatMessageRoleUser, Content: resumeText},
		},
	}

	var resp openai.ChatCompletionResponse
	err := p.withRetry(ctx, func() error {
		var callErr error
		resp, callErr = p.client.CreateChatCompletion(ctx, req)
		return callErr
	})
	if err != nil {
		return session.Extraction{}, p.wrapError("skill_extraction", err)
	}

	if len(resp.Choices) == 0 {
		return session.Extraction{}, NewProviderError("skill_extraction", 0, "no choices in response", ErrNoExtraction)
	}

	var extracted session.Extraction
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &extracted); err != nil {
		return session.Extraction{}, NewProviderError("skill_extraction", 0, "malformed extraction JSON", err)
	}
	return extracted, nil
}

// withRetry executes fn with exponential backoff.
func (p *OpenAIExtractor) withRetry(ctx context.Context, fn func() error) error {
	delay := p.initialDelay
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}

		if attempt < p.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	var reqErr *openai.RequestError
	return errors.As(err, &reqErr)
}

func (p *OpenAIExtractor) wrapError(operation string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return NewProviderError(operation, apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return NewProviderError(operation, reqErr.HTTPStatusCode, reqErr.Error(), err)
	}

	return NewProviderError(operation, 0, err.Error(), err)
}
