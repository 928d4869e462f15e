package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	chaterrors "go-payroll/internal/chat/errors"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.sarvam.ai"
	defaultModel   = "sarvam-m"
)

type sarvamClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSarvamClient builds the HTTP completion client. An empty apiKey is
// allowed at construction time; calls fail with a configuration error so the
// rest of the app keeps working without a key.
func NewSarvamClient(baseURL, apiKey string) Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &sarvamClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.L().Named("chat.sarvam"),
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *sarvamClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", chaterrors.ErrNotConfigured
	}

	payload, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-subscription-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("completion request failed", zap.Error(err))
		return "", chaterrors.ErrUpstreamFailed.Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", chaterrors.ErrUpstreamFailed.Wrap(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("completion upstream error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", chaterrors.ErrUpstreamFailed.Wrap(fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", chaterrors.ErrUpstreamFailed.Wrap(err)
	}
	if len(parsed.Choices) == 0 {
		return "", chaterrors.ErrUpstreamFailed.Wrap(fmt.Errorf("empty choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}
