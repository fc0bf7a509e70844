package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"datachat/cache"
	"datachat/dataset"
	"datachat/models"
)

type AIService struct {
	apiKey             string
	modelName          string
	cache              *cache.Cache
	httpClient         *http.Client
	apiURL             string
	lastRequestTime    time.Time     // Track last request time for rate limiting
	requestMutex       sync.Mutex    // Mutex to protect lastRequestTime
	minRequestInterval time.Duration // Minimum time between requests
}

type DashScopeRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []DashScopeMessage `json:"messages"`
	} `json:"input"`
}

type DashScopeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type DashScopeResponse struct {
	Output struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

func New(apiKey string, modelName string, cache *cache.Cache) (*AIService, error) {
	return &AIService{
		apiKey:    apiKey,
		modelName: modelName,
		cache:     cache,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		apiURL:             "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation",
		lastRequestTime:    time.Time{},
		minRequestInterval: 500 * time.Millisecond, // Minimum 500ms between requests
	}, nil
}

func (a *AIService) Close() error {
	// HTTP client doesn't require explicit closing
	return nil
}

// rateLimit ensures minimum time between requests to prevent burst rate errors
func (a *AIService) rateLimit() {
	a.requestMutex.Lock()
	defer a.requestMutex.Unlock()

	now := time.Now()
	timeSinceLastRequest := now.Sub(a.lastRequestTime)

	if timeSinceLastRequest < a.minRequestInterval {
		time.Sleep(a.minRequestInterval - timeSinceLastRequest)
	}

	a.lastRequestTime = time.Now()
}

func (a *AIService) callDashScopeAPI(ctx context.Context, messages []DashScopeMessage) (string, error) {
	a.rateLimit()

	reqBody := DashScopeRequest{
		Model: a.modelName,
	}
	reqBody.Input.Messages = messages

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", a.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"request_id"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Code != "" {
			return "", fmt.Errorf("API error (status %d): %s - %s (request_id: %s)",
				resp.StatusCode, errorResp.Code, errorResp.Message, errorResp.RequestID)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var dashScopeResp DashScopeResponse
	if err := json.Unmarshal(body, &dashScopeResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if dashScopeResp.Code != "" && dashScopeResp.Code != "Success" {
		return "", fmt.Errorf("API error: %s - %s", dashScopeResp.Code, dashScopeResp.Message)
	}

	if len(dashScopeResp.Output.Choices) == 0 {
		return "", fmt.Errorf("no response from AI model")
	}

	return dashScopeResp.Output.Choices[0].Message.Content, nil
}

// ResolvePlan asks the model to turn a user question about the current
// dataset into an analysis plan: statistic requests, an optional chart
// spec and a conversational answer. The model only proposes; every
// operation and chart it returns is validated and computed locally.
func (a *AIService) ResolvePlan(ctx context.Context, question string, profile []dataset.ColumnProfile, rowCount int, history []models.ChatHistory) (*models.AnalysisPlan, error) {
	prompt := BuildAnalysisPrompt(question, profile, rowCount, history)

	// Cache on the full prompt so the same question against a different
	// dataset or conversation never reuses a stale plan.
	cacheKey := fmt.Sprintf("plan:%s", prompt)
	if cached, found := a.cache.Get(cacheKey); found {
		if plan, ok := cached.(*models.AnalysisPlan); ok {
			return plan, nil
		}
	}

	messages := []DashScopeMessage{
		{
			Role:    "user",
			Content: prompt,
		},
	}

	reply, err := a.callDashScopeAPI(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve analysis plan: %w", err)
	}

	plan := parsePlan(reply)
	a.cache.SetDefault(cacheKey, plan)

	return plan, nil
}

// parsePlan decodes the model reply into a plan. Markdown code fences
// are stripped first. A reply that is not valid plan JSON is kept as a
// plain conversational answer instead of being dropped.
func parsePlan(reply string) *models.AnalysisPlan {
	raw := strings.TrimSpace(reply)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```JSON")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var plan models.AnalysisPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return &models.AnalysisPlan{Answer: raw}
	}
	if plan.Answer == "" && len(plan.Operations) == 0 && len(plan.ChartSpec) == 0 {
		// Valid JSON but not a plan, e.g. the model answered with some
		// other object. Surface the raw text rather than nothing.
		return &models.AnalysisPlan{Answer: raw}
	}
	return &plan
}
