// Package analysis provides AI-generated reports over the dashboard state.
// Every operation degrades to a canned fallback when the API is unreachable
// or returns something unusable; callers never see a transport error.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/rlankford/crewboard/internal/domain"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

const workloadPrompt = `You are an operations analyst reviewing team workload data.

Given the JSON snapshot of employees and tasks, produce an assessment of how
work is distributed across the team.

Output a JSON object matching this schema:
{
  "summary": "2-3 sentence assessment of the team's workload balance",
  "burnoutRisk": ["employee names with workload score above 80"],
  "efficiencyScore": 0-100,
  "recommendations": ["short actionable suggestion", ...]
}

Snapshot:
`

const productPrompt = `You are a product analyst reviewing a product line's metrics.

Given the JSON product record (monthly traffic, profit, costs, customers,
server logs, bug reports), assess its trajectory.

Output a JSON object matching this schema:
{
  "summary": "2-3 sentence assessment of the product's health",
  "futureOutlook": "one paragraph projection for the next two quarters",
  "predictedGrowth": percentage as a number,
  "keyRisks": ["short risk statement", ...]
}

Product:
`

const companyPrompt = `You are a business analyst reviewing a company's product portfolio.

Given the JSON array of products with their monthly metrics, assess the
portfolio as a whole.

Output a JSON object matching this schema:
{
  "summary": "2-3 sentence assessment of the portfolio",
  "futureOutlook": "one paragraph projection for the company",
  "predictedGrowth": percentage as a number,
  "keyRisks": ["short risk statement", ...]
}

Products:
`

const chatSystemPrompt = `You are the Crewboard assistant. Answer questions about the
team and its task board using only the snapshot below. Keep answers short and
concrete. If the snapshot does not contain the answer, say so.

Snapshot:
`

// HTTPClient abstracts HTTP requests for testing
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configure the service.
type Options struct {
	Model     string
	MaxTokens int
	APIKey    string
}

// Service provides AI-powered analysis of dashboard state
type Service struct {
	httpClient HTTPClient
	logger     *slog.Logger
	opts       Options
}

// NewService creates a new analysis service. An empty API key is allowed; every
// call will then take the fallback path.
func NewService(httpClient HTTPClient, logger *slog.Logger, opts Options) *Service {
	if opts.Model == "" {
		opts.Model = "claude-sonnet-4-20250514"
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 2048
	}
	return &Service{
		httpClient: httpClient,
		logger:     logger,
		opts:       opts,
	}
}

// anthropicRequest represents a request to the Anthropic API
type anthropicRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse represents a response from the Anthropic API
type anthropicResponse struct {
	Content []content `json:"content"`
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// callClaude makes a request to the Claude API
func (s *Service) callClaude(ctx context.Context, msgs []message) (string, error) {
	if s.opts.APIKey == "" {
		return "", errors.New("API key not set")
	}

	reqBody := anthropicRequest{
		Model:     s.opts.Model,
		MaxTokens: s.opts.MaxTokens,
		Messages:  msgs,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", anthropicAPIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.opts.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	for _, c := range apiResp.Content {
		if c.Type == "text" {
			return c.Text, nil
		}
	}

	return "", errors.New("no text content in response")
}

// parseJSONResponse extracts and parses JSON from a model response
func parseJSONResponse(text string, target interface{}) error {
	jsonStr := strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	jsonRegex := regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	if matches := jsonRegex.FindStringSubmatch(jsonStr); len(matches) > 1 {
		jsonStr = strings.TrimSpace(matches[1])
	}

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// AnalyzeWorkload produces a workload report for the team. On any failure it
// returns the fallback report and the underlying error for logging.
func (s *Service) AnalyzeWorkload(ctx context.Context, employees []domain.Employee, tasks []domain.Task) (domain.WorkloadAnalysis, error) {
	payload, err := json.Marshal(struct {
		Employees []domain.Employee `json:"employees"`
		Tasks     []domain.Task     `json:"tasks"`
	}{employees, tasks})
	if err != nil {
		return fallbackWorkload(), s.fail("workload", "failed to marshal snapshot", err)
	}

	response, err := s.callClaude(ctx, []message{{Role: "user", Content: workloadPrompt + string(payload)}})
	if err != nil {
		return fallbackWorkload(), s.fail("workload", "failed to call API", err)
	}

	var report domain.WorkloadAnalysis
	if err := parseJSONResponse(response, &report); err != nil {
		return fallbackWorkload(), s.fail("workload", "failed to parse report", err)
	}

	s.logger.Info("workload analysis complete", "efficiency", report.EfficiencyScore, "atRisk", len(report.BurnoutRisk))
	return report, nil
}

// AnalyzeProduct produces a report for a single product line.
func (s *Service) AnalyzeProduct(ctx context.Context, product domain.Product) (domain.ProductAnalysis, error) {
	payload, err := json.Marshal(product)
	if err != nil {
		return fallbackProduct(), s.fail("product", "failed to marshal product", err)
	}

	response, err := s.callClaude(ctx, []message{{Role: "user", Content: productPrompt + string(payload)}})
	if err != nil {
		return fallbackProduct(), s.fail("product", "failed to call API", err)
	}

	var report domain.ProductAnalysis
	if err := parseJSONResponse(response, &report); err != nil {
		return fallbackProduct(), s.fail("product", "failed to parse report", err)
	}

	s.logger.Info("product analysis complete", "product", product.Name, "growth", report.PredictedGrowth)
	return report, nil
}

// AnalyzeCompany produces an aggregated report across all product lines.
func (s *Service) AnalyzeCompany(ctx context.Context, products []domain.Product) (domain.ProductAnalysis, error) {
	payload, err := json.Marshal(products)
	if err != nil {
		return fallbackProduct(), s.fail("company", "failed to marshal products", err)
	}

	response, err := s.callClaude(ctx, []message{{Role: "user", Content: companyPrompt + string(payload)}})
	if err != nil {
		return fallbackProduct(), s.fail("company", "failed to call API", err)
	}

	var report domain.ProductAnalysis
	if err := parseJSONResponse(response, &report); err != nil {
		return fallbackProduct(), s.fail("company", "failed to parse report", err)
	}

	s.logger.Info("company analysis complete", "growth", report.PredictedGrowth)
	return report, nil
}

// Chat answers a free-form question about the current team snapshot. History
// is replayed so the conversation has continuity; the snapshot rides along in
// the first user turn.
func (s *Service) Chat(ctx context.Context, question string, history []domain.ChatMessage, employees []domain.Employee, tasks []domain.Task) (string, error) {
	payload, err := json.Marshal(struct {
		Employees []domain.Employee `json:"employees"`
		Tasks     []domain.Task     `json:"tasks"`
	}{employees, tasks})
	if err != nil {
		return fallbackChat, s.fail("chat", "failed to marshal snapshot", err)
	}

	msgs := []message{{Role: "user", Content: chatSystemPrompt + string(payload)}}
	msgs = append(msgs, message{Role: "assistant", Content: "Understood. Ask me about the team."})
	for _, m := range history {
		role := "user"
		if m.Role == domain.RoleModel {
			role = "assistant"
		}
		msgs = append(msgs, message{Role: role, Content: m.Text})
	}
	msgs = append(msgs, message{Role: "user", Content: question})

	response, err := s.callClaude(ctx, msgs)
	if err != nil {
		return fallbackChat, s.fail("chat", "failed to call API", err)
	}

	return strings.TrimSpace(response), nil
}

func (s *Service) fail(op, msg string, err error) error {
	s.logger.Warn("analysis degraded to fallback", "op", op, "error", err)
	return &domain.AnalysisError{Op: op, Message: msg, Err: err}
}

func fallbackWorkload() domain.WorkloadAnalysis {
	return domain.WorkloadAnalysis{
		Summary:         "Analysis unavailable. Workload figures shown are computed locally.",
		BurnoutRisk:     []string{},
		EfficiencyScore: 0,
		Recommendations: []string{"Check API key configuration", "Retry the analysis"},
	}
}

func fallbackProduct() domain.ProductAnalysis {
	return domain.ProductAnalysis{
		Summary:       "Analysis unavailable. Metrics shown are from the local history.",
		FutureOutlook: "No projection could be generated.",
		KeyRisks:      []string{"Analysis service unreachable"},
	}
}

const fallbackChat = "The assistant is unavailable right now. Check the API key configuration and try again."
