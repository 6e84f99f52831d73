package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlankford/crewboard/internal/domain"
)

// mockHTTPClient mocks HTTP requests
type mockHTTPClient struct {
	response *http.Response
	err      error
	lastReq  *http.Request
	lastBody []byte
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	if req.Body != nil {
		m.lastBody, _ = io.ReadAll(req.Body)
	}
	return m.response, m.err
}

func createMockAPIResponse(text string) *http.Response {
	resp := map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": text},
		},
	}
	body, _ := json.Marshal(resp)
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestService(client *mockHTTPClient) *Service {
	return NewService(client, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{APIKey: "test-key"})
}

func sampleTeam() ([]domain.Employee, []domain.Task) {
	employees := []domain.Employee{
		{ID: "e1", Name: "Jessica Tran", WorkloadScore: 62, Status: domain.StatusOptimal},
		{ID: "e2", Name: "Priya Nair", WorkloadScore: 84, Status: domain.StatusOverloaded},
	}
	tasks := []domain.Task{
		{ID: "t1", Title: "Migrate billing service", EstimatedHours: 16, Status: domain.StatusInProgress},
	}
	return employees, tasks
}

func TestAnalyzeWorkload(t *testing.T) {
	employees, tasks := sampleTeam()

	report := `{"summary":"One engineer is over capacity.","burnoutRisk":["Priya Nair"],"efficiencyScore":72,"recommendations":["Rebalance the billing work"]}`
	client := &mockHTTPClient{response: createMockAPIResponse(report)}

	got, err := newTestService(client).AnalyzeWorkload(context.Background(), employees, tasks)
	require.NoError(t, err)

	assert.Equal(t, 72, got.EfficiencyScore)
	assert.Equal(t, []string{"Priya Nair"}, got.BurnoutRisk)
	assert.Contains(t, got.Summary, "over capacity")

	// The request carries the snapshot and the auth header.
	assert.Equal(t, "test-key", client.lastReq.Header.Get("x-api-key"))
	assert.Contains(t, string(client.lastBody), "Priya Nair")
}

func TestAnalyzeWorkloadExtractsMarkdownJSON(t *testing.T) {
	employees, tasks := sampleTeam()
	wrapped := "Here is the report:\n```json\n{\"summary\":\"ok\",\"burnoutRisk\":[],\"efficiencyScore\":90,\"recommendations\":[]}\n```"
	client := &mockHTTPClient{response: createMockAPIResponse(wrapped)}

	got, err := newTestService(client).AnalyzeWorkload(context.Background(), employees, tasks)
	require.NoError(t, err)
	assert.Equal(t, 90, got.EfficiencyScore)
}

func TestAnalyzeWorkloadFallbacks(t *testing.T) {
	employees, tasks := sampleTeam()

	tests := []struct {
		name   string
		client *mockHTTPClient
		svc    func(*mockHTTPClient) *Service
	}{
		{
			name:   "transport error",
			client: &mockHTTPClient{err: errors.New("connection refused")},
			svc:    newTestService,
		},
		{
			name: "non-2xx status",
			client: &mockHTTPClient{response: &http.Response{
				StatusCode: 429,
				Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"rate limited"}`))),
			}},
			svc: newTestService,
		},
		{
			name:   "unparseable report",
			client: &mockHTTPClient{response: createMockAPIResponse("I cannot produce JSON today.")},
			svc:    newTestService,
		},
		{
			name:   "missing api key",
			client: &mockHTTPClient{},
			svc: func(c *mockHTTPClient) *Service {
				return NewService(c, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.svc(tt.client).AnalyzeWorkload(context.Background(), employees, tasks)

			var analysisErr *domain.AnalysisError
			require.ErrorAs(t, err, &analysisErr)
			assert.Equal(t, "workload", analysisErr.Op)

			// The fallback report is always usable.
			assert.Equal(t, 0, got.EfficiencyScore)
			assert.NotEmpty(t, got.Summary)
			assert.Contains(t, got.Recommendations, "Retry the analysis")
		})
	}
}

func TestAnalyzeProduct(t *testing.T) {
	product := domain.Product{ID: "p1", Name: "Pulse", History: []domain.HistoryPoint{{Month: "Aug", Profit: 20400}}}

	report := `{"summary":"Healthy growth.","futureOutlook":"Steady expansion.","predictedGrowth":12.5,"keyRisks":["Single region"]}`
	client := &mockHTTPClient{response: createMockAPIResponse(report)}

	got, err := newTestService(client).AnalyzeProduct(context.Background(), product)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, got.PredictedGrowth, 0.001)
	assert.Contains(t, string(client.lastBody), "Pulse")
}

func TestAnalyzeProductFallback(t *testing.T) {
	client := &mockHTTPClient{err: errors.New("timeout")}

	got, err := newTestService(client).AnalyzeProduct(context.Background(), domain.Product{ID: "p1"})

	var analysisErr *domain.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "product", analysisErr.Op)
	assert.NotEmpty(t, got.Summary)
	assert.Contains(t, got.KeyRisks, "Analysis service unreachable")
}

func TestAnalyzeCompany(t *testing.T) {
	products := []domain.Product{{ID: "p1", Name: "Pulse"}, {ID: "p2", Name: "Relay"}}

	report := `{"summary":"Portfolio is net positive.","futureOutlook":"Relay approaching breakeven.","predictedGrowth":8,"keyRisks":[]}`
	client := &mockHTTPClient{response: createMockAPIResponse(report)}

	got, err := newTestService(client).AnalyzeCompany(context.Background(), products)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got.PredictedGrowth, 0.001)
}

func TestChat(t *testing.T) {
	employees, tasks := sampleTeam()

	client := &mockHTTPClient{response: createMockAPIResponse("Priya is the most loaded at 84.")}
	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Text: "Who is on the billing migration?"},
		{Role: domain.RoleModel, Text: "Mike Delgado."},
	}

	got, err := newTestService(client).Chat(context.Background(), "Who is most loaded?", history, employees, tasks)
	require.NoError(t, err)
	assert.Equal(t, "Priya is the most loaded at 84.", got)

	// History rides along as alternating turns.
	var req anthropicRequest
	require.NoError(t, json.Unmarshal(client.lastBody, &req))
	require.Len(t, req.Messages, 5)
	assert.Equal(t, "assistant", req.Messages[3].Role)
	assert.Equal(t, "Who is most loaded?", req.Messages[4].Content)
}

func TestChatFallback(t *testing.T) {
	employees, tasks := sampleTeam()
	client := &mockHTTPClient{err: errors.New("no network")}

	got, err := newTestService(client).Chat(context.Background(), "hello", nil, employees, tasks)

	var analysisErr *domain.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "chat", analysisErr.Op)
	assert.Equal(t, fallbackChat, got)
}
