package breakdown

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/llm"
)

// fakeModel serves both the availability probe and chat completions.
func fakeModel(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/models" {
			w.WriteHeader(http.StatusOK)
			return
		}
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		resp := map[string]any{
			"model": "test-model",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func clientFor(endpoint string) llm.Client {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return llm.NewChatClient(cfg, llm.NoopObserver{})
}

func TestSuggest_UsesModelOutput(t *testing.T) {
	reply := `{"steps": [
		{"title": "Open the report template", "duration": "5 min", "kind": "prep", "energy": "low", "tip": "Just open it."},
		{"title": "Fill in the summary section", "duration": "20 min", "kind": "work", "energy": "high", "tip": "Timer on."}
	]}`
	srv := fakeModel(t, reply)
	defer srv.Close()

	svc := NewService(clientFor(srv.URL))
	steps, err := svc.Suggest(context.Background(), &domain.Task{Title: "Quarterly report"}, 30)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "Open the report template", steps[0].Title)
	assert.Equal(t, "20 min", steps[1].DurationLabel)
}

func TestSuggest_ModelOutputWithProseAndFences(t *testing.T) {
	reply := "Sure, here is the breakdown:\n```json\n{\"steps\": [{\"title\": \"Start here\", \"duration\": \"5 min\"}]}\n```"
	srv := fakeModel(t, reply)
	defer srv.Close()

	svc := NewService(clientFor(srv.URL))
	steps, err := svc.Suggest(context.Background(), &domain.Task{Title: "Anything"}, 0)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "Start here", steps[0].Title)
}

func TestSuggest_InvalidModelOutputFallsBack(t *testing.T) {
	srv := fakeModel(t, "I cannot help with that.")
	defer srv.Close()

	svc := NewService(clientFor(srv.URL))
	steps, err := svc.Suggest(context.Background(), &domain.Task{Title: "Write the essay"}, 0)
	require.NoError(t, err)
	assert.Equal(t, FallbackSteps(&domain.Task{Title: "Write the essay"}, 0), steps)
}

func TestSuggest_EmptyStepsFallsBack(t *testing.T) {
	srv := fakeModel(t, `{"steps": []}`)
	defer srv.Close()

	svc := NewService(clientFor(srv.URL))
	steps, err := svc.Suggest(context.Background(), &domain.Task{Title: "Clean the garage"}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	assert.Equal(t, "Set a timer and clear one surface", steps[0].Title)
}

func TestSuggest_ServerDownFallsBack(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	svc := NewService(llm.NewChatClient(cfg, llm.NoopObserver{}))

	steps, err := svc.Suggest(context.Background(), &domain.Task{Title: "Study for the exam"}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	assert.Contains(t, steps[0].Title, "skim the headings")
}

func TestSuggest_NilClientUsesFallback(t *testing.T) {
	svc := NewService(nil)
	steps, err := svc.Suggest(context.Background(), &domain.Task{Title: "Mystery chore"}, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultFallbackSteps, steps)
}
