package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/standup-scribe/internal/apierr"
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
	"google.golang.org/genai"
)

func testLogger() logger.Logger {
	return logger.NewWithConfig(logger.Config{Level: "error", Output: io.Discard})
}

func TestPromptRender(t *testing.T) {
	p := Prompt{System: "sys", UserTemplate: "A {transcript} B {transcript}"}
	if got := p.Render("hello"); got != "A hello B hello" {
		t.Errorf("Render() = %q, want %q", got, "A hello B hello")
	}
}

func TestDefaultPrompt(t *testing.T) {
	tests := []struct {
		language   string
		wantPrefix string
	}{
		{"fr", "Tu es un assistant"},
		{"FR", "Tu es un assistant"},
		{"en", "You are an assistant"},
		{"de", "You are an assistant"},
	}

	for _, tt := range tests {
		p := DefaultPrompt(tt.language)
		if !strings.HasPrefix(p.System, tt.wantPrefix) {
			t.Errorf("DefaultPrompt(%q).System = %q, want prefix %q", tt.language, p.System, tt.wantPrefix)
		}
		if !strings.Contains(p.UserTemplate, TranscriptPlaceholder) {
			t.Errorf("DefaultPrompt(%q).UserTemplate has no placeholder", tt.language)
		}
		if !strings.Contains(p.UserTemplate, "### Action Items") {
			t.Errorf("DefaultPrompt(%q).UserTemplate has no Action Items section", tt.language)
		}
	}
}

func TestPromptWithOverrides(t *testing.T) {
	base := Prompt{System: "s", UserTemplate: "u"}

	if got := base.WithOverrides("", ""); got != base {
		t.Errorf("WithOverrides(empty) = %v, want %v", got, base)
	}
	if got := base.WithOverrides("S2", ""); got.System != "S2" || got.UserTemplate != "u" {
		t.Errorf("WithOverrides(system) = %v", got)
	}
	if got := base.WithOverrides("", "U2 {transcript}"); got.System != "s" || got.UserTemplate != "U2 {transcript}" {
		t.Errorf("WithOverrides(user) = %v", got)
	}
}

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
}

func TestOpenAISummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("model = %q, want gpt-4o-mini", req.Model)
		}
		if req.Temperature != 0.3 {
			t.Errorf("temperature = %v, want 0.3", req.Temperature)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("messages = %+v, want system then user", req.Messages)
		} else {
			if req.Messages[0].Content != "be brief" {
				t.Errorf("system content = %q", req.Messages[0].Content)
			}
			if req.Messages[1].Content != "Summarize: we shipped it" {
				t.Errorf("user content = %q", req.Messages[1].Content)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "\n### Work\n- shipped it\n"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 40, "completion_tokens": 12, "total_tokens": 52}
		}`)
	}))
	defer srv.Close()

	s := NewOpenAI(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL}, testLogger())
	got, err := s.Summarize(context.Background(), "we shipped it", Prompt{System: "be brief", UserTemplate: "Summarize: {transcript}"})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	want := &Summary{Markdown: "### Work\n- shipped it", PromptTokens: 40, CompletionTokens: 12, TotalTokens: 52}
	if *got != *want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestOpenAISummarizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{
			name:   "invalid key",
			status: 401,
			body:   `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			check:  apierr.IsAuth,
		},
		{
			name:   "quota",
			status: 429,
			body:   `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`,
			check:  apierr.IsRateLimit,
		},
		{
			name:   "server error without JSON",
			status: 502,
			body:   "bad gateway",
			check:  func(err error) bool { return apierr.StatusCode(err) == 502 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			s := NewOpenAI(OpenAIConfig{APIKey: "k", BaseURL: srv.URL}, testLogger())
			_, err := s.Summarize(context.Background(), "t", DefaultPrompt("en"))
			if err == nil || !tt.check(err) {
				t.Errorf("Summarize() error = %v, wrong classification", err)
			}
		})
	}
}

func TestOpenAISummarizeNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewOpenAI(OpenAIConfig{APIKey: "k", BaseURL: url}, testLogger())
	_, err := s.Summarize(context.Background(), "t", DefaultPrompt("en"))
	if !apierr.IsNetwork(err) && !apierr.IsTimeout(err) {
		t.Errorf("Summarize() error = %v, want network error", err)
	}
}

func geminiResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     100,
			CandidatesTokenCount: 20,
			TotalTokenCount:      120,
		},
	}
}

func TestGeminiKeyRotation(t *testing.T) {
	var usedKeys []string
	s := NewGemini([]string{"k1", "k2", "k3"}, "", 0, testLogger()).(*implGemini)
	s.generate = func(ctx context.Context, apiKey, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		usedKeys = append(usedKeys, apiKey)
		if apiKey == "k1" {
			return nil, errors.New("Error 429, RESOURCE_EXHAUSTED")
		}
		if config.SystemInstruction == nil || config.SystemInstruction.Parts[0].Text != "sys" {
			t.Errorf("system instruction not forwarded")
		}
		return geminiResponse("### Work\n- done"), nil
	}

	got, err := s.Summarize(context.Background(), "x", Prompt{System: "sys", UserTemplate: "{transcript}"})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if strings.Join(usedKeys, ",") != "k1,k2" {
		t.Errorf("keys used = %v, want k1,k2", usedKeys)
	}
	if got.Markdown != "### Work\n- done" || got.TotalTokens != 120 || got.PromptTokens != 100 {
		t.Errorf("Summarize() = %+v", got)
	}
	if s.key() != 1 {
		t.Errorf("current key = %d, want 1", s.key())
	}
}

func TestGeminiErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		resp      *genai.GenerateContentResponse
		wantCalls int
		rateLimit bool
	}{
		{name: "all keys exhausted", err: errors.New("quota exceeded"), wantCalls: 2, rateLimit: true},
		{name: "other error fails immediately", err: errors.New("invalid argument"), wantCalls: 1},
		{name: "empty candidates", resp: &genai.GenerateContentResponse{}, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			s := NewGemini([]string{"a", "b"}, "", 0, testLogger()).(*implGemini)
			s.generate = func(ctx context.Context, apiKey, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls++
				return tt.resp, tt.err
			}

			_, err := s.Summarize(context.Background(), "x", DefaultPrompt("fr"))
			if err == nil {
				t.Fatal("Summarize() error = nil")
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if apierr.IsRateLimit(err) != tt.rateLimit {
				t.Errorf("IsRateLimit() = %v, want %v", apierr.IsRateLimit(err), tt.rateLimit)
			}
		})
	}
}

func TestGeminiNoKeys(t *testing.T) {
	if _, err := NewGemini(nil, "", 0, testLogger()).Summarize(context.Background(), "x", DefaultPrompt("en")); err == nil {
		t.Error("Summarize() should fail without keys")
	}
}
