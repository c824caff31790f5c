package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"contains_ads": true}`, `{"contains_ads": true}`},
		{"json fence", "```json\n{\"contains_ads\": true}\n```", `{"contains_ads": true}`},
		{"bare fence", "```\n[1, 2]\n```", `[1, 2]`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page-01.png")
	if err := os.WriteFile(path, []byte("not-really-a-png"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestClassifyPage(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(chatResponse("```json\n{\"contains_ads\": true, \"confidence\": 85}\n```")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-4o-mini"}, nil)

	v, err := c.ClassifyPage(context.Background(), writeTestImage(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.ContainsAds || v.Confidence != 85 {
		t.Errorf("verdict: got %+v", v)
	}

	// The image must travel as a base64 data URL inside the user message.
	raw, _ := json.Marshal(gotBody)
	if !strings.Contains(string(raw), "data:image/png;base64,") {
		t.Error("request body is missing the image data URL")
	}
}

func TestClassifyPageUnparseableVerdict(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse("I cannot tell.")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)

	if _, err := c.ClassifyPage(context.Background(), writeTestImage(t)); err == nil {
		t.Fatal("expected parse error for non-JSON verdict")
	}
}

func TestDetectAnnouncementsSendsLists(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(chatResponse("```json\n[]\n```")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)

	out, err := c.DetectAnnouncements(context.Background(), writeTestImage(t), `Wilayas = [{"id":16,"name":"Algiers"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[]" {
		t.Errorf("got %q, want []", out)
	}

	raw, _ := json.Marshal(gotBody)
	if !strings.Contains(string(raw), "PREDEFINED_LISTS") || !strings.Contains(string(raw), "Algiers") {
		t.Error("system message is missing the predefined lists")
	}
}

func TestClientDisabledWithoutKey(t *testing.T) {
	// Not parallel: manipulates process env.
	t.Setenv("VISION_API_KEY", "")

	c := NewClient(Config{}, nil)
	if c.Enabled() {
		t.Fatal("client should be disabled without an API key")
	}
}
