package examples

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kpdinfo/kpdinfo/internal/classify"
	"github.com/kpdinfo/kpdinfo/pkg/routes"
)

// Every canned example must itself pass the response validator; the
// examples page renders them with the same component as live results.
func TestExamplesValidate(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("examples = %d, want 2", len(all))
	}

	for _, example := range all {
		t.Run(example.Upit, func(t *testing.T) {
			data, err := json.Marshal(example.Result)
			if err != nil {
				t.Fatalf("marshal example: %v", err)
			}

			var decoded any
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal example: %v", err)
			}

			if err := classify.Validate(decoded); err != nil {
				t.Fatalf("example fails validation: %v", err)
			}
		})
	}
}

func TestExamplesPrefixConsistency(t *testing.T) {
	for _, example := range All() {
		for _, alt := range example.Result.PrefixViolations() {
			t.Errorf("example %q: alternative %s outside primary prefix %s",
				example.Upit, alt.KPD6, example.Result.ActivityPrefix())
		}
	}
}

func TestExamplesEndpoint(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	routes.Register(mux, NewHandler(logger).Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/examples", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []Example
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("examples = %d, want 2", len(got))
	}
}
