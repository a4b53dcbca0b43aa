package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kpdinfo/kpdinfo/internal/provider/openai"
	"github.com/kpdinfo/kpdinfo/pkg/handlers"
	"github.com/kpdinfo/kpdinfo/pkg/middleware"
	"github.com/kpdinfo/kpdinfo/pkg/routes"
)

type mockSystem struct {
	classify func(ctx context.Context, input string) (*Result, error)
}

func (m *mockSystem) Handler() *Handler {
	return NewHandler(m, testLogger())
}

func (m *mockSystem) Classify(ctx context.Context, input string) (*Result, error) {
	return m.classify(ctx, input)
}

func setupClassifyMux(sys System) http.Handler {
	mux := http.NewServeMux()
	routes.Register(mux, NewHandler(sys, testLogger()).Routes())
	return middleware.Ray()(mux)
}

func postClassify(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestClassifyEndpointSuccess(t *testing.T) {
	code := "62.10.11"
	sys := &mockSystem{classify: func(ctx context.Context, input string) (*Result, error) {
		if input != "Izrada web stranice" {
			t.Fatalf("input = %q, want the request text", input)
		}
		return &Result{KPD6: &code, Alternativne: []Alternative{}}, nil
	}}

	rec := postClassify(t, setupClassifyMux(sys), `{"input_as_text": "Izrada web stranice"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result["KPD_6"] != code {
		t.Fatalf("KPD_6 = %v, want %q", result["KPD_6"], code)
	}
}

func TestClassifyEndpointAcceptsAlias(t *testing.T) {
	var received string
	sys := &mockSystem{classify: func(ctx context.Context, input string) (*Result, error) {
		received = input
		return &Result{Alternativne: []Alternative{}}, nil
	}}

	postClassify(t, setupClassifyMux(sys), `{"q": "Prodaja stolica"}`)

	if received != "Prodaja stolica" {
		t.Fatalf("input = %q, want the q alias value", received)
	}
}

func TestClassifyEndpointPrefersCanonicalKey(t *testing.T) {
	var received string
	sys := &mockSystem{classify: func(ctx context.Context, input string) (*Result, error) {
		received = input
		return &Result{Alternativne: []Alternative{}}, nil
	}}

	postClassify(t, setupClassifyMux(sys), `{"input_as_text": "canonical", "q": "alias"}`)

	if received != "canonical" {
		t.Fatalf("input = %q, want input_as_text to win", received)
	}
}

func TestClassifyEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		sysErr     error
		wantStatus int
		wantKind   string
	}{
		{"malformed body", `{not json`, nil, http.StatusBadRequest, KindBadRequest},
		{"empty input", `{}`, ErrEmptyInput, http.StatusBadRequest, KindBadRequest},
		{"not grounded", `{"q": "x"}`, ErrNotGrounded, http.StatusInternalServerError, KindGrounding},
		{"missing credential", `{"q": "x"}`, ErrMissingCredential, http.StatusInternalServerError, KindConfig},
		{"provider failure", `{"q": "x"}`, &openai.TransportError{Status: 500, Body: "upstream detail"}, http.StatusInternalServerError, KindTransport},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sys := &mockSystem{classify: func(ctx context.Context, input string) (*Result, error) {
				return nil, tc.sysErr
			}}

			rec := postClassify(t, setupClassifyMux(sys), tc.body)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var envelope handlers.ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if envelope.Error != tc.wantKind {
				t.Fatalf("error kind = %q, want %q", envelope.Error, tc.wantKind)
			}
			if envelope.Ray == "" {
				t.Fatal("error envelope must carry the correlation identifier")
			}
			if envelope.Ray != rec.Header().Get(middleware.RayHeader) {
				t.Fatal("envelope ray must match the response header")
			}
		})
	}
}

// The full stack makes no outbound call for an empty input: the handler
// delegates to the service, which rejects before touching the provider.
func TestClassifyEndpointEmptyInputMakesNoProviderCall(t *testing.T) {
	provider := &fakeProvider{respond: func(int, openai.Request) (*openai.Envelope, error) {
		t.Fatal("provider must not be called")
		return nil, nil
	}}
	sys := newTestSystem(t, provider, testSettings())

	rec := postClassify(t, setupClassifyMux(sys), `{"input_as_text": "   "}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if provider.calls != 0 {
		t.Fatalf("provider calls = %d, want 0", provider.calls)
	}
}

func TestClassifyEndpointEchoesSuppliedRay(t *testing.T) {
	sys := &mockSystem{classify: func(ctx context.Context, input string) (*Result, error) {
		return &Result{Alternativne: []Alternative{}}, nil
	}}

	req := httptest.NewRequest("POST", "/classify", strings.NewReader(`{"q": "x"}`))
	req.Header.Set(middleware.RayHeader, "ray-123")

	rec := httptest.NewRecorder()
	setupClassifyMux(sys).ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RayHeader); got != "ray-123" {
		t.Fatalf("ray header = %q, want ray-123", got)
	}
}
