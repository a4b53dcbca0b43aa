package pagination

import (
	"net/url"
	"testing"
)

func testConfig() Config {
	cfg := Config{}
	cfg.Finalize()
	return cfg
}

func TestPageRequestNormalize(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		req      PageRequest
		wantPage int
		wantSize int
	}{
		{"zero values", PageRequest{}, 1, cfg.DefaultPageSize},
		{"negative page", PageRequest{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size", PageRequest{Page: 2, PageSize: 1000}, 2, cfg.MaxPageSize},
		{"valid request untouched", PageRequest{Page: 4, PageSize: 25}, 4, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Normalize(cfg)
			if tc.req.Page != tc.wantPage || tc.req.PageSize != tc.wantSize {
				t.Fatalf("Normalize() = page %d size %d, want page %d size %d",
					tc.req.Page, tc.req.PageSize, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	req := PageRequest{Page: 3, PageSize: 20}
	if got := req.Offset(); got != 40 {
		t.Fatalf("Offset() = %d, want 40", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{"page": {"2"}, "page_size": {"5"}}
	req := PageRequestFromQuery(values, testConfig())

	if req.Page != 2 || req.PageSize != 5 {
		t.Fatalf("FromQuery() = %+v, want page 2 size 5", req)
	}

	req = PageRequestFromQuery(url.Values{}, testConfig())
	if req.Page != 1 || req.PageSize != testConfig().DefaultPageSize {
		t.Fatalf("FromQuery() with empty values = %+v, want defaults", req)
	}
}

func TestNewPageResult(t *testing.T) {
	result := NewPageResult([]string{"a", "b"}, 11, 1, 5)
	if result.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", result.TotalPages)
	}

	empty := NewPageResult[string](nil, 0, 1, 5)
	if empty.Data == nil {
		t.Fatal("Data = nil, want empty slice for JSON rendering")
	}
	if empty.TotalPages != 1 {
		t.Fatalf("TotalPages = %d, want 1 for an empty set", empty.TotalPages)
	}
}
