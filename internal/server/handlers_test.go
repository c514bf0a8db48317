package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/classify"
	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/region"
	"github.com/claimscope/claimscope/internal/store"
)

type fakeChecker struct {
	result *model.CheckResult
	err    error
}

func (f *fakeChecker) Check(ctx context.Context, text, location string) (*model.CheckResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestServer(t *testing.T, checker Checker, st store.Store) *httptest.Server {
	t.Helper()
	cfg := model.ServerConfig{
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
	}
	s := New(cfg, checker, st, region.NewDetector().Regions(), zerolog.Nop())
	ts := httptest.NewServer(s.srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func postCheck(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/v1/check", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHandleCheck_OK(t *testing.T) {
	checker := &fakeChecker{result: &model.CheckResult{
		Input:      model.CheckInput{Original: "WHO recommends vaccination"},
		Prediction: model.CheckPrediction{Label: model.LabelConfirmed, Confidence: 1.0},
		Sources: []model.EvidenceItem{
			{URL: "https://who.int/news", Publisher: "WHO", ContextFlag: model.ContextConfirmed},
		},
		State:       "General",
		Explanation: model.ExplanationConfirmed,
	}}
	ts := newTestServer(t, checker, store.NewMemoryStore())

	resp := postCheck(t, ts, `{"text": "WHO recommends vaccination"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Prediction struct {
			Label      string  `json:"label"`
			Confidence float64 `json:"confidence"`
		} `json:"prediction"`
		State   string `json:"state"`
		Sources []struct {
			URL         string `json:"url"`
			ContextFlag string `json:"context_flag"`
		} `json:"sources"`
	}
	decodeBody(t, resp, &out)
	if out.Prediction.Label != model.LabelConfirmed || out.Prediction.Confidence != 1.0 {
		t.Errorf("prediction = %+v", out.Prediction)
	}
	if len(out.Sources) != 1 || out.Sources[0].ContextFlag != "confirmed" {
		t.Errorf("sources = %+v", out.Sources)
	}
}

func TestHandleCheck_InputErrors(t *testing.T) {
	ts := newTestServer(t, &fakeChecker{err: pipeline.ErrEmptyClaim}, store.NewMemoryStore())

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"missing text field", `{"location": "Kerala"}`, http.StatusBadRequest, "No text provided"},
		{"blank text", `{"text": "   "}`, http.StatusBadRequest, "No text provided"},
		{"invalid json", `{"text": `, http.StatusBadRequest, "invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postCheck(t, ts, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var out struct {
				Error string `json:"error"`
			}
			decodeBody(t, resp, &out)
			if out.Error != tt.message {
				t.Errorf("error = %q, want %q", out.Error, tt.message)
			}
		})
	}
}

func TestHandleCheck_ScorerDown(t *testing.T) {
	ts := newTestServer(t, &fakeChecker{err: classify.ErrUnavailable}, store.NewMemoryStore())

	resp := postCheck(t, ts, `{"text": "some claim"}`)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	var out struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &out)
	if out.Error != "Model not available" {
		t.Errorf("error = %q", out.Error)
	}
}

func TestHandleMap(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	// 6 claims in Kerala (moderate), 11 in Bihar (high), 5 in Goa (low)
	for i := 0; i < 6; i++ {
		_ = st.AppendFakeClaim(ctx, "Kerala", "claim")
	}
	for i := 0; i < 11; i++ {
		_ = st.AppendFakeClaim(ctx, "Bihar", "claim")
	}
	for i := 0; i < 5; i++ {
		_ = st.AppendFakeClaim(ctx, "Goa", "claim")
	}
	_ = st.AppendFakeClaim(ctx, region.GeneralRegion, "claim")
	ts := newTestServer(t, &fakeChecker{}, st)

	resp, err := http.Get(ts.URL + "/api/v1/map")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out map[string]model.RegionStats
	decodeBody(t, resp, &out)

	checks := []struct {
		region string
		fake   int
		status string
	}{
		{"Kerala", 6, "moderate"},
		{"Bihar", 11, "high"},
		{"Goa", 5, "low"},
		{"Punjab", 0, "low"},
		{"General", 1, "low"},
	}
	for _, c := range checks {
		got, ok := out[c.region]
		if !ok {
			t.Errorf("region %s missing from map", c.region)
			continue
		}
		if got.Fake != c.fake || got.Status != c.status {
			t.Errorf("%s = %+v, want fake=%d status=%s", c.region, got, c.fake, c.status)
		}
	}

	india, ok := out["India"]
	if !ok {
		t.Fatal("India aggregate row missing")
	}
	if india.Fake != 23 {
		t.Errorf("India total = %d, want 23", india.Fake)
	}
}

func TestHandleRegionClaims(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	_ = st.AppendFakeClaim(ctx, "Kerala", "flood photos are from 2013")
	_ = st.AppendFakeClaim(ctx, "Kerala", "schools closed forever")
	ts := newTestServer(t, &fakeChecker{}, st)

	resp, err := http.Get(ts.URL + "/api/v1/state/Kerala")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var out struct {
		State    string   `json:"state"`
		FakeNews []string `json:"fake_news"`
	}
	decodeBody(t, resp, &out)
	if out.State != "Kerala" || len(out.FakeNews) != 2 {
		t.Errorf("response = %+v", out)
	}

	// unknown region answers with an empty list, not a 404
	resp, err = http.Get(ts.URL + "/api/v1/state/Atlantis")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	decodeBody(t, resp, &out)
	if out.FakeNews == nil || len(out.FakeNews) != 0 {
		t.Errorf("fake_news = %v, want empty list", out.FakeNews)
	}
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t, &fakeChecker{}, store.NewMemoryStore())

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out map[string]string
	decodeBody(t, resp, &out)
	if out["status"] != "OK" {
		t.Errorf("status body = %v", out)
	}
}
