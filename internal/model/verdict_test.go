package model

import "testing"

func TestFakeStatus(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "low"},
		{5, "low"},
		{6, "moderate"},
		{10, "moderate"},
		{11, "high"},
		{100, "high"},
	}
	for _, tt := range tests {
		if got := FakeStatus(tt.count); got != tt.want {
			t.Errorf("FakeStatus(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestNewRegionStats(t *testing.T) {
	s := NewRegionStats(7)
	if s.Fake != 7 || s.Total != 7 || s.Status != "moderate" {
		t.Errorf("unexpected stats: %+v", s)
	}
}

func TestDefaultConfigIsServable(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Sources.Timeout <= 0 {
		t.Error("source timeout must be positive")
	}
	if cfg.Sources.PageSize <= 0 {
		t.Error("page size must be positive")
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		t.Error("server timeouts must be positive")
	}
	if len(DefaultAuthoritativeDomains()) == 0 {
		t.Error("authoritative domain list must not be empty")
	}
	if len(DefaultMythKeywords()) == 0 {
		t.Error("myth keyword list must not be empty")
	}
}
