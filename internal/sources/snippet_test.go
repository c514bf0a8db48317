package sources

import "testing"

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "confirmed by officials", "confirmed by officials"},
		{"tags removed", "<b>vaccine</b> myth <i>debunked</i>", "vaccine myth debunked"},
		{"entities decoded", "cats &amp; dogs", "cats & dogs"},
		{"nested markup", "<p>a <span>b</span></p>", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.in); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
