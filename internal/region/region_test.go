package region

import "testing"

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"exact mention", "Flood warning issued in Kerala today", "Kerala"},
		{"case insensitive", "free electricity announced in TAMIL NADU", "Tamil Nadu"},
		{"no region", "WHO recommends vaccination", GeneralRegion},
		{"empty", "", GeneralRegion},
		{"first match wins", "Train from Assam to Bihar cancelled", "Assam"},
		{"union territory", "New policy for delhi schools", "Delhi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRegions_CopyIsolated(t *testing.T) {
	d := NewDetector()
	regions := d.Regions()
	if len(regions) == 0 {
		t.Fatal("gazetteer should not be empty")
	}
	regions[0] = "Mutated"
	if d.Regions()[0] == "Mutated" {
		t.Error("Regions must return a copy")
	}
}
