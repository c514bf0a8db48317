package language

import "testing"

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "The health ministry announced a new vaccination drive across the country", "en"},
		{"spanish", "esta noticia es completamente falsa y debe ser verificada cuanto antes", "es"},
		{"french", "cette nouvelle est complètement fausse et doit être vérifiée rapidement", "fr"},
		{"hindi", "यह खबर झूठी है और इसे जानबूझकर फैलाया जा रहा है", "hi"},
		{"telugu", "ఈ వార్త నిజం కాదు మరియు దీనిని నమ్మవద్దు", "te"},
		{"tamil", "இந்த செய்தி உண்மையல்ல அதை நம்ப வேண்டாம்", "ta"},
		{"bengali", "এই খবরটি মিথ্যা এবং ইচ্ছাকৃতভাবে ছড়ানো হচ্ছে", "bn"},
		{"empty", "", "en"},
		{"digits only", "12345 67890", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Detected codes feed the wiki host template and the translator, so
// they must come out as canonical short tags, never raw 639-3 codes.
func TestDetect_CanonicalShortTags(t *testing.T) {
	d := NewDetector()

	for _, text := range []string{
		"esta noticia es completamente falsa y debe ser verificada cuanto antes",
		"यह खबर झूठी है और इसे जानबूझकर फैलाया जा रहा है",
	} {
		if got := d.Detect(text); len(got) != 2 {
			t.Errorf("Detect(%q) = %q, want a two-letter base tag", text, got)
		}
	}
}
