// Package region resolves claims to the administrative region they
// mention, for localized fake-claim tracking.
package region

import "strings"

// GeneralRegion is the fallback when no gazetteer entry matches.
const GeneralRegion = "General"

// gazetteer is the fixed list of recognized regions. Order matters:
// the first matching entry wins, so the scan is deterministic.
var gazetteer = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal", "Delhi", "Puducherry",
	"Chandigarh", "Dadra and Nagar Haveli", "Daman and Diu", "Lakshadweep",
	"Jammu and Kashmir", "Ladakh",
}

// Detector matches claim text against the gazetteer.
type Detector struct {
	names []string
}

// NewDetector creates a region detector over the built-in gazetteer.
func NewDetector() *Detector {
	return &Detector{names: gazetteer}
}

// Detect returns the first gazetteer region mentioned in the text
// (case-insensitive substring match), or GeneralRegion.
func (d *Detector) Detect(text string) string {
	if text == "" {
		return GeneralRegion
	}
	lowered := strings.ToLower(text)
	for _, name := range d.names {
		if strings.Contains(lowered, strings.ToLower(name)) {
			return name
		}
	}
	return GeneralRegion
}

// Regions returns the gazetteer in scan order.
func (d *Detector) Regions() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}
