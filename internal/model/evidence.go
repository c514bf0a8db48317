package model

// ContextFlag classifies an authoritative evidence item by the lexical
// cues in its snippet. Items that never pass authority filtering stay
// unclassified.
type ContextFlag string

const (
	ContextUnclassified ContextFlag = ""          // Not (yet) authority-filtered
	ContextConfirmed    ContextFlag = "confirmed" // Authoritative, no debunking language
	ContextMyth         ContextFlag = "myth"      // Authoritative, snippet uses debunking language
)

// EvidenceItem is one external reference potentially bearing on a claim.
// URL is the identity of the item: the aggregator deduplicates on it, and
// items without one are discarded at the connector boundary.
type EvidenceItem struct {
	URL         string      `json:"url"`
	Publisher   string      `json:"publisher"`
	Snippet     string      `json:"snippet"`
	ContextFlag ContextFlag `json:"context_flag,omitempty"`
}
