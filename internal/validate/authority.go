// Package validate filters aggregated evidence down to the
// authoritative subset and tags it with context flags.
package validate

import (
	"strings"

	"github.com/claimscope/claimscope/internal/model"
)

// AuthorityClassifier keeps only evidence from allowlisted domains and
// flags each survivor as confirming or debunking based on lexical cues
// in its snippet.
//
// Matching is a deliberate substring contract, not domain parsing: an
// item is authoritative if any allowlist entry appears anywhere in its
// URL (case-sensitive), and a survivor is myth-flagged if any keyword
// appears anywhere in its snippet (case-insensitive).
type AuthorityClassifier struct {
	domains      []string
	mythKeywords []string
}

// NewAuthorityClassifier creates a classifier from the configured
// allowlist and myth vocabulary. Nil slices fall back to the built-in
// defaults.
func NewAuthorityClassifier(cfg model.AuthorityConfig) *AuthorityClassifier {
	domains := cfg.Domains
	if domains == nil {
		domains = model.DefaultAuthoritativeDomains()
	}
	keywords := cfg.MythKeywords
	if keywords == nil {
		keywords = model.DefaultMythKeywords()
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	return &AuthorityClassifier{
		domains:      domains,
		mythKeywords: lowered,
	}
}

// Classify returns the authoritative subset of items, each tagged with
// a context flag. Items from non-allowlisted domains are dropped
// entirely, never merely left unflagged. A myth flag on an
// authoritative item still signals "this claim is false"; it is
// informational for display and does not feed the confidence formula.
func (a *AuthorityClassifier) Classify(items []model.EvidenceItem) []model.EvidenceItem {
	filtered := make([]model.EvidenceItem, 0, len(items))
	for _, item := range items {
		if !a.authoritative(item.URL) {
			continue
		}
		if a.debunking(item.Snippet) {
			item.ContextFlag = model.ContextMyth
		} else {
			item.ContextFlag = model.ContextConfirmed
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func (a *AuthorityClassifier) authoritative(url string) bool {
	for _, domain := range a.domains {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

func (a *AuthorityClassifier) debunking(snippet string) bool {
	snippet = strings.ToLower(snippet)
	for _, keyword := range a.mythKeywords {
		if strings.Contains(snippet, keyword) {
			return true
		}
	}
	return false
}
