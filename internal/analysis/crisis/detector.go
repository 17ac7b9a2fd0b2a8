package crisis

import "strings"

// Result carries the classification of a single utterance.
type Result struct {
	Crisis bool
	Phrase string
}

// DefaultPhrases returns the configured crisis vocabulary. Matching is by
// plain substring containment: the product team chose recall over precision
// here, and tightening it to word boundaries could suppress true detections,
// so the rule must not be changed casually.
func DefaultPhrases() []string {
	return []string{
		"suicide",
		"kill myself",
		"end it all",
		"hurt myself",
		"self harm",
		"die",
		"no point living",
	}
}

// Detector classifies free text against a fixed phrase list. It holds no
// state beyond its configuration and is safe for concurrent use.
type Detector struct {
	phrases []string
}

// NewDetector builds a detector for the given phrases. Phrases are lowered
// once up front; empty phrases are dropped so they cannot match everything.
func NewDetector(phrases []string) *Detector {
	cleaned := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		cleaned = append(cleaned, phrase)
	}
	return &Detector{phrases: cleaned}
}

// Detect reports whether the text contains any configured phrase as a
// case-insensitive substring. Empty or whitespace-only input never matches.
// It never fails, whatever the input.
func (d *Detector) Detect(text string) Result {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if normalized == "" {
		return Result{}
	}

	for _, phrase := range d.phrases {
		if strings.Contains(normalized, phrase) {
			return Result{Crisis: true, Phrase: phrase}
		}
	}
	return Result{}
}
