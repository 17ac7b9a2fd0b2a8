package chat

import "strings"

// Rule pairs trigger keywords with a canned supportive reply. Rules are
// evaluated top-to-bottom and the first match wins, so the slice order is a
// policy decision: text mentioning both stress and exams resolves to
// whichever category appears earlier.
type Rule struct {
	Keywords []string
	Reply    string
}

// DefaultRules returns the canned response table in its fixed priority
// order: anxiety, sadness, stress, academics.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"anxious", "worry"},
			Reply:    "I understand you're feeling anxious. Try taking slow, deep breaths with me. Breathe in for 4 counts, hold for 4, breathe out for 4. Remember, anxiety is temporary and you're stronger than it feels right now.",
		},
		{
			Keywords: []string{"sad", "depressed"},
			Reply:    "I hear that you're feeling sad. It's okay to feel this way - your emotions are valid. Sometimes talking about what's bothering you can help. Would you like to share what's making you feel this way?",
		},
		{
			Keywords: []string{"stress", "overwhelm"},
			Reply:    "Stress can feel overwhelming, but you're taking a positive step by reaching out. Try breaking down your tasks into smaller, manageable pieces. What's the most urgent thing you need to handle today?",
		},
		{
			Keywords: []string{"exam", "study"},
			Reply:    "Academic pressure is common among students. Remember that your worth isn't determined by grades. Consider creating a study schedule, taking regular breaks, and practicing self-compassion.",
		},
	}
}

// FallbackReply is used when no rule matches.
const FallbackReply = "Thank you for sharing that with me. Your feelings are important and valid. I'm here to support you through this. Can you tell me more about how I can help you today?"

// Greeting opens every new session.
const Greeting = "Hello! I'm Maya, your mental wellness companion. I'm here to listen and support you. How are you feeling today?"

// CrisisReply is the fixed escalation template appended whenever the
// detector flags a submission, with the hotline block rendered from
// configuration.
const CrisisReply = "I'm really concerned about what you're going through. Your feelings are valid, and I want to help. Please consider reaching out to a professional counsellor or crisis helpline immediately. You don't have to face this alone."

// DefaultHotlines lists the emergency contacts surfaced alongside the
// crisis reply.
func DefaultHotlines() []string {
	return []string{
		"iCall: 9152987821",
		"Vandrevala Foundation: 9999666555",
		"Emergency: 112",
	}
}

// Responder selects a canned reply for a non-crisis submission.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder builds a responder over an ordered rule table.
func NewResponder(rules []Rule, fallback string) *Responder {
	return &Responder{rules: append([]Rule(nil), rules...), fallback: fallback}
}

// Reply returns the first matching rule's response, or the fallback when no
// keyword is contained in the lower-cased text.
func (r *Responder) Reply(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lower, keyword) {
				return rule.Reply
			}
		}
	}
	return r.fallback
}
