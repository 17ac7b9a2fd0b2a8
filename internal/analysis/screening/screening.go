// Package screening scores the standard self-report instruments offered on
// the screening tools page. Scores are informational, not a diagnosis.
package screening

import "fmt"

// Instrument names a supported questionnaire.
type Instrument string

const (
	PHQ9 Instrument = "phq9"
	GAD7 Instrument = "gad7"
)

// Answer scale shared by both instruments: 0 "Not at all" through
// 3 "Nearly every day". Unanswered questions are submitted as -1 and score
// zero, matching the client behavior.
const (
	Unanswered = -1
	MaxAnswer  = 3
)

var questions = map[Instrument][]string{
	PHQ9: {
		"Little interest or pleasure in doing things",
		"Feeling down, depressed, or hopeless",
		"Trouble falling/staying asleep, or sleeping too much",
		"Feeling tired or having little energy",
		"Poor appetite or overeating",
		"Feeling bad about yourself — or that you are a failure",
		"Trouble concentrating on things",
		"Moving/speaking slowly or being restless",
		"Thoughts that you would be better off dead, or hurting yourself",
	},
	GAD7: {
		"Feeling nervous, anxious, or on edge",
		"Not being able to stop or control worrying",
		"Worrying too much about different things",
		"Trouble relaxing",
		"Being restless or unable to sit still",
		"Becoming easily annoyed or irritable",
		"Feeling afraid, as if something awful might happen",
	},
}

// Result is a scored questionnaire.
type Result struct {
	Instrument Instrument `json:"instrument"`
	Score      int        `json:"score"`
	Severity   string     `json:"severity"`
}

// Questions returns the question list for an instrument, or nil for an
// unknown one.
func Questions(i Instrument) []string {
	return append([]string(nil), questions[i]...)
}

// Score totals the answers for an instrument and bands the severity.
// The answer slice must be exactly one value per question, each within
// [-1, 3].
func Score(i Instrument, answers []int) (Result, error) {
	qs, ok := questions[i]
	if !ok {
		return Result{}, fmt.Errorf("unknown instrument %q", i)
	}
	if len(answers) != len(qs) {
		return Result{}, fmt.Errorf("%s expects %d answers, got %d", i, len(qs), len(answers))
	}

	total := 0
	for idx, a := range answers {
		if a < Unanswered || a > MaxAnswer {
			return Result{}, fmt.Errorf("answer %d out of range: %d", idx, a)
		}
		if a > 0 {
			total += a
		}
	}

	return Result{Instrument: i, Score: total, Severity: severity(i, total)}, nil
}

func severity(i Instrument, score int) string {
	if i == PHQ9 {
		switch {
		case score <= 4:
			return "Minimal Depression"
		case score <= 9:
			return "Mild Depression"
		case score <= 14:
			return "Moderate Depression"
		case score <= 19:
			return "Moderately Severe Depression"
		default:
			return "Severe Depression"
		}
	}
	switch {
	case score <= 4:
		return "Minimal Anxiety"
	case score <= 9:
		return "Mild Anxiety"
	case score <= 14:
		return "Moderate Anxiety"
	default:
		return "Severe Anxiety"
	}
}
