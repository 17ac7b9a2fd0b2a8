package mood

import "time"

// Known mood names a student can pick when logging a day.
const (
	Happy   = "happy"
	Excited = "excited"
	Neutral = "neutral"
	Sad     = "sad"
	Anxious = "anxious"
)

// Names lists the selectable moods in display order.
func Names() []string {
	return []string{Happy, Excited, Neutral, Sad, Anxious}
}

// Entry is one daily mood log. Energy and stress are self-reported on a
// 1-10 scale.
type Entry struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Mood   string    `json:"mood"`
	Energy int       `json:"energy"`
	Stress int       `json:"stress"`
	Note   string    `json:"note,omitempty"`
}

// Stats aggregates a recent window of entries for the weekly overview card.
type Stats struct {
	TotalEntries int     `json:"totalEntries"`
	GoodDays     int     `json:"goodDays"`
	AvgEnergy    float64 `json:"avgEnergy"`
	AvgStress    float64 `json:"avgStress"`
}
