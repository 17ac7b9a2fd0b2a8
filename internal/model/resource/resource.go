package resource

// Resource types.
const (
	TypeVideo = "video"
	TypeGuide = "guide"
	TypeAudio = "audio"
)

// Resource is one self-help item in the library.
type Resource struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Duration    string `json:"duration"`
	Language    string `json:"language"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
}

// Seed provides the curated default library shipped with the MVP.
func Seed() []Resource {
	return []Resource{
		{
			ID:          1,
			Title:       "Breathing Exercises for Anxiety",
			Description: "Learn simple breathing techniques to calm your mind during stressful situations",
			Type:        TypeVideo,
			Duration:    "8 mins",
			Language:    "Hindi",
			Category:    "Anxiety Relief",
			Thumbnail:   "🧘",
		},
		{
			ID:          2,
			Title:       "Study-Life Balance Guide",
			Description: "Complete guide to managing academics while maintaining mental wellness",
			Type:        TypeGuide,
			Duration:    "15 min read",
			Language:    "English",
			Category:    "Academic Wellness",
			Thumbnail:   "📚",
		},
		{
			ID:          3,
			Title:       "Sleep Meditation for Students",
			Description: "Guided meditation to help you fall asleep peacefully after a stressful day",
			Type:        TypeAudio,
			Duration:    "20 mins",
			Language:    "Hindi",
			Category:    "Sleep & Recovery",
			Thumbnail:   "🌙",
		},
		{
			ID:          4,
			Title:       "Dealing with Exam Stress",
			Description: "Practical strategies to manage pressure during examination periods",
			Type:        TypeVideo,
			Duration:    "12 mins",
			Language:    "English",
			Category:    "Academic Wellness",
			Thumbnail:   "📝",
		},
		{
			ID:          5,
			Title:       "Building Self-Confidence",
			Description: "A comprehensive guide to boost your self-esteem and confidence",
			Type:        TypeGuide,
			Duration:    "10 min read",
			Language:    "Tamil",
			Category:    "Personal Growth",
			Thumbnail:   "💪",
		},
		{
			ID:          6,
			Title:       "Morning Affirmations",
			Description: "Start your day with positive thoughts and self-empowering statements",
			Type:        TypeAudio,
			Duration:    "5 mins",
			Language:    "English",
			Category:    "Personal Growth",
			Thumbnail:   "☀️",
		},
	}
}
