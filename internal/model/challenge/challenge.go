package challenge

// Challenge categories.
const (
	CategoryMindfulness = "mindfulness"
	CategoryPhysical    = "physical"
	CategorySocial      = "social"
	CategoryLearning    = "learning"
)

// Challenge is one daily wellness activity worth points.
type Challenge struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	Duration    string `json:"duration"`
	Completed   bool   `json:"completed"`
}

// Stats tracks the gamification state shown in the header card. Level is
// derived from total points, one level per hundred.
type Stats struct {
	TotalPoints         int `json:"totalPoints"`
	CurrentStreak       int `json:"currentStreak"`
	ChallengesCompleted int `json:"challengesCompleted"`
	Level               int `json:"level"`
	LevelProgress       int `json:"levelProgress"`
	PointsToNextLevel   int `json:"pointsToNextLevel"`
}

// Progress summarises how much of today's list is done.
type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// Seed provides the default daily challenge list.
func Seed() []Challenge {
	return []Challenge{
		{
			ID:          1,
			Title:       "5-Minute Morning Meditation",
			Description: "Start your day with a peaceful 5-minute meditation session",
			Category:    CategoryMindfulness,
			Points:      20,
			Duration:    "5 mins",
		},
		{
			ID:          2,
			Title:       "Gratitude Journal Entry",
			Description: "Write down 3 things you're grateful for today",
			Category:    CategoryMindfulness,
			Points:      15,
			Duration:    "3 mins",
			Completed:   true,
		},
		{
			ID:          3,
			Title:       "Take 1000 Steps",
			Description: "Go for a short walk and get your body moving",
			Category:    CategoryPhysical,
			Points:      25,
			Duration:    "10 mins",
		},
		{
			ID:          4,
			Title:       "Compliment Someone",
			Description: "Make someone's day brighter with a genuine compliment",
			Category:    CategorySocial,
			Points:      30,
			Duration:    "1 min",
		},
		{
			ID:          5,
			Title:       "Learn Something New",
			Description: "Spend 10 minutes learning about a topic that interests you",
			Category:    CategoryLearning,
			Points:      25,
			Duration:    "10 mins",
		},
		{
			ID:          6,
			Title:       "Deep Breathing Exercise",
			Description: "Practice 4-7-8 breathing technique for stress relief",
			Category:    CategoryMindfulness,
			Points:      15,
			Duration:    "5 mins",
			Completed:   true,
		},
	}
}
