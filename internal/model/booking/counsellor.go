package booking

import "time"

// Counsellor describes one bookable counselling slot for the day.
type Counsellor struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Rating         float64  `json:"rating"`
	Experience     string   `json:"experience"`
	Time           string   `json:"time"`
	Available      bool     `json:"available"`
	Languages      []string `json:"languages"`
}

// Confirmation is returned when a slot is successfully booked.
type Confirmation struct {
	Reference    string    `json:"reference"`
	CounsellorID int       `json:"counsellorId"`
	Counsellor   string    `json:"counsellor"`
	Time         string    `json:"time"`
	BookedAt     time.Time `json:"bookedAt"`
}

// Seed provides the default counsellor roster for the MVP.
func Seed() []Counsellor {
	return []Counsellor{
		{
			ID:             1,
			Name:           "Dr. Priya Sharma",
			Specialization: "Student Anxiety & Depression",
			Rating:         4.8,
			Experience:     "8 years",
			Time:           "10:00 AM - 11:00 AM",
			Available:      true,
			Languages:      []string{"Hindi", "English"},
		},
		{
			ID:             2,
			Name:           "Dr. Rajesh Kumar",
			Specialization: "Academic Stress Management",
			Rating:         4.9,
			Experience:     "12 years",
			Time:           "2:00 PM - 3:00 PM",
			Available:      true,
			Languages:      []string{"Hindi", "English", "Punjabi"},
		},
		{
			ID:             3,
			Name:           "Dr. Ananya Patel",
			Specialization: "Relationship & Family Issues",
			Rating:         4.7,
			Experience:     "6 years",
			Time:           "4:00 PM - 5:00 PM",
			Available:      false,
			Languages:      []string{"Gujarati", "English", "Hindi"},
		},
		{
			ID:             4,
			Name:           "Dr. Ravi Nair",
			Specialization: "Career Counselling & Self-esteem",
			Rating:         4.6,
			Experience:     "10 years",
			Time:           "5:00 PM - 6:00 PM",
			Available:      true,
			Languages:      []string{"Malayalam", "English", "Hindi"},
		},
	}
}
