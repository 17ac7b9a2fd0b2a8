package forum

import "time"

// Categories lists the post categories offered by the client.
func Categories() []string {
	return []string{"Academic Stress", "Career Anxiety", "Relationships", "Self Care", "General"}
}

// Post is an anonymous peer-support forum entry.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Likes     int       `json:"likes"`
	Replies   int       `json:"replies"`
	Liked     bool      `json:"isLiked"`
	CreatedAt time.Time `json:"createdAt"`
}
