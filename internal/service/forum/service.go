package forum

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	forummodel "github.com/campuscare/maya/backend/internal/model/forum"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyPost    = errors.New("post title and content are required")
)

// Service keeps the peer-support board in memory. Posts are anonymous by
// design; moderation is out of scope for the MVP.
type Service struct {
	mu     sync.RWMutex
	posts  []forummodel.Post
	nextID int
}

// Seed provides the sample discussion shipped with the MVP. Timestamps are
// offsets from now so the board always looks recent.
func Seed() []forummodel.Post {
	now := time.Now().UTC()
	return []forummodel.Post{
		{
			ID:        1,
			Title:     "Dealing with exam stress - tips that worked for me",
			Content:   "Hey everyone! I wanted to share some techniques that really helped me manage my anxiety during board exams...",
			Author:    "StudyBuddy23",
			Category:  "Academic Stress",
			Likes:     12,
			Replies:   8,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        2,
			Title:     "Feeling overwhelmed by career choices",
			Content:   "I'm in my final year and everyone keeps asking what I want to do next. I honestly have no idea and it's making me panic...",
			Author:    "ConfusedSenior",
			Category:  "Career Anxiety",
			Likes:     18,
			Replies:   15,
			Liked:     true,
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:        3,
			Title:     "How to deal with toxic friends?",
			Content:   "Some of my friends have been really negative lately and it's affecting my mental health. Has anyone dealt with this?",
			Author:    "SeekerOfPeace",
			Category:  "Relationships",
			Likes:     25,
			Replies:   22,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        4,
			Title:     "Meditation helped me with anxiety - sharing my journey",
			Content:   "I started meditating 3 months ago and it's been life-changing. Here's how I got started and what I learned...",
			Author:    "MindfulStudent",
			Category:  "Self Care",
			Likes:     35,
			Replies:   12,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}

// NewService returns a forum preloaded with the supplied posts.
func NewService(seed []forummodel.Post) *Service {
	s := &Service{posts: append([]forummodel.Post(nil), seed...)}
	for _, p := range s.posts {
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	return s
}

// List returns all posts, newest first. Ordering is by timestamp rather
// than storage position so it holds for any seed order.
func (s *Service) List(_ context.Context) []forummodel.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]forummodel.Post, len(s.posts))
	copy(out, s.posts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Create publishes a new post. Title and content are required; a missing
// category lands in General and a missing author stays anonymous.
func (s *Service) Create(_ context.Context, title, content, author, category string) (forummodel.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return forummodel.Post{}, ErrEmptyPost
	}
	if category == "" {
		category = "General"
	}
	if author == "" {
		author = "Anonymous"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	post := forummodel.Post{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		Author:    author,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	s.posts = append(s.posts, post)
	return post, nil
}

// ToggleLike flips the like state of a post, adjusting the counter both ways.
func (s *Service) ToggleLike(_ context.Context, id int) (forummodel.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if s.posts[i].Liked {
			s.posts[i].Liked = false
			s.posts[i].Likes--
		} else {
			s.posts[i].Liked = true
			s.posts[i].Likes++
		}
		return s.posts[i], nil
	}
	return forummodel.Post{}, ErrPostNotFound
}

// Count reports the number of posts on the board.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
