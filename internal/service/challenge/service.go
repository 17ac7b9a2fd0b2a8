package challenge

import (
	"context"
	"errors"
	"sync"

	challengemodel "github.com/campuscare/maya/backend/internal/model/challenge"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrAlreadyCompleted  = errors.New("challenge already completed")
)

// pointsPerLevel converts accumulated points into the displayed level.
const pointsPerLevel = 100

// Service tracks daily challenges and the gamification counters in memory.
type Service struct {
	mu         sync.RWMutex
	challenges []challengemodel.Challenge
	points     int
	streak     int
	completed  int
}

// NewService returns a challenge service over the supplied daily list and
// starting counters.
func NewService(list []challengemodel.Challenge, points, streak, completed int) *Service {
	return &Service{
		challenges: append([]challengemodel.Challenge(nil), list...),
		points:     points,
		streak:     streak,
		completed:  completed,
	}
}

// List returns today's challenges.
func (s *Service) List(_ context.Context) []challengemodel.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]challengemodel.Challenge, len(s.challenges))
	copy(out, s.challenges)
	return out
}

// Complete marks a challenge done, awards its points, and bumps the streak.
// Completing an already-finished challenge is rejected so points cannot be
// farmed by repeat submissions.
func (s *Service) Complete(_ context.Context, id int) (challengemodel.Challenge, challengemodel.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.challenges {
		if s.challenges[i].ID != id {
			continue
		}
		if s.challenges[i].Completed {
			return challengemodel.Challenge{}, challengemodel.Stats{}, ErrAlreadyCompleted
		}
		s.challenges[i].Completed = true
		s.points += s.challenges[i].Points
		s.completed++
		s.streak++
		return s.challenges[i], s.statsLocked(), nil
	}
	return challengemodel.Challenge{}, challengemodel.Stats{}, ErrChallengeNotFound
}

// Stats returns the gamification counters.
func (s *Service) Stats(_ context.Context) challengemodel.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statsLocked()
}

// Progress summarises today's completion ratio.
func (s *Service) Progress(_ context.Context) challengemodel.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	done := 0
	for _, c := range s.challenges {
		if c.Completed {
			done++
		}
	}
	p := challengemodel.Progress{Completed: done, Total: len(s.challenges)}
	if p.Total > 0 {
		p.Percent = float64(done) / float64(p.Total) * 100
	}
	return p
}

// CompletedToday reports how many of today's challenges are done.
func (s *Service) CompletedToday() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	done := 0
	for _, c := range s.challenges {
		if c.Completed {
			done++
		}
	}
	return done
}

func (s *Service) statsLocked() challengemodel.Stats {
	progress := s.points % pointsPerLevel
	return challengemodel.Stats{
		TotalPoints:         s.points,
		CurrentStreak:       s.streak,
		ChallengesCompleted: s.completed,
		Level:               s.points/pointsPerLevel + 1,
		LevelProgress:       progress,
		PointsToNextLevel:   pointsPerLevel - progress,
	}
}
