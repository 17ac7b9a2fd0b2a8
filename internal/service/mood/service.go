package mood

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	moodmodel "github.com/campuscare/maya/backend/internal/model/mood"
)

var (
	ErrUnknownMood     = errors.New("unknown mood")
	ErrLevelOutOfRange = errors.New("level must be between 1 and 10")
)

// Service records daily mood logs in memory and aggregates the weekly
// overview.
type Service struct {
	mu      sync.RWMutex
	entries []moodmodel.Entry
}

// NewService returns a mood service preloaded with the supplied history,
// oldest first.
func NewService(seed []moodmodel.Entry) *Service {
	return &Service{entries: append([]moodmodel.Entry(nil), seed...)}
}

// Seed provides the sample week of history shipped with the MVP. Dates are
// offsets from now so the entries always land inside the weekly window.
func Seed() []moodmodel.Entry {
	day := func(daysAgo int) time.Time {
		return time.Now().UTC().AddDate(0, 0, -daysAgo)
	}
	return []moodmodel.Entry{
		{ID: uuid.NewString(), Date: day(6), Mood: moodmodel.Neutral, Energy: 7, Stress: 4},
		{ID: uuid.NewString(), Date: day(5), Mood: moodmodel.Happy, Energy: 8, Stress: 2},
		{ID: uuid.NewString(), Date: day(4), Mood: moodmodel.Sad, Energy: 3, Stress: 7},
		{ID: uuid.NewString(), Date: day(3), Mood: moodmodel.Excited, Energy: 9, Stress: 2},
		{ID: uuid.NewString(), Date: day(2), Mood: moodmodel.Anxious, Energy: 4, Stress: 8},
		{ID: uuid.NewString(), Date: day(1), Mood: moodmodel.Neutral, Energy: 6, Stress: 5},
		{ID: uuid.NewString(), Date: day(0), Mood: moodmodel.Happy, Energy: 8, Stress: 3},
	}
}

// Log validates and records one mood entry.
func (s *Service) Log(_ context.Context, mood string, energy, stress int, note string) (moodmodel.Entry, error) {
	valid := false
	for _, name := range moodmodel.Names() {
		if mood == name {
			valid = true
			break
		}
	}
	if !valid {
		return moodmodel.Entry{}, ErrUnknownMood
	}
	if energy < 1 || energy > 10 || stress < 1 || stress > 10 {
		return moodmodel.Entry{}, ErrLevelOutOfRange
	}

	entry := moodmodel.Entry{
		ID:     uuid.NewString(),
		Date:   time.Now().UTC(),
		Mood:   mood,
		Energy: energy,
		Stress: stress,
		Note:   note,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	return entry, nil
}

// History returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (s *Service) History(_ context.Context, limit int) []moodmodel.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]moodmodel.Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Stats aggregates the trailing seven days: good days are happy or excited,
// averages are rounded to one decimal like the client displays them. Older
// entries stay in History but never skew the weekly card.
func (s *Service) Stats(_ context.Context) moodmodel.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -7)

	var stats moodmodel.Stats
	energy, stress := 0, 0
	for _, e := range s.entries {
		if e.Date.Before(cutoff) {
			continue
		}
		stats.TotalEntries++
		if e.Mood == moodmodel.Happy || e.Mood == moodmodel.Excited {
			stats.GoodDays++
		}
		energy += e.Energy
		stress += e.Stress
	}
	if stats.TotalEntries == 0 {
		return stats
	}

	n := float64(stats.TotalEntries)
	stats.AvgEnergy = math.Round(float64(energy)/n*10) / 10
	stats.AvgStress = math.Round(float64(stress)/n*10) / 10
	return stats
}
