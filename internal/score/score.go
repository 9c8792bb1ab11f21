// Package score tracks distance, perfect-jump streaks and bonus points, and
// keeps the best score in an injected key-value store.
//
// Bonus rule: a jump is perfect when the player's clearance over the
// obstacle's top edge is strictly inside (MinClearance, MaxClearance). Once
// StreakThreshold perfect jumps have been made in a row, every further
// perfect jump (including the one that reaches the threshold) raises the
// streak by one and awards BaseBonus * streak. The perfect-jump counter is
// not reset when a bonus is paid, only when a jump is not perfect.
package score

import (
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Score accumulates points for a single run and the best score across runs.
type Score struct {
	cfg    config.Score
	store  core.KV
	logger *log.Logger

	distance     float64 // Raw distance; floored only on read
	perfectJumps int
	perfectTotal int
	streak       int
	maxStreak    int
	bonus        int
	credited     map[uint64]struct{}

	highScore int
}

// New creates a score tracker and loads the best score from store.
// A nil store or logger is allowed. A missing, unreadable or malformed
// stored value counts as 0.
func New(cfg config.Score, store core.KV, logger *log.Logger) *Score {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Score{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		credited: make(map[uint64]struct{}),
	}
	s.highScore = s.loadHighScore()
	return s
}

// UpdateDistance adds traveled distance. Negative deltas are ignored.
func (s *Score) UpdateDistance(delta float64) {
	if delta > 0 {
		s.distance += delta
	}
}

// Distance returns the scored distance, floor(raw / DistanceScale).
func (s *Score) Distance() int {
	return int(math.Floor(s.distance / s.cfg.DistanceScale))
}

// RegisterJump evaluates a jump over obstacle o made with the player's bottom
// edge at playerY. Each obstacle is credited at most once; repeated or nil
// obstacles are ignored. It returns true if the jump was perfect.
func (s *Score) RegisterJump(o *core.Obstacle, playerY float64) bool {
	if o == nil {
		return false
	}
	if _, done := s.credited[o.ID]; done {
		return false
	}
	s.credited[o.ID] = struct{}{}

	clearance := o.Top() - playerY
	if clearance <= s.cfg.MinClearance || clearance >= s.cfg.MaxClearance {
		s.perfectJumps = 0
		s.streak = 0
		return false
	}

	s.perfectJumps++
	s.perfectTotal++
	if s.perfectJumps >= s.cfg.StreakThreshold {
		s.streak++
		s.bonus += s.cfg.BaseBonus * s.streak
		s.maxStreak = max(s.maxStreak, s.streak)
	}
	return true
}

// Total returns the run's score: scored distance plus bonus points.
func (s *Score) Total() int {
	return s.Distance() + s.bonus
}

// SaveHighScore records the current total as the best score if it beats the
// previous best. It returns true on a new record. Store failures are logged
// and otherwise ignored.
//
// The stored value is re-read first, so a best written by another game
// sharing the store is never overwritten with a lower total.
func (s *Score) SaveHighScore() bool {
	s.highScore = max(s.highScore, s.loadHighScore())

	total := s.Total()
	if total <= s.highScore {
		return false
	}
	s.highScore = total

	if s.store != nil {
		if err := s.store.Set(s.cfg.StorageKey, strconv.Itoa(total)); err != nil {
			s.logger.Warn("could not persist high score", "key", s.cfg.StorageKey, "error", err)
		}
	}
	return true
}

// ObserveHighScore raises the best score to v when another player has
// already stored a higher one. Nothing is written to the store.
func (s *Score) ObserveHighScore(v int) bool {
	if v <= s.highScore {
		return false
	}
	s.highScore = v
	return true
}

func (s *Score) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	raw, err := s.store.Get(s.cfg.StorageKey)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			s.logger.Warn("could not read high score", "key", s.cfg.StorageKey, "error", err)
		}
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		s.logger.Warn("ignoring malformed high score", "key", s.cfg.StorageKey, "value", raw)
		return 0
	}
	return v
}

// Reset clears the run. The best score is kept.
func (s *Score) Reset() {
	s.distance = 0
	s.perfectJumps = 0
	s.perfectTotal = 0
	s.streak = 0
	s.maxStreak = 0
	s.bonus = 0
	clear(s.credited)
}

// HighScore returns the best score seen so far.
func (s *Score) HighScore() int { return s.highScore }

// PerfectJumps returns the current run of consecutive perfect jumps.
func (s *Score) PerfectJumps() int { return s.perfectJumps }

// PerfectTotal returns all perfect jumps made this run.
func (s *Score) PerfectTotal() int { return s.perfectTotal }

// Streak returns the current bonus streak.
func (s *Score) Streak() int { return s.streak }

// MaxStreak returns the highest streak reached this run.
func (s *Score) MaxStreak() int { return s.maxStreak }

// Bonus returns the bonus points earned this run.
func (s *Score) Bonus() int { return s.bonus }
