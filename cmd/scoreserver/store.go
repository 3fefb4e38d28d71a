package main

import (
	"cmp"
	"slices"
	"sync"

	"github.com/automoto/songrunner/shared/messages"
)

type boardKey struct {
	song, part string
}

type bestRun struct {
	messages.LeaderboardEntry
	email string
	seq   int
}

// Store keeps the best run per player for each song part.
type Store struct {
	mu        sync.RWMutex
	hitPoints int
	seq       int
	best      map[boardKey]map[string]*bestRun // keyed by email
}

func NewStore(hitPoints int) *Store {
	return &Store{
		hitPoints: hitPoints,
		best:      make(map[boardKey]map[string]*bestRun),
	}
}

// Score tallies a run's events.
func (s *Store) Score(run messages.RunData) messages.SubmitResult {
	var res messages.SubmitResult
	for _, e := range run.Events {
		switch e.Type {
		case messages.Hit:
			res.Hits++
			res.Score += s.hitPoints
		case messages.Miss:
			res.Misses++
		}
	}
	return res
}

// Submit scores sub and keeps it if it beats the player's best.
func (s *Store) Submit(sub messages.RunSubmission) messages.SubmitResult {
	res := s.Score(sub.Run)

	s.mu.Lock()
	defer s.mu.Unlock()

	key := boardKey{sub.Run.SongKey, sub.Run.PartKey}
	board, ok := s.best[key]
	if !ok {
		board = make(map[string]*bestRun)
		s.best[key] = board
	}
	s.seq++
	if prev, ok := board[sub.Email]; ok && prev.Score >= res.Score {
		prev.Name = sub.Name
		return res
	}
	board[sub.Email] = &bestRun{
		LeaderboardEntry: messages.LeaderboardEntry{
			Name:    sub.Name,
			Score:   res.Score,
			SongKey: sub.Run.SongKey,
			PartKey: sub.Run.PartKey,
		},
		email: sub.Email,
		seq:   s.seq,
	}
	return res
}

// Leaderboard returns each player's best, highest first; the earlier run wins
// a tie.
func (s *Store) Leaderboard(song, part string) []messages.LeaderboardEntry {
	s.mu.RLock()
	board := s.best[boardKey{song, part}]
	runs := make([]bestRun, 0, len(board))
	for _, r := range board {
		runs = append(runs, *r)
	}
	s.mu.RUnlock()

	slices.SortFunc(runs, func(a, b bestRun) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]messages.LeaderboardEntry, 0, len(runs))
	for _, r := range runs {
		out = append(out, r.LeaderboardEntry)
	}
	return out
}
