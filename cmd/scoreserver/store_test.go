package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with -race: an equal score renames the kept best while boards are read.
func TestLeaderboardWhileSubmitting(t *testing.T) {
	store := NewStore(100)
	store.Submit(submission("ana@example.com", "Ana", 3, 0))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 500 {
			store.Submit(submission("ana@example.com", fmt.Sprintf("Ana %d", i), 3, 0))
		}
	}()
	go func() {
		defer wg.Done()
		for range 500 {
			board := store.Leaderboard("lucia", "alto")
			assert.Len(t, board, 1)
		}
	}()
	wg.Wait()

	board := store.Leaderboard("lucia", "alto")
	require.Len(t, board, 1)
	assert.Equal(t, "Ana 499", board[0].Name)
	assert.Equal(t, 300, board[0].Score)
}

func TestLeaderboardTieKeepsEarlierRun(t *testing.T) {
	store := NewStore(100)
	store.Submit(submission("bo@example.com", "Bo", 2, 0))
	store.Submit(submission("ana@example.com", "Ana", 2, 0))
	store.Submit(submission("cy@example.com", "Cy", 4, 0))

	board := store.Leaderboard("lucia", "alto")
	require.Len(t, board, 3)
	assert.Equal(t, []string{"Cy", "Bo", "Ana"}, []string{board[0].Name, board[1].Name, board[2].Name})
}
