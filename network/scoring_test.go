package network

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/automoto/songrunner/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRun = messages.RunSubmission{
	Email: "ana@example.com",
	Name:  "Ana",
	Run: messages.RunData{
		SongKey: "lucia",
		PartKey: "soprano",
		Events: []messages.NoteEvent{
			{TimeMs: 1000, Lane: 1, Type: messages.Hit},
			{TimeMs: 1500, Lane: 2, Type: messages.Miss},
		},
	},
}

func TestSubmitRunPostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/runs/submit", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "ana@example.com", raw["email"])
		run := raw["run"].(map[string]any)
		assert.Equal(t, "lucia", run["songKey"])
		assert.Equal(t, "soprano", run["partKey"])
		events := run["events"].([]any)
		require.Len(t, events, 2)
		first := events[0].(map[string]any)
		assert.Equal(t, 1000.0, first["timeMs"])
		assert.Equal(t, "HIT", first["type"])

		_, _ = w.Write([]byte(`{"score":100,"hits":1,"misses":1,"rank":3}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL+"/").SubmitRun(context.Background(), sampleRun)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 1, res.Misses)
}

func TestSubmitRunNon2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad run"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).SubmitRun(context.Background(), sampleRun)
	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusUnprocessableEntity, serr.Code)
	assert.Contains(t, serr.Body, "bad run")
}

func TestSubmitRunHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client hanging up and
		// cancels r.Context(); otherwise srv.Close blocks forever.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewClient(srv.URL).SubmitRun(ctx, sampleRun)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitRunBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).SubmitRun(context.Background(), sampleRun)
	assert.ErrorContains(t, err, "decode response")
}

func TestLeaderboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaderboard", r.URL.Path)
		assert.Equal(t, "lucia", r.URL.Query().Get("song"))
		assert.Equal(t, "alto", r.URL.Query().Get("part"))
		_, _ = w.Write([]byte(`[{"name":"Ana","score":900,"songKey":"lucia","partKey":"alto"}]`))
	}))
	defer srv.Close()

	entries, err := NewClient(srv.URL).Leaderboard(context.Background(), "lucia", "alto")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, messages.LeaderboardEntry{Name: "Ana", Score: 900, SongKey: "lucia", PartKey: "alto"}, entries[0])
}
