package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/automoto/songrunner/network"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submission(email, name string, hits, misses int) messages.RunSubmission {
	sub := messages.RunSubmission{
		Email: email,
		Name:  name,
		Run:   messages.RunData{SongKey: "lucia", PartKey: "alto"},
	}
	for i := range hits {
		sub.Run.Events = append(sub.Run.Events, messages.NoteEvent{TimeMs: float64(i), Lane: 1, Type: messages.Hit})
	}
	for i := range misses {
		sub.Run.Events = append(sub.Run.Events, messages.NoteEvent{TimeMs: float64(hits + i), Lane: 2, Type: messages.Miss})
	}
	return sub
}

func TestSubmitAndLeaderboardThroughClient(t *testing.T) {
	srv := httptest.NewServer(NewMux(NewStore(100)))
	defer srv.Close()
	client := network.NewClient(srv.URL)
	ctx := context.Background()

	res, err := client.SubmitRun(ctx, submission("ana@example.com", "Ana", 5, 2))
	require.NoError(t, err)
	assert.Equal(t, messages.SubmitResult{Score: 500, Hits: 5, Misses: 2}, *res)

	_, err = client.SubmitRun(ctx, submission("bo@example.com", "Bo", 7, 0))
	require.NoError(t, err)
	_, err = client.SubmitRun(ctx, submission("ana@example.com", "Ana", 3, 4))
	require.NoError(t, err)

	board, err := client.Leaderboard(ctx, "lucia", "alto")
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Bo", board[0].Name)
	assert.Equal(t, 700, board[0].Score)
	assert.Equal(t, 500, board[1].Score, "a worse run does not replace the best")

	empty, err := client.Leaderboard(ctx, "lucia", "tenor")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSubmitRejectsBadPayloads(t *testing.T) {
	mux := NewMux(NewStore(100))

	cases := map[string]struct {
		body string
		code int
	}{
		"not json":     {`{`, http.StatusBadRequest},
		"no identity":  {`{"run":{"songKey":"a","partKey":"b","events":[]}}`, http.StatusBadRequest},
		"no song":      {`{"email":"a@b","name":"A","run":{"partKey":"b"}}`, http.StatusUnprocessableEntity},
		"unknown type": {`{"email":"a@b","name":"A","run":{"songKey":"a","partKey":"b","events":[{"timeMs":1,"lane":1,"type":"GOOD"}]}}`, http.StatusUnprocessableEntity},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/runs/submit", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestClientSeesRejectionAsStatusError(t *testing.T) {
	srv := httptest.NewServer(NewMux(NewStore(100)))
	defer srv.Close()

	_, err := network.NewClient(srv.URL).SubmitRun(context.Background(), submission("", "", 1, 0))
	var serr *network.StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadRequest, serr.Code)
}

func TestLeaderboardRequiresSongAndPart(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMux(NewStore(100)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard?song=lucia", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMux(NewStore(100)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
