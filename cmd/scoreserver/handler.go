package main

import (
	"encoding/json"
	"net/http"

	"github.com/automoto/songrunner/shared/messages"
	"github.com/rs/zerolog/log"
)

const maxRequestBody = 1 << 20 // 1 MB, a long song is a few thousand events

func SubmitRun(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var sub messages.RunSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if sub.Email == "" || sub.Name == "" {
			http.Error(w, `{"error":"email and name required"}`, http.StatusBadRequest)
			return
		}
		if err := sub.Validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		result := store.Submit(sub)
		log.Info().
			Str("name", sub.Name).
			Str("song", sub.Run.SongKey).
			Str("part", sub.Run.PartKey).
			Int("score", result.Score).
			Int("hits", result.Hits).
			Int("misses", result.Misses).
			Msg("run submitted")

		_ = json.NewEncoder(w).Encode(result)
	}
}

func Leaderboard(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		song, part := r.URL.Query().Get("song"), r.URL.Query().Get("part")
		if song == "" || part == "" {
			writeError(w, http.StatusBadRequest, "song and part required")
			return
		}

		if err := json.NewEncoder(w).Encode(store.Leaderboard(song, part)); err != nil {
			log.Warn().Err(err).Msg("leaderboard encode error")
		}
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
