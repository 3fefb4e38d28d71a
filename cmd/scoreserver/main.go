// Command scoreserver is a local stand-in for the scoring service. It keeps
// runs in memory and scores 100 points per hit.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("scoreserver", "Local scoring service for songrunner runs.")
	port := app.Flag("port", "HTTP listen port").Default("8080").Short('p').Int()
	points := app.Flag("hit-points", "Points awarded per HIT").Default("100").Int()
	debug := app.Flag("debug", "Log every request").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Str("component", "scoreserver").Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	store := NewStore(*points)

	addr := fmt.Sprintf(":%d", *port)
	log.Info().Str("addr", addr).Int("hitPoints", *points).Msg("starting")
	if err := http.ListenAndServe(addr, NewMux(store)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// NewMux wires the service's routes.
func NewMux(store *Store) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /runs/submit", SubmitRun(store))
	mux.HandleFunc("GET /leaderboard", Leaderboard(store))
	mux.HandleFunc("GET /health", Health())
	return mux
}
