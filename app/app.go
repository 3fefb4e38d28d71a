// Package app holds the long-lived services scenes share: the song registry,
// saved settings, run history and the scoring client. main builds one Context
// and hands it to every scene.
package app

import (
	"context"

	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/history"
	"github.com/automoto/songrunner/network"
	"github.com/automoto/songrunner/persistence"
	"github.com/automoto/songrunner/systems"
	"github.com/rs/zerolog/log"
)

type Context struct {
	Ctx      context.Context
	Registry *config.SongRegistry
	Store    *persistence.Store
	History  *history.DB     // nil disables personal bests
	Scoring  *network.Client // nil plays offline
}

// Submitter returns the scoring client, or a nil interface when offline.
func (a *Context) Submitter() systems.Submitter {
	if a.Scoring == nil {
		return nil
	}
	return a.Scoring
}

// Base is the context long-lived work runs under.
func (a *Context) Base() context.Context {
	if a.Ctx == nil {
		return context.Background()
	}
	return a.Ctx
}

// RecordRun stores a finished run and returns the personal best of its part,
// this run included. Storage failures are logged; ok is false then.
func (a *Context) RecordRun(summary events.RunSummary, report components.ReportData) (best int, ok bool) {
	if a.History == nil {
		return 0, false
	}
	entry := history.Entry{
		Song:       summary.SongKey,
		Part:       summary.PartKey,
		LocalScore: report.LocalScore,
		Hits:       summary.Hits,
		Misses:     summary.Misses,
	}
	if report.Status == components.ReportSubmitted {
		server := report.ServerScore
		entry.ServerScore = &server
	}

	ctx := a.Base()
	if err := a.History.Record(ctx, entry); err != nil {
		log.Warn().Err(err).Str("song", summary.SongKey).Str("part", summary.PartKey).Msg("could not record run")
		return 0, false
	}
	bestEntry, found, err := a.History.Best(ctx, summary.SongKey, summary.PartKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not read personal best")
		return 0, false
	}
	return bestEntry.Score(), found
}

// RecentScores returns the scores of the latest runs of a part, newest
// first. It is empty without history or on a storage failure.
func (a *Context) RecentScores(song, part string, limit int) []int {
	if a.History == nil {
		return nil
	}
	runs, err := a.History.Recent(a.Base(), song, part, limit)
	if err != nil {
		log.Warn().Err(err).Str("song", song).Str("part", part).Msg("could not read recent runs")
		return nil
	}
	scores := make([]int, len(runs))
	for i, r := range runs {
		scores[i] = r.Score()
	}
	return scores
}

// Close releases the history database.
func (a *Context) Close() {
	if a.History == nil {
		return
	}
	if err := a.History.Close(); err != nil {
		log.Warn().Err(err).Msg("closing run history")
	}
}
