package systems

import (
	"context"
	"time"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/rs/zerolog/log"
)

// Submitter sends a finished run to the scoring service.
type Submitter interface {
	SubmitRun(ctx context.Context, sub messages.RunSubmission) (*messages.SubmitResult, error)
}

// StartReport submits sub in the background. The result is picked up by
// PollReport on the game goroutine; until then the local score is shown.
func StartReport(ctx context.Context, report *components.ReportData, client Submitter, sub messages.RunSubmission) {
	if report.Status != components.ReportIdle {
		return
	}
	if client == nil {
		report.Status = components.ReportSkipped
		log.Info().Msg("no scoring service configured, keeping local score")
		return
	}
	if sub.Email == "" || sub.Name == "" {
		report.Status = components.ReportSkipped
		log.Warn().Msg("no player identity, keeping local score")
		return
	}
	if err := sub.Validate(); err != nil {
		report.Status = components.ReportSkipped
		report.Err = err
		log.Warn().Err(err).Msg("run not submitted")
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	report.Status = components.ReportPending
	done := make(chan components.ReportResult, 1)
	report.Done = done

	go func() {
		ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Network.SubmitTimeout*float64(time.Second)))
		defer cancel()

		res, err := client.SubmitRun(ctx, sub)
		done <- components.ReportResult{Result: res, Err: err}
	}()
}

// PollReport applies a finished submission, if there is one. It never blocks
// and reports whether the status changed.
func PollReport(report *components.ReportData) bool {
	if report.Status != components.ReportPending {
		return false
	}

	select {
	case r := <-report.Done:
		report.Done = nil
		if r.Err != nil || r.Result == nil {
			report.Status = components.ReportFailed
			report.Err = r.Err
			log.Error().Err(r.Err).Int("localScore", report.LocalScore).Msg("run submission failed, showing local score")
			return true
		}
		report.Status = components.ReportSubmitted
		report.ServerScore = r.Result.Score
		log.Info().Int("score", r.Result.Score).Int("localScore", report.LocalScore).Msg("run submitted")
		return true
	default:
		return false
	}
}

// RecordEndRun writes a run to history once: when its submission settles, or
// with the local score when the end screen is left before that.
func RecordEndRun(end *components.EndScreenData, leaving bool, record func(*components.EndScreenData)) {
	if end.Recorded || (!leaving && !end.Report.Settled()) {
		return
	}
	end.Recorded = true
	if record != nil {
		record(end)
	}
}
