package components

import (
	"github.com/automoto/songrunner/shared/messages"
	"github.com/yohamta/donburi"
)

type ReportStatus int

const (
	ReportIdle ReportStatus = iota
	ReportPending
	ReportSubmitted
	ReportFailed
	ReportSkipped // no identity or no scoring client
)

func (s ReportStatus) String() string {
	switch s {
	case ReportIdle:
		return "idle"
	case ReportPending:
		return "pending"
	case ReportSubmitted:
		return "submitted"
	case ReportFailed:
		return "failed"
	case ReportSkipped:
		return "skipped"
	}
	return "unknown"
}

// ReportResult is what the submit goroutine hands back to the game loop.
type ReportResult struct {
	Result *messages.SubmitResult
	Err    error
}

// ReportData tracks the end-of-run submission (singleton component).
type ReportData struct {
	Status      ReportStatus
	LocalScore  int
	ServerScore int
	Err         error
	Done        chan ReportResult // buffered; written once by the submit goroutine
}

// DisplayScore is the server score once confirmed, else the local score.
func (r *ReportData) DisplayScore() int {
	if r.Status == ReportSubmitted {
		return r.ServerScore
	}
	return r.LocalScore
}

// Settled reports whether no submission is in flight.
func (r *ReportData) Settled() bool { return r.Status != ReportPending }

var Report = donburi.NewComponentType[ReportData]()
