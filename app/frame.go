package app

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// FrameGuard recovers panics raised while running a frame so the game loop
// keeps going. Only Limit panicking frames in a row stop the game; zero
// means never.
type FrameGuard struct {
	Limit       int
	consecutive int
}

// Run calls frame and recovers a panic from it. It returns an error once
// Limit frames in a row have panicked.
func (g *FrameGuard) Run(frame func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			g.consecutive = 0
			return
		}
		g.consecutive++
		log.Error().
			Interface("panic", r).
			Bytes("stack", debug.Stack()).
			Int("consecutive", g.consecutive).
			Msg("frame panicked, skipping it")
		if g.Limit > 0 && g.consecutive >= g.Limit {
			err = fmt.Errorf("%d frames in a row panicked, last: %v", g.consecutive, r)
		}
	}()
	frame()
	return nil
}
