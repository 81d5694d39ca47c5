package game

import (
	"log/slog"
	"time"

	"asteroids/internal/system"

	"github.com/google/uuid"
)

// RunLog records statistics gathered during one run. A run starts at
// launch or at a restart and ends at the next restart or at quit.
type RunLog struct {
	ID        uuid.UUID
	Started   time.Time
	Ticks     int
	Kills     int
	Splits    int
	ShipHits  int
	PeakScore int
}

func newRunLog(now time.Time) RunLog {
	return RunLog{ID: uuid.New(), Started: now}
}

// record folds one tick's collision report and score into the log.
func (r *RunLog) record(rep system.CollisionReport, score int) {
	r.Ticks++
	r.Kills += rep.Kills
	r.Splits += rep.Splits
	r.ShipHits += rep.ShipHits
	r.PeakScore = max(r.PeakScore, score)
}

// LogValue lets a RunLog be logged as one group.
func (r RunLog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", r.ID.String()),
		slog.Int("ticks", r.Ticks),
		slog.Int("kills", r.Kills),
		slog.Int("splits", r.Splits),
		slog.Int("ship_hits", r.ShipHits),
		slog.Int("peak_score", r.PeakScore),
		slog.Duration("duration", time.Since(r.Started).Round(time.Millisecond)),
	)
}
