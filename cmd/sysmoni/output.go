package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/Dicklesworthstone/sysmoni/internal/logging"
	"github.com/Dicklesworthstone/sysmoni/internal/sampler"
)

// oneShot refreshes twice, interval apart, so CPU usage and network rates
// have a real interval behind them, then writes one JSON document. Failed
// subsystems are logged and keep their last values in the output.
func oneShot(ctx context.Context, s *sampler.Sampler, log logging.Logger, w io.Writer, interval time.Duration, sel sampler.Selection) error {
	if err := s.RefreshAll(ctx, sel); err != nil {
		log.Warn("priming refresh incomplete", logging.Err(err))
	}
	select {
	case <-time.After(interval):
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := s.RefreshAll(ctx, sel); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn("refresh incomplete", logging.Err(err))
	}
	snap := s.Snapshot()
	snap.Interval = interval
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// stream writes one NDJSON line per interval until ctx is done.
func stream(ctx context.Context, s *sampler.Sampler, w io.Writer, interval time.Duration, sel sampler.Selection) error {
	enc := json.NewEncoder(w)
	for snap := range s.Stream(ctx, interval, sel) {
		if err := enc.Encode(snap); err != nil {
			return err
		}
	}
	return nil
}

// poll keeps the sampler fresh for the metrics endpoint when no dashboard
// is attached.
func poll(ctx context.Context, s *sampler.Sampler, log logging.Logger, interval time.Duration, sel sampler.Selection) error {
	n := 0
	for snap := range s.Stream(ctx, interval, sel) {
		n++
		if n == 1 {
			log.Info("sampling started", logging.String("interval", interval.String()))
		}
		log.Debug("sample",
			logging.Float64("cpu_busy", snap.GlobalCPU.Usage.NonIdle()),
			logging.Uint64("mem_used_kb", snap.Memory.UsedKB),
			logging.Int("processes", len(snap.Processes)))
	}
	return nil
}
