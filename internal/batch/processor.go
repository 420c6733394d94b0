package batch

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"beatplace/internal/beatmap"
	"beatplace/internal/mathutil"
	"beatplace/internal/placement"
)

// Config holds all shared settings for a batch run.
type Config struct {
	Grid      beatmap.GridConfig
	BeatDepth float64
	Workers   int
	Logger    *zap.Logger

	// ProgressEvery is the progress log interval. Zero disables it.
	ProgressEvery time.Duration
}

// Result holds the outcome of resolving one object.
type Result struct {
	ID         string
	Kind       beatmap.ObjectKind
	Success    bool
	Error      string
	Transform  placement.Transform
	Dimensions *mathutil.Vec3 // obstacles only
}

// Run resolves all objects using a worker pool. Results are in input order;
// a failed object never stops the run.
func Run(cfg Config, objs []beatmap.Object) []Result {
	total := len(objs)
	results := make([]Result, total)
	var processed atomic.Int64

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.ProgressEvery > 0 {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(cfg.ProgressEvery)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						log.Info("progress",
							zap.Int64("done", p),
							zap.Int("total", total),
							zap.Float64("objects_per_sec", float64(p)/elapsed))
					}
				}
			}
		}()
	}

	// Worker pool
	objChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range objChan {
				results[idx] = processObject(cfg, objs[idx])
				if !results[idx].Success {
					log.Debug("object failed",
						zap.String("id", results[idx].ID),
						zap.String("error", results[idx].Error))
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range objs {
		objChan <- i
	}
	close(objChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

func processObject(cfg Config, obj beatmap.Object) Result {
	grid := cfg.Grid
	opts := placement.Options{BeatDepth: &cfg.BeatDepth, Grid: &grid}

	tr, err := placement.ResolveTransform(obj, opts)
	if err != nil {
		return Result{
			ID:    obj.ID,
			Kind:  obj.Kind,
			Error: err.Error(),
		}
	}

	if !tr.Position.IsFinite() {
		return Result{
			ID:    obj.ID,
			Kind:  obj.Kind,
			Error: "position out of range",
		}
	}

	res := Result{
		ID:        obj.ID,
		Kind:      obj.Kind,
		Success:   true,
		Transform: tr,
	}

	if obj.Kind == beatmap.KindObstacle {
		dims, err := placement.ResolveObstacleDimensions(obj, grid, cfg.BeatDepth)
		if err != nil {
			return Result{
				ID:    obj.ID,
				Kind:  obj.Kind,
				Error: err.Error(),
			}
		}
		res.Dimensions = &dims
	}

	return res
}
