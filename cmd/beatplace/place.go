package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"beatplace/internal/batch"
	"beatplace/internal/config"
	"beatplace/internal/objectlist"
	"beatplace/internal/preview"
)

var previewFrom float64

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Resolve 3D transforms for every object and write transforms.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runPlace(cmd.Context(), cfg, logger)
	},
}

func init() {
	placeCmd.Flags().Float64Var(&flags.BeatDepth, "beat-depth", 0, "World units per beat (default: 9)")
	placeCmd.Flags().IntVar(&flags.Workers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
	placeCmd.Flags().StringVar(&flags.Preview, "preview", "", "Also write a preview image: webp or tga")
	placeCmd.Flags().Float64Var(&previewFrom, "preview-from", 0, "First beat shown in the preview")
}

func runPlace(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	if cfg.ObjectsFile == "" {
		return errors.New("no objects file: use --objects or objects_file in config")
	}

	objs, err := objectlist.Parse(cfg.ObjectsFile)
	if err != nil {
		return err
	}
	if len(objs) == 0 {
		log.Info("no objects to place")
		return nil
	}

	log.Info("placing objects",
		zap.Int("objects", len(objs)),
		zap.Int("workers", cfg.Workers),
		zap.Float64("beat_depth", cfg.BeatDepth),
		zap.String("output", cfg.OutputDir))

	start := time.Now()
	results := batch.Run(batch.Config{
		Grid:          cfg.GridConfig(),
		BeatDepth:     cfg.BeatDepth,
		Workers:       cfg.Workers,
		Logger:        log,
		ProgressEvery: 2 * time.Second,
	}, objs)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	log.Info("placement done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("placed", len(results)-failed),
		zap.Int("failed", failed))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		path := filepath.Join(cfg.OutputDir, "transforms.json")
		if err := batch.WriteManifest(path, results); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		log.Info("manifest written", zap.String("path", path))
		return nil
	})
	if cfg.Preview.Enabled {
		g.Go(func() error {
			img := preview.Render(objs, preview.Options{
				Size:        cfg.Preview.Size,
				Supersample: cfg.Preview.Supersample,
				Grid:        cfg.GridConfig(),
				BeatDepth:   cfg.BeatDepth,
				From:        previewFrom,
				WindowBeats: cfg.Preview.WindowBeats,
			})
			path := filepath.Join(cfg.OutputDir, "preview."+cfg.Preview.Format)
			if err := preview.WriteFile(path, img, cfg.Preview.Format); err != nil {
				return err
			}
			log.Info("preview written", zap.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d objects could not be placed", failed, len(results))
	}
	return nil
}
