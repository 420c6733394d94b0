package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"beatplace/internal/beatmap"
	"beatplace/internal/mirror"
	"beatplace/internal/objectlist"
)

var mirrorAxis string

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Mirror every object across an axis and write mirrored.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.ObjectsFile == "" {
			return errors.New("no objects file: use --objects or objects_file in config")
		}
		axis, err := mirror.ParseAxis(mirrorAxis)
		if err != nil {
			return err
		}

		objs, err := objectlist.Parse(cfg.ObjectsFile)
		if err != nil {
			return err
		}
		out := mirrorAll(objs, axis, cfg.GridConfig())

		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return err
		}
		path := filepath.Join(cfg.OutputDir, "mirrored.json")
		if err := objectlist.Write(path, out); err != nil {
			return err
		}
		logger.Info("mirrored objects",
			zap.String("axis", axis.String()),
			zap.Int("objects", len(out)),
			zap.String("path", path))
		return nil
	},
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorAxis, "axis", "horizontal", "Mirror axis: horizontal or vertical")
}

func mirrorAll(objs []beatmap.Object, axis mirror.Axis, grid beatmap.GridConfig) []beatmap.Object {
	out := make([]beatmap.Object, len(objs))
	for i, o := range objs {
		out[i] = mirror.Apply(o, axis, grid).ApplyTo(o)
	}
	return out
}
