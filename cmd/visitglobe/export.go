package main

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"visitglobe/internal/globe"
)

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every country mesh and outline as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			w, err := loadWorld(cfg, logger)
			if err != nil {
				return err
			}
			defer w.close()
			scene := w.builder.Build(w.countries, w.set)

			var dst io.Writer = os.Stdout
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer f.Close()
				dst = f
			}
			if err := globe.WriteJSON(dst, scene); err != nil {
				return err
			}
			logger.Info("exported",
				zap.String("out", out),
				zap.String("vertices", humanize.Comma(int64(scene.Stats.Vertices))),
				zap.String("triangles", humanize.Comma(int64(scene.Stats.Triangles))),
				zap.String("progress", scene.Summary.String()),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}
