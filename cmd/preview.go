package cmd

import (
	"fmt"
	"image"

	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/JPM1118/sheetcut/internal/preview"
	"github.com/JPM1118/sheetcut/internal/sprites"
	"github.com/spf13/cobra"
)

var (
	previewMode  string
	previewStrip bool
	previewSlice bool
	previewOpts  stepFlags
)

var previewCmd = &cobra.Command{
	Use:   "preview <input>",
	Short: "Draw an image in the terminal, optionally stripped or sliced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := preview.ParseMode(previewMode)
		if err != nil {
			return err
		}

		kind := pipeline.KindStrip
		if previewSlice {
			kind = pipeline.KindSlice
		}
		job, err := previewOpts.apply(cmd, pipeline.Job{Kind: kind, Input: args[0], Output: "-"})
		if err != nil {
			return err
		}

		img, err := sprites.FileStore{}.Load(job.Input)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !previewStrip && !previewSlice {
			return preview.Render(out, img, mode)
		}

		stripped, ref := sprites.StripWith(img, job.Reference, job.Tolerance)
		logger.Debug("stripped", "input", job.Input, "reference", ref.String(), "tolerance", job.Tolerance)
		if !previewSlice {
			return preview.Render(out, sprites.Resize(stripped, job.Width, job.Height), mode)
		}

		found := sprites.Slice(stripped)
		if len(found) == 0 {
			fmt.Fprintln(out, "No sprites found.")
			return nil
		}
		for _, s := range found {
			fmt.Fprintf(out, "sprite %d %s\n", s.Index, formatBox(s.Bounds))
			if err := preview.Render(out, sprites.Resize(s.Image, job.Width, job.Height), mode); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewMode, "mode", "m", string(preview.ModeAuto), "auto, blocks or ascii")
	previewCmd.Flags().BoolVar(&previewStrip, "strip", false, "remove the background before drawing")
	previewCmd.Flags().BoolVar(&previewSlice, "slice", false, "strip, then draw each sprite separately")
	previewOpts.register(previewCmd, pipeline.KindStrip, pipeline.KindSlice)
	rootCmd.AddCommand(previewCmd)
}

func formatBox(r image.Rectangle) string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
