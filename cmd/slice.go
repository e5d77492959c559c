package cmd

import (
	"path/filepath"
	"strings"

	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	slicePrefix string
	sliceOpts   stepFlags
)

var sliceCmd = &cobra.Command{
	Use:   "slice <sheet>",
	Short: "Cut a sprite sheet into one PNG per sprite",
	Long: `Strip the background of a sprite sheet, then cut it along empty rows and
columns. Sprites are written as <prefix>_0.png, <prefix>_1.png, ... in
top-to-bottom, left-to-right order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := slicePrefix
		if prefix == "" {
			prefix = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		}

		job, err := sliceOpts.apply(cmd, pipeline.Job{
			Kind:   pipeline.KindSlice,
			Input:  args[0],
			Output: prefix,
		})
		if err != nil {
			return err
		}
		return runJobs(cmd, []pipeline.Job{job})
	},
}

func init() {
	sliceCmd.Flags().StringVarP(&slicePrefix, "output", "o", "", "output file prefix (default: input path without extension)")
	sliceOpts.register(sliceCmd, pipeline.KindSlice)
	rootCmd.AddCommand(sliceCmd)
}
