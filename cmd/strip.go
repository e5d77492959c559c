package cmd

import (
	"fmt"

	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	stripOutput string
	stripOpts   stepFlags
)

var stripCmd = &cobra.Command{
	Use:   "strip <input>...",
	Short: "Make the background of one or more images transparent",
	Long: `Make every pixel within --tolerance of the reference colour fully
transparent. Output is always PNG. Without --output each input is overwritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if stripOutput != "" && len(args) > 1 {
			return fmt.Errorf("--output can only be used with a single input")
		}

		jobs := make([]pipeline.Job, 0, len(args))
		for _, in := range args {
			job, err := stripOpts.apply(cmd, pipeline.Job{
				Kind:   pipeline.KindStrip,
				Input:  in,
				Output: stripOutput,
			})
			if err != nil {
				return err
			}
			jobs = append(jobs, job)
		}
		return runJobs(cmd, jobs)
	},
}

func init() {
	stripCmd.Flags().StringVarP(&stripOutput, "output", "o", "", "output file (default: overwrite the input)")
	stripOpts.register(stripCmd, pipeline.KindStrip)
	rootCmd.AddCommand(stripCmd)
}
