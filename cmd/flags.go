package cmd

import (
	"fmt"
	"strings"

	"github.com/JPM1118/sheetcut/internal/config"
	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/JPM1118/sheetcut/internal/sprites"
	"github.com/spf13/cobra"
)

// stepFlags are the background removal and resize flags shared by the
// strip, slice and preview commands.
type stepFlags struct {
	reference string
	tolerance int
	width     int
	height    int
}

// register adds the flags with defaults taken from the config section of
// kind. With more than one kind the defaults depend on the mode the command
// runs in, so each kind's default is listed in the help instead.
func (f *stepFlags) register(cmd *cobra.Command, kinds ...pipeline.Kind) {
	refUsage := `background colour: "#rrggbb", black, white or ` + sprites.SampleTopLeft
	tolUsage := "max summed RGB difference treated as background"
	var refDefault string
	var tolDefault int

	if len(kinds) == 1 {
		def := config.Defaults().Step(kinds[0])
		refDefault, tolDefault = def.Reference.String(), def.Tolerance
	} else {
		var refs, tols []string
		for _, k := range kinds {
			def := config.Defaults().Step(k)
			refs = append(refs, fmt.Sprintf("%s %s", k, def.Reference))
			tols = append(tols, fmt.Sprintf("%s %d", k, def.Tolerance))
		}
		refUsage += " (default " + strings.Join(refs, ", ") + ")"
		tolUsage += " (default " + strings.Join(tols, ", ") + ")"
	}

	cmd.Flags().StringVarP(&f.reference, "reference", "r", refDefault, refUsage)
	cmd.Flags().IntVarP(&f.tolerance, "tolerance", "t", tolDefault, tolUsage)
	cmd.Flags().IntVar(&f.width, "width", 0, "resize output to this width (0 keeps aspect ratio)")
	cmd.Flags().IntVar(&f.height, "height", 0, "resize output to this height (0 keeps aspect ratio)")
}

// apply fills job from the config file and then from any flag the user set.
func (f *stepFlags) apply(cmd *cobra.Command, job pipeline.Job) (pipeline.Job, error) {
	step := cfg.Step(job.Kind)
	job.Reference = step.Reference.Reference
	job.Tolerance = step.Tolerance
	job.Width = cfg.Resize.Width
	job.Height = cfg.Resize.Height

	if cmd.Flags().Changed("reference") {
		ref, err := sprites.ParseReference(f.reference)
		if err != nil {
			return job, err
		}
		job.Reference = ref
	}
	if cmd.Flags().Changed("tolerance") {
		job.Tolerance = f.tolerance
	}
	if cmd.Flags().Changed("width") {
		job.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		job.Height = f.height
	}
	return job, job.Validate()
}
