package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cropcare/entities"
	"cropcare/pkg/calendar"
	"cropcare/pkg/condition"
	"cropcare/pkg/schedule"
	"cropcare/pkg/severity"
	"cropcare/pkg/view"
)

func cropsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "crops",
		Short: "List crops known to the record source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			crops, err := opts.crops().Crops(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(crops) == 0 {
				fmt.Fprintln(out, "No crops.")
				return nil
			}
			for _, c := range crops {
				fmt.Fprintf(out, "%-8s %s\n", c.CropID, c.Name)
			}
			return nil
		},
	}
}

func gridCmd(opts *options) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "grid <crop>",
		Short: "Show the inspection calendar colored by health tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := opts.crops().Calendar(cmd.Context(), args[0], size)
			if err != nil {
				return err
			}
			printGrid(cmd.OutOrStdout(), cells)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", calendar.DefaultGridSize, "number of cells")
	return cmd
}

var tierColor = map[severity.Tier]*color.Color{
	severity.Healthy:   color.New(color.FgGreen),
	severity.Moderate:  color.New(color.FgYellow),
	severity.Unhealthy: color.New(color.FgRed),
}

func printGrid(out io.Writer, cells []calendar.Cell) {
	for i, c := range cells {
		text := fmt.Sprintf("%-12s", "·")
		if !c.Empty {
			day := c.Timestamp
			if len(day) > 10 {
				day = day[:10]
			}
			text = fmt.Sprintf("%-12s", day)
			if col, ok := tierColor[c.Tier]; ok {
				text = col.Sprint(text)
			}
		}
		fmt.Fprint(out, text)
		if (i+1)%7 == 0 || i == len(cells)-1 {
			fmt.Fprintln(out)
		}
	}
	for _, c := range cells {
		if !c.Empty && c.Label != "" {
			fmt.Fprintf(out, "%s  %s (%s)\n", c.Timestamp, c.Label, c.Tier)
		}
	}
}

func conditionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "conditions <crop>",
		Short: "List distinct pest and disease options for a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.crops().Conditions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, o := range list {
				plan := "no control plan"
				if p := o.ControlPlan; p != nil {
					plan = fmt.Sprintf("every %dd for %dd", p.ControlInterval, p.ControlDuration)
				}
				fmt.Fprintf(out, "%-8s %-20s %-10s %s\n", o.Kind, o.Name, o.Severity, plan)
			}
			return nil
		},
	}
}

func scheduleCmd(opts *options) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "schedule <crop> <condition>",
		Short: "Preview the treatment dates a condition's control plan produces",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.crops().Conditions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			opt, err := condition.Find(list, args[1])
			if err != nil {
				return err
			}
			from, err := schedule.StartDate(start, opt, time.Now(), opts.location())
			if err != nil {
				return err
			}
			s, err := schedule.Generate(opt, from)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range s.Dates() {
				fmt.Fprintf(out, "%s  %s\n", d, opt.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first treatment date (YYYY-MM-DD)")
	return cmd
}

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <crop> <timestamp>",
		Short: "Show one inspection record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := opts.records().Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			idx := calendar.Build(rs)
			s := view.Session{}.SelectCrop(args[0]).SelectDate(idx, args[1])
			if s.State != view.DetailView {
				return fmt.Errorf("%w: crop %s at %s", calendar.ErrNoRecordForKey, args[0], args[1])
			}
			r, _ := idx.Lookup(s.CropID, s.Timestamp)
			printRecord(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func printRecord(out io.Writer, r entities.InspectionRecord) {
	tier := severity.Classify(r)
	crop, pest, disease := r.CropInformation, r.PestInformation, r.DiseaseInformation
	fmt.Fprintf(out, "%s %s (%s) at %s\n", r.CropID, crop.Name, crop.Species, r.Timestamp)
	fmt.Fprintf(out, "  stage:   %s\n", crop.GrowthStage)
	fmt.Fprintf(out, "  health:  %s\n", tierLabel(tier))
	fmt.Fprintf(out, "  pest:    %s [%s] count=%d\n", pest.PestName, pest.Severity, pest.PestCount)
	fmt.Fprintf(out, "  disease: %s [%s]\n", disease.DiseaseName, disease.Severity)
	if a := strings.TrimSpace(r.CropHealthInformation.RecommendedAction); a != "" {
		fmt.Fprintf(out, "  action:  %s\n", a)
	}
}

func tierLabel(t severity.Tier) string {
	if col, ok := tierColor[t]; ok {
		return col.Sprint(string(t))
	}
	return string(t)
}
