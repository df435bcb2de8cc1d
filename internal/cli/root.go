// Package cli implements cropctl, a terminal view over a record source.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"cropcare/config"
	"cropcare/pkg/crop/service"
	"cropcare/pkg/crop/serviceImp"
	"cropcare/pkg/record"
	"cropcare/pkg/record/client"
)

type options struct {
	source   string
	timeout  time.Duration
	timezone string
}

// Root returns the cropctl command tree.
func Root() *cobra.Command {
	opts := &options{}
	cfg := config.FromEnv()
	def := cfg.RecordSourceURL
	if def == "" {
		def = "http://localhost:" + cfg.Port
	}

	root := &cobra.Command{
		Use:           "cropctl",
		Short:         "Inspect crop records, calendars and treatment schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.source, "source", def, "record source base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.FetchTimeout, "record fetch timeout")
	root.PersistentFlags().StringVar(&opts.timezone, "tz", cfg.Timezone, "zone that decides today's date")

	root.AddCommand(cropsCmd(opts))
	root.AddCommand(gridCmd(opts))
	root.AddCommand(conditionsCmd(opts))
	root.AddCommand(scheduleCmd(opts))
	root.AddCommand(showCmd(opts))
	return root
}

func (o *options) records() record.Source {
	return client.New(o.source, o.timeout)
}

func (o *options) location() *time.Location {
	return config.AppConfig{Timezone: o.timezone}.Location()
}

func (o *options) crops() service.CropService {
	return serviceImp.NewCropService(o.records(), 0)
}
