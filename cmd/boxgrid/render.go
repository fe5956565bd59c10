package boxgrid

import (
	"github.com/arthur-debert/boxgrid/pkg/config"
	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/arthur-debert/boxgrid/pkg/logging"
	"github.com/arthur-debert/boxgrid/pkg/records"
	"github.com/arthur-debert/boxgrid/pkg/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// tableFlags are the flags shared by every command that builds a table.
type tableFlags struct {
	config  string
	width   int
	padding int
	color   string
	noColor bool
	border  string
}

func (f *tableFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.config, "config", "c", "", MsgFlagConfig)
	flags.IntVarP(&f.width, "width", "w", 0, MsgFlagWidth)
	flags.IntVarP(&f.padding, "padding", "p", 1, MsgFlagPadding)
	flags.StringVar(&f.color, "color", "auto", MsgFlagColor)
	flags.BoolVar(&f.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&f.border, "border", "", MsgFlagBorder)
}

// options turns the flags the user actually set into config overrides, so
// an unset flag never hides a value from the file or the environment.
func (f *tableFlags) options(flags *pflag.FlagSet) (config.Options, error) {
	opts := config.Options{Path: f.config, Overrides: map[string]interface{}{}}
	if flags.Changed("color") && flags.Changed("no-color") {
		return opts, errors.New(errors.ErrInvalidInput, MsgErrColorFlags)
	}
	if flags.Changed("width") {
		opts.Overrides["width"] = f.width
	}
	if flags.Changed("padding") {
		opts.Overrides["padding"] = f.padding
	}
	if flags.Changed("color") {
		opts.Overrides["color"] = f.color
	}
	if f.noColor {
		opts.Overrides["color"] = "never"
	}
	if flags.Changed("border") {
		opts.Overrides["border"] = f.border
	}
	return opts, nil
}

// definition loads the configuration and builds the table definition.
func (f *tableFlags) definition(flags *pflag.FlagSet) (table.Definition[records.Record], error) {
	var def table.Definition[records.Record]
	opts, err := f.options(flags)
	if err != nil {
		return def, err
	}
	spec, err := config.Load(opts)
	if err != nil {
		return def, err
	}
	return spec.Build()
}

func newRenderCmd() *cobra.Command {
	var (
		tf     tableFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "table",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")

			def, err := tf.definition(cmd.Flags())
			if err != nil {
				return err
			}
			def.Logger = &logger

			t, err := table.New(def)
			if err != nil {
				return err
			}

			recs, err := loadRecords(cmd, args, format)
			if err != nil {
				return err
			}
			logger.Info().Int("records", len(recs)).Msg("records loaded")

			_, err = t.Render(recs, cmd.OutOrStdout())
			return err
		},
	}

	tf.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range records.Formats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// loadRecords reads the file argument, or standard input when there is
// none. Standard input defaults to JSON.
func loadRecords(cmd *cobra.Command, args []string, format string) ([]records.Record, error) {
	var f records.Format
	if format != "" {
		parsed, err := records.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		f = parsed
	}

	if len(args) == 1 && args[0] != "-" {
		return records.LoadFile(args[0], f)
	}
	if f == "" {
		f = records.FormatJSON
	}
	return records.Load(cmd.InOrStdin(), f)
}
