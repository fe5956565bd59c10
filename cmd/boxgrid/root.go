package boxgrid

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/boxgrid/internal/version"
	"github.com/arthur-debert/boxgrid/pkg/cobrax/topics"
	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/arthur-debert/boxgrid/pkg/logging"
	"github.com/arthur-debert/boxgrid/pkg/terminal"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "boxgrid",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but still fail
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "table",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDefaultsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help replaces cobra's help command
	helpFS, err := fs.Sub(helpFiles, "help")
	if err == nil {
		opts := topics.Options{Extensions: []string{".md"}}
		if terminal.Default().IsTerminal(os.Stdout) {
			opts.Renderer = topics.NewGlamourRenderer(terminal.Default().Columns(os.Stdout))
		}
		if _, err := topics.InitializeWithOptions(rootCmd, helpFS, opts); err != nil {
			log.Warn().Err(err).Msg("help topics unavailable")
		}
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
