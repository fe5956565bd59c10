package boxgrid

import (
	"fmt"

	"github.com/arthur-debert/boxgrid/pkg/config"
	"github.com/arthur-debert/boxgrid/pkg/table"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var tf tableFlags

	cmd := &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := tf.definition(cmd.Flags())
			if err != nil {
				return err
			}
			// New validates class tags and group levels
			if _, err := table.New(def); err != nil {
				return err
			}

			rules := len(def.GroupRules) + len(def.ColumnRules) + len(def.RowRules) + len(def.CellRules)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgConfigOK, len(def.Columns), len(def.Groups), rules)
			if path := configSource(tf.config); path != "" {
				_, _ = fmt.Fprintf(out, MsgConfigSource, path)
			} else {
				_, _ = fmt.Fprint(out, MsgConfigNoFile)
			}
			return nil
		},
	}

	tf.register(cmd.Flags())
	return cmd
}

func configSource(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return config.FindConfigFile()
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "defaults",
		Short:   MsgDefaultsShort,
		GroupID: "table",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
		},
	}
}
