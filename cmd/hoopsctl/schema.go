package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the table schema registry",
	}
	cmd.AddCommand(schemaListCmd())
	cmd.AddCommand(schemaShowCmd())
	cmd.AddCommand(schemaCheckCmd())
	return cmd
}

func schemaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tCOLUMNS\tGROUPS")
			for _, s := range stattable.Schemas() {
				fmt.Fprintf(w, "%s\t%d\t%d\n", s.ID, len(s.Columns), len(s.Groups))
			}
			return w.Flush()
		},
	}
}

func schemaShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <table>",
		Short: "Print a table's columns in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := stattable.LookupSchema(stattable.TableID(args[0]))
			if !ok {
				return fmt.Errorf("unknown table %q, see `hoopsctl schema list`", args[0])
			}

			groupOf := make(map[stattable.ColumnKey]string, len(s.Columns))
			for _, g := range s.Groups {
				for _, k := range g.Columns {
					groupOf[k] = g.Title
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tLABEL\tTYPE\tALIGN\tGROUP\tDESCRIPTION")
			for _, k := range s.Columns {
				def, ok := stattable.LookupColumn(k)
				if !ok {
					return fmt.Errorf("table %s: column %q is not in the catalog", s.ID, k)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					def.Key, def.Label, def.Type, def.Alignment(), groupOf[k], def.Description)
			}
			return w.Flush()
		},
	}
}

func schemaCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every schema against the column catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := stattable.Validate(); err != nil {
				return fmt.Errorf("schema check failed:\n%s", indent(err.Error()))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d tables, %d columns\n",
				len(stattable.Schemas()), len(stattable.Columns()))
			return nil
		},
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
