package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robsonmobile/coriolis/internal/domain/outfitting"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the module catalog",
		Long: `Browse the module catalog.

Examples:
  coriolis catalog list
  coriolis catalog list sg`,
	}

	cmd.AddCommand(newCatalogListCommand())

	return cmd
}

// newCatalogListCommand creates the catalog list subcommand
func newCatalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [grp]",
		Short: "List catalog modules, optionally filtered by group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp := ""
			if len(args) == 1 {
				grp = args[0]
			}

			cat, err := newCatalog()
			if err != nil {
				return err
			}

			templates, err := cat.List(cmd.Context(), grp)
			if err != nil {
				return err
			}

			if len(templates) == 0 {
				fmt.Println("No modules found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GRP\tID\tNAME\tCLASS\tRATING\tMASS")
			fmt.Fprintln(w, "---\t--\t----\t-----\t------\t----")

			for _, tmpl := range templates {
				mass := tmpl.Attributes[outfitting.AttrMass]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tmpl.Grp,
					tmpl.ID,
					tmpl.Name(),
					tmpl.Extra["class"],
					tmpl.Extra["rating"],
					formatStat(mass),
				)
			}

			return w.Flush()
		},
	}
}
