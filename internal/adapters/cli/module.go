package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robsonmobile/coriolis/internal/domain/outfitting"
)

// NewModuleCommand creates the module command with subcommands
func NewModuleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Inspect individual modules",
		Long: `Inspect individual modules and preview modifications without saving.

Examples:
  coriolis module show sg 3A
  coriolis module show sg 3A --mod mass=-0.1 --mod kinres=0.05`,
	}

	cmd.AddCommand(newModuleShowCommand())

	return cmd
}

// newModuleShowCommand creates the module show subcommand
func newModuleShowCommand() *cobra.Command {
	var modFlags []string

	cmd := &cobra.Command{
		Use:   "show <grp> <id>",
		Short: "Show a module's stats, optionally with preview modifications",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, id := args[0], args[1]

			cat, err := newCatalog()
			if err != nil {
				return err
			}

			module, err := cat.FindModule(cmd.Context(), grp, id)
			if err != nil {
				return err
			}

			// Preview modifications are applied in-memory only
			for _, flag := range modFlags {
				attrName, value, err := parseModFlag(flag)
				if err != nil {
					return err
				}

				attr, ok := outfitting.ParseAttribute(attrName)
				if !ok {
					return fmt.Errorf("unknown attribute %q", attrName)
				}

				module.SetModValue(attr, value)
			}

			printModule(module)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&modFlags, "mod", nil,
		"Preview modification as attr=value (repeatable, e.g. --mod mass=-0.1)")

	return cmd
}

// printModule renders a module's stat table
func printModule(module *outfitting.Module) {
	name := module.Name()
	if name == "" {
		name = module.Grp() + "/" + module.ID()
	}
	fmt.Printf("%s (%s/%s)\n\n", name, module.Grp(), module.ID())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ATTRIBUTE\tBASE\tMOD\tEFFECTIVE")
	fmt.Fprintln(w, "---------\t----\t---\t---------")

	for _, attr := range outfitting.KnownAttributes {
		base, hasBase := module.BaseValue(attr)
		mod, hasMod := module.ModValue(attr)
		if !hasBase && !hasMod {
			continue
		}

		modText := "-"
		if hasMod {
			modText = fmt.Sprintf("%+.2f%%", mod*100)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			attr,
			formatStat(base),
			modText,
			formatStat(module.EffectiveValue(attr)),
		)
	}

	w.Flush()
}
