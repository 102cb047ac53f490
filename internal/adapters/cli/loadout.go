package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewLoadoutCommand creates the loadout command with subcommands
func NewLoadoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loadout",
		Short: "Manage saved module loadouts",
		Long: `Manage saved module loadouts.

A loadout is a named catalog module plus the modifications you applied to
it. Loadouts persist across invocations.

Examples:
  coriolis loadout create "Trade Cobra" sg 3A
  coriolis loadout list
  coriolis loadout show <loadout-id>
  coriolis loadout set-mod <loadout-id> mass -0.1
  coriolis loadout clear-mod <loadout-id> mass
  coriolis loadout delete <loadout-id>`,
	}

	cmd.AddCommand(newLoadoutCreateCommand())
	cmd.AddCommand(newLoadoutListCommand())
	cmd.AddCommand(newLoadoutShowCommand())
	cmd.AddCommand(newLoadoutSetModCommand())
	cmd.AddCommand(newLoadoutClearModCommand())
	cmd.AddCommand(newLoadoutDeleteCommand())

	return cmd
}

func newLoadoutCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <grp> <id>",
		Short: "Create a loadout for a catalog module",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			loadout, err := svc.CreateLoadout(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			fmt.Printf("Created loadout %s (%s)\n", loadout.ID(), loadout.Name())
			return nil
		},
	}
}

func newLoadoutListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved loadouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			loadouts, err := svc.ListLoadouts(cmd.Context())
			if err != nil {
				return err
			}

			if len(loadouts) == 0 {
				fmt.Println("No loadouts saved.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMODULE\tMODS")
			fmt.Fprintln(w, "--\t----\t------\t----")

			for _, loadout := range loadouts {
				module := loadout.Module()
				fmt.Fprintf(w, "%s\t%s\t%s/%s\t%d\n",
					loadout.ID(),
					loadout.Name(),
					module.Grp(),
					module.ID(),
					len(module.ScaledMods()),
				)
			}

			return w.Flush()
		},
	}
}

func newLoadoutShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <loadout-id>",
		Short: "Show a loadout's effective stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			loadout, err := svc.GetLoadout(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Loadout: %s (%s)\n", loadout.Name(), loadout.ID())
			printModule(loadout.Module())
			return nil
		},
	}
}

func newLoadoutSetModCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-mod <loadout-id> <attribute> <value>",
		Short: "Apply a percentage modification to a loadout's module",
		Long: `Apply a percentage modification to a loadout's module.

The value is fractional: 0.05 means +5%, -0.1 means -10%. Setting a value
of 0 removes the modification.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid modification value %q: %w", args[2], err)
			}

			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			loadout, err := svc.SetModification(cmd.Context(), args[0], args[1], value)
			if err != nil {
				return err
			}

			printModule(loadout.Module())
			return nil
		},
	}
}

func newLoadoutClearModCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-mod <loadout-id> <attribute>",
		Short: "Remove a modification from a loadout's module",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			loadout, err := svc.ClearModification(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			printModule(loadout.Module())
			return nil
		},
	}
}

func newLoadoutDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <loadout-id>",
		Short: "Delete a saved loadout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteLoadout(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted loadout %s\n", args[0])
			return nil
		},
	}
}
