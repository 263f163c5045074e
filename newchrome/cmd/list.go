package cmd

import (
	"fmt"

	"newchrome/internal/errors"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listLong bool

// listCmd represents the ls command
var listCmd = &cobra.Command{
	Use:     "ls [filter]",
	Aliases: []string{"list"},
	Short:   "List template profiles",
	Long: `List template names, one per line, in the order the filesystem returns
them. With a filter only names starting with it are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter string
		if len(args) > 0 {
			filter = args[0]
		}

		_, store, err := newStore()
		if err != nil {
			return err
		}

		names, err := store.List(filter)
		if err != nil {
			return errors.E("ls", err)
		}

		out := cmd.OutOrStdout()
		if !listLong {
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		if len(names) == 0 {
			color.Yellow("No templates found.")
			return nil
		}

		table := tablewriter.NewWriter(out)
		header := []string{"NAME", "INSTANCE"}
		table.Header(header)
		for _, name := range names {
			status := color.YellowString("none")
			if store.HasInstance(name) {
				status = color.GreenString("present")
			}
			table.Append([]string{name, status})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show a table including instance status")
}
