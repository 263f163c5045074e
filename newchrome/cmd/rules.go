package cmd

import (
	"fmt"
	"strconv"

	"newchrome/internal/errors"
	"newchrome/internal/rules"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules [url]",
	Short: "Show the url rules used by auto",
	Long: `Without arguments, print the rules from ~/.newchrome/config.yaml in the
order they are evaluated. With a url, print the profile auto would pick.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := newStore()
		if err != nil {
			return err
		}

		rs, err := rules.Load(cfg.RulesFile())
		if err != nil {
			return errors.E("rules", err)
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			if name, ok := rs.Match(args[0]); ok {
				fmt.Fprintln(out, name)
				return nil
			}
			color.Yellow("No rule matches %s; auto would use the default browser profile.", args[0])
			return nil
		}

		if rs.Len() == 0 {
			color.Yellow("No rules defined in %s.", cfg.RulesFile())
			return nil
		}

		table := tablewriter.NewWriter(out)
		header := []string{"#", "MATCH", "VALUE", "PROFILE"}
		table.Header(header)
		for i, r := range rs.Rules() {
			table.Append([]string{strconv.Itoa(i + 1), r.Kind(), r.Value(), r.Profile})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
