package cmd

import (
	"log"

	"newchrome/internal/config"
	"newchrome/internal/profile"

	"github.com/spf13/cobra"
)

// TemplateNameCompleter completes the single name positional.
func TemplateNameCompleter(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeTemplates(toComplete)
}

// TemplateFlagCompleter completes the --name flag.
func TemplateFlagCompleter(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeTemplates(toComplete)
}

// completeTemplates never creates directories, unlike the commands
// themselves.
func completeTemplates(toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.New()
	if err != nil {
		// Log to stderr, which is appropriate for completion scripts
		log.Println("Error resolving config for completion:", err)
		return nil, cobra.ShellCompDirectiveError
	}

	names, err := profile.NewStore(cfg).List(toComplete)
	if err != nil {
		log.Println("Error getting template list for completion:", err)
		return nil, cobra.ShellCompDirectiveError
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
