package cli

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/catalog"
)

// completeTableNames provides shell completion for table names, skipping
// tables already on the command line.
func completeTableNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	matches := lo.Filter(lo.Without(catalog.Names(), args...), func(name string, _ int) bool {
		return strings.HasPrefix(name, toComplete)
	})
	return matches, cobra.ShellCompDirectiveNoFileComp
}
