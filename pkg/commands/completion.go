package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"catalogo/pkg/catalog"
	"catalogo/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(catalogo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(catalogo completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func brandCompletions(cmd *cobra.Command, toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	cat, _, err := catalog.Load(cmd.Context(), cfg.Catalog())
	if err != nil {
		return nil
	}
	bs := make([]string, 0)
	for _, b := range cat.Brands() {
		if strings.HasPrefix(strings.ToLower(b), strings.ToLower(toComplete)) {
			bs = append(bs, strconv.Quote(b))
		}
	}
	return bs
}
