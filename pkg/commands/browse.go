package commands

import (
	"github.com/spf13/cobra"

	"catalogo/pkg/commands/options"
	"catalogo/pkg/runner/browse"
	"catalogo/pkg/store"
)

func addBrowse(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List a page of the catalog",
		Example: `
catalogo browse
catalogo browse --brand "ANA HICKMANN" --page 2
catalogo browse --name nina --per-page all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			kv, err := store.Load(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			perPage, err := fo.ParsePerPage(cfg.PerPage())
			if err != nil {
				return oo.HandleError(err)
			}
			s := browse.Browse{
				CatalogPath: co.Path(cfg),
				Filter:      fo.Filter(),
				Page:        fo.Page,
				PerPage:     perPage,
				ShowImage:   fo.ShowImage,
				KV:          kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.AddFilterArgs(cmd, fo)

	flagName := "brand"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return brandCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
