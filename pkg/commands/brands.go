package commands

import (
	"github.com/spf13/cobra"

	"catalogo/pkg/commands/options"
	"catalogo/pkg/runner/brands"
	"catalogo/pkg/store"
)

func addBrands(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List the distinct brands in the catalog",
		Example: `
catalogo brands
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			s := brands.Brands{
				CatalogPath: co.Path(cfg),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
