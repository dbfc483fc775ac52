package commands

import (
	"github.com/spf13/cobra"

	"catalogo/pkg/commands/options"
	"catalogo/pkg/runner/cart"
	"catalogo/pkg/store"
)

func addCart(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the current selection",
		Example: `
catalogo cart
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
			s := cart.Cart{
				CatalogPath: co.Path(cfg),
				KV:          kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
