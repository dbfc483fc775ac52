package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"catalogo/pkg/commands/options"
	"catalogo/pkg/runner/pick"
	"catalogo/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	quantity := 1

	cmd := &cobra.Command{
		Use:   "pick <id>",
		Short: "Select a product, or update its quantity if already selected",
		Example: `
catalogo pick 3
catalogo pick 3 --quantity 12
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			kv, err := store.Load(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			s := pick.Pick{
				CatalogPath: co.Path(cfg),
				ID:          id,
				Quantity:    quantity,
				KV:          kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1,
		"Quantity to select, at least 1.")

	topLevel.AddCommand(cmd)
}
