package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"catalogo/pkg/runner/quantity"
	"catalogo/pkg/store"
)

func addQuantity(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "quantity <id> <n>",
		Short: "Set the quantity of a selected product",
		Long: `Set the quantity of a selected product. A value below 1 removes the
product from the selection; an unselected product is left untouched.`,
		Example: `
catalogo quantity 3 12
catalogo quantity 3 0
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			kv, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := quantity.Quantity{
				ID: id,
				N:  n,
				KV: kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
