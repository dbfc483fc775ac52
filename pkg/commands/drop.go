package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"catalogo/pkg/runner/drop"
	"catalogo/pkg/store"
)

func addDrop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "drop <id>",
		Short: "Remove a product from the selection",
		Example: `
catalogo drop 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			kv, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := drop.Drop{
				ID: id,
				KV: kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
