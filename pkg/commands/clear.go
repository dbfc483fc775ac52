package commands

import (
	"github.com/spf13/cobra"

	"catalogo/pkg/runner/clear"
	"catalogo/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the selection",
		Example: `
catalogo clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := clear.Clear{
				KV: kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
