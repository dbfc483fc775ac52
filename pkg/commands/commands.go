package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"catalogo/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "catalogo",
		Short: base.Wrap80("Browse a product catalog, keep a selection with quantities, and export it as a document or a WhatsApp message."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addBrowse(topLevel)
	addBrands(topLevel)
	addPick(topLevel)
	addDrop(topLevel)
	addQuantity(topLevel)
	addCart(topLevel)
	addClear(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
