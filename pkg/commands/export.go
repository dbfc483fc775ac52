package commands

import (
	"github.com/spf13/cobra"

	"catalogo/pkg/commands/options"
	runner "catalogo/pkg/runner/export"
	"catalogo/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the selection",
		Example: `
catalogo export pdf --name "Maria Lopez" --phone 0981123456 --category retail
catalogo export whatsapp --name "Maria Lopez" --phone 0981123456 --category wholesale --open
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addExportPDF(cmd)
	addExportWhatsApp(cmd)

	topLevel.AddCommand(cmd)
}

func addExportPDF(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	cto := &options.ContactOptions{}
	out := ""

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Save the selection as a PDF document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			kv, err := store.Load(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			contact, err := cto.Contact(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			s := runner.PDF{
				CatalogPath: co.Path(cfg),
				Contact:     contact,
				Out:         out,
				KV:          kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.AddContactArgs(cmd, cto)
	cmd.Flags().StringVarP(&out, "out", "o", "selected-products.pdf",
		"Where to save the document.")

	topLevel.AddCommand(cmd)
}

func addExportWhatsApp(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	cto := &options.ContactOptions{}
	recipient := ""
	open := false

	cmd := &cobra.Command{
		Use:   "whatsapp",
		Short: "Compose the selection as a WhatsApp deep link",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			kv, err := store.Load(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			contact, err := cto.Contact(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			to := recipient
			if to == "" {
				to = cfg.Recipient()
			}
			s := runner.WhatsApp{
				CatalogPath: co.Path(cfg),
				Contact:     contact,
				Recipient:   to,
				Open:        open,
				KV:          kv,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.AddContactArgs(cmd, cto)
	cmd.Flags().StringVar(&recipient, "to", "",
		"Destination number for the deep link. Defaults to the configured recipient.")
	cmd.Flags().BoolVar(&open, "open", false,
		"Open the deep link in the default browser instead of printing it.")

	topLevel.AddCommand(cmd)
}
