package options

import (
	"github.com/spf13/cobra"

	"catalogo/pkg/store"
)

// CatalogOptions selects the catalog source for a command.
type CatalogOptions struct {
	Catalog string
}

// AddCatalogArgs wires the catalog source flag on the provided command.
func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVar(&o.Catalog, "catalog", "",
		"Catalog source, a file path or http(s) URL. Defaults to the configured catalog.")
}

// Path resolves the effective catalog source, falling back to config.
func (o *CatalogOptions) Path(cfg store.Config) string {
	if o.Catalog != "" {
		return o.Catalog
	}
	return cfg.Catalog()
}
