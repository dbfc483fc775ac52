package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"catalogo/pkg/export"
	"catalogo/pkg/store"
)

// ContactOptions captures the contact fields consumed by the exports.
type ContactOptions struct {
	Name        string
	Phone       string
	CountryCode string
	Email       string
	Business    string
	Category    string
}

// AddContactArgs wires the contact flags on the provided command.
func AddContactArgs(cmd *cobra.Command, o *ContactOptions) {
	codes := make([]string, 0)
	for _, cc := range export.CountryCodes() {
		codes = append(codes, fmt.Sprintf("%s %s", cc.Code, cc.Name))
	}

	cmd.Flags().StringVar(&o.Name, "name", "",
		"Contact name (required).")
	cmd.Flags().StringVar(&o.Phone, "phone", "",
		"Contact WhatsApp number (required). A single leading 0 is stripped.")
	cmd.Flags().StringVar(&o.CountryCode, "country-code", "",
		"Dialing prefix: "+strings.Join(codes, ", ")+". Defaults to the configured code.")
	cmd.Flags().StringVar(&o.Email, "email", "",
		"Contact email (optional).")
	cmd.Flags().StringVar(&o.Business, "business", "",
		"Business name (optional).")
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Buyer category, retail or wholesale (required).")
}

// Contact builds and normalizes the export contact from the flags.
func (o *ContactOptions) Contact(cfg store.Config) (export.Contact, error) {
	category := export.Category("")
	if o.Category != "" {
		parsed, err := export.ParseCategory(o.Category)
		if err != nil {
			return export.Contact{}, err
		}
		category = parsed
	}
	code := o.CountryCode
	if code == "" {
		code = cfg.CountryCode()
	}
	return export.Contact{
		Name:        o.Name,
		Phone:       o.Phone,
		CountryCode: code,
		Email:       o.Email,
		Business:    o.Business,
		Category:    category,
	}, nil
}
