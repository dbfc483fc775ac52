package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Category tags an export with the kind of buyer the quote is for.
type Category string

const (
	CategoryRetail    Category = "retail"
	CategoryWholesale Category = "wholesale"
)

// Categories lists the accepted category values.
func Categories() []Category {
	return []Category{CategoryRetail, CategoryWholesale}
}

// ParseCategory maps user input onto the category set.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryRetail:
		return CategoryRetail, nil
	case CategoryWholesale:
		return CategoryWholesale, nil
	}
	return "", fmt.Errorf("export: unknown category %q (expected retail or wholesale)", s)
}

// CountryCode pairs a dialing prefix with the country it belongs to.
type CountryCode struct {
	Code string
	Name string
}

// DefaultCountryCode is applied when the contact does not choose one.
const DefaultCountryCode = "+595"

// CountryCodes lists the dialing prefixes offered to the contact.
func CountryCodes() []CountryCode {
	return []CountryCode{
		{Code: "+595", Name: "Paraguay"},
		{Code: "+54", Name: "Argentina"},
		{Code: "+55", Name: "Brasil"},
	}
}

// emailShape is the minimal local@domain.tld check.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var (
	ErrNameRequired     = errors.New("export: contact name is required")
	ErrPhoneRequired    = errors.New("export: contact phone number is required")
	ErrEmailInvalid     = errors.New("export: email address is not valid")
	ErrCategoryRequired = errors.New("export: category is required")
)

// Contact is the user-supplied metadata stamped onto every export.
type Contact struct {
	Name        string
	Phone       string
	CountryCode string
	Email       string
	Business    string
	Category    Category
}

// Validate checks the required fields before any transform runs. Email and
// Business are optional, but a present email must have a plausible shape.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrPhoneRequired
	}
	if c.Email != "" && !emailShape.MatchString(c.Email) {
		return ErrEmailInvalid
	}
	if c.Category == "" {
		return ErrCategoryRequired
	}
	if _, err := ParseCategory(string(c.Category)); err != nil {
		return err
	}
	return nil
}

// Address is the contact's number in international form: at most one
// leading "0" stripped, dialing prefix prepended.
func (c Contact) Address() string {
	phone := strings.TrimSpace(c.Phone)
	phone = strings.TrimPrefix(phone, "0")
	code := c.CountryCode
	if code == "" {
		code = DefaultCountryCode
	}
	return code + phone
}
