package settings

import (
	"fmt"

	"github.com/ytget/amdl-client/internal/model"
)

// Option is a picker entry
type Option struct {
	Value string
	Label string
}

// StorefrontOptions lists storefronts as "Name (id)" in name order
func StorefrontOptions(list model.StorefrontList) []Option {
	opts := make([]Option, 0, len(list))
	for _, sf := range list {
		opts = append(opts, Option{Value: sf.ID, Label: fmt.Sprintf("%s (%s)", sf.Name, sf.ID)})
	}
	return opts
}

// LanguageOptions returns the languages of a storefront and the one to select.
// A current language the storefront does not support is replaced by its default.
func LanguageOptions(list model.StorefrontList, storefrontID, current string) ([]string, string) {
	sf, ok := list.Find(storefrontID)
	if !ok || len(sf.Languages) == 0 {
		return nil, ""
	}
	for _, tag := range sf.Languages {
		if tag == current {
			return sf.Languages, current
		}
	}
	return sf.Languages, sf.DefaultLanguage
}

// LabelFor returns the option label of value, or value itself
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// ValueFor returns the option value of a label, or the label itself
func ValueFor(opts []Option, label string) string {
	for _, o := range opts {
		if o.Label == label {
			return o.Value
		}
	}
	return label
}
