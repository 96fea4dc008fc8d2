package domain

import "github.com/samber/lo"

// Category is the label assigned by the classification service.
// The set is open: the service may add values this client does not know.
type Category string

const (
	Spam        Category = "spam"
	Promotional Category = "promocional"
	Work        Category = "trabalho"
	Personal    Category = "pessoal"
	Important   Category = "importante"
	Failure     Category = "erro"
	Undefined   Category = "indefinido"
)

var categoryLabels = map[Category]string{
	Spam:        "Spam",
	Promotional: "Promocional",
	Work:        "Trabalho",
	Personal:    "Pessoal",
	Important:   "Importante",
	Failure:     "Erro",
	Undefined:   "Indefinido",
}

// Categories lists the known categories in display order.
func Categories() []Category {
	return []Category{Spam, Promotional, Work, Personal, Important, Failure, Undefined}
}

// Label returns the display name, or the raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) Known() bool {
	return lo.Contains(Categories(), c)
}
