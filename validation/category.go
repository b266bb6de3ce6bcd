package validation

import "strings"

const (
	CategoryNameMin        = 2
	CategoryNameMax        = 100
	CategoryDescriptionMax = 500
)

type CategoryForm struct {
	Name        string
	Description string
}

func ValidateCategory(f CategoryForm) ErrorMap {
	errs := ErrorMap{}

	switch {
	case strings.TrimSpace(f.Name) == "":
		errs["name"] = "category name is required"
	case len(f.Name) < CategoryNameMin:
		errs["name"] = "category name must be at least 2 characters"
	case len(f.Name) > CategoryNameMax:
		errs["name"] = "category name must be at most 100 characters"
	}

	if len(f.Description) > CategoryDescriptionMax {
		errs["description"] = "description must be at most 500 characters"
	}

	return errs
}
