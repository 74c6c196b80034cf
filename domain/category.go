package domain

// Categories the news provider accepts.
var Categories = []string{
	"top", "world", "politics", "business", "technology",
	"sports", "entertainment", "health", "science", "food", "tourism",
}

// FetchAllCategories is the subset pulled during a full ingestion run.
var FetchAllCategories = []string{
	"top", "world", "politics", "business", "technology",
	"entertainment", "sports", "health",
}

// NormalizeCategory maps arbitrary input onto a valid provider category.
// Anything unknown becomes "top".
func NormalizeCategory(raw string) string {
	for _, c := range Categories {
		if raw == c {
			return c
		}
	}
	return "top"
}

// CategoryFilter selects articles by category. The zero value matches
// everything; use NamedCategory to restrict to one category.
type CategoryFilter struct {
	name string
}

// AllCategories matches every stored article regardless of category.
func AllCategories() CategoryFilter {
	return CategoryFilter{}
}

// NamedCategory matches a single category. The name is normalized first.
func NamedCategory(name string) CategoryFilter {
	return CategoryFilter{name: NormalizeCategory(name)}
}

// All reports whether the filter matches every category.
func (f CategoryFilter) All() bool {
	return f.name == ""
}

// Name returns the category name; only meaningful when All is false.
func (f CategoryFilter) Name() string {
	return f.name
}
