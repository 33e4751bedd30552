package model

type Category string

const (
	CategorySociety        Category = "Society"
	CategoryCulture        Category = "Culture"
	CategoryGovernance     Category = "Governance"
	CategoryEntertainment  Category = "Entertainment"
	CategoryPublicInterest Category = "Public Interest"
	CategorySports         Category = "Sports"
	CategoryDiplomacy      Category = "Diplomacy"
	CategoryEnvironment    Category = "Environment"
	CategoryTechnology     Category = "Technology"
	CategoryWorldAffairs   Category = "World Affairs"

	// AllCategories is the filter value that disables category filtering.
	AllCategories = "All"
)

// DefaultDataCategories is the labelling set every catalog event must belong to.
func DefaultDataCategories() *CategorySet {
	return NewCategorySet(
		CategorySociety,
		CategoryCulture,
		CategoryGovernance,
		CategoryEntertainment,
		CategoryPublicInterest,
		CategorySports,
		CategoryDiplomacy,
		CategoryEnvironment,
		CategoryTechnology,
		CategoryWorldAffairs,
	)
}

// DefaultFilterCategories is the curated set shown to filter controls and
// offered to the category suggestion prompt.
func DefaultFilterCategories() *CategorySet {
	return NewCategorySet(
		CategorySociety,
		CategoryCulture,
		CategoryGovernance,
		CategoryEntertainment,
		CategoryPublicInterest,
	)
}

// CategorySet is an ordered, closed set of category labels.
type CategorySet struct {
	list  []Category
	index map[Category]struct{}
}

func NewCategorySet(categories ...Category) *CategorySet {
	s := &CategorySet{index: make(map[Category]struct{}, len(categories))}
	for _, c := range categories {
		if _, ok := s.index[c]; ok {
			continue
		}
		s.index[c] = struct{}{}
		s.list = append(s.list, c)
	}
	return s
}

func (s *CategorySet) Contains(c Category) bool {
	_, ok := s.index[c]
	return ok
}

func (s *CategorySet) List() []Category {
	out := make([]Category, len(s.list))
	copy(out, s.list)
	return out
}

func (s *CategorySet) Strings() []string {
	out := make([]string, len(s.list))
	for i, c := range s.list {
		out[i] = string(c)
	}
	return out
}

func (s *CategorySet) Len() int {
	return len(s.list)
}
