package model

// CategorySet maps each transaction type to its ordered list of category
// names. Slice order is display order.
type CategorySet struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}

// ByType returns the category list for a type, or nil for an unknown type.
func (c CategorySet) ByType(t TransactionType) []string {
	switch t {
	case TypeExpense:
		return c.Expense
	case TypeIncome:
		return c.Income
	default:
		return nil
	}
}

// All returns both lists concatenated, expense first.
func (c CategorySet) All() []string {
	out := make([]string, 0, len(c.Expense)+len(c.Income))
	out = append(out, c.Expense...)
	return append(out, c.Income...)
}

// DefaultCategories is the seed applied to an empty store. The seed is
// written once; stores initialized by earlier versions are never migrated to
// a newer default list.
func DefaultCategories() CategorySet {
	return CategorySet{
		Expense: []string{
			"Food",
			"Transportation",
			"Housing",
			"Utilities",
			"Entertainment",
			"Healthcare",
			"Shopping",
			"Other",
		},
		Income: []string{
			"Salary",
			"Freelance",
			"Investments",
			"Other",
		},
	}
}
