package model

// CategoryKind indicates how a category participates in budget computations.
type CategoryKind string

const (
	// CategoryKindIncome represents categories for income transactions.
	CategoryKindIncome CategoryKind = "income"
	// CategoryKindEssential represents unavoidable recurring expenses.
	CategoryKindEssential CategoryKind = "essential"
	// CategoryKindDiscretionary represents optional spending.
	CategoryKindDiscretionary CategoryKind = "discretionary"
	// CategoryKindInvestment represents investment contributions.
	CategoryKindInvestment CategoryKind = "investment"
	// CategoryKindDebtPayment represents debt servicing.
	CategoryKindDebtPayment CategoryKind = "debt-payment"
	// CategoryKindNoCompute represents categories excluded from budget math.
	CategoryKindNoCompute CategoryKind = "no-compute"
)

// ValidCategoryKind reports whether k is one of the known category kinds.
func ValidCategoryKind(k CategoryKind) bool {
	switch k {
	case CategoryKindIncome, CategoryKindEssential, CategoryKindDiscretionary,
		CategoryKindInvestment, CategoryKindDebtPayment, CategoryKindNoCompute:
		return true
	}
	return false
}

// Category represents a user-defined spending category. This subsystem
// treats categories as a read-only dependency.
type Category struct {
	ID    string
	Name  string
	Kind  CategoryKind
	Color string // Presentation only
	Icon  string // Presentation only
}
