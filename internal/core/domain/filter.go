package domain

// Operation is the comparison applied by a Criterion.
type Operation string

const (
	OperationIs    Operation = "IS"
	OperationGte   Operation = "GTE"
	OperationLte   Operation = "LTE"
	OperationGt    Operation = "GT"
	OperationLt    Operation = "LT"
	OperationRegex Operation = "REGEX"
)

func (o Operation) Valid() bool {
	switch o {
	case OperationIs, OperationGte, OperationLte, OperationGt, OperationLt, OperationRegex:
		return true
	}
	return false
}

// Criterion is a single filter condition. Value is untyped; it is checked
// against the target field when the filter is compiled.
type Criterion struct {
	Key       string
	Operation Operation
	Value     any
}

// FilterSet is an ordered list of criteria combined with AND. An empty set
// matches everything.
type FilterSet []Criterion

// Page is one slice of a filtered collection together with the total number
// of matching records.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int64
	Size  int64
}
