package filter

import (
	"fmt"
	"regexp"
	"time"

	"github.com/JacobNatural/task-manager/internal/core/domain"
)

// Clause is a validated criterion. Value holds a string for KindString,
// KindID and REGEX clauses, a time.Time for KindTime and a
// domain.TaskStatus for KindStatus. A nil Value on an IS clause matches
// records where the field is unset.
type Clause struct {
	Key       string
	Kind      Kind
	Operation domain.Operation
	Value     any
}

// Predicate is an AND of clauses in caller order. The zero value matches
// every record.
type Predicate struct {
	Clauses []Clause
}

func (p Predicate) Empty() bool { return len(p.Clauses) == 0 }

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Compile validates criteria against the schema and coerces every value to
// the type of its field. Any mismatch fails with domain.ErrInvalidFilter.
func (s Schema) Compile(criteria domain.FilterSet) (Predicate, error) {
	clauses := make([]Clause, 0, len(criteria))
	for _, c := range criteria {
		clause, err := s.compileOne(c)
		if err != nil {
			return Predicate{}, err
		}
		clauses = append(clauses, clause)
	}
	return Predicate{Clauses: clauses}, nil
}

func (s Schema) compileOne(c domain.Criterion) (Clause, error) {
	field, ok := s.fields[c.Key]
	if !ok {
		return Clause{}, fmt.Errorf("%w: unknown %s field %q", domain.ErrInvalidFilter, s.name, c.Key)
	}
	if !c.Operation.Valid() {
		return Clause{}, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidFilter, c.Operation)
	}
	kind := field.Kind
	if !kind.supports(c.Operation) {
		return Clause{}, fmt.Errorf("%w: %s field %q does not support %s", domain.ErrInvalidFilter, kind, c.Key, c.Operation)
	}

	if c.Value == nil && field.Nullable && c.Operation == domain.OperationIs {
		return Clause{Key: c.Key, Kind: kind, Operation: c.Operation}, nil
	}

	value, err := coerce(kind, c.Operation, c.Value)
	if err != nil {
		return Clause{}, fmt.Errorf("%w: field %q: %v", domain.ErrInvalidFilter, c.Key, err)
	}

	return Clause{Key: c.Key, Kind: kind, Operation: c.Operation, Value: value}, nil
}

func coerce(kind Kind, op domain.Operation, raw any) (any, error) {
	if op == domain.OperationRegex {
		pattern, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("pattern must be a string, got %T", raw)
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, err
		}
		return pattern, nil
	}

	switch kind {
	case KindTime:
		return parseTime(raw)
	case KindStatus:
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("status must be a string, got %T", raw)
		}
		status := domain.TaskStatus(value)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status %q", value)
		}
		return status, nil
	default:
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("value must be a string, got %T", raw)
		}
		return value, nil
	}
}

func parseTime(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse %q as a date", v)
	default:
		return time.Time{}, fmt.Errorf("date must be a string, got %T", raw)
	}
}
