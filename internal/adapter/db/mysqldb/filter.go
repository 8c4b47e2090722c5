package mysqldb

import (
	"fmt"
	"strings"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"
)

var taskColumns = map[string]string{
	filter.TaskFieldID:           "id",
	filter.TaskFieldTitle:        "title",
	filter.TaskFieldDescription:  "description",
	filter.TaskFieldCreationDate: "creation_date",
	filter.TaskFieldStatus:       "status",
	filter.TaskFieldUserID:       "user_id",
}

var userColumns = map[string]string{
	filter.UserFieldID:       "id",
	filter.UserFieldName:     "name",
	filter.UserFieldSurname:  "surname",
	filter.UserFieldUsername: "username",
}

var comparisonOperators = map[domain.Operation]string{
	domain.OperationIs:    "=",
	domain.OperationGte:   ">=",
	domain.OperationLte:   "<=",
	domain.OperationGt:    ">",
	domain.OperationLt:    "<",
	domain.OperationRegex: "REGEXP",
}

// renderWhere turns a predicate into a WHERE condition with positional
// arguments. An empty predicate renders as 1=1.
func renderWhere(predicate filter.Predicate, columns map[string]string) (string, []any, error) {
	if predicate.Empty() {
		return "1=1", nil, nil
	}

	conditions := make([]string, 0, len(predicate.Clauses))
	args := make([]any, 0, len(predicate.Clauses))
	for _, clause := range predicate.Clauses {
		column, ok := columns[clause.Key]
		if !ok {
			return "", nil, fmt.Errorf("no mysql column for filter key %q", clause.Key)
		}

		if clause.Value == nil && clause.Operation == domain.OperationIs {
			conditions = append(conditions, column+" IS NULL")
			continue
		}

		op, ok := comparisonOperators[clause.Operation]
		if !ok {
			return "", nil, fmt.Errorf("unsupported operation %q", clause.Operation)
		}

		value := clause.Value
		if status, isStatus := value.(domain.TaskStatus); isStatus {
			value = string(status)
		}

		conditions = append(conditions, fmt.Sprintf("%s %s ?", column, op))
		args = append(args, value)
	}

	return strings.Join(conditions, " AND "), args, nil
}
