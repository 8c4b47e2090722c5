package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"
)

const (
	fieldID           = "_id"
	fieldTitle        = "title"
	fieldDescription  = "description"
	fieldCreationDate = "creationDate"
	fieldStatus       = "status"
	fieldUserID       = "userId"
	fieldName         = "name"
	fieldSurname      = "surname"
	fieldUsername     = "username"
)

var taskFields = map[string]string{
	filter.TaskFieldID:           fieldID,
	filter.TaskFieldTitle:        fieldTitle,
	filter.TaskFieldDescription:  fieldDescription,
	filter.TaskFieldCreationDate: fieldCreationDate,
	filter.TaskFieldStatus:       fieldStatus,
	filter.TaskFieldUserID:       fieldUserID,
}

var userFields = map[string]string{
	filter.UserFieldID:       fieldID,
	filter.UserFieldName:     fieldName,
	filter.UserFieldSurname:  fieldSurname,
	filter.UserFieldUsername: fieldUsername,
}

var comparisonOperators = map[domain.Operation]string{
	domain.OperationGte: "$gte",
	domain.OperationLte: "$lte",
	domain.OperationGt:  "$gt",
	domain.OperationLt:  "$lt",
}

// matchNothing is a condition no document satisfies.
var matchNothing = bson.D{{Key: "$in", Value: bson.A{}}}

// renderFilter turns a predicate into a $match document. A single clause is
// rendered inline, several are joined with $and so repeated fields keep
// every condition.
func renderFilter(predicate filter.Predicate, fields map[string]string) (bson.D, error) {
	if predicate.Empty() {
		return bson.D{}, nil
	}

	conditions := make(bson.A, 0, len(predicate.Clauses))
	for _, clause := range predicate.Clauses {
		condition, err := renderClause(clause, fields)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}

	if len(conditions) == 1 {
		return conditions[0].(bson.D), nil
	}
	return bson.D{{Key: "$and", Value: conditions}}, nil
}

func renderClause(clause filter.Clause, fields map[string]string) (bson.D, error) {
	name, ok := fields[clause.Key]
	if !ok {
		return nil, fmt.Errorf("no mongo field for filter key %q", clause.Key)
	}

	value := clause.Value
	switch v := value.(type) {
	case domain.TaskStatus:
		value = string(v)
	case string:
		if clause.Kind == filter.KindID {
			id, err := primitive.ObjectIDFromHex(v)
			if err != nil {
				return bson.D{{Key: name, Value: matchNothing}}, nil
			}
			value = id
		}
	}

	switch clause.Operation {
	case domain.OperationIs:
		return bson.D{{Key: name, Value: value}}, nil
	case domain.OperationRegex:
		return bson.D{{Key: name, Value: bson.D{{Key: "$regex", Value: primitive.Regex{Pattern: value.(string)}}}}}, nil
	default:
		op, ok := comparisonOperators[clause.Operation]
		if !ok {
			return nil, fmt.Errorf("unsupported operation %q", clause.Operation)
		}
		return bson.D{{Key: name, Value: bson.D{{Key: op, Value: value}}}}, nil
	}
}
