package mapper

import (
	"github.com/JacobNatural/task-manager/internal/adapter/http/dto"
	"github.com/JacobNatural/task-manager/internal/core/domain"
)

// ToFilterSet keeps the criteria in request order. Values stay as decoded
// from JSON; the filter compiler coerces them per field.
func ToFilterSet(req dto.FilterRequest) domain.FilterSet {
	filters := make(domain.FilterSet, 0, len(req.FilterCriteria))
	for _, criterion := range req.FilterCriteria {
		filters = append(filters, domain.Criterion{
			Key:       criterion.Key,
			Operation: domain.Operation(criterion.Operation),
			Value:     criterion.Value,
		})
	}
	return filters
}
