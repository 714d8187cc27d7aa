package decompose

import (
	"errors"
	"fmt"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// ErrInvalidItems is wrapped by every error returned from Validate.
var ErrInvalidItems = errors.New("invalid task items")

// Validate checks the structural invariants of a decomposition: IDs follow
// assignment order and every dependency points to an earlier item. Since
// edges only point backwards, a valid list is acyclic.
//
// Items produced by Decompose always pass; Validate exists for items that
// come back from storage or other sources.
func Validate(items []models.TaskItem) error {
	var errs []error
	seen := make(map[string]bool, len(items))

	for i, item := range items {
		if want := models.ItemID(i + 1); item.ID != want {
			errs = append(errs, fmt.Errorf("%w: item %d has id %q, want %q", ErrInvalidItems, i+1, item.ID, want))
		}
		if !item.Category.Valid() {
			errs = append(errs, fmt.Errorf("%w: item %s has unknown category %q", ErrInvalidItems, item.ID, item.Category))
		}
		for _, dep := range item.DependsOn {
			switch {
			case dep == item.ID:
				errs = append(errs, fmt.Errorf("%w: item %s depends on itself", ErrInvalidItems, item.ID))
			case !seen[dep]:
				errs = append(errs, fmt.Errorf("%w: item %s depends on %s which is not earlier in the list", ErrInvalidItems, item.ID, dep))
			}
		}
		seen[item.ID] = true
	}

	return errors.Join(errs...)
}
