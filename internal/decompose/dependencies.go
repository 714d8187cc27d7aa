package decompose

import "github.com/ShayCichocki/tasksplit/pkg/models"

// followsPrevious are categories that depend on the item built just before them.
var followsPrevious = map[models.Category]bool{
	models.CategoryDocumentation: true,
	models.CategoryTesting:       true,
}

// Dependencies returns the IDs the item at index (0-based) must wait for,
// given the categories of every item in the call in assignment order.
//
// Two rules are unioned:
//   - documentation and testing depend on the immediately preceding item
//   - web development depends on every earlier API development item
func Dependencies(index int, categories []models.Category) []string {
	deps := []string{}
	category := categories[index]

	if followsPrevious[category] && index > 0 {
		deps = append(deps, models.ItemID(index))
	}

	if category == models.CategoryWebDevelopment {
		for i, earlier := range categories[:index] {
			if earlier == models.CategoryAPIDevelopment {
				deps = appendUnique(deps, models.ItemID(i+1))
			}
		}
	}
	return deps
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
