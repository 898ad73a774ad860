package analysis

import (
	"strings"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
)

// Category membership is decided by case-insensitive substring search over the
// user-authored location/label text. The trigger lists below are the single
// source of truth for those rules; every predicate reads from here.
var (
	// serviceTriggers mark income from labor or non-inventory sources,
	// matched against both labels and location.
	serviceTriggers = []string{"service", "labor", "other income"}

	// expenseExclusions are special accounting buckets whose purchases do not
	// count as business operating expenses.
	expenseExclusions = []string{"nfs", "other income", "junkagie"}

	// activeExclusions are buckets excluded from active inventory.
	activeExclusions = []string{"nfs", "other income", "junkagie", "business assets"}
)

const (
	lossTrigger          = "loss"
	businessAssetTrigger = "business assets"
	junkagieTrigger      = "junkagie"
)

func containsAny(haystack string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(haystack, trigger) {
			return true
		}
	}
	return false
}

func fold(s string) string { return strings.ToLower(s) }

// isService reports whether an item is service/other income rather than a
// product sale. Both labels and location participate.
func isService(item domain.Item) bool {
	return containsAny(fold(item.Labels), serviceTriggers) ||
		containsAny(fold(item.Location), serviceTriggers)
}

// isLoss marks items written off through a "Loss" bucket. They are kept out of
// product sale metrics and accounted separately at disposal time.
func isLoss(item domain.Item) bool {
	return strings.Contains(fold(item.Location), lossTrigger)
}

func isBusinessAsset(item domain.Item) bool {
	return strings.Contains(fold(item.Location), businessAssetTrigger)
}

func isJunkagie(item domain.Item) bool {
	return strings.Contains(fold(item.Location), junkagieTrigger)
}

// isBusinessExpense reports whether an in-period purchase counts toward
// business operating expenses.
func isBusinessExpense(item domain.Item) bool {
	return !containsAny(fold(item.Location), expenseExclusions)
}

// isActiveInventory: not yet disposed of and not parked in a special bucket.
// An unarchived item is active no matter what its other fields say.
func isActiveInventory(item domain.Item) bool {
	return !item.Archived && !containsAny(fold(item.Location), activeExclusions)
}

// isMarketplace: listed online (the "insured" flag doubles as the posted
// marker) and still in inventory.
func isMarketplace(item domain.Item) bool {
	return item.Insured && !item.Archived
}
