package fhir

import (
	"fmt"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// Validate reports problems that do not stop an import. The mapping still
// produces a draft; callers surface these as warnings.
func Validate(q *Questionnaire) []error {
	var errs []error

	if q.ResourceType != "" && q.ResourceType != ResourceTypeQuestionnaire {
		errs = append(errs, fmt.Errorf("resourceType: expected %q, got %q", ResourceTypeQuestionnaire, q.ResourceType))
	}
	if q.URL != "" {
		if err := domain.ValidateCanonicalURL(q.URL); err != nil {
			errs = append(errs, fmt.Errorf("url: %w", err))
		}
	}

	seen := make(map[string]bool)
	errs = append(errs, validateItems("item", q.Item, seen)...)
	return errs
}

func validateItems(path string, items []Item, seen map[string]bool) []error {
	var errs []error

	for i, it := range items {
		prefix := fmt.Sprintf("%s[%d]", path, i)

		if it.LinkID == "" {
			errs = append(errs, fmt.Errorf("%s.linkId is missing; a generated id will be used", prefix))
		} else if seen[it.LinkID] {
			// The mapping drops the duplicate with everything under it.
			if n := countItems(it.Item); n > 0 {
				errs = append(errs, fmt.Errorf("%s.linkId: duplicate %q; later occurrence dropped with %d nested items", prefix, it.LinkID, n))
			} else {
				errs = append(errs, fmt.Errorf("%s.linkId: duplicate %q; later occurrence dropped", prefix, it.LinkID))
			}
			continue
		} else {
			seen[it.LinkID] = true
		}

		if it.Type == "" {
			errs = append(errs, fmt.Errorf("%s.type is missing", prefix))
		} else if !domain.ItemType(it.Type).Known() {
			errs = append(errs, fmt.Errorf("%s.type: unknown value %q", prefix, it.Type))
		}

		if it.MaxLength != nil && *it.MaxLength <= 0 {
			errs = append(errs, fmt.Errorf("%s.maxLength must be positive", prefix))
		}
		if len(it.Item) > 0 && it.Type != "" && it.Type != string(domain.ItemGroup) {
			errs = append(errs, fmt.Errorf("%s: only group items may have children (type %q)", prefix, it.Type))
		}

		errs = append(errs, validateItems(prefix+".item", it.Item, seen)...)
	}

	return errs
}

func countItems(items []Item) int {
	n := len(items)
	for _, it := range items {
		n += countItems(it.Item)
	}
	return n
}
