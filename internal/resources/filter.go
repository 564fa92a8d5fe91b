package resources

import (
	"slices"
	"sort"
	"strings"
)

// Query selects resources. An empty Category means all.
type Query struct {
	Category     string
	Search       string
	UserLocation string
}

// Categories returns the category list in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// All returns the full catalog.
func All() []Resource {
	return cloneAll(catalog)
}

// Featured returns the first featured resources in catalog order.
func Featured() []Resource {
	out := make([]Resource, 0, featuredLimit)
	for _, r := range catalog {
		if !r.Featured {
			continue
		}
		out = append(out, clone(r))
		if len(out) == featuredLimit {
			break
		}
	}
	return out
}

// ValidCategory reports whether id is "all" or a known category.
func ValidCategory(id string) bool {
	if id == "" || id == CategoryAll {
		return true
	}
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Filter applies category and search filters. For the local category with a
// known user location, resources whose location mentions the user's city sort first.
func Filter(q Query) []Resource {
	category := strings.TrimSpace(q.Category)
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Resource, 0, len(catalog))
	for _, r := range catalog {
		if category != "" && category != CategoryAll && r.Category != category {
			continue
		}
		if search != "" && !matches(r, search) {
			continue
		}
		out = append(out, clone(r))
	}

	city := cityOf(q.UserLocation)
	if city != "" && category == CategoryLocal {
		sort.SliceStable(out, func(i, j int) bool {
			return nearby(out[i], city) && !nearby(out[j], city)
		})
	}
	return out
}

func matches(r Resource, search string) bool {
	if strings.Contains(strings.ToLower(r.Title), search) || strings.Contains(strings.ToLower(r.Description), search) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func cityOf(location string) string {
	first, _, _ := strings.Cut(location, ",")
	return strings.ToLower(strings.TrimSpace(first))
}

func nearby(r Resource, city string) bool {
	return r.Location != "" && strings.Contains(strings.ToLower(r.Location), city)
}

func clone(r Resource) Resource {
	r.Requirements = slices.Clone(r.Requirements)
	r.Tags = slices.Clone(r.Tags)
	return r
}

func cloneAll(in []Resource) []Resource {
	out := make([]Resource, len(in))
	for i, r := range in {
		out[i] = clone(r)
	}
	return out
}
