package catalog

import (
	"sort"
	"strings"

	"github.com/karthikram1909/refurbished-store/models"
)

// DefaultPageSize matches the listing page of the storefront.
const DefaultPageSize = 30

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-low"
	SortPriceDesc SortKey = "price-high"
)

// QuerySpec describes one catalog query. Empty sets and empty strings mean
// "no restriction". MinPrice/MaxPrice are inclusive; a MaxPrice of zero or
// less means unbounded above, mirroring MinPrice.
type QuerySpec struct {
	Search         string
	ConditionEqual models.Condition
	Brands         []string
	Conditions     []models.Condition
	Storage        []string
	MinPrice       int
	MaxPrice       int
	Sort           SortKey
}

// Apply runs the filters in their fixed order — free-text search, exact
// condition, brand set, condition set, storage set, price range — then
// stable-sorts by the sort key. Pure: the input slice is never modified and
// the same inputs always produce the same sequence.
func Apply(phones []models.Phone, spec QuerySpec) []models.Phone {
	out := make([]models.Phone, 0, len(phones))
	for _, p := range phones {
		if matches(p, spec) {
			out = append(out, p)
		}
	}

	switch spec.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

func matches(p models.Phone, spec QuerySpec) bool {
	if spec.Search != "" {
		q := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Model), q) {
			return false
		}
	}
	if spec.ConditionEqual != "" && p.Condition != spec.ConditionEqual {
		return false
	}
	if len(spec.Brands) > 0 && !containsString(spec.Brands, p.Brand) {
		return false
	}
	if len(spec.Conditions) > 0 && !containsCondition(spec.Conditions, p.Condition) {
		return false
	}
	if len(spec.Storage) > 0 && !containsString(spec.Storage, p.Storage) {
		return false
	}
	if spec.MinPrice > 0 && p.Price < spec.MinPrice {
		return false
	}
	if spec.MaxPrice > 0 && p.Price > spec.MaxPrice {
		return false
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsCondition(set []models.Condition, v models.Condition) bool {
	for _, c := range set {
		if c == v {
			return true
		}
	}
	return false
}

// Paginate slices items into fixed-size pages. Pages are 1-based; a page past
// the end yields an empty slice. totalPages is 0 for an empty input.
func Paginate(items []models.Phone, page, size int) (pageItems []models.Phone, totalPages int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	totalPages = (len(items) + size - 1) / size

	start := (page - 1) * size
	if start >= len(items) {
		return []models.Phone{}, totalPages
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// Facets are the distinct filter options the listing sidebar offers, in
// first-seen catalog order. Blank storage labels are skipped.
type Facets struct {
	Brands  []string `json:"brands"`
	Storage []string `json:"storage"`
}

func CollectFacets(phones []models.Phone) Facets {
	var f Facets
	seenBrand := make(map[string]bool)
	seenStorage := make(map[string]bool)
	for _, p := range phones {
		if p.Brand != "" && !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			f.Brands = append(f.Brands, p.Brand)
		}
		if p.Storage != "" && !seenStorage[p.Storage] {
			seenStorage[p.Storage] = true
			f.Storage = append(f.Storage, p.Storage)
		}
	}
	return f
}
