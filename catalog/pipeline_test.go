package catalog

import (
	"testing"

	"github.com/karthikram1909/refurbished-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(id, brand, model, storage string, condition models.Condition, price int) models.Phone {
	return models.Phone{
		ID: id, Brand: brand, Model: model, Storage: storage,
		Condition: condition, Price: price, Stock: 1,
	}
}

func sampleCatalog() []models.Phone {
	return []models.Phone{
		listing("1", "Apple", "iPhone 12 128GB", "128GB", models.ConditionExcellent, 45000),
		listing("2", "Samsung", "Galaxy S21 256GB", "256GB", models.ConditionGood, 38000),
		listing("3", "Apple", "iPhone 11 64GB", "64GB", models.ConditionFair, 28000),
		listing("4", "OnePlus", "9 Pro 256GB", "256GB", models.ConditionGood, 32000),
		listing("5", "Samsung", "Galaxy S20 128GB", "128GB", models.ConditionExcellent, 30000),
	}
}

func TestSearchMatchesBrandOrModel(t *testing.T) {
	phones := sampleCatalog()

	got := Apply(phones, QuerySpec{Search: "apple"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	got = Apply(phones, QuerySpec{Search: "GALAXY"})
	assert.Len(t, got, 2)

	got = Apply(phones, QuerySpec{Search: "pixel"})
	assert.Empty(t, got)
}

func TestEmptySetsMeanNoRestriction(t *testing.T) {
	phones := sampleCatalog()
	got := Apply(phones, QuerySpec{})
	assert.Equal(t, phones, got)
}

func TestFiltersCompose(t *testing.T) {
	phones := sampleCatalog()
	spec := QuerySpec{
		Brands:     []string{"Apple", "Samsung"},
		Conditions: []models.Condition{models.ConditionExcellent},
		MaxPrice:   40000,
	}

	got := Apply(phones, spec)
	require.Len(t, got, 1)
	assert.Equal(t, "5", got[0].ID)

	// Every result satisfies every active predicate and came from the input.
	for _, p := range got {
		assert.Contains(t, spec.Brands, p.Brand)
		assert.Contains(t, spec.Conditions, p.Condition)
		assert.LessOrEqual(t, p.Price, spec.MaxPrice)
		assert.Contains(t, phones, p)
	}
}

func TestPriceRangeIsInclusive(t *testing.T) {
	phones := sampleCatalog()
	got := Apply(phones, QuerySpec{MinPrice: 28000, MaxPrice: 32000})
	require.Len(t, got, 3)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, 28000)
		assert.LessOrEqual(t, p.Price, 32000)
	}
}

func TestPipelineIsIdempotent(t *testing.T) {
	phones := sampleCatalog()
	spec := QuerySpec{Brands: []string{"Samsung"}, Sort: SortPriceAsc}

	once := Apply(phones, spec)
	twice := Apply(once, spec)
	assert.Equal(t, once, twice)
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	phones := sampleCatalog()
	Apply(phones, QuerySpec{Sort: SortPriceDesc})
	assert.Equal(t, sampleCatalog(), phones)
}

func TestStableSortScenario(t *testing.T) {
	// Prices [1000,500,1500,500,2000], range [0,1500], ascending →
	// [500,500,1000,1500] with the two 500s in original relative order.
	phones := []models.Phone{
		listing("p1", "A", "m1", "", models.ConditionGood, 1000),
		listing("p2", "A", "m2", "", models.ConditionGood, 500),
		listing("p3", "A", "m3", "", models.ConditionGood, 1500),
		listing("p4", "A", "m4", "", models.ConditionGood, 500),
		listing("p5", "A", "m5", "", models.ConditionGood, 2000),
	}

	got := Apply(phones, QuerySpec{MaxPrice: 1500, Sort: SortPriceAsc})
	require.Len(t, got, 4)
	assert.Equal(t, []string{"p2", "p4", "p1", "p3"},
		[]string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func TestSortStabilityDescending(t *testing.T) {
	phones := []models.Phone{
		listing("a", "A", "m", "", models.ConditionGood, 500),
		listing("b", "A", "m", "", models.ConditionGood, 500),
		listing("c", "A", "m", "", models.ConditionGood, 900),
	}

	got := Apply(phones, QuerySpec{Sort: SortPriceDesc})
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID, "equal prices keep their relative order")
	assert.Equal(t, "b", got[2].ID)
}

func TestSortNonePreservesFilteredOrder(t *testing.T) {
	phones := sampleCatalog()
	got := Apply(phones, QuerySpec{Brands: []string{"Samsung"}})
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "5", got[1].ID)
}

func TestPaginate(t *testing.T) {
	phones := make([]models.Phone, 7)
	for i := range phones {
		phones[i] = listing(string(rune('a'+i)), "A", "m", "", models.ConditionGood, 100)
	}

	page1, totalPages := Paginate(phones, 1, 3)
	assert.Len(t, page1, 3)
	assert.Equal(t, 3, totalPages)

	page3, _ := Paginate(phones, 3, 3)
	assert.Len(t, page3, 1)

	past, totalPages := Paginate(phones, 9, 3)
	assert.Empty(t, past)
	assert.Equal(t, 3, totalPages)

	empty, totalPages := Paginate(nil, 1, 3)
	assert.Empty(t, empty)
	assert.Zero(t, totalPages)
}

func TestCollectFacets(t *testing.T) {
	facets := CollectFacets(sampleCatalog())
	assert.Equal(t, []string{"Apple", "Samsung", "OnePlus"}, facets.Brands)
	assert.Equal(t, []string{"128GB", "256GB", "64GB"}, facets.Storage)
}
