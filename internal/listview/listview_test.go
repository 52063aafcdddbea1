package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name     string
	Category string
	Price    float64
	Seq      int
}

var rowFields = Accessors[row]{
	"name":     func(r row) any { return r.Name },
	"category": func(r row) any { return r.Category },
	"price":    func(r row) any { return r.Price },
}

func sampleRows() []row {
	return []row{
		{"Sony A7 III Camera", "Cameras", 35, 0},
		{"DJI Mavic 3", "Drones", 60, 1},
		{"Canon EOS R6", "Cameras", 40, 2},
		{"MacBook Pro 16", "Laptops", 25, 3},
		{"Aputure 120d Light", "Lighting", 18, 4},
		{"Sony FE 24-70mm Lens", "Lenses", 22, 5},
	}
}

func names(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestSelectNoSearchNoFiltersReturnsAll(t *testing.T) {
	items := sampleRows()
	got := Select(items, "", []string{"name"}, "", Asc, nil, rowFields)
	assert.Equal(t, items, got)

	// Idempotent under repeated application.
	again := Select(got, "", []string{"name"}, "", Asc, nil, rowFields)
	assert.Equal(t, got, again)
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	items := sampleRows()
	Select(items, "", nil, "price", Desc, nil, rowFields)
	assert.Equal(t, sampleRows(), items)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Select(sampleRows(), "sony", []string{"name"}, "", Asc, nil, rowFields)
	assert.Equal(t, []string{"Sony A7 III Camera", "Sony FE 24-70mm Lens"}, names(got))

	got = Select(sampleRows(), "SONY", []string{"name"}, "", Asc, nil, rowFields)
	assert.Len(t, got, 2)
}

func TestSearchAcrossMultipleFields(t *testing.T) {
	got := Select(sampleRows(), "lens", []string{"name", "category"}, "", Asc, nil, rowFields)
	assert.Equal(t, []string{"Sony FE 24-70mm Lens"}, names(got))
}

func TestFiltersAreConjunctive(t *testing.T) {
	categoryIs := Filter[row]{
		Value: "Cameras",
		Pred:  func(r row, v string) bool { return r.Category == v },
	}
	got := Select(sampleRows(), "sony", []string{"name"}, "", Asc, []Filter[row]{categoryIs}, rowFields)
	assert.Equal(t, []string{"Sony A7 III Camera"}, names(got))
}

func TestEmptyFilterValueRetainsEverything(t *testing.T) {
	inactive := Filter[row]{
		Value: "",
		Pred:  func(r row, v string) bool { return false },
	}
	got := Select(sampleRows(), "", nil, "", Asc, []Filter[row]{inactive}, rowFields)
	assert.Len(t, got, len(sampleRows()))
}

func TestFilteringIsMonotonicNarrowing(t *testing.T) {
	base := Select(sampleRows(), "sony", []string{"name"}, "", Asc, nil, rowFields)

	narrower := Select(sampleRows(), "sony", []string{"name"}, "", Asc, []Filter[row]{{
		Value: "Lenses",
		Pred:  func(r row, v string) bool { return r.Category == v },
	}}, rowFields)

	assert.LessOrEqual(t, len(narrower), len(base))
	for _, r := range narrower {
		assert.Contains(t, base, r)
	}
}

func TestNumericSort(t *testing.T) {
	got := Select(sampleRows(), "", nil, "price", Asc, nil, rowFields)
	assert.Equal(t, []string{"Aputure 120d Light", "Sony FE 24-70mm Lens", "MacBook Pro 16", "Sony A7 III Camera", "Canon EOS R6", "DJI Mavic 3"}, names(got))
}

func TestStringSortAscendingThenReversedEqualsDescending(t *testing.T) {
	asc := Select(sampleRows(), "", nil, "name", Asc, nil, rowFields)
	desc := Select(sampleRows(), "", nil, "name", Desc, nil, rowFields)

	reversed := make([]row, len(asc))
	for i, r := range asc {
		reversed[len(asc)-1-i] = r
	}
	assert.Equal(t, desc, reversed)
}

func TestNumericSortAscendingThenReversedEqualsDescending(t *testing.T) {
	asc := Select(sampleRows(), "", nil, "price", Asc, nil, rowFields)
	desc := Select(sampleRows(), "", nil, "price", Desc, nil, rowFields)

	reversed := make([]row, len(asc))
	for i, r := range asc {
		reversed[len(asc)-1-i] = r
	}
	assert.Equal(t, desc, reversed)
}

func TestSortIsStableOnTies(t *testing.T) {
	items := []row{
		{"b", "X", 10, 0},
		{"a", "X", 10, 1},
		{"c", "X", 10, 2},
	}
	got := Select(items, "", nil, "price", Asc, nil, rowFields)
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Seq, got[1].Seq, got[2].Seq})
}

func TestUnknownSortFieldLeavesOrder(t *testing.T) {
	items := sampleRows()
	got := Select(items, "", nil, "bogus", Asc, nil, rowFields)
	assert.Equal(t, items, got)
}

func TestEmptyItems(t *testing.T) {
	got := Select([]row{}, "camera", []string{"name"}, "name", Asc, nil, rowFields)
	assert.Empty(t, got)
}

func TestPaginateCoversSetExactly(t *testing.T) {
	items := make([]row, 23)
	for i := range items {
		items[i] = row{Name: string(rune('a' + i)), Seq: i}
	}

	pageSize := 10
	total := TotalPages(len(items), pageSize)
	assert.Equal(t, 3, total)

	var joined []row
	for page := 1; page <= total; page++ {
		chunk := Paginate(items, page, pageSize)
		if page < total {
			assert.Len(t, chunk, pageSize)
		} else {
			assert.Len(t, chunk, 3)
		}
		joined = append(joined, chunk...)
	}
	assert.Equal(t, items, joined)
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	items := sampleRows()
	assert.Empty(t, Paginate(items, 5, 10))
	assert.Empty(t, Paginate(items, 0, 10))
}

func TestTotalPagesMinimumOne(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(7, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
}

func TestAllowedPageSize(t *testing.T) {
	assert.True(t, AllowedPageSize(25))
	assert.False(t, AllowedPageSize(0))
	assert.False(t, AllowedPageSize(7))
}
