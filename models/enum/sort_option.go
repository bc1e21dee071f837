package enum

// SortOption 表示商品列表的排序方式
type SortOption string

const (
	SortNone         SortOption = ""
	SortNameAsc      SortOption = "name-asc"
	SortNameDesc     SortOption = "name-desc"
	SortPriceAsc     SortOption = "price-asc"
	SortPriceDesc    SortOption = "price-desc"
	SortRatingAsc    SortOption = "rating-asc"
	SortRatingDesc   SortOption = "rating-desc"
	SortDiscountAsc  SortOption = "discount-asc"
	SortDiscountDesc SortOption = "discount-desc"
)

var sortOptions = []SortOption{
	SortNameAsc, SortNameDesc,
	SortPriceAsc, SortPriceDesc,
	SortRatingAsc, SortRatingDesc,
	SortDiscountAsc, SortDiscountDesc,
}

// SortOptions lists every selectable option in display order.
func SortOptions() []SortOption {
	out := make([]SortOption, len(sortOptions))
	copy(out, sortOptions)
	return out
}

func (s SortOption) Valid() bool {
	if s == SortNone {
		return true
	}
	for _, o := range sortOptions {
		if o == s {
			return true
		}
	}
	return false
}
