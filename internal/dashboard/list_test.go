package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/modules/billboard"
	"github.com/georgemunganga/storeadmin/internal/modules/order"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
	"github.com/georgemunganga/storeadmin/internal/modules/size"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]time.Time{
		"January 2nd, 2006":   time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC),
		"March 1st, 2024":     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		"March 3rd, 2024":     time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		"April 11th, 2024":    time.Date(2024, time.April, 11, 0, 0, 0, 0, time.UTC),
		"April 12th, 2024":    time.Date(2024, time.April, 12, 0, 0, 0, 0, time.UTC),
		"May 22nd, 2024":      time.Date(2024, time.May, 22, 0, 0, 0, 0, time.UTC),
		"December 31st, 1999": time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	for want, in := range cases {
		assert.Equal(t, want, FormatDate(in))
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$12.50", FormatUSD(decimal.RequireFromString("12.5")))
	assert.Equal(t, "$0.00", FormatUSD(decimal.Zero))
	assert.Equal(t, "$1,234,567.89", FormatUSD(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "-$100.00", FormatUSD(decimal.NewFromInt(-100)))
}

func TestListHeading(t *testing.T) {
	one := NewListClient(Sizes, "s1", []ValueColumn{{ID: "a"}})
	assert.Equal(t, "Size (1)", one.Heading())
	assert.Equal(t, "Manage sizes for your store", one.Description())
	assert.Equal(t, "/s1/sizes/new", one.NewRoute())
	assert.True(t, one.CanCreate())

	none := NewListClient(Categories, "s1", []CategoryColumn{})
	assert.Equal(t, "Categories (0)", none.Heading())

	orders := NewListClient(Orders, "s1", []OrderColumn{{ID: "a"}, {ID: "b"}})
	assert.Equal(t, "Orders (2)", orders.Heading())
	assert.Equal(t, "Manage orders for your store", orders.Description())
	assert.False(t, orders.CanCreate())
	assert.Nil(t, orders.APIRoutes("http://x"))
}

func TestAPIRoutes(t *testing.T) {
	want := []APIRoute{
		{Title: "GET", Variant: "public", Value: "https://shop.test/api/s1/colors"},
		{Title: "GET", Variant: "public", Value: "https://shop.test/api/s1/colors/{colorId}"},
		{Title: "POST", Variant: "admin", Value: "https://shop.test/api/s1/colors"},
		{Title: "PATCH", Variant: "admin", Value: "https://shop.test/api/s1/colors/{colorId}"},
		{Title: "DELETE", Variant: "admin", Value: "https://shop.test/api/s1/colors/{colorId}"},
	}
	got := NewListClient(Colors, "s1", []ValueColumn{}).APIRoutes("https://shop.test")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "/api/s1/colors", APIRoutes("", "s1", Colors)[0].Value)
}

func TestRowsFromModels(t *testing.T) {
	created := time.Date(2024, time.June, 2, 10, 0, 0, 0, time.UTC)
	p := &product.Product{
		ID: uuid.New(), Name: "Tee", Price: decimal.RequireFromString("12.5"), IsFeatured: true,
		Category: product.Named{Name: "Shirts"}, Size: product.Valued{Name: "Large", Value: "L"},
		Color: product.Valued{Name: "Black", Value: "#000"}, CreatedAt: created,
	}
	rows := ProductRows([]*product.Product{p})
	require.Len(t, rows, 1)
	assert.Equal(t, "$12.50", rows[0].Price)
	assert.Equal(t, "June 2nd, 2024", rows[0].CreatedAt)
	assert.Equal(t, "true", rows[0].Field("isFeatured"))
	assert.Equal(t, "Shirts", rows[0].Field("category"))

	o := &order.Order{
		ID: uuid.New(), Phone: "555", Address: "here", IsPaid: true,
		TotalPrice: decimal.NewFromInt(30),
		Items: []*order.OrderItem{
			{Product: order.ProductSummary{Name: "Cap"}},
			{Product: order.ProductSummary{Name: "Tee"}},
		},
	}
	orows := OrderRows([]*order.Order{o})
	assert.Equal(t, "Cap, Tee", orows[0].Products)
	assert.Equal(t, "$30.00", orows[0].TotalPrice)

	b := BillboardRows([]*billboard.Billboard{{ID: uuid.New(), Label: "Summer", CreatedAt: created}})
	assert.Equal(t, "Summer", b[0].Field("label"))
	s := SizeRows([]*size.Size{{ID: uuid.New(), Name: "Large", Value: "L", CreatedAt: created}})
	assert.Equal(t, "L", s[0].Field("value"))
	assert.Len(t, Columns(Products), 8)
}

func TestTableSearchIsCaseInsensitive(t *testing.T) {
	rows := []BillboardColumn{{ID: "1", Label: "Summer Sale"}, {ID: "2", Label: "Winter"}, {ID: "3", Label: "summertime"}}
	table := NewListClient(Billboards, "s1", rows).Table("SUMMER")
	ids := []string{}
	for _, r := range table.Rows() {
		ids = append(ids, r.RowID())
	}
	assert.Equal(t, []string{"1", "3"}, ids)

	table.Filter("")
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "", table.Query())
}

func TestTableSortAndPaging(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	var products []*product.Product
	for i := range 23 {
		products = append(products, &product.Product{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("P%02d", i),
			Price:     decimal.NewFromInt(int64(100 - i*4)),
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	table := NewTable(ProductRows(products), "name", "")
	assert.Equal(t, 3, table.PageCount())
	assert.Len(t, table.Rows(), PageSize)
	assert.False(t, table.CanPrevious())
	assert.True(t, table.CanNext())

	table.Next()
	table.Next()
	assert.Len(t, table.Rows(), 3)
	assert.False(t, table.CanNext())
	table.Next()
	assert.Equal(t, 2, table.PageIndex())
	table.Previous()
	assert.Equal(t, 1, table.PageIndex())

	// $12 sorts before $100 numerically, not lexically
	table.SortBy("price", false)
	table.SetPage(0)
	first := table.Rows()[0]
	assert.Equal(t, "P22", first.Name)
	assert.Equal(t, "$12.00", first.Price)

	table.SortBy("date", true)
	assert.Equal(t, "P22", table.Rows()[0].Name)
	table.SortBy("name", false)
	assert.Equal(t, "P00", table.Rows()[0].Name)

	empty := NewTable([]ProductColumn{}, "name", "")
	assert.Equal(t, 1, empty.PageCount())
	assert.Empty(t, empty.Rows())
	assert.False(t, empty.CanNext())
}

func TestTableSortsDatesWithinOneSecond(t *testing.T) {
	at := time.Date(2024, time.March, 4, 12, 0, 5, 0, time.UTC)
	items := []*billboard.Billboard{
		{ID: uuid.New(), Label: "later", CreatedAt: at.Add(500 * time.Millisecond)},
		{ID: uuid.New(), Label: "earlier", CreatedAt: at},
		{ID: uuid.New(), Label: "latest", CreatedAt: at.Add(500*time.Millisecond + 1234)},
	}
	table := NewTable(BillboardRows(items), "label", "")

	table.SortBy("date", false)
	var labels []string
	for _, r := range table.Rows() {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"earlier", "later", "latest"}, labels)

	table.SortBy("date", true)
	assert.Equal(t, "latest", table.Rows()[0].Label)
}

func TestTableSortIgnoresCase(t *testing.T) {
	now := time.Now()
	items := []*billboard.Billboard{
		{ID: uuid.New(), Label: "Zebra", CreatedAt: now},
		{ID: uuid.New(), Label: "apple", CreatedAt: now},
		{ID: uuid.New(), Label: "Mango", CreatedAt: now},
	}
	table := NewTable(BillboardRows(items), "label", "")
	table.SortBy("label", false)

	var labels []string
	for _, r := range table.Rows() {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"apple", "Mango", "Zebra"}, labels)
}
