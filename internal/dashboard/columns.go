package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/georgemunganga/storeadmin/internal/modules/billboard"
	"github.com/georgemunganga/storeadmin/internal/modules/category"
	"github.com/georgemunganga/storeadmin/internal/modules/color"
	"github.com/georgemunganga/storeadmin/internal/modules/order"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
	"github.com/georgemunganga/storeadmin/internal/modules/size"
)

// Row is one display-ready table row.
type Row interface {
	RowID() string
	// Field returns the display text of the column named key.
	Field(key string) string
	// SortKey returns a value that orders the column lexically.
	SortKey(key string) string
}

// Column is a table header.
type Column struct {
	Key    string
	Header string
}

// Columns returns the table columns shown for e.
func Columns(e Entity) []Column {
	switch e.Path {
	case Billboards.Path:
		return []Column{{"label", "Label"}, {"date", "Date"}}
	case Categories.Path:
		return []Column{{"name", "Name"}, {"billboard", "Billboard"}, {"date", "Date"}}
	case Sizes.Path, Colors.Path:
		return []Column{{"name", "Name"}, {"value", "Value"}, {"date", "Date"}}
	case Products.Path:
		return []Column{
			{"name", "Name"}, {"isArchived", "Archived"}, {"isFeatured", "Featured"}, {"price", "Price"},
			{"category", "Category"}, {"size", "Size"}, {"color", "Color"}, {"date", "Date"},
		}
	case Orders.Path:
		return []Column{
			{"products", "Products"}, {"phone", "Phone"}, {"address", "Address"},
			{"totalPrice", "Total price"}, {"isPaid", "Paid"},
		}
	}
	return nil
}

// FormatDate renders t like "January 2nd, 2006".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinal(t.Day()), t.Year())
}

func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// FormatUSD renders d as US dollars, e.g. "$1,234.50".
func FormatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign, d = "-", d.Neg()
	}
	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "$" + b.String() + "." + frac
}

// dateKey and amountKey produce lexically ordered sort keys.
// Fractional seconds are fixed width so keys compare as plain strings.
func dateKey(t time.Time) string { return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00") }

func amountKey(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if len(s) < 20 {
		s = strings.Repeat("0", 20-len(s)) + s
	}
	return s
}

// BillboardColumn is a billboard list row.
type BillboardColumn struct {
	ID        string
	Label     string
	CreatedAt string
	created   time.Time
}

func (r BillboardColumn) RowID() string { return r.ID }

func (r BillboardColumn) Field(key string) string {
	switch key {
	case "label":
		return r.Label
	case "date":
		return r.CreatedAt
	}
	return ""
}

func (r BillboardColumn) SortKey(key string) string {
	if key == "date" {
		return dateKey(r.created)
	}
	return r.Field(key)
}

func BillboardRows(items []*billboard.Billboard) []BillboardColumn {
	out := make([]BillboardColumn, 0, len(items))
	for _, b := range items {
		out = append(out, BillboardColumn{ID: b.ID.String(), Label: b.Label, CreatedAt: FormatDate(b.CreatedAt), created: b.CreatedAt})
	}
	return out
}

// CategoryColumn is a category list row.
type CategoryColumn struct {
	ID             string
	Name           string
	BillboardLabel string
	CreatedAt      string
	created        time.Time
}

func (r CategoryColumn) RowID() string { return r.ID }

func (r CategoryColumn) Field(key string) string {
	switch key {
	case "name":
		return r.Name
	case "billboard":
		return r.BillboardLabel
	case "date":
		return r.CreatedAt
	}
	return ""
}

func (r CategoryColumn) SortKey(key string) string {
	if key == "date" {
		return dateKey(r.created)
	}
	return r.Field(key)
}

func CategoryRows(items []*category.Category) []CategoryColumn {
	out := make([]CategoryColumn, 0, len(items))
	for _, c := range items {
		out = append(out, CategoryColumn{
			ID: c.ID.String(), Name: c.Name, BillboardLabel: c.Billboard.Label,
			CreatedAt: FormatDate(c.CreatedAt), created: c.CreatedAt,
		})
	}
	return out
}

// ValueColumn is a size or color list row.
type ValueColumn struct {
	ID        string
	Name      string
	Value     string
	CreatedAt string
	created   time.Time
}

func (r ValueColumn) RowID() string { return r.ID }

func (r ValueColumn) Field(key string) string {
	switch key {
	case "name":
		return r.Name
	case "value":
		return r.Value
	case "date":
		return r.CreatedAt
	}
	return ""
}

func (r ValueColumn) SortKey(key string) string {
	if key == "date" {
		return dateKey(r.created)
	}
	return r.Field(key)
}

func SizeRows(items []*size.Size) []ValueColumn {
	out := make([]ValueColumn, 0, len(items))
	for _, s := range items {
		out = append(out, ValueColumn{ID: s.ID.String(), Name: s.Name, Value: s.Value, CreatedAt: FormatDate(s.CreatedAt), created: s.CreatedAt})
	}
	return out
}

func ColorRows(items []*color.Color) []ValueColumn {
	out := make([]ValueColumn, 0, len(items))
	for _, c := range items {
		out = append(out, ValueColumn{ID: c.ID.String(), Name: c.Name, Value: c.Value, CreatedAt: FormatDate(c.CreatedAt), created: c.CreatedAt})
	}
	return out
}

// ProductColumn is a product list row.
type ProductColumn struct {
	ID         string
	Name       string
	IsArchived bool
	IsFeatured bool
	Price      string
	Category   string
	Size       string
	Color      string
	CreatedAt  string
	price      decimal.Decimal
	created    time.Time
}

func (r ProductColumn) RowID() string { return r.ID }

func (r ProductColumn) Field(key string) string {
	switch key {
	case "name":
		return r.Name
	case "isArchived":
		return strconv.FormatBool(r.IsArchived)
	case "isFeatured":
		return strconv.FormatBool(r.IsFeatured)
	case "price":
		return r.Price
	case "category":
		return r.Category
	case "size":
		return r.Size
	case "color":
		return r.Color
	case "date":
		return r.CreatedAt
	}
	return ""
}

func (r ProductColumn) SortKey(key string) string {
	switch key {
	case "price":
		return amountKey(r.price)
	case "date":
		return dateKey(r.created)
	}
	return r.Field(key)
}

func ProductRows(items []*product.Product) []ProductColumn {
	out := make([]ProductColumn, 0, len(items))
	for _, p := range items {
		out = append(out, ProductColumn{
			ID:         p.ID.String(),
			Name:       p.Name,
			IsArchived: p.IsArchived,
			IsFeatured: p.IsFeatured,
			Price:      FormatUSD(p.Price),
			Category:   p.Category.Name,
			Size:       p.Size.Name,
			Color:      p.Color.Value,
			CreatedAt:  FormatDate(p.CreatedAt),
			price:      p.Price,
			created:    p.CreatedAt,
		})
	}
	return out
}

// OrderColumn is an order list row.
type OrderColumn struct {
	ID         string
	Products   string
	Phone      string
	Address    string
	TotalPrice string
	IsPaid     bool
	total      decimal.Decimal
}

func (r OrderColumn) RowID() string { return r.ID }

func (r OrderColumn) Field(key string) string {
	switch key {
	case "products":
		return r.Products
	case "phone":
		return r.Phone
	case "address":
		return r.Address
	case "totalPrice":
		return r.TotalPrice
	case "isPaid":
		return strconv.FormatBool(r.IsPaid)
	}
	return ""
}

func (r OrderColumn) SortKey(key string) string {
	if key == "totalPrice" {
		return amountKey(r.total)
	}
	return r.Field(key)
}

func OrderRows(items []*order.Order) []OrderColumn {
	out := make([]OrderColumn, 0, len(items))
	for _, o := range items {
		names := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			names = append(names, it.Product.Name)
		}
		out = append(out, OrderColumn{
			ID:         o.ID.String(),
			Products:   strings.Join(names, ", "),
			Phone:      o.Phone,
			Address:    o.Address,
			TotalPrice: FormatUSD(o.TotalPrice),
			IsPaid:     o.IsPaid,
			total:      o.TotalPrice,
		})
	}
	return out
}
