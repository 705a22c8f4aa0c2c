// Package dashboard implements the admin UI behaviour without rendering:
// list headings and tables, entity forms, row actions, the delete
// confirmation modal and the store switcher. Components talk to the REST API
// through Client and report outcomes through Effects.
package dashboard

import "strings"

// GenericError is shown for every failed mutation without a specific warning.
const GenericError = "Something went wrong."

// Entity describes one resource managed by the dashboard.
type Entity struct {
	Singular  string // "Billboard"
	Plural    string // "Billboards"
	Path      string // URL segment, "billboards"
	IDParam   string // route parameter, "billboardId"
	SearchKey string // column filtered by the table search box
	Warning   string // shown when a delete fails; empty means GenericError
	ReadOnly  bool   // no create form and no API reference panel
}

var (
	Billboards = Entity{
		Singular: "Billboard", Plural: "Billboards", Path: "billboards", IDParam: "billboardId",
		SearchKey: "label",
		Warning:   "Make sure you have removed all categories using this billboard first.",
	}
	Categories = Entity{
		Singular: "Category", Plural: "Categories", Path: "categories", IDParam: "categoryId",
		SearchKey: "name",
		Warning:   "Make sure you have removed all products using this category first.",
	}
	Sizes = Entity{
		Singular: "Size", Plural: "Sizes", Path: "sizes", IDParam: "sizeId",
		SearchKey: "name",
		Warning:   "Make sure you have removed all products using this size first.",
	}
	Colors = Entity{
		Singular: "Color", Plural: "Colors", Path: "colors", IDParam: "colorId",
		SearchKey: "name",
		Warning:   "Make sure you have removed all products using this color first.",
	}
	Products = Entity{
		Singular: "Product", Plural: "Products", Path: "products", IDParam: "productId",
		SearchKey: "name",
	}
	Orders = Entity{
		Singular: "Order", Plural: "Orders", Path: "orders", IDParam: "orderId",
		SearchKey: "products",
		ReadOnly:  true,
	}
	Stores = Entity{
		Singular: "Store", Plural: "Stores", Path: "stores", IDParam: "storeId",
		SearchKey: "name",
		Warning:   "Make sure you have removed all products and categories first.",
	}
)

// Entities lists the store-scoped resources in navigation order.
var Entities = []Entity{Billboards, Categories, Sizes, Colors, Products, Orders}

// Lookup returns the store-scoped entity whose URL segment is path.
func Lookup(path string) (Entity, bool) {
	for _, e := range Entities {
		if e.Path == path {
			return e, true
		}
	}
	return Entity{}, false
}

func (e Entity) lower() string       { return strings.ToLower(e.Singular) }
func (e Entity) lowerPlural() string { return strings.ToLower(e.Plural) }

// DeleteWarning is the message shown when deleting fails.
func (e Entity) DeleteWarning() string {
	if e.Warning == "" {
		return GenericError
	}
	return e.Warning
}

// ListRoute is the page listing the entity, /{storeId}/{entity}.
func (e Entity) ListRoute(storeID string) string { return "/" + storeID + "/" + e.Path }

// ItemRoute is the edit page, /{storeId}/{entity}/{id}.
func (e Entity) ItemRoute(storeID, id string) string { return e.ListRoute(storeID) + "/" + id }

// CollectionPath is the API collection, /api/{storeId}/{entity}.
func (e Entity) CollectionPath(storeID string) string { return "/api/" + storeID + "/" + e.Path }

// ItemPath is the API item, /api/{storeId}/{entity}/{id}.
func (e Entity) ItemPath(storeID, id string) string { return e.CollectionPath(storeID) + "/" + id }
