package dashboard

// APIRoute is one entry of the read-only API reference panel.
type APIRoute struct {
	Title   string // HTTP method
	Variant string // "public" or "admin"
	Value   string // full URL
}

const (
	VariantPublic = "public"
	VariantAdmin  = "admin"
)

// APIRoutes lists the endpoints of e for store storeID. origin is the
// scheme and host the API is reached at; it may be empty.
func APIRoutes(origin, storeID string, e Entity) []APIRoute {
	collection := origin + e.CollectionPath(storeID)
	item := collection + "/{" + e.IDParam + "}"
	return []APIRoute{
		{Title: "GET", Variant: VariantPublic, Value: collection},
		{Title: "GET", Variant: VariantPublic, Value: item},
		{Title: "POST", Variant: VariantAdmin, Value: collection},
		{Title: "PATCH", Variant: VariantAdmin, Value: item},
		{Title: "DELETE", Variant: VariantAdmin, Value: item},
	}
}
