package web

import (
	"cmp"
	"context"
	"errors"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"

	"github.com/georgemunganga/storeadmin/internal/dashboard"
	"github.com/georgemunganga/storeadmin/internal/modules/billboard"
	"github.com/georgemunganga/storeadmin/internal/modules/category"
	"github.com/georgemunganga/storeadmin/internal/modules/color"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
	"github.com/georgemunganga/storeadmin/internal/modules/size"
	"github.com/georgemunganga/storeadmin/internal/server"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(decimal.Decimal{}, func(s string) reflect.Value {
		s = strings.TrimSpace(s)
		if s == "" {
			return reflect.ValueOf(decimal.Zero)
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(v)
	})
	return d
}

// compactIndexed renumbers list keys such as "images.2.url" so each list
// runs 0..n-1 in index order. A repeated key at one index becomes an extra
// element after it, so gaps and duplicates left by the browser lose nothing.
func compactIndexed(form url.Values) url.Values {
	type entry struct {
		index int
		field string
		vals  []string
	}
	out := url.Values{}
	lists := map[string][]entry{}
	for key, vals := range form {
		parts := strings.SplitN(key, ".", 3)
		if len(parts) != 3 {
			out[key] = vals
			continue
		}
		i, err := strconv.Atoi(parts[1])
		if err != nil || i < 0 {
			out[key] = vals
			continue
		}
		lists[parts[0]] = append(lists[parts[0]], entry{index: i, field: parts[2], vals: vals})
	}
	for name, entries := range lists {
		slices.SortStableFunc(entries, func(a, b entry) int {
			if c := cmp.Compare(a.index, b.index); c != 0 {
				return c
			}
			return strings.Compare(a.field, b.field)
		})
		next := 0
		for start := 0; start < len(entries); {
			end := start
			width := 0
			for end < len(entries) && entries[end].index == entries[start].index {
				width = max(width, len(entries[end].vals))
				end++
			}
			for _, e := range entries[start:end] {
				for j, v := range e.vals {
					out.Add(name+"."+strconv.Itoa(next+j)+"."+e.field, v)
				}
			}
			next += width
			start = end
		}
	}
	return out
}

// decodeForm fills dst from form values. Conversion failures are reported
// per field like schema validation failures.
func decodeForm(dst any, form url.Values) error {
	err := decoder.Decode(dst, compactIndexed(form))
	if err == nil {
		return nil
	}
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err
	}
	out := validation.Errors{}
	for field := range multi {
		out[field] = "Invalid value"
	}
	return out
}

// Option is a select choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one rendered form control.
type Field struct {
	Name        string
	Label       string
	Type        string // text, number, color, select, checkbox, image, images
	Placeholder string
	Description string
	Value       string
	Checked     bool
	Images      []string
	Options     []Option
	Error       string
}

func text(name, label, placeholder, value string) Field {
	return Field{Name: name, Label: label, Type: "text", Placeholder: placeholder, Value: value}
}

func selectField(name, label, placeholder, value string, opts []Option) Field {
	for i := range opts {
		opts[i].Selected = opts[i].Value == value
	}
	return Field{Name: name, Label: label, Type: "select", Placeholder: placeholder, Value: value, Options: opts}
}

// withErrors attaches error messages to fields. Nested keys such as
// "images[0].url" land on their top-level field.
func withErrors(fields []Field, errs validation.Errors) []Field {
	for key, msg := range errs {
		top := key
		if i := strings.IndexAny(key, ".["); i >= 0 {
			top = key[:i]
		}
		for i := range fields {
			if fields[i].Name == top && fields[i].Error == "" {
				fields[i].Error = msg
			}
		}
	}
	return fields
}

// binding connects an editable entity to its schema, its stored values and
// its form controls.
type binding[T any] struct {
	entity dashboard.Entity
	load   func(ctx context.Context, svc *server.Services, storeID, id uuid.UUID) (T, error)
	fields func(ctx context.Context, svc *server.Services, storeID uuid.UUID, v T) ([]Field, error)
	// clean runs after decoding, before validation.
	clean func(*T)
}

var bindings = map[string]formHandler{
	dashboard.Billboards.Path: binding[billboard.Input]{
		entity: dashboard.Billboards,
		load: func(ctx context.Context, svc *server.Services, storeID, id uuid.UUID) (billboard.Input, error) {
			b, err := svc.Billboards.GetBillboard(ctx, storeID, id)
			if err != nil {
				return billboard.Input{}, err
			}
			return billboard.Input{Label: b.Label, ImageURL: b.ImageURL}, nil
		},
		fields: func(_ context.Context, _ *server.Services, _ uuid.UUID, v billboard.Input) ([]Field, error) {
			img := Field{Name: "imageUrl", Label: "Background image", Type: "image", Value: v.ImageURL}
			return []Field{img, text("label", "Label", "Billboard label", v.Label)}, nil
		},
	},
	dashboard.Categories.Path: binding[category.Input]{
		entity: dashboard.Categories,
		load: func(ctx context.Context, svc *server.Services, storeID, id uuid.UUID) (category.Input, error) {
			c, err := svc.Categories.GetCategory(ctx, storeID, id)
			if err != nil {
				return category.Input{}, err
			}
			return category.Input{Name: c.Name, BillboardID: c.BillboardID.String()}, nil
		},
		fields: func(ctx context.Context, svc *server.Services, storeID uuid.UUID, v category.Input) ([]Field, error) {
			bbs, err := svc.Billboards.ListBillboards(ctx, storeID)
			if err != nil {
				return nil, err
			}
			opts := make([]Option, 0, len(bbs))
			for _, b := range bbs {
				opts = append(opts, Option{Value: b.ID.String(), Label: b.Label})
			}
			return []Field{
				text("name", "Name", "Category name", v.Name),
				selectField("billboardId", "Billboard", "Select a billboard", v.BillboardID, opts),
			}, nil
		},
	},
	dashboard.Sizes.Path: binding[size.Input]{
		entity: dashboard.Sizes,
		load: func(ctx context.Context, svc *server.Services, storeID, id uuid.UUID) (size.Input, error) {
			sz, err := svc.Sizes.GetSize(ctx, storeID, id)
			if err != nil {
				return size.Input{}, err
			}
			return size.Input{Name: sz.Name, Value: sz.Value}, nil
		},
		fields: func(_ context.Context, _ *server.Services, _ uuid.UUID, v size.Input) ([]Field, error) {
			return []Field{text("name", "Name", "Size name", v.Name), text("value", "Value", "Size value", v.Value)}, nil
		},
	},
	dashboard.Colors.Path: binding[color.Input]{
		entity: dashboard.Colors,
		load: func(ctx context.Context, svc *server.Services, storeID, id uuid.UUID) (color.Input, error) {
			c, err := svc.Colors.GetColor(ctx, storeID, id)
			if err != nil {
				return color.Input{}, err
			}
			return color.Input{Name: c.Name, Value: c.Value}, nil
		},
		fields: func(_ context.Context, _ *server.Services, _ uuid.UUID, v color.Input) ([]Field, error) {
			val := text("value", "Value", "Color value", v.Value)
			val.Type = "color"
			return []Field{text("name", "Name", "Color name", v.Name), val}, nil
		},
	},
	dashboard.Products.Path: binding[product.Input]{
		entity: dashboard.Products,
		load: func(ctx context.Context, svc *server.Services, storeID, id uuid.UUID) (product.Input, error) {
			p, err := svc.Products.GetProduct(ctx, storeID, id)
			if err != nil {
				return product.Input{}, err
			}
			in := product.Input{
				Name: p.Name, Price: p.Price,
				CategoryID: p.CategoryID.String(), SizeID: p.SizeID.String(), ColorID: p.ColorID.String(),
				IsFeatured: p.IsFeatured, IsArchived: p.IsArchived,
			}
			for _, img := range p.Images {
				in.Images = append(in.Images, product.ImageInput{URL: img.URL})
			}
			return in, nil
		},
		fields: productFields,
		clean: func(in *product.Input) {
			kept := in.Images[:0]
			for _, img := range in.Images {
				if img.URL = strings.TrimSpace(img.URL); img.URL != "" {
					kept = append(kept, img)
				}
			}
			in.Images = kept
		},
	},
}

func productFields(ctx context.Context, svc *server.Services, storeID uuid.UUID, v product.Input) ([]Field, error) {
	cats, err := svc.Categories.ListCategories(ctx, storeID)
	if err != nil {
		return nil, err
	}
	sizes, err := svc.Sizes.ListSizes(ctx, storeID)
	if err != nil {
		return nil, err
	}
	colors, err := svc.Colors.ListColors(ctx, storeID)
	if err != nil {
		return nil, err
	}

	var catOpts, sizeOpts, colorOpts []Option
	for _, c := range cats {
		catOpts = append(catOpts, Option{Value: c.ID.String(), Label: c.Name})
	}
	for _, s := range sizes {
		sizeOpts = append(sizeOpts, Option{Value: s.ID.String(), Label: s.Name})
	}
	for _, c := range colors {
		colorOpts = append(colorOpts, Option{Value: c.ID.String(), Label: c.Name})
	}

	images := Field{Name: "images", Label: "Images", Type: "images"}
	for _, img := range v.Images {
		images.Images = append(images.Images, img.URL)
	}
	price := text("price", "Price", "9.99", "")
	price.Type = "number"
	if !v.Price.IsZero() {
		price.Value = v.Price.StringFixed(2)
	}
	return []Field{
		images,
		text("name", "Name", "Product name", v.Name),
		price,
		selectField("categoryId", "Category", "Select a category", v.CategoryID, catOpts),
		selectField("sizeId", "Size", "Select a size", v.SizeID, sizeOpts),
		selectField("colorId", "Color", "Select a color", v.ColorID, colorOpts),
		{Name: "isFeatured", Label: "Featured", Type: "checkbox", Checked: v.IsFeatured,
			Description: "This product will appear on the home page"},
		{Name: "isArchived", Label: "Archived", Type: "checkbox", Checked: v.IsArchived,
			Description: "This product will not appear anywhere in the store"},
	}, nil
}
