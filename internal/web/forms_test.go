package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/dashboard"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
)

func TestCompactIndexed(t *testing.T) {
	got := compactIndexed(url.Values{
		"name":         {"Tee"},
		"images.0.url": {"a"},
		"images.2.url": {"c", "d"},
		"images.7.url": {"e"},
	})
	assert.Equal(t, url.Values{
		"name":         {"Tee"},
		"images.0.url": {"a"},
		"images.1.url": {"c"},
		"images.2.url": {"d"},
		"images.3.url": {"e"},
	}, got)
}

func TestProductImagesSurviveGapsAndDuplicates(t *testing.T) {
	var in product.Input
	require.NoError(t, decodeForm(&in, url.Values{
		"name":         {"Tee"},
		"price":        {"12.50"},
		"images.0.url": {"a"},
		"images.2.url": {"c", "d"},
	}))
	bindings[dashboard.Products.Path].(binding[product.Input]).clean(&in)

	var urls []string
	for _, img := range in.Images {
		urls = append(urls, img.URL)
	}
	assert.Equal(t, []string{"a", "c", "d"}, urls)
	assert.Equal(t, "12.5", in.Price.String())
}

func TestDecodeFormReportsBadValues(t *testing.T) {
	var in product.Input
	err := decodeForm(&in, url.Values{"price": {"twelve"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}
