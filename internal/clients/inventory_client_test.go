package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unika_storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawProduct_ToDomainDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  rawProduct
		want domain.Product
	}{
		{
			name: "numeric id and price",
			raw:  rawProduct{ID: float64(7), Name: "Drop Tee", Price: float64(1100), Category: "Vintage"},
			want: domain.Product{ID: "7", Name: "Drop Tee", Price: 1100, Category: domain.CategoryVintage},
		},
		{
			name: "string id and price",
			raw:  rawProduct{ID: "7", Name: "Drop Tee", Price: "1100", Category: "Vintage"},
			want: domain.Product{ID: "7", Name: "Drop Tee", Price: 1100, Category: domain.CategoryVintage},
		},
		{
			name: "missing name defaults",
			raw:  rawProduct{ID: "8", Price: float64(900), Category: "Modern"},
			want: domain.Product{ID: "8", Name: "Untitled T-Shirt", Price: 900, Category: domain.CategoryModern},
		},
		{
			name: "unknown category defaults to Modern",
			raw:  rawProduct{ID: "9", Name: "Odd Tee", Price: float64(800), Category: "Streetwear"},
			want: domain.Product{ID: "9", Name: "Odd Tee", Price: 800, Category: domain.CategoryModern},
		},
		{
			name: "garbage price defaults to zero",
			raw:  rawProduct{ID: "10", Name: "Free Tee", Price: "a lot", Category: "Abstract"},
			want: domain.Product{ID: "10", Name: "Free Tee", Price: 0, Category: domain.CategoryAbstract},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.raw.toDomain())
		})
	}
}

func TestFetchCatalog_DecodesLooseTyping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getAdminData", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`{"products":[{"id":1,"name":"Classic Urban Tee","price":"1250","category":"Modern"},{"id":"7","price":1100,"category":"Nope"}]}`))
	}))
	defer server.Close()

	client := NewInventoryHTTPClient(server.URL, time.Second, testLogger())
	products, err := client.FetchCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, 1250, products[0].Price)
	assert.Equal(t, "Untitled T-Shirt", products[1].Name)
	assert.Equal(t, domain.CategoryModern, products[1].Category)
}

func TestFetchCatalog_MissingProductsField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"orders":[]}`))
	}))
	defer server.Close()

	client := NewInventoryHTTPClient(server.URL, time.Second, testLogger())
	_, err := client.FetchCatalog(context.Background())

	assert.ErrorContains(t, err, "no products field")
}

func TestFetchAdminData_PassesPayloadThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"products":[],"orders":[{"id":"UNIKA-1"}],"chats":[],"stats":{"totalOrders":1}}`))
	}))
	defer server.Close()

	client := NewInventoryHTTPClient(server.URL, time.Second, testLogger())
	data, err := client.FetchAdminData(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"UNIKA-1"}]`, string(data.Orders))
	assert.JSONEq(t, `{"totalOrders":1}`, string(data.Stats))
}

func TestSaveProduct_PostsAdminAction(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	client := NewInventoryHTTPClient(server.URL, time.Second, testLogger())
	err := client.SaveProduct(context.Background(), domain.Product{ID: "9", Name: "New Tee", Price: 1200, Category: domain.CategoryModern})

	require.NoError(t, err)
	assert.Contains(t, string(body), `"adminAction":"saveProduct"`)
	assert.Contains(t, string(body), `"New Tee"`)
}
