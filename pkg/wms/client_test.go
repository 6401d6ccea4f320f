package wms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/api"
	"github.com/wmspro/wmsui/pkg/toast"
	"github.com/wmspro/wmsui/pkg/vtest"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *vtest.Notifier) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	base, err := url.Parse(srv.URL)
	require.NoError(t, err)

	n := &vtest.Notifier{}
	c := api.New(
		api.WithBaseURL(base),
		api.WithNotifier(n),
		api.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return New(c), n
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		qty  int
		want string
	}{
		{-1, StatusOutOfStock},
		{0, StatusOutOfStock},
		{5, StatusLowStock},
		{10, StatusLowStock},
		{11, StatusNormal},
		{999, StatusNormal},
		{1000, StatusOverstock},
		{1500, StatusOverstock},
	}
	for _, tt := range tests {
		p := Product{Quantity: tt.qty, MinStock: 10, MaxStock: 1000}
		assert.Equal(t, tt.want, p.StockStatus(), "quantity %d", tt.qty)
	}
}

func TestStockStatusPrefersBackend(t *testing.T) {
	p := Product{Quantity: 5, MinStock: 10, MaxStock: 1000, Status: StatusNormal}
	assert.Equal(t, StatusNormal, p.StockStatus())

	p.Status = ""
	assert.Equal(t, StatusLowStock, p.StockStatus())
}

func TestStockValue(t *testing.T) {
	p := Product{Quantity: 4, UnitPrice: 2.5}
	assert.Equal(t, 10.0, p.StockValue())

	p.Value = 12.75
	assert.Equal(t, 12.75, p.StockValue())
}

func TestListProducts(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/api/products", r.URL.Path)
		assert.Equal(t, "widget 9", r.URL.Query().Get("search"))
		assert.Equal(t, "low_stock", r.URL.Query().Get("status"))
		assert.Equal(t, "3", r.URL.Query().Get("category_id"))
		assert.Equal(t, "quantity", r.URL.Query().Get("sort_by"))
		assert.Equal(t, "desc", r.URL.Query().Get("sort_order"))
		w.Write([]byte(`[{"id":1,"sku":"SKU-000001","name":"Widget 9","category_id":3,"category_name":null,
			"quantity":4,"min_stock":10,"max_stock":100,"unit_price":2.5,"stock_status":"low_stock",
			"stock_value":10.0,"created_at":"2024-03-05T09:30:00"}]`))
	})

	got, err := c.ListProducts(context.Background(), ListOptions{
		Search: "widget 9", Status: StatusLowStock, CategoryID: 3, SortBy: "quantity", Desc: true,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "Widget 9", p.Name)
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, 3, *p.CategoryID)
	assert.Empty(t, p.CategoryName)
	assert.Nil(t, p.LocationID)
	assert.Equal(t, p.Status, p.StockStatus())
	assert.Equal(t, p.Value, p.StockValue())
}

func TestListProductsNoFilters(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	})

	got, err := c.ListProducts(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetProductNotFound(t *testing.T) {
	c, n := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/api/products/42", r.URL.Path)
		http.NotFound(w, r)
	})

	p, err := c.GetProduct(context.Background(), 42)

	assert.Nil(t, p)
	assert.True(t, errors.IsKind(err, errors.KindStatus))
	assert.Equal(t, []vtest.Shown{{Message: api.MsgLoadFailed, Type: toast.TypeError}}, n.Shown())
}

func TestCreateProduct(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/inventory/api/products", r.URL.Path)
		var in map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Crate", in["name"])
		assert.Equal(t, 5.0, in["quantity"])
		assert.NotContains(t, in, "min_stock")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9,"sku":"SKU-000009","name":"Crate","quantity":5}`))
	})

	qty := 5
	p, err := c.CreateProduct(context.Background(), ProductInput{Name: "Crate", Quantity: &qty})

	require.NoError(t, err)
	assert.Equal(t, 9, p.ID)
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	c, n := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"SKU already exists"}`))
	})

	_, err := c.CreateProduct(context.Background(), ProductInput{Name: "Crate", SKU: "SKU-000001"})

	require.Error(t, err)
	assert.Equal(t, "SKU already exists", err.Error())
	assert.Equal(t, []vtest.Shown{{Message: "SKU already exists", Type: toast.TypeError}}, n.Shown())
}

func TestCreateProductRequiresName(t *testing.T) {
	c, n := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.CreateProduct(context.Background(), ProductInput{})

	assert.True(t, errors.IsKind(err, errors.KindInvalid))
	assert.Empty(t, n.Shown())
}

func TestUpdateProduct(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/inventory/api/products/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"name":"Renamed"}`))
	})

	p, err := c.UpdateProduct(context.Background(), 7, ProductInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Name)
}

func TestDeleteProduct(t *testing.T) {
	c, n := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/inventory/api/products/7", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.DeleteProduct(context.Background(), 7)

	require.Error(t, err)
	assert.Equal(t, api.MsgDeleteFailed, err.Error())
	assert.Len(t, n.Shown(), 1)
}

func TestAdjustStock(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/api/products/7/adjust", r.URL.Path)
		var adj Adjustment
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&adj))
		assert.Equal(t, Adjustment{Type: AdjustRemove, Quantity: 3, Reason: "Damaged"}, adj)
		w.Write([]byte(`{"id":7,"quantity":17}`))
	})

	p, err := c.AdjustStock(context.Background(), 7, Adjustment{Type: AdjustRemove, Quantity: 3, Reason: "Damaged"})

	require.NoError(t, err)
	assert.Equal(t, 17, p.Quantity)
}

func TestAdjustStockValidation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.AdjustStock(context.Background(), 7, Adjustment{Type: "move", Quantity: 1})
	assert.EqualError(t, err, `Unknown adjustment type "move"`)

	_, err = c.AdjustStock(context.Background(), 7, Adjustment{Type: AdjustAdd})
	assert.True(t, errors.IsKind(err, errors.KindInvalid))
}

func TestListCategories(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/api/categories", r.URL.Path)
		w.Write([]byte(`[{"id":1,"name":"Hardware","color":"#6366f1","product_count":12}]`))
	})

	got, err := c.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: 1, Name: "Hardware", Color: "#6366f1", ProductCount: 12}}, got)
}

func TestEndpointsMatchBackendRoutes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /inventory/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Widget"}]`))
	})
	mux.HandleFunc("POST /inventory/api/products/{id}/adjust", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"Widget","quantity":12}`))
	})
	mux.HandleFunc("GET /inventory/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	c, n := newTestClient(t, mux.ServeHTTP)
	ctx := context.Background()

	products, err := c.ListProducts(ctx, ListOptions{Search: "wid"})
	require.NoError(t, err)
	assert.Len(t, products, 1)

	p, err := c.AdjustStock(ctx, 1, Adjustment{Type: AdjustAdd, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 12, p.Quantity)

	_, err = c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, n.Shown())
}
