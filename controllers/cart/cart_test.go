package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/bridge"
	"github.com/karthikram1909/refurbished-store/events"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/models"
	"github.com/karthikram1909/refurbished-store/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.CartStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "state.db")), &gorm.Config{})
	require.NoError(t, err)
	slots, err := bridge.Open(db)
	require.NoError(t, err)

	cart := store.NewCartStore(slots)
	hub := events.NewHub()
	gw := gateway.New("http://127.0.0.1:0", nil)

	r := gin.New()
	r.GET("/cart", GetCart(cart))
	r.POST("/cart/items", AddItem(cart, gw, hub))
	r.PUT("/cart/items/:phone_id", UpdateQuantity(cart, hub))
	r.DELETE("/cart/items/:phone_id", DeleteItem(cart, hub))
	r.DELETE("/cart", ClearCart(cart, hub))
	return r, cart
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func snapshot(id string, price, stock int) *models.Phone {
	return &models.Phone{ID: id, Brand: "Apple", Model: "iPhone 12", Price: price, Stock: stock}
}

func TestAddItemWithSnapshot(t *testing.T) {
	r, cart := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"phone_id": "A", "phone": snapshot("A", 45000, 2),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Merged       bool `json:"merged"`
		ExceedsStock bool `json:"exceeds_stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Merged)
	assert.False(t, resp.ExceedsStock)
	assert.Len(t, cart.Lines(), 1)
}

func TestAddItemRequiresPhoneID(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"phone": snapshot("", 100, 1)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuantityClampsToStock(t *testing.T) {
	r, cart := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"phone_id": "A", "phone": snapshot("A", 45000, 3),
	})

	w := doJSON(t, r, http.MethodPut, "/cart/items/A", gin.H{"quantity": 10})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Clamped bool `json:"clamped"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Clamped)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	r, cart := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"phone_id": "A", "phone": snapshot("A", 45000, 3),
	})

	w := doJSON(t, r, http.MethodPut, "/cart/items/A", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Lines())
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPut, "/cart/items/missing", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartTotalsIncludeShipping(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"phone_id": "A", "phone": snapshot("A", 28000, 3),
	})

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Subtotal int `json:"subtotal"`
		Shipping int `json:"shipping"`
		Total    int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 28000, resp.Subtotal)
	assert.Equal(t, 500, resp.Shipping)
	assert.Equal(t, 28500, resp.Total)

	// Over the free-shipping threshold.
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"phone_id": "B", "phone": snapshot("B", 60000, 3),
	})
	w = doJSON(t, r, http.MethodGet, "/cart", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Shipping)
}

func TestClearCart(t *testing.T) {
	r, cart := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"phone_id": "A", "phone": snapshot("A", 28000, 3),
	})

	w := doJSON(t, r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Lines())
}
