package catalogControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/catalog"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/models"
)

// The listing fetches the whole catalog once and filters locally, the same
// trade the storefront always made for its small inventory.
const fetchAllLimit = 1000

// GET /phones
func GetPhones(gw *gateway.Client, pageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		phones, _, err := gw.ListPhones(c.Request.Context(), 1, fetchAllLimit)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch phones"})
			return
		}

		spec, badParam := specFromQuery(c)
		if badParam != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + badParam})
			return
		}

		page := 1
		if raw := c.Query("page"); raw != "" {
			if p, err := strconv.Atoi(raw); err == nil && p > 0 {
				page = p
			}
		}

		filtered := catalog.Apply(phones, spec)
		items, totalPages := catalog.Paginate(filtered, page, pageSize)

		c.JSON(http.StatusOK, gin.H{
			"phones":      items,
			"page":        page,
			"total_pages": totalPages,
			"total":       len(filtered),
			"facets":      catalog.CollectFacets(phones),
		})
	}
}

// GET /phones/:id
func GetPhone(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone, err := gw.GetPhone(c.Request.Context(), c.Param("id"))
		if err != nil {
			if apiErr, ok := err.(*gateway.APIError); ok && apiErr.Status == http.StatusNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Phone not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch phone"})
			return
		}
		c.JSON(http.StatusOK, phone)
	}
}

func specFromQuery(c *gin.Context) (spec catalog.QuerySpec, badParam string) {
	spec.Search = c.Query("search")
	spec.ConditionEqual = models.Condition(c.Query("condition"))
	spec.Brands = splitList(c.Query("brands"))
	spec.Storage = splitList(c.Query("storage"))
	for _, raw := range splitList(c.Query("conditions")) {
		spec.Conditions = append(spec.Conditions, models.Condition(raw))
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return spec, "min_price"
		}
		spec.MinPrice = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return spec, "max_price"
		}
		spec.MaxPrice = v
	}

	switch c.Query("sort") {
	case "", "none":
		spec.Sort = catalog.SortNone
	case string(catalog.SortPriceAsc):
		spec.Sort = catalog.SortPriceAsc
	case string(catalog.SortPriceDesc):
		spec.Sort = catalog.SortPriceDesc
	default:
		return spec, "sort"
	}
	return spec, ""
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
