package adminController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/tealeg/xlsx"
)

const exportFetchLimit = 1000

// GET /admin/phones/export-excel
func ExportPhonesToExcel(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		phones, _, err := gw.ListAdminPhones(c.Request.Context(), 1, exportFetchLimit)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch phones"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Phones")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Brand", "Model", "Storage", "Condition",
			"Price", "OriginalPrice", "Stock", "Warranty",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range phones {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Model)
			row.AddCell().SetValue(p.Storage)
			row.AddCell().SetValue(string(p.Condition))
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.OriginalPrice)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Warranty)
		}

		writeExcel(c, file, "phones.xlsx")
	}
}

// GET /admin/orders/export-excel
func ExportOrdersToExcel(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := gw.ListAdminOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Client", "Mobile", "PhoneIDs", "Total", "Status", "Date"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			var phoneIDs []string
			for _, item := range o.Items {
				phoneIDs = append(phoneIDs, item.PhoneID)
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.ClientName)
			row.AddCell().SetValue(o.ClientMobile)
			row.AddCell().SetValue(strings.Join(phoneIDs, ","))
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.Date)
		}

		writeExcel(c, file, "orders.xlsx")
	}
}

func writeExcel(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
