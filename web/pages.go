package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/stockroom"
	"github.com/gin-gonic/gin"
)

func escapeQuery(s string) string { return url.QueryEscape(s) }

// productRow is the template view of one product.
type productRow struct {
	ID       string
	Name     string
	Category string
	Price    string
	Stock    int
	Value    string
	Details  string
	Expired  bool
}

func newProductRow(p stockroom.Product) productRow {
	row := productRow{
		ID:       p.ID(),
		Name:     p.Name(),
		Category: strings.TrimSuffix(string(p.Kind()), "Product"),
		Price:    p.Price().String(),
		Stock:    p.Stock(),
		Value:    p.TotalValue().String(),
	}
	switch v := p.(type) {
	case *stockroom.Electronic:
		row.Details = fmt.Sprintf("Warranty: %d years, Brand: %s", v.WarrantyYears(), v.Brand())
	case *stockroom.Clothing:
		row.Details = fmt.Sprintf("Size: %s, Material: %s", v.Size(), v.Material())
	case *stockroom.Grocery:
		row.Details = fmt.Sprintf("Expiry: %s", v.Expiry())
		row.Expired = v.IsExpired()
	}
	return row
}

func productRows(products []stockroom.Product) []productRow {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, newProductRow(p))
	}
	return rows
}

// saleRow is the template view of one sale record.
type saleRow struct {
	Timestamp   string
	ProductName string
	ProductID   string
	Quantity    int
	UnitPrice   string
	Total       string
}

// categoryRow is the template view of one summary line.
type categoryRow struct {
	Category string
	Count    int
	Units    int
	Value    string
}

func (s *Server) summaryPage(c *gin.Context) {
	query := c.Query("q")

	var categories []categoryRow
	var results []productRow
	var totalValue string
	var productCount, salesCount int

	s.view(func(inv *stockroom.Inventory) {
		for _, kind := range []stockroom.Kind{stockroom.KindElectronic, stockroom.KindClothing, stockroom.KindGrocery} {
			products := inv.SearchByKind(kind)
			units := 0
			value := stockroom.M(0, inv.Currency())
			for _, p := range products {
				units += p.Stock()
				value = value.Add(p.TotalValue())
			}
			categories = append(categories, categoryRow{
				Category: strings.TrimSuffix(string(kind), "Product"),
				Count:    len(products),
				Units:    units,
				Value:    value.String(),
			})
		}
		totalValue = inv.TotalValue().String()
		productCount = inv.Len()
		salesCount = inv.Ledger().Len()
		if query != "" {
			results = productRows(inv.SearchByName(query))
		}
	})

	c.HTML(http.StatusOK, "summary.html", gin.H{
		"Categories":   categories,
		"TotalValue":   totalValue,
		"ProductCount": productCount,
		"SalesCount":   salesCount,
		"Query":        query,
		"Results":      results,
	})
}

func (s *Server) inventoryPage(c *gin.Context) {
	var rows []productRow
	var totalValue string
	s.view(func(inv *stockroom.Inventory) {
		for p := range inv.Products() {
			rows = append(rows, newProductRow(p))
		}
		totalValue = inv.TotalValue().String()
	})

	c.HTML(http.StatusOK, "inventory.html", gin.H{
		"Products":   rows,
		"TotalValue": totalValue,
		"Error":      c.Query("error"),
	})
}

func (s *Server) addPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{
		"Currency": s.cfg.Currency,
		"Error":    c.Query("error"),
	})
}

func (s *Server) addForm(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/add?error="+escapeQuery(err.Error()))
		return
	}

	product, err := form.build(s.cfg.Currency)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/add?error="+escapeQuery(err.Error()))
		return
	}

	if err := s.mutate(func(inv *stockroom.Inventory) error {
		return inv.Add(product)
	}); err != nil {
		c.Redirect(http.StatusSeeOther, "/add?error="+escapeQuery(err.Error()))
		return
	}
	c.Redirect(http.StatusSeeOther, "/inventory")
}

func (s *Server) restockForm(c *gin.Context) {
	var form quantityForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/inventory?error="+escapeQuery(err.Error()))
		return
	}
	if err := s.mutate(func(inv *stockroom.Inventory) error {
		return inv.Restock(form.ID, form.Qty)
	}); err != nil {
		c.Redirect(http.StatusSeeOther, "/inventory?error="+escapeQuery(err.Error()))
		return
	}
	c.Redirect(http.StatusSeeOther, "/inventory")
}

func (s *Server) sellForm(c *gin.Context) {
	var form quantityForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/inventory?error="+escapeQuery(err.Error()))
		return
	}
	if err := s.mutate(func(inv *stockroom.Inventory) error {
		_, err := inv.Sell(form.ID, form.Qty)
		return err
	}); err != nil {
		c.Redirect(http.StatusSeeOther, "/inventory?error="+escapeQuery(err.Error()))
		return
	}
	s.salesTotal.Inc()
	c.Redirect(http.StatusSeeOther, "/inventory")
}

func (s *Server) removeForm(c *gin.Context) {
	id := c.PostForm("id")
	if err := s.mutate(func(inv *stockroom.Inventory) error {
		_, err := inv.Remove(id)
		return err
	}); err != nil {
		c.Redirect(http.StatusSeeOther, "/inventory?error="+escapeQuery(err.Error()))
		return
	}
	c.Redirect(http.StatusSeeOther, "/inventory")
}

func (s *Server) salesPage(c *gin.Context) {
	var rows []saleRow
	var totals []string
	s.view(func(inv *stockroom.Inventory) {
		for _, rec := range inv.Ledger().Sales() {
			rows = append(rows, saleRow{
				Timestamp:   rec.Timestamp().Format("2006-01-02 15:04:05"),
				ProductName: rec.ProductName(),
				ProductID:   rec.ProductID(),
				Quantity:    rec.Quantity(),
				UnitPrice:   rec.UnitPrice().String(),
				Total:       rec.Total().String(),
			})
		}
		for _, m := range inv.Ledger().Revenue() {
			totals = append(totals, m.String())
		}
	})
	if len(totals) == 0 {
		totals = []string{stockroom.M(0, s.cfg.Currency).String()}
	}

	c.HTML(http.StatusOK, "sales.html", gin.H{
		"Sales": rows,
		"Total": strings.Join(totals, ", "),
	})
}

func (s *Server) expireForm(c *gin.Context) {
	if err := s.mutate(func(inv *stockroom.Inventory) error {
		inv.RemoveExpired()
		return nil
	}); err != nil {
		c.Redirect(http.StatusSeeOther, "/?error="+escapeQuery(err.Error()))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
