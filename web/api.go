package web

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/etnz/stockroom"
	"github.com/gin-gonic/gin"
)

// productRecord returns the canonical JSON record of a product, the same
// form that is persisted in the snapshot file.
func productRecord(p stockroom.Product) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := stockroom.EncodeProduct(&buf, p); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimSpace(buf.Bytes())), nil
}

func saleRecord(rec stockroom.SaleRecord) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := stockroom.EncodeSale(&buf, rec); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimSpace(buf.Bytes())), nil
}

func apiError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func (s *Server) apiListProducts(c *gin.Context) {
	records := []json.RawMessage{}
	var failed error
	s.view(func(inv *stockroom.Inventory) {
		for p := range inv.Products() {
			rec, err := productRecord(p)
			if err != nil {
				failed = err
				return
			}
			records = append(records, rec)
		}
	})
	if failed != nil {
		apiError(c, failed)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) apiCreateProduct(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := stockroom.DecodeProduct(body)
	if err != nil {
		apiError(c, err)
		return
	}

	if err := s.mutate(func(inv *stockroom.Inventory) error {
		return inv.Add(product)
	}); err != nil {
		apiError(c, err)
		return
	}

	rec, err := productRecord(product)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) apiGetProduct(c *gin.Context) {
	id := c.Param("id")
	var rec json.RawMessage
	var failed error
	found := false
	s.view(func(inv *stockroom.Inventory) {
		p, ok := inv.Get(id)
		if !ok {
			return
		}
		found = true
		rec, failed = productRecord(p)
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found: " + id})
		return
	}
	if failed != nil {
		apiError(c, failed)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) apiDeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := s.mutate(func(inv *stockroom.Inventory) error {
		_, err := inv.Remove(id)
		return err
	}); err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product removed", "product_id": id})
}

// quantityRequest is the body of the restock and sell endpoints.
type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) apiRestock(c *gin.Context) {
	id := c.Param("id")
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.mutate(func(inv *stockroom.Inventory) error {
		return inv.Restock(id, req.Quantity)
	}); err != nil {
		apiError(c, err)
		return
	}

	s.apiGetProduct(c)
}

func (s *Server) apiSell(c *gin.Context) {
	id := c.Param("id")
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sale stockroom.SaleRecord
	if err := s.mutate(func(inv *stockroom.Inventory) error {
		var err error
		sale, err = inv.Sell(id, req.Quantity)
		return err
	}); err != nil {
		apiError(c, err)
		return
	}
	s.salesTotal.Inc()

	rec, err := saleRecord(sale)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) apiListSales(c *gin.Context) {
	records := []json.RawMessage{}
	var failed error
	s.view(func(inv *stockroom.Inventory) {
		for _, sale := range inv.Ledger().Sales() {
			rec, err := saleRecord(sale)
			if err != nil {
				failed = err
				return
			}
			records = append(records, rec)
		}
	})
	if failed != nil {
		apiError(c, failed)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) apiValue(c *gin.Context) {
	var total string
	var count int
	s.view(func(inv *stockroom.Inventory) {
		total = inv.TotalValue().String()
		count = inv.Len()
	})
	c.JSON(http.StatusOK, gin.H{"total_value": total, "product_count": count})
}

func (s *Server) apiExpire(c *gin.Context) {
	removed := 0
	if err := s.mutate(func(inv *stockroom.Inventory) error {
		removed = inv.RemoveExpired()
		return nil
	}); err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
