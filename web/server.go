// Package web serves the browser front end and the JSON API over the same
// data directory the CLI uses.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/etnz/stockroom"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server owns the loaded inventory and serializes every access with one
// mutex: the tool is single-process and the snapshots are small, so
// finer-grained locking buys nothing.
type Server struct {
	router *gin.Engine
	store  *stockroom.Store
	cfg    stockroom.Config

	mu  sync.Mutex
	inv *stockroom.Inventory

	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	salesTotal prometheus.Counter
}

// NewServer loads the snapshots from the store and builds the route table.
func NewServer(store *stockroom.Store, cfg stockroom.Config) (*Server, error) {
	inv, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load inventory: %w", err)
	}

	router := gin.Default()
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router: router,
		store:  store,
		cfg:    cfg,
		inv:    inv,
	}
	s.setupMetrics()
	s.setupRoutes()
	return s, nil
}

// Run blocks, serving on the given address.
func (s *Server) Run(addr string) error { return s.router.Run(addr) }

// Handler exposes the route table, for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupMetrics() {
	// A per-server registry keeps collectors from colliding when several
	// servers are built in one process.
	s.registry = prometheus.NewRegistry()
	s.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockroom_http_requests_total",
			Help: "Number of HTTP requests handled, by method and route.",
		},
		[]string{"method", "route"},
	)
	s.salesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stockroom_sales_total",
			Help: "Number of sales completed through the web front end.",
		},
	)
	s.registry.MustRegister(s.requests, s.salesTotal)
}

// countRequests increments the request counter after each handled request.
func (s *Server) countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.requests.WithLabelValues(c.Request.Method, route).Inc()
	}
}

func (s *Server) setupRoutes() {
	s.router.Use(s.countRequests())

	// Health check and metrics.
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	// Browser pages.
	s.router.GET("/", s.summaryPage)
	s.router.GET("/inventory", s.inventoryPage)
	s.router.GET("/add", s.addPage)
	s.router.POST("/add", s.addForm)
	s.router.POST("/inventory/restock", s.restockForm)
	s.router.POST("/inventory/sell", s.sellForm)
	s.router.POST("/inventory/remove", s.removeForm)
	s.router.GET("/sales", s.salesPage)
	s.router.POST("/expire", s.expireForm)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/products", s.apiListProducts)
		v1.POST("/products", s.apiCreateProduct)
		v1.GET("/products/:id", s.apiGetProduct)
		v1.DELETE("/products/:id", s.apiDeleteProduct)
		v1.POST("/products/:id/restock", s.apiRestock)
		v1.POST("/products/:id/sell", s.apiSell)
		v1.GET("/sales", s.apiListSales)
		v1.GET("/value", s.apiValue)
		v1.POST("/expire", s.apiExpire)
	}
}

// mutate runs fn under the lock and saves both snapshots on success, so the
// files on disk always reflect what the pages show.
func (s *Server) mutate(fn func(inv *stockroom.Inventory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.inv); err != nil {
		return err
	}
	return s.store.Save(s.inv)
}

// view runs fn under the lock without saving.
func (s *Server) view(fn func(inv *stockroom.Inventory)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.inv)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var notFound *stockroom.NotFoundError
	var duplicate *stockroom.DuplicateProductError
	var insufficient *stockroom.InsufficientStockError
	var invalid *stockroom.InvalidProductDataError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &insufficient):
		return http.StatusConflict
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
