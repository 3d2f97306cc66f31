package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/helpers"
	"github.com/facturio/facturio-api/internal/services"
)

// Server is the admin HTTP surface: health, metrics and manual job triggers.
// It carries no tenant-facing API.
type Server struct {
	scheduler *services.BillingScheduler
	recurring *services.RecurringInvoiceService
	logger    *zap.Logger
	httpSrv   *http.Server
}

func New(scheduler *services.BillingScheduler, recurring *services.RecurringInvoiceService, stage string, port int, logger *zap.Logger) *Server {
	if stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		scheduler: scheduler,
		recurring: recurring,
		logger:    logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := router.Group("/admin")
	{
		admin.POST("/jobs/maintenance", s.triggerMaintenance)
		admin.POST("/jobs/generation", s.triggerGeneration)
		admin.POST("/recurring-invoices/:id/generate", s.generateOne)
	}

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until Shutdown; it returns http.ErrServerClosed on clean stop.
func (s *Server) Start() error {
	s.logger.Info("Admin server listening", zap.String("addr", s.httpSrv.Addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) triggerMaintenance(c *gin.Context) {
	if err := s.scheduler.RunMaintenance(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (s *Server) triggerGeneration(c *gin.Context) {
	if err := s.scheduler.RunGeneration(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (s *Server) generateOne(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recurring invoice id"})
		return
	}

	invoice, err := s.recurring.GenerateOne(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("Manual generation failed", zap.Int64("recurring_invoice_id", id), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"invoice_id":     invoice.ID,
		"public_id":      invoice.PublicID.String(),
		"invoice_number": invoice.InvoiceNumber,
		"total_cents":    invoice.TotalCents,
		"due_date":       invoice.DueDate.Format("2006-01-02"),
	})
}
