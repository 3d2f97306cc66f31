package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/db"
	"github.com/facturio/facturio-api/internal/helpers"
	"github.com/facturio/facturio-api/internal/mocks"
	"github.com/facturio/facturio-api/internal/server"
	"github.com/facturio/facturio-api/internal/services"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type passthroughTxRunner struct {
	q db.Querier
}

func (r passthroughTxRunner) InTx(ctx context.Context, fn func(q db.Querier) error) error {
	return fn(r.q)
}

func newTestServer(t *testing.T) (*server.Server, *mocks.MockQuerier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockQuerier := mocks.NewMockQuerier(ctrl)

	clock := fixedClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	maintenance := services.NewMaintenanceService(mockQuerier, zap.NewNop())
	recurring := services.NewRecurringInvoiceService(
		mockQuerier,
		passthroughTxRunner{q: mockQuerier},
		services.NewInvoiceNumberAllocator(),
		nil,
		clock,
		zap.NewNop(),
	)
	scheduler := services.NewBillingScheduler(maintenance, recurring, clock, "01:00", "02:00", zap.NewNop())

	return server.New(scheduler, recurring, helpers.StageLocal, 0, zap.NewNop()), mockQuerier
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServer_TriggerMaintenance(t *testing.T) {
	srv, mockQuerier := newTestServer(t)
	mockQuerier.EXPECT().ListSweepableInvoices(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/jobs/maintenance", nil)
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_GenerateOne_InvalidID(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/recurring-invoices/abc/generate", nil)
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_GenerateOne_TemplateNotFound(t *testing.T) {
	srv, mockQuerier := newTestServer(t)
	mockQuerier.EXPECT().GetRecurringInvoice(gomock.Any(), int64(99)).
		Return(db.RecurringInvoice{}, errors.New("no rows in result set"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/recurring-invoices/99/generate", nil)
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
