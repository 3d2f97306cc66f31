package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/db"
	"github.com/facturio/facturio-api/internal/mocks"
	"github.com/facturio/facturio-api/internal/services"
)

func TestMaintenanceService_SweepOverdue(t *testing.T) {
	asOf := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	cutoff := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	pending := db.Invoice{ID: 1, InvoiceNumber: "INV-U1-C1-2024-02-0001", Status: db.InvoiceStatusPending}
	partial := db.Invoice{ID: 2, InvoiceNumber: "INV-U1-C2-2024-02-0001", Status: db.InvoiceStatusPartial}

	tests := []struct {
		name       string
		setupMocks func(m *mocks.MockQuerier)
		want       services.SweepResult
		wantErr    bool
	}{
		{
			name: "sweeps pending and partial invoices past due",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSweepableInvoices(gomock.Any(), cutoff).Return([]db.Invoice{pending, partial}, nil)
				m.EXPECT().MarkInvoiceOverdue(gomock.Any(), int64(1)).Return(nil)
				m.EXPECT().MarkInvoiceOverdue(gomock.Any(), int64(2)).Return(nil)
			},
			want: services.SweepResult{Candidates: 2, Swept: 2},
		},
		{
			name: "nothing due is a clean no-op",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSweepableInvoices(gomock.Any(), cutoff).Return(nil, nil)
			},
			want: services.SweepResult{},
		},
		{
			name: "one failed update does not block the rest",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSweepableInvoices(gomock.Any(), cutoff).Return([]db.Invoice{pending, partial}, nil)
				m.EXPECT().MarkInvoiceOverdue(gomock.Any(), int64(1)).Return(errors.New("deadlock detected"))
				m.EXPECT().MarkInvoiceOverdue(gomock.Any(), int64(2)).Return(nil)
			},
			want: services.SweepResult{Candidates: 2, Swept: 1, Failed: 1},
		},
		{
			name: "list failure aborts the sweep",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSweepableInvoices(gomock.Any(), cutoff).Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(mockQuerier)

			service := services.NewMaintenanceService(mockQuerier, zap.NewNop())
			result, err := service.SweepOverdue(context.Background(), asOf)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

// Re-running the sweep after everything was already transitioned finds no
// candidates: ListSweepableInvoices filters on status, so the second pass is
// naturally idempotent.
func TestMaintenanceService_SweepOverdue_Rerun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	mockQuerier := mocks.NewMockQuerier(ctrl)

	first := mockQuerier.EXPECT().ListSweepableInvoices(gomock.Any(), asOf).
		Return([]db.Invoice{{ID: 9, Status: db.InvoiceStatusPending}}, nil)
	mockQuerier.EXPECT().MarkInvoiceOverdue(gomock.Any(), int64(9)).Return(nil)
	mockQuerier.EXPECT().ListSweepableInvoices(gomock.Any(), asOf).Return(nil, nil).After(first)

	service := services.NewMaintenanceService(mockQuerier, zap.NewNop())

	result, err := service.SweepOverdue(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Equal(t, services.SweepResult{Candidates: 1, Swept: 1}, result)

	result, err = service.SweepOverdue(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Equal(t, services.SweepResult{}, result)
}
