package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/facturio/facturio-api/internal/mocks"
	"github.com/facturio/facturio-api/internal/services"
)

func TestInvoiceNumberAllocator_Allocate(t *testing.T) {
	at := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	prefix := "INV-U7-C42-2024-01-"

	tests := []struct {
		name        string
		setupMocks  func(m *mocks.MockQuerier)
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name: "fresh scope starts at 0001",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLastInvoiceNumberWithPrefix(gomock.Any(), prefix).Return("", pgx.ErrNoRows)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), prefix+"0001").Return(false, nil)
			},
			want: prefix + "0001",
		},
		{
			name: "existing scope increments the last sequence",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLastInvoiceNumberWithPrefix(gomock.Any(), prefix).Return(prefix+"0007", nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), prefix+"0008").Return(false, nil)
			},
			want: prefix + "0008",
		},
		{
			name: "collision on re-check advances to the next candidate",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLastInvoiceNumberWithPrefix(gomock.Any(), prefix).Return(prefix+"0001", nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), prefix+"0002").Return(true, nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), prefix+"0003").Return(false, nil)
			},
			want: prefix + "0003",
		},
		{
			name: "persistent collisions exhaust the attempt cap",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLastInvoiceNumberWithPrefix(gomock.Any(), prefix).Return(prefix+"0001", nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(5)
			},
			wantErr:     true,
			errContains: "allocation attempts exhausted",
		},
		{
			name: "malformed last number in scope is an error",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLastInvoiceNumberWithPrefix(gomock.Any(), prefix).Return(prefix+"00XY", nil)
			},
			wantErr:     true,
			errContains: "malformed invoice number",
		},
		{
			name: "lookup failure propagates",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLastInvoiceNumberWithPrefix(gomock.Any(), prefix).Return("", errors.New("connection reset"))
			},
			wantErr:     true,
			errContains: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(mockQuerier)

			allocator := services.NewInvoiceNumberAllocator()
			got, err := allocator.Allocate(context.Background(), mockQuerier, 7, 42, at)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvoiceNumberAllocator_ScopeIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	allocator := services.NewInvoiceNumberAllocator()
	ctx := context.Background()

	// A new month is a fresh scope even when the previous month has history.
	january := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	february := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	mockQuerier.EXPECT().GetLastInvoiceNumberWithPrefix(ctx, "INV-U1-C2-2024-01-").Return("INV-U1-C2-2024-01-0042", nil)
	mockQuerier.EXPECT().InvoiceNumberExists(ctx, "INV-U1-C2-2024-01-0043").Return(false, nil)
	mockQuerier.EXPECT().GetLastInvoiceNumberWithPrefix(ctx, "INV-U1-C2-2024-02-").Return("", pgx.ErrNoRows)
	mockQuerier.EXPECT().InvoiceNumberExists(ctx, "INV-U1-C2-2024-02-0001").Return(false, nil)

	got, err := allocator.Allocate(ctx, mockQuerier, 1, 2, january)
	assert.NoError(t, err)
	assert.Equal(t, "INV-U1-C2-2024-01-0043", got)

	got, err = allocator.Allocate(ctx, mockQuerier, 1, 2, february)
	assert.NoError(t, err)
	assert.Equal(t, "INV-U1-C2-2024-02-0001", got)
}
