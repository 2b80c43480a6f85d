package service_test

import (
	"context"
	"errors"
	"testing"

	otelMocks "hotelpos/infras/otel/mocks"
	"hotelpos/infras/redis"
	redisMocks "hotelpos/infras/redis/mocks"
	s3Mocks "hotelpos/infras/s3/mocks"
	"hotelpos/internal/domains/document/mocks"
	"hotelpos/internal/domains/document/model"
	"hotelpos/internal/domains/document/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArchiver_ArchiveInvoice(t *testing.T) {
	invoice := sampleInvoice()
	pdf := []byte("%PDF-1.3")

	tests := []struct {
		name      string
		setupMock func(renderer *mocks.MockRenderer, storage *s3Mocks.MockS3, locker *redisMocks.MockLocker, released *bool)
		wantURL   string
		wantErr   bool
		wantErrIs error
	}{
		{
			name: "uploads under invoices",
			setupMock: func(renderer *mocks.MockRenderer, storage *s3Mocks.MockS3, locker *redisMocks.MockLocker, released *bool) {
				locker.EXPECT().Obtain(gomock.Any(), "document:lock:invoice:stay-1", gomock.Any()).
					Return(func(context.Context) error { *released = true; return nil }, nil)
				storage.EXPECT().Exists(gomock.Any(), "invoices/stay-1.pdf").Return(false, nil)
				renderer.EXPECT().Invoice(gomock.Any(), invoice).Return(pdf, nil)
				storage.EXPECT().
					Put(gomock.Any(), "invoices/stay-1.pdf", "application/pdf", pdf).
					Return("https://cdn.example/invoices/stay-1.pdf", nil)
			},
			wantURL: "https://cdn.example/invoices/stay-1.pdf",
		},
		{
			name: "already archived is not rendered again",
			setupMock: func(_ *mocks.MockRenderer, storage *s3Mocks.MockS3, locker *redisMocks.MockLocker, released *bool) {
				locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(func(context.Context) error { *released = true; return nil }, nil)
				storage.EXPECT().Exists(gomock.Any(), "invoices/stay-1.pdf").Return(true, nil)
				storage.EXPECT().URL("invoices/stay-1.pdf").Return("https://cdn.example/invoices/stay-1.pdf")
			},
			wantURL: "https://cdn.example/invoices/stay-1.pdf",
		},
		{
			name: "another worker holds the lock",
			setupMock: func(_ *mocks.MockRenderer, _ *s3Mocks.MockS3, locker *redisMocks.MockLocker, released *bool) {
				*released = true
				locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, redis.ErrLockHeld)
			},
			wantErr:   true,
			wantErrIs: redis.ErrLockHeld,
		},
		{
			name: "upload failure releases the lock",
			setupMock: func(renderer *mocks.MockRenderer, storage *s3Mocks.MockS3, locker *redisMocks.MockLocker, released *bool) {
				locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(func(context.Context) error { *released = true; return nil }, nil)
				storage.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
				renderer.EXPECT().Invoice(gomock.Any(), invoice).Return(pdf, nil)
				storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("bucket unavailable"))
			},
			wantErr: true,
		},
		{
			name: "lock error",
			setupMock: func(_ *mocks.MockRenderer, _ *s3Mocks.MockS3, locker *redisMocks.MockLocker, released *bool) {
				*released = true
				locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			renderer := mocks.NewMockRenderer(ctrl)
			storage := s3Mocks.NewMockS3(ctrl)
			locker := redisMocks.NewMockLocker(ctrl)
			released := false

			tt.setupMock(renderer, storage, locker, &released)

			archiver := service.NewArchiver(renderer, storage, locker, otelMocks.NewOtel())

			url, err := archiver.ArchiveInvoice(context.Background(), invoice)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, url)

				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantURL, url)
			}

			assert.True(t, released)
		})
	}
}

func TestArchiver_ArchiveTicket(t *testing.T) {
	ctrl := gomock.NewController(t)

	renderer := mocks.NewMockRenderer(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)
	locker := redisMocks.NewMockLocker(ctrl)

	ticket := model.Ticket{OrderID: "order-1"}

	locker.EXPECT().Obtain(gomock.Any(), "document:lock:ticket:order-1", gomock.Any()).
		Return(func(context.Context) error { return nil }, nil)
	storage.EXPECT().Exists(gomock.Any(), model.DirectoryTickets+"/order-1.pdf").Return(false, nil)
	renderer.EXPECT().Ticket(gomock.Any(), ticket).Return([]byte("%PDF"), nil)
	storage.EXPECT().
		Put(gomock.Any(), model.DirectoryTickets+"/order-1.pdf", "application/pdf", gomock.Any()).
		Return("https://cdn.example/tickets/order-1.pdf", nil)

	archiver := service.NewArchiver(renderer, storage, locker, otelMocks.NewOtel())

	url, err := archiver.ArchiveTicket(context.Background(), ticket)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/tickets/order-1.pdf", url)
}
