package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelpos/config"
	otelMocks "hotelpos/infras/otel/mocks"
	pgMocks "hotelpos/infras/postgres/mocks"
	"hotelpos/internal/domains/reservation/mocks"
	"hotelpos/internal/domains/reservation/model"
	"hotelpos/internal/domains/reservation/model/dto"
	"hotelpos/internal/domains/reservation/service"
	roomMocks "hotelpos/internal/domains/room/mocks"
	roomModel "hotelpos/internal/domains/room/model"
	cacheMocks "hotelpos/shared/cache/mocks"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var receptionist = principal.Principal{UserID: "u-1", Username: "frontdesk", Role: "receptionist"}

type fixture struct {
	repo     *mocks.MockReservation
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	svc      service.Reservation
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:     mocks.NewMockReservation(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.roomRepo, pgMocks.NewTransactor(), cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestReservationService_Create(t *testing.T) {
	req := dto.CreateReservationRequest{
		RoomID:    "room-1",
		GuestName: "Ada Obi",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-04",
	}
	room := roomModel.Room{ID: "room-1", Number: "101"}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful reservation",
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), "room-1").Return(room, nil)
				f.repo.EXPECT().HasOverlapTx(gomock.Any(), gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, r model.Reservation) error {
						assert.Equal(t, model.StatusConfirmed, r.Status)
						assert.Equal(t, "frontdesk", r.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "end before start",
			req: dto.CreateReservationRequest{
				RoomID: "room-1", GuestName: "Ada Obi", StartDate: "2024-03-04", EndDate: "2024-03-01",
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "same day",
			req: dto.CreateReservationRequest{
				RoomID: "room-1", GuestName: "Ada Obi", StartDate: "2024-03-01", EndDate: "2024-03-01",
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed date",
			req: dto.CreateReservationRequest{
				RoomID: "room-1", GuestName: "Ada Obi", StartDate: "01/03/2024", EndDate: "2024-03-04",
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), "room-1").Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "overlapping reservation",
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), "room-1").Return(room, nil)
				f.repo.EXPECT().HasOverlapTx(gomock.Any(), gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), "room-1").Return(room, nil)
				f.repo.EXPECT().HasOverlapTx(gomock.Any(), gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), receptionist, tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, "2024-03-01", res.StartDate)
			assert.Equal(t, "2024-03-04", res.EndDate)
		})
	}
}

func TestReservationService_Cancel(t *testing.T) {
	t.Run("confirmed reservation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Cancel(gomock.Any(), "res-1", "frontdesk", gomock.Any()).Return(true, nil)

		err := f.svc.Cancel(context.Background(), receptionist, "res-1")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("cancelling twice", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.repo.EXPECT().Cancel(gomock.Any(), "res-1", "frontdesk", gomock.Any()).Return(true, nil),
			f.repo.EXPECT().Cancel(gomock.Any(), "res-1", "frontdesk", gomock.Any()).Return(false, nil),
		)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		require.NoError(t, f.svc.Cancel(context.Background(), receptionist, "res-1"))

		err := f.svc.Cancel(context.Background(), receptionist, "res-1")
		time.Sleep(10 * time.Millisecond)

		var fail *failure.Failure

		require.ErrorAs(t, err, &fail)
		assert.Equal(t, http.StatusNotFound, fail.Code)
		assert.Equal(t, "no active reservation", fail.Message)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Cancel(gomock.Any(), "missing", "frontdesk", gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Cancel(context.Background(), receptionist, "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Cancel(gomock.Any(), "res-1", "frontdesk", gomock.Any()).Return(false, errors.New("database error"))

		err := f.svc.Cancel(context.Background(), receptionist, "res-1")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReservationService_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Reservation{
		{
			ID:         "res-1",
			RoomID:     "room-1",
			RoomNumber: "101",
			GuestName:  "Ada Obi",
			StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Status:     model.StatusConfirmed,
		},
	}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "2024-03-01", res.Reservations[0].StartDate)
}

func TestReservationService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
