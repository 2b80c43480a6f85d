package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelpos/config"
	"hotelpos/infras/otel/mocks"
	roomMocks "hotelpos/internal/domains/room/mocks"
	"hotelpos/internal/domains/room/model"
	"hotelpos/internal/domains/room/model/dto"
	"hotelpos/internal/domains/room/service"
	cacheMocks "hotelpos/shared/cache/mocks"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errCacheMiss = errors.New("cache miss")
	receptionist = principal.Principal{UserID: "u-1", Username: "frontdesk", Role: "receptionist"}
)

type fixture struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	svc   service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), "room:*").Return(nil).AnyTimes()

	return f
}

func assertFailure(t *testing.T, err error, code int) {
	t.Helper()

	var f *failure.Failure

	require.ErrorAs(t, err, &f)
	assert.Equal(t, code, f.Code)
}

func room(status string) model.RoomWithStatus {
	return model.RoomWithStatus{
		Room: model.Room{
			ID:          "room-1",
			Number:      "101",
			Type:        "Single",
			NightlyRate: decimal.NewFromInt(15000),
		},
		Status: status,
	}
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{Number: "101", Type: "Single", NightlyRate: decimal.NewFromInt(15000)}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r model.Room) error {
						assert.Equal(t, "101", r.Number)
						assert.Equal(t, "frontdesk", r.CreatedBy)
						assert.NotEmpty(t, r.ID)

						return nil
					})
			},
		},
		{
			name: "duplicate number",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation from a concurrent insert",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), receptionist, req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusFree, res.Status)
			assert.True(t, res.NightlyRate.Equal(decimal.NewFromInt(15000)))
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				res, ok := dest.(*dto.GetRoomsResponse)
				require.True(t, ok)
				res.TotalData = 3

				return nil
			})

		res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
	})

	t.Run("derived statuses from the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().CountWithStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)
		f.repo.EXPECT().GetAllWithStatus(gomock.Any(), params, gomock.Any(), gomock.Any()).
			Return([]model.RoomWithStatus{room(model.StatusOccupied), room(model.StatusFree)}, nil)

		res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, model.StatusOccupied, res.Rooms[0].Status)
		assert.Equal(t, model.StatusFree, res.Rooms[1].Status)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().CountWithStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))

		_, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().GetWithStatus(gomock.Any(), "room-1", gomock.Any()).Return(room(model.StatusReserved), nil)

		res, err := f.svc.Get(context.Background(), "room-1")
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "101", res.Number)
		assert.Equal(t, model.StatusReserved, res.Status)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().GetWithStatus(gomock.Any(), "missing", gomock.Any()).Return(model.RoomWithStatus{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assertFailure(t, err, http.StatusNotFound)
	})
}

func TestRoomService_ListAvailable(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("returns free rooms for the range", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{room(model.StatusFree).Room}, nil)

		res, err := f.svc.ListAvailable(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, res.Rooms, 1)
		assert.Equal(t, model.StatusFree, res.Rooms[0].Status)
		assert.NotEmpty(t, res.StartDate)
	})

	t.Run("empty range is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ListAvailable(context.Background(), end, start)
		assertFailure(t, err, http.StatusBadRequest)

		_, err = f.svc.ListAvailable(context.Background(), start, start)
		assertFailure(t, err, http.StatusBadRequest)
	})
}

func TestRoomService_SetStatus(t *testing.T) {
	tests := []struct {
		name      string
		derived   string
		requested string
		found     bool
		wantCode  int
	}{
		{name: "matches derived status", derived: model.StatusOccupied, requested: model.StatusOccupied, found: true},
		{name: "cannot free an occupied room", derived: model.StatusOccupied, requested: model.StatusFree, found: true, wantCode: http.StatusConflict},
		{name: "cannot occupy a free room", derived: model.StatusFree, requested: model.StatusOccupied, found: true, wantCode: http.StatusConflict},
		{name: "unknown room", requested: model.StatusFree, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			res := model.RoomWithStatus{}
			if tt.found {
				res = room(tt.derived)
			}

			f.repo.EXPECT().GetWithStatus(gomock.Any(), "room-1", gomock.Any()).Return(res, nil)

			err := f.svc.SetStatus(context.Background(), receptionist, "room-1", tt.requested)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assertFailure(t, err, tt.wantCode)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.SetStatus(context.Background(), receptionist, "room-1", "cleaning")

		assertFailure(t, err, http.StatusBadRequest)
	})
}

func TestRoomService_Update(t *testing.T) {
	number := "102"

	t.Run("renumber", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusFree).Room, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "102", fields[model.FieldNumber])
				assert.Equal(t, "frontdesk", fields["modified_by"])

				return nil
			})

		err := f.svc.Update(context.Background(), receptionist, "room-1", dto.UpdateRoomRequest{Number: &number})
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("number taken", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusFree).Room, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Update(context.Background(), receptionist, "room-1", dto.UpdateRoomRequest{Number: &number})

		assertFailure(t, err, http.StatusConflict)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := f.svc.Update(context.Background(), receptionist, "room-1", dto.UpdateRoomRequest{Number: &number})

		assertFailure(t, err, http.StatusNotFound)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("free room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetWithStatus(gomock.Any(), "room-1", gomock.Any()).Return(room(model.StatusFree), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(context.Background(), receptionist, "room-1")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("occupied room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetWithStatus(gomock.Any(), "room-1", gomock.Any()).Return(room(model.StatusOccupied), nil)

		err := f.svc.Delete(context.Background(), receptionist, "room-1")

		assertFailure(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("referenced by history", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetWithStatus(gomock.Any(), "room-1", gomock.Any()).Return(room(model.StatusFree), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})

		err := f.svc.Delete(context.Background(), receptionist, "room-1")

		assertFailure(t, err, http.StatusUnprocessableEntity)
	})
}
