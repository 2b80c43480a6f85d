package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelpos/config"
	otelMocks "hotelpos/infras/otel/mocks"
	"hotelpos/internal/domains/report/mocks"
	"hotelpos/internal/domains/report/model"
	"hotelpos/internal/domains/report/service"
	cacheMocks "hotelpos/shared/cache/mocks"
	"hotelpos/shared/failure"
	"hotelpos/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	repo  *mocks.MockReport
	cache *cacheMocks.MockRedisCache
	svc   service.Report
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 600
	cfg.App.Currency = "FCFA"

	f := fixture{
		repo:  mocks.NewMockReport(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f fixture) expectReport(stay, pos int64) {
	f.repo.EXPECT().StayRevenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(stay), nil)
	f.repo.EXPECT().POSRevenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(pos), nil)
	f.repo.EXPECT().PaymentBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.MethodTotal{
		{Method: "account_transfer", Amount: decimal.NewFromInt(2000)},
		{Method: "cash", Amount: decimal.NewFromInt(pos)},
	}, nil)
	f.repo.EXPECT().TopByQuantity(gomock.Any(), gomock.Any(), gomock.Any(), model.TopLimit).Return([]model.ProductTotal{
		{ProductID: "p-1", Name: "Bière", Quantity: 8, Value: decimal.NewFromInt(8000)},
	}, nil)
	f.repo.EXPECT().TopByValue(gomock.Any(), gomock.Any(), gomock.Any(), model.TopLimit).Return([]model.ProductTotal{
		{ProductID: "p-1", Name: "Bière", Quantity: 8, Value: decimal.NewFromInt(8000)},
	}, nil)
}

func TestReportService_SalesReport(t *testing.T) {
	day := func(value string) time.Time {
		d, err := timezone.Parse("2006-01-02", value)
		require.NoError(t, err)

		return d
	}

	t.Run("stay and pos revenue add up", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "report:sales:2024-01-01:2024-01-31", gomock.Any()).Return(errCacheMiss)
		f.expectReport(45000, 8000)

		res, err := f.svc.SalesReport(context.Background(), day("2024-01-01"), day("2024-01-31"))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(53000).Equal(res.Total))
		assert.Equal(t, "2024-01-01", res.StartDate)
		assert.Equal(t, "2024-01-31", res.EndDate)
		assert.Len(t, res.PaymentBreakdown, 2)
		assert.Equal(t, "Bière", res.TopByQuantity[0].Name)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("end day is covered up to midnight", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().StayRevenue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, until time.Time) (decimal.Decimal, error) {
				assert.Equal(t, timezone.StartOfDay(day("2024-03-05")), start)
				assert.Equal(t, timezone.StartOfDay(day("2024-03-06")), until)

				lastSecond := timezone.StartOfDay(day("2024-03-05")).Add(24*time.Hour - 500*time.Millisecond)
				assert.True(t, lastSecond.Before(until))

				return decimal.Zero, nil
			})
		f.repo.EXPECT().POSRevenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
		f.repo.EXPECT().PaymentBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().TopByQuantity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().TopByValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.SalesReport(context.Background(), day("2024-03-05"), day("2024-03-05"))

		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", res.StartDate)
		assert.Equal(t, "2024-03-05", res.EndDate)
		assert.True(t, res.Total.IsZero())
		assert.Empty(t, res.PaymentBreakdown)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("defaults to month to date", func(t *testing.T) {
		f := newFixture(t)

		now := timezone.Now()
		want := "report:sales:" + timezone.StartOfMonth(now).Format("2006-01-02") + ":" + now.Format("2006-01-02")

		f.cache.EXPECT().Get(gomock.Any(), want, gomock.Any()).Return(nil)

		_, err := f.svc.SalesReport(context.Background(), time.Time{}, time.Time{})

		require.NoError(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SalesReport(context.Background(), day("2024-02-01"), day("2024-01-01"))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("query failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().StayRevenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, errors.New("timeout")).AnyTimes()
		f.repo.EXPECT().POSRevenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
		f.repo.EXPECT().PaymentBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		f.repo.EXPECT().TopByQuantity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		f.repo.EXPECT().TopByValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := f.svc.SalesReport(context.Background(), day("2024-01-01"), day("2024-01-31"))

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReportService_Export(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	f.expectReport(45000, 8000)

	start, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)

	res, err := f.svc.Export(context.Background(), start, start.AddDate(0, 0, 30))
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(res))
	require.NoError(t, err)

	defer book.Close()

	total, err := book.GetCellValue("Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "53000", total)

	zone, err := book.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation().String(), zone)

	method, err := book.GetCellValue("Payments", "A3")
	require.NoError(t, err)
	assert.Equal(t, "cash", method)

	product, err := book.GetCellValue("Top products", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Bière", product)

	time.Sleep(10 * time.Millisecond)
}
