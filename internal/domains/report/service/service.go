package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/report/model"
	"hotelpos/internal/domains/report/model/dto"
	"hotelpos/internal/domains/report/repository"
	"hotelpos/shared"
	"hotelpos/shared/cache"
	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
	"hotelpos/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const cacheSalesReport = model.CachePrefix + ":sales"

type Report interface {
	// SalesReport aggregates the inclusive day range [start, end]. Zero dates default
	// to the first day of the current month and today.
	SalesReport(ctx context.Context, start, end time.Time) (dto.SalesReportResponse, error)
	// Export renders the sales report of the same range as an xlsx workbook.
	Export(ctx context.Context, start, end time.Time) ([]byte, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) SalesReport(ctx context.Context, start, end time.Time) (res dto.SalesReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.SalesReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, until, err := window(start, end)
	if err != nil {
		return res, err
	}

	res.SetRange(start, until.AddDate(0, 0, -1))

	cacheKey := shared.BuildCacheKey(cacheSalesReport, res.StartDate, res.EndDate)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for sales report")

		return res, nil
	}

	var (
		stayRevenue, posRevenue decimal.Decimal
		breakdown               []model.MethodTotal
		byQuantity, byValue     []model.ProductTotal
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		stayRevenue, err = s.repo.StayRevenue(gctx, start, until)

		return err
	})
	group.Go(func() (err error) {
		posRevenue, err = s.repo.POSRevenue(gctx, start, until)

		return err
	})
	group.Go(func() (err error) {
		breakdown, err = s.repo.PaymentBreakdown(gctx, start, until)

		return err
	})
	group.Go(func() (err error) {
		byQuantity, err = s.repo.TopByQuantity(gctx, start, until, model.TopLimit)

		return err
	})
	group.Go(func() (err error) {
		byValue, err = s.repo.TopByValue(gctx, start, until, model.TopLimit)

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("start", res.StartDate).Str("end", res.EndDate).Msg("failed to build sales report")

		return res, fmt.Errorf("failed to build sales report: %w", err)
	}

	res.SetRevenue(stayRevenue, posRevenue)
	res.SetBreakdown(breakdown)
	res.TopByQuantity = dto.ProductTotals(byQuantity)
	res.TopByValue = dto.ProductTotals(byValue)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", cacheKey).Msg("failed to save sales report cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, start, end time.Time) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	report, err := s.SalesReport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	res, err = workbook(report, s.cfg.App.Currency)
	if err != nil {
		log.Error().Err(err).Msg("failed to export sales report")

		return nil, fmt.Errorf("failed to export sales report: %w", err)
	}

	return res, nil
}

// window widens [start, end] to whole days in the application timezone and returns
// them as the half-open range [start, until).
func window(start, end time.Time) (time.Time, time.Time, error) {
	now := timezone.Now()

	if start.IsZero() {
		start = timezone.StartOfMonth(now)
	}

	if end.IsZero() {
		end = now
	}

	start = timezone.StartOfDay(start)
	until := timezone.NextDay(end)

	if !start.Before(until) {
		return start, until, failure.InvalidDateRange
	}

	return start, until, nil
}
