//go:build integration

package service_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"hotelpos/config"
	"hotelpos/helper"
	otelMocks "hotelpos/infras/otel/mocks"
	"hotelpos/infras/postgres"
	docService "hotelpos/internal/domains/document/service"
	eventService "hotelpos/internal/domains/event/service"
	orderModel "hotelpos/internal/domains/order/model"
	orderDto "hotelpos/internal/domains/order/model/dto"
	orderRepo "hotelpos/internal/domains/order/repository"
	orderService "hotelpos/internal/domains/order/service"
	productRepo "hotelpos/internal/domains/product/repository"
	reportRepo "hotelpos/internal/domains/report/repository"
	reportService "hotelpos/internal/domains/report/service"
	roomRepo "hotelpos/internal/domains/room/repository"
	"hotelpos/internal/domains/stay/model/dto"
	stayRepo "hotelpos/internal/domains/stay/repository"
	"hotelpos/internal/domains/stay/service"
	"hotelpos/shared/cache"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"
	"hotelpos/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/sync/errgroup"
)

const (
	migrationSource = "file://../../../../migrations/postgres"

	room101   = "e24d3255-122a-5f3c-961d-5f0ff6b811de"
	room305   = "af908f17-b5d1-5e7a-af6f-e6d2b50e61fc"
	cocaCola  = "5573cbe2-b9d9-5d29-9001-12f566a3d445"
	frites    = "9664cb1c-31c7-54a9-b8ec-efe035db97fd"
	cashierID = "c1a7f3a2-5b1e-4d0c-9f51-2d8e6b3a7c10"
)

type integrationEnv struct {
	db      *sqlx.DB
	stays   service.Stay
	orders  orderService.Order
	reports reportService.Report
}

func setupIntegration(t *testing.T) *integrationEnv {
	t.Helper()

	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcPostgres.WithDatabase("hotelpos_test"),
		tcPostgres.WithUsername("hotelpos"),
		tcPostgres.WithPassword("hotelpos"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	redisURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	require.NoError(t, helper.RunDSN(dsn, migrationSource, helper.ActionUp))

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO users (id, username, password, role) VALUES ($1, 'caisse', 'x', 'cashier')`, cashierID)
	require.NoError(t, err)

	redisOpts, err := goRedis.ParseURL(redisURL)
	require.NoError(t, err)

	redisClient := goRedis.NewClient(redisOpts)
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.App.HotelName = "Starlight Hotel"
	cfg.App.Currency = "FCFA"

	ot := otelMocks.NewOtel()
	conn := postgres.FromDB(db)
	transactor := postgres.NewTransactor(conn)
	redisCache := cache.NewRedisCache(redisClient, ot)
	renderer := docService.NewRenderer(cfg, ot)
	publisher := eventService.NewPublisher(nil, cfg, ot)

	orders := orderRepo.New(conn, ot)
	stays := stayRepo.New(conn, ot)

	return &integrationEnv{
		db:      db,
		stays:   service.New(stays, roomRepo.New(conn, ot), orders, transactor, renderer, publisher, cfg, redisCache, ot),
		orders:  orderService.New(orders, productRepo.New(conn, ot), stays, transactor, renderer, publisher, cfg, redisCache, ot),
		reports: reportService.New(reportRepo.New(conn, ot), cfg, redisCache, ot),
	}
}

func failureCode(err error) int {
	if f, ok := failure.As(err); ok {
		return f.Code
	}

	return 0
}

func TestIntegration_StayLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	env := setupIntegration(t)
	ctx := context.Background()

	reception := principal.Principal{UserID: cashierID, Username: "reception", Role: "receptionist"}
	cashier := principal.Principal{UserID: cashierID, Username: "caisse", Role: "cashier"}

	stay, err := env.stays.CheckIn(ctx, reception, dto.CheckInRequest{RoomID: room101, GuestName: "Awa Ndiaye"})
	require.NoError(t, err)

	t.Run("second check-in on an occupied room conflicts", func(t *testing.T) {
		_, err := env.stays.CheckIn(ctx, reception, dto.CheckInRequest{RoomID: room101, GuestName: "Paul Biya"})
		assert.Equal(t, http.StatusConflict, failureCode(err))
	})

	t.Run("concurrent charges are all applied", func(t *testing.T) {
		group, gctx := errgroup.WithContext(ctx)

		for range 20 {
			group.Go(func() error {
				_, err := env.stays.ApplyCharge(gctx, reception, stay.ID, dto.ChargeRequest{Amount: decimal.NewFromInt(1000)})

				return err
			})
		}

		require.NoError(t, group.Wait())

		var balance decimal.Decimal
		require.NoError(t, env.db.Get(&balance, `SELECT balance FROM stays WHERE id = $1`, stay.ID))
		assert.True(t, balance.Equal(decimal.NewFromInt(20000)), "balance %s", balance)
	})

	t.Run("account transfer charges the stay", func(t *testing.T) {
		res, err := env.orders.Submit(ctx, cashier, orderDto.SubmitOrderRequest{
			Lines:         []orderDto.LineRequest{{ProductID: cocaCola, Quantity: 2}},
			PaymentMethod: orderModel.MethodAccountTransfer,
			StayID:        stay.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, orderModel.StatusTransferred, res.PaymentStatus)

		_, err = env.orders.Submit(ctx, cashier, orderDto.SubmitOrderRequest{
			Lines:         []orderDto.LineRequest{{ProductID: frites, Quantity: 1}},
			PaymentMethod: orderModel.MethodCash,
		})
		require.NoError(t, err)

		var balance decimal.Decimal
		require.NoError(t, env.db.Get(&balance, `SELECT balance FROM stays WHERE id = $1`, stay.ID))
		assert.True(t, balance.Equal(decimal.NewFromInt(22000)), "balance %s", balance)
	})

	t.Run("only one concurrent checkout succeeds", func(t *testing.T) {
		var (
			succeeded atomic.Int32
			conflicts atomic.Int32
			group     errgroup.Group
		)

		for range 5 {
			group.Go(func() error {
				res, err := env.stays.Checkout(ctx, reception, stay.ID, dto.CheckoutRequest{PaidAmount: decimal.NewFromInt(52000)})

				switch {
				case err == nil:
					succeeded.Add(1)
					assert.EqualValues(t, 1, res.Settled)
					assert.True(t, res.Bill.Total.Equal(decimal.NewFromInt(52000)), "bill %s", res.Bill.Total)
				case failureCode(err) == http.StatusConflict:
					conflicts.Add(1)
				default:
					return err
				}

				return nil
			})
		}

		require.NoError(t, group.Wait())
		assert.EqualValues(t, 1, succeeded.Load())
		assert.EqualValues(t, 4, conflicts.Load())

		var transferred int
		require.NoError(t, env.db.Get(&transferred, `SELECT COUNT(*) FROM orders WHERE payment_status = 'transferred'`))
		assert.Zero(t, transferred)
	})

	t.Run("charging a closed stay conflicts", func(t *testing.T) {
		_, err := env.stays.ApplyCharge(ctx, reception, stay.ID, dto.ChargeRequest{Amount: decimal.NewFromInt(500)})
		assert.Equal(t, http.StatusConflict, failureCode(err))
	})

	t.Run("room can be checked into again", func(t *testing.T) {
		_, err := env.stays.CheckIn(ctx, reception, dto.CheckInRequest{RoomID: room101, GuestName: "Paul Biya"})
		assert.NoError(t, err)
	})

	t.Run("sales report for today", func(t *testing.T) {
		today := timezone.StartOfDay(timezone.Now())

		report, err := env.reports.SalesReport(ctx, today, today)
		require.NoError(t, err)

		assert.True(t, report.StayRevenue.Equal(decimal.NewFromInt(52000)), "stay revenue %s", report.StayRevenue)
		assert.True(t, report.POSRevenue.Equal(decimal.NewFromInt(3500)), "pos revenue %s", report.POSRevenue)
		assert.NotEmpty(t, report.PaymentBreakdown)
		require.NotEmpty(t, report.TopByQuantity)
		assert.Equal(t, cocaCola, report.TopByQuantity[0].ProductID)
	})
}

func TestIntegration_ConcurrentCheckIn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	env := setupIntegration(t)
	ctx := context.Background()

	reception := principal.Principal{UserID: cashierID, Username: "reception", Role: "receptionist"}

	var (
		succeeded atomic.Int32
		group     errgroup.Group
	)

	for range 8 {
		group.Go(func() error {
			_, err := env.stays.CheckIn(ctx, reception, dto.CheckInRequest{RoomID: room305, GuestName: "Walk-in"})

			switch {
			case err == nil:
				succeeded.Add(1)
			case failureCode(err) != http.StatusConflict:
				return err
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.EqualValues(t, 1, succeeded.Load())
}

func TestIntegration_ReportCoversLastSecondOfDay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	env := setupIntegration(t)
	ctx := context.Background()

	yesterday := timezone.StartOfDay(timezone.Now()).AddDate(0, 0, -1)
	lastSecond := yesterday.Add(24*time.Hour - 500*time.Millisecond)
	midnight := timezone.NextDay(yesterday)

	insertOrder := func(id string, at time.Time, amount int64) {
		_, err := env.db.Exec(`INSERT INTO orders (id, operator_id, net_total, payment_status, payment_method, ordered_at)
			VALUES ($1, $2, $3, 'paid', 'cash', $4)`, id, cashierID, amount, at)
		require.NoError(t, err)

		_, err = env.db.Exec(`INSERT INTO payments (id, order_id, amount, method, paid_at) VALUES ($1, $2, $3, 'cash', $4)`,
			uuid.NewString(), id, amount, at)
		require.NoError(t, err)
	}

	insertOrder(uuid.NewString(), lastSecond, 1500)
	insertOrder(uuid.NewString(), midnight, 700)

	report, err := env.reports.SalesReport(ctx, yesterday, yesterday)
	require.NoError(t, err)

	assert.True(t, report.POSRevenue.Equal(decimal.NewFromInt(1500)), "pos revenue %s", report.POSRevenue)
	require.Len(t, report.PaymentBreakdown, 1)
	assert.True(t, report.PaymentBreakdown[0].Amount.Equal(decimal.NewFromInt(1500)))
}
