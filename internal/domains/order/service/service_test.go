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
	docMocks "hotelpos/internal/domains/document/mocks"
	docModel "hotelpos/internal/domains/document/model"
	eventMocks "hotelpos/internal/domains/event/mocks"
	eventModel "hotelpos/internal/domains/event/model"
	"hotelpos/internal/domains/order/mocks"
	"hotelpos/internal/domains/order/model"
	"hotelpos/internal/domains/order/model/dto"
	"hotelpos/internal/domains/order/service"
	productMocks "hotelpos/internal/domains/product/mocks"
	productModel "hotelpos/internal/domains/product/model"
	stayMocks "hotelpos/internal/domains/stay/mocks"
	stayModel "hotelpos/internal/domains/stay/model"
	cacheMocks "hotelpos/shared/cache/mocks"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	beerID  = "4f8a3c52-1d7e-4a8b-9a61-2b1f7f0c0a01"
	roomID  = "4f8a3c52-1d7e-4a8b-9a61-2b1f7f0c0a02"
	stayID  = "4f8a3c52-1d7e-4a8b-9a61-2b1f7f0c0a03"
	orderID = "4f8a3c52-1d7e-4a8b-9a61-2b1f7f0c0a04"
)

var cashier = principal.Principal{UserID: "u-2", Username: "bar", Role: "cashier"}

type fixture struct {
	repo        *mocks.MockOrder
	productRepo *productMocks.MockProduct
	stayRepo    *stayMocks.MockStay
	renderer    *docMocks.MockRenderer
	publisher   *eventMocks.MockPublisher
	cache       *cacheMocks.MockRedisCache
	svc         service.Order
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        mocks.NewMockOrder(ctrl),
		productRepo: productMocks.NewMockProduct(ctrl),
		stayRepo:    stayMocks.NewMockStay(ctrl),
		renderer:    docMocks.NewMockRenderer(ctrl),
		publisher:   eventMocks.NewMockPublisher(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(
		f.repo, f.productRepo, f.stayRepo, pgMocks.NewTransactor(),
		f.renderer, f.publisher, &config.Config{}, f.cache, otelMocks.NewOtel(),
	)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func catalog() map[string]productModel.Product {
	return map[string]productModel.Product{
		beerID: {ID: beerID, Name: "Bière", UnitPrice: decimal.NewFromInt(1000), SaleType: productModel.SaleTypeConsumption},
		roomID: {ID: roomID, Name: "Nuitée Suite", UnitPrice: decimal.NewFromInt(45000), SaleType: productModel.SaleTypeLodging},
	}
}

func assertFailure(t *testing.T, err error, code int) {
	t.Helper()

	var f *failure.Failure

	require.ErrorAs(t, err, &f)
	assert.Equal(t, code, f.Code)
}

func TestOrderService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.SubmitOrderRequest
	}{
		{
			name: "empty cart",
			req:  dto.SubmitOrderRequest{PaymentMethod: model.MethodCash},
		},
		{
			name: "zero quantity",
			req: dto.SubmitOrderRequest{
				Lines:         []dto.LineRequest{{ProductID: beerID, Quantity: 0}},
				PaymentMethod: model.MethodCash,
			},
		},
		{
			name: "unknown payment method",
			req: dto.SubmitOrderRequest{
				Lines:         []dto.LineRequest{{ProductID: beerID, Quantity: 1}},
				PaymentMethod: "cheque",
			},
		},
		{
			name: "transfer without stay",
			req: dto.SubmitOrderRequest{
				Lines:         []dto.LineRequest{{ProductID: beerID, Quantity: 1}},
				PaymentMethod: model.MethodAccountTransfer,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.Submit(context.Background(), cashier, tt.req)

			assertFailure(t, err, http.StatusBadRequest)
		})
	}
}

func TestOrderService_Submit_Cash(t *testing.T) {
	f := newFixture(t)

	published := make(chan eventModel.OrderSubmitted, 1)

	f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), []string{beerID}).Return(catalog(), nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, order model.Order) error {
			assert.Nil(t, order.StayID, "non-transfer orders drop the stay id")
			assert.Equal(t, model.StatusPaid, order.PaymentStatus)
			assert.True(t, decimal.NewFromInt(3000).Equal(order.NetTotal))

			return nil
		})
	f.repo.EXPECT().InsertLinesTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, lines []model.Line) error {
			require.Len(t, lines, 2)
			assert.True(t, decimal.NewFromInt(1000).Equal(lines[0].UnitPrice))

			return nil
		})
	f.repo.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment model.Payment) error {
			assert.Equal(t, model.MethodCash, payment.Method)
			assert.True(t, decimal.NewFromInt(3000).Equal(payment.Amount))

			return nil
		})
	f.publisher.EXPECT().OrderSubmitted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event eventModel.OrderSubmitted) error {
			published <- event

			return nil
		})

	res, err := f.svc.Submit(context.Background(), cashier, dto.SubmitOrderRequest{
		Lines: []dto.LineRequest{
			{ProductID: beerID, Quantity: 2},
			{ProductID: beerID, Quantity: 1},
		},
		PaymentMethod: model.MethodCash,
		StayID:        stayID,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, res.PaymentStatus)
	assert.True(t, decimal.NewFromInt(3000).Equal(res.NetTotal))

	select {
	case event := <-published:
		assert.Equal(t, res.ID, event.OrderID)
		assert.Equal(t, "bar", event.Ticket.Operator)
		assert.Len(t, event.Ticket.Lines, 2)
	case <-time.After(time.Second):
		t.Fatal("order event was not published")
	}
}

func TestOrderService_Submit_Transfer(t *testing.T) {
	f := newFixture(t)

	f.publisher.EXPECT().OrderSubmitted(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
	f.stayRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), stayID).
		Return(stayModel.Stay{ID: stayID, GuestName: "Awa Diallo", RoomNumber: "204", Status: stayModel.StatusOpen}, nil)
	f.stayRepo.EXPECT().AddBalanceTx(gomock.Any(), gomock.Any(), stayID, decimal.NewFromInt(2000), "bar").
		Return(decimal.NewFromInt(2000), nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, order model.Order) error {
			require.NotNil(t, order.StayID)
			assert.Equal(t, stayID, *order.StayID)
			assert.Equal(t, model.StatusTransferred, order.PaymentStatus)

			return nil
		})
	f.repo.EXPECT().InsertLinesTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment model.Payment) error {
			assert.Equal(t, model.MethodAccountTransfer, payment.Method)

			return nil
		})

	res, err := f.svc.Submit(context.Background(), cashier, dto.SubmitOrderRequest{
		Lines:         []dto.LineRequest{{ProductID: beerID, Quantity: 2}},
		PaymentMethod: model.MethodAccountTransfer,
		StayID:        stayID,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusTransferred, res.PaymentStatus)

	time.Sleep(10 * time.Millisecond)
}

func TestOrderService_Submit_Failures(t *testing.T) {
	transfer := dto.SubmitOrderRequest{
		Lines:         []dto.LineRequest{{ProductID: beerID, Quantity: 1}},
		PaymentMethod: model.MethodAccountTransfer,
		StayID:        stayID,
	}

	tests := []struct {
		name      string
		req       dto.SubmitOrderRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "unknown product",
			req: dto.SubmitOrderRequest{
				Lines:         []dto.LineRequest{{ProductID: orderID, Quantity: 1}},
				PaymentMethod: model.MethodCard,
			},
			setupMock: func(f fixture) {
				f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "lodging product",
			req: dto.SubmitOrderRequest{
				Lines:         []dto.LineRequest{{ProductID: roomID, Quantity: 1}},
				PaymentMethod: model.MethodMobile,
			},
			setupMock: func(f fixture) {
				f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown stay",
			req:  transfer,
			setupMock: func(f fixture) {
				f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
				f.stayRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), stayID).Return(stayModel.Stay{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "closed stay",
			req:  transfer,
			setupMock: func(f fixture) {
				f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
				f.stayRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), stayID).
					Return(stayModel.Stay{ID: stayID, Status: stayModel.StatusClosed}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "stay closed between lock and charge",
			req:  transfer,
			setupMock: func(f fixture) {
				f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
				f.stayRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), stayID).
					Return(stayModel.Stay{ID: stayID, Status: stayModel.StatusOpen}, nil)
				f.stayRepo.EXPECT().AddBalanceTx(gomock.Any(), gomock.Any(), stayID, gomock.Any(), gomock.Any()).
					Return(decimal.Zero, stayModel.ErrClosed)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "payment insert fails",
			req: dto.SubmitOrderRequest{
				Lines:         []dto.LineRequest{{ProductID: beerID, Quantity: 1}},
				PaymentMethod: model.MethodCash,
			},
			setupMock: func(f fixture) {
				f.productRepo.EXPECT().GetByIDsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertLinesTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Submit(context.Background(), cashier, tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestOrderService_GetReceipt(t *testing.T) {
	guest, room := "Awa Diallo", "204"
	order := model.Order{
		ID:            orderID,
		OperatorName:  "bar",
		StayID:        func() *string { s := stayID; return &s }(),
		GuestName:     &guest,
		RoomNumber:    &room,
		NetTotal:      decimal.NewFromInt(2000),
		PaymentStatus: model.StatusTransferred,
		PaymentMethod: model.MethodAccountTransfer,
	}
	lines := []model.Line{{ProductID: beerID, ProductName: "Bière", Quantity: 2, UnitPrice: decimal.NewFromInt(1000)}}

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)
		f.repo.EXPECT().GetPayment(gomock.Any(), orderID).
			Return(model.Payment{Amount: decimal.NewFromInt(2000), Method: model.MethodAccountTransfer}, nil)
		f.repo.EXPECT().GetLines(gomock.Any(), orderID).Return(lines, nil)

		res, err := f.svc.GetReceipt(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, "Awa Diallo", res.GuestName)
		assert.Equal(t, "204", res.RoomNumber)
		assert.Equal(t, "bar", res.Operator)
		require.Len(t, res.Lines, 1)
		assert.True(t, decimal.NewFromInt(2000).Equal(res.Lines[0].Subtotal))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

		_, err := f.svc.GetReceipt(context.Background(), orderID)

		assertFailure(t, err, http.StatusNotFound)
	})
}

func TestOrderService_Ticket(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.Order{ID: orderID, OperatorName: "bar", PaymentMethod: model.MethodCash}, nil)
	f.repo.EXPECT().GetPayment(gomock.Any(), orderID).Return(model.Payment{}, nil)
	f.repo.EXPECT().GetLines(gomock.Any(), orderID).
		Return([]model.Line{{ProductName: "Eau", Quantity: 1, UnitPrice: decimal.NewFromInt(500)}}, nil)
	f.renderer.EXPECT().Ticket(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ticket docModel.Ticket) ([]byte, error) {
			assert.Equal(t, orderID, ticket.OrderID)
			require.Len(t, ticket.Lines, 1)
			assert.True(t, decimal.NewFromInt(500).Equal(ticket.Lines[0].Subtotal))

			return []byte("%PDF-1.3"), nil
		})

	res, err := f.svc.Ticket(context.Background(), orderID)

	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(res))
}

func TestOrderService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Order{{ID: orderID, PaymentMethod: model.MethodCash, PaymentStatus: model.StatusPaid}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, orderID, res.Orders[0].ID)
}
