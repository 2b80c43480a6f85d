package dto_test

import (
	"testing"

	"hotelpos/internal/domains/product/model"
	"hotelpos/internal/domains/product/model/dto"
	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateProductRequest_ToModel(t *testing.T) {
	req := dto.CreateProductRequest{
		Name:      "Bière locale",
		UnitPrice: decimal.NewFromInt(1000),
		SaleType:  model.SaleTypeConsumption,
		Category:  "Bar",
	}

	product := req.ToModel("admin")

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, req.Name, product.Name)
	assert.True(t, product.UnitPrice.Equal(req.UnitPrice))
	assert.Equal(t, "admin", product.CreatedBy)
	assert.Equal(t, "admin", product.ModifiedBy)
	assert.False(t, product.CreatedAt.IsZero())
	assert.True(t, product.SellableAtPOS())
}

func TestUpdateProductRequest_IsEmpty(t *testing.T) {
	name := "Eau minérale"

	assert.True(t, dto.UpdateProductRequest{}.IsEmpty())
	assert.False(t, dto.UpdateProductRequest{Name: &name}.IsEmpty())
}

func TestGetProductsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	products := []model.Product{
		{ID: "p-1", Name: "Nuitée Suite", SaleType: model.SaleTypeLodging, Metadata: gModel.Metadata{CreatedAt: now}},
		{ID: "p-2", Name: "Blanchisserie", SaleType: model.SaleTypeAuxiliaryService, Metadata: gModel.Metadata{CreatedAt: now}},
	}

	var res dto.GetProductsResponse
	res.FromModels(products, 12, 10)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Products, 2)
	assert.False(t, products[0].SellableAtPOS())
	assert.Equal(t, "Blanchisserie", res.Products[1].Name)
}
