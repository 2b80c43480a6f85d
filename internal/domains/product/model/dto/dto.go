package dto

import (
	"hotelpos/internal/domains/product/model"
	"hotelpos/shared"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name      string          `json:"name"       validate:"required,max=150"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0,money"`
	SaleType  string          `json:"sale_type"  validate:"required,oneof=lodging consumption auxiliary_service"`
	Category  string          `json:"category"   validate:"required,max=50"`
}

func (c *CreateProductRequest) ToModel(user string) model.Product {
	product := model.Product{
		ID:        uuid.NewString(),
		Name:      c.Name,
		UnitPrice: c.UnitPrice,
		SaleType:  c.SaleType,
		Category:  c.Category,
	}
	product.Stamp(timezone.Now(), user)

	return product
}

type UpdateProductRequest struct {
	Name      *string          `db:"name"       json:"name"       validate:"omitempty,max=150"`
	UnitPrice *decimal.Decimal `db:"unit_price" json:"unit_price" validate:"omitempty,gte=0,money"`
	SaleType  *string          `db:"sale_type"  json:"sale_type"  validate:"omitempty,oneof=lodging consumption auxiliary_service"`
	Category  *string          `db:"category"   json:"category"   validate:"omitempty,max=50"`
}

func (u UpdateProductRequest) IsEmpty() bool {
	return u.Name == nil && u.UnitPrice == nil && u.SaleType == nil && u.Category == nil
}

type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SaleType  string          `json:"sale_type"`
	Category  string          `json:"category"`
	gDto.Metadata
}

func (r *ProductResponse) FromModel(model model.Product) {
	r.ID = model.ID
	r.Name = model.Name
	r.UnitPrice = model.UnitPrice
	r.SaleType = model.SaleType
	r.Category = model.Category
	r.Metadata.FromModel(model.Metadata)
}

type GetProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProductsResponse) FromModels(models []model.Product, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Products = make([]ProductResponse, len(models))
	for i, mod := range models {
		r.Products[i].FromModel(mod)
	}
}
