package validator_test

import (
	"strings"
	"testing"

	"hotelpos/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type chargeRequest struct {
	StayID   string          `json:"stay_id"   validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount"    validate:"gt=0,money"`
	Category string          `json:"category"  validate:"oneof=lodging consumption auxiliary_service"`
	Nights   int             `json:"nights"    validate:"gte=0,lte=365"`
}

const stayID = "0b8e3c1a-3f7d-4d0a-9a53-1c2a6f4b9e10"

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        chargeRequest
		expectError string
	}{
		{
			name: "valid charge",
			data: chargeRequest{StayID: stayID, Amount: decimal.NewFromInt(2500), Category: "consumption"},
		},
		{
			name:        "missing stay",
			data:        chargeRequest{Amount: decimal.NewFromInt(2500), Category: "consumption"},
			expectError: "stay_id is required",
		},
		{
			name:        "zero amount",
			data:        chargeRequest{StayID: stayID, Amount: decimal.Zero, Category: "consumption"},
			expectError: "amount must be greater than 0",
		},
		{
			name:        "negative amount",
			data:        chargeRequest{StayID: stayID, Amount: decimal.NewFromInt(-10), Category: "consumption"},
			expectError: "amount must be greater than 0",
		},
		{
			name:        "sub cent amount",
			data:        chargeRequest{StayID: stayID, Amount: decimal.RequireFromString("10.125"), Category: "consumption"},
			expectError: "amount must have at most two decimal places",
		},
		{
			name:        "unknown category",
			data:        chargeRequest{StayID: stayID, Amount: decimal.NewFromInt(1), Category: "minibar"},
			expectError: "category must be one of lodging consumption auxiliary_service",
		},
		{
			name:        "too many nights",
			data:        chargeRequest{StayID: stayID, Amount: decimal.NewFromInt(1), Category: "lodging", Nights: 400},
			expectError: "nights must be less than or equal to 365",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.expectError)
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&chargeRequest{Category: "minibar"})

	assert.EqualError(t, err,
		"stay_id is required; amount must be greater than 0; category must be one of lodging consumption auxiliary_service")
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid day", field: "2024-01-03", tag: "datetime=2006-01-02"},
		{name: "invalid day", field: "03/01/2024", tag: "datetime=2006-01-02", expectError: true},
		{name: "valid role", field: "cashier", tag: "oneof=admin receptionist cashier"},
		{name: "invalid role", field: "manager", tag: "oneof=admin receptionist cashier", expectError: true},
		{name: "empty field", field: "", tag: "empty"},
		{name: "non empty field", field: "stay", tag: "empty", expectError: true},
		{name: "valid money", field: 12.5, tag: "money"},
		{name: "invalid money", field: 12.555, tag: "money", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"stay_id":"` + stayID + `","amount":"1500.50","category":"auxiliary_service"}`,
		},
		{
			name:     "numeric amount",
			jsonBody: `{"stay_id":"` + stayID + `","amount":1500,"category":"lodging"}`,
		},
		{
			name:        "invalid stay id",
			jsonBody:    `{"stay_id":"room-12","amount":"10","category":"lodging"}`,
			expectError: true,
		},
		{
			name:        "malformed body",
			jsonBody:    `{"stay_id":}`,
			expectError: true,
		},
		{
			name:        "empty body",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data chargeRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
