package dto_test

import (
	"encoding/json"
	"testing"

	"hotelpos/infras/jwt"
	"hotelpos/internal/domains/auth/model/dto"
	userDto "hotelpos/internal/domains/user/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenResponse(t *testing.T) {
	pair := &jwt.TokenPair{AccessToken: "acc", RefreshToken: "ref", TokenType: "Bearer", ExpiresIn: 900}

	assert.Equal(t, dto.TokenResponse{AccessToken: "acc", RefreshToken: "ref", TokenType: "Bearer", ExpiresIn: 900},
		dto.NewTokenResponse(pair))
	assert.Zero(t, dto.NewTokenResponse(nil))
}

func TestLoginResponse_FlattensTokens(t *testing.T) {
	res := dto.LoginResponse{
		TokenResponse: dto.NewTokenResponse(&jwt.TokenPair{AccessToken: "acc", TokenType: "Bearer"}),
		User:          userDto.UserResponse{Username: "maria"},
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "acc", body["access_token"])
	assert.Equal(t, "Bearer", body["token_type"])
	assert.Contains(t, body, "user")
	assert.NotContains(t, body, "TokenResponse")
}
