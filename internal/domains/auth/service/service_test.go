package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotelpos/config"
	"hotelpos/infras/jwt"
	jwtMocks "hotelpos/infras/jwt/mocks"
	"hotelpos/infras/otel/mocks"
	"hotelpos/internal/domains/auth/model/dto"
	"hotelpos/internal/domains/auth/service"
	userMocks "hotelpos/internal/domains/user/mocks"
	userModel "hotelpos/internal/domains/user/model"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/password"
	"hotelpos/shared/principal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func hashed(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return hash
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	validUser := userModel.User{
		ID:       "user-id-123",
		Username: "maria",
		Password: hashed(t, "front-desk-1"),
		Role:     constant.RoleReceptionist,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "maria", Password: "front-desk-1"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(validUser, nil)
				mockJWT.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Username, validUser.Role).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				mockUserRepo.EXPECT().RecordLogin(gomock.Any(), validUser.ID, gomock.Any()).Return(nil)
			},
		},
		{
			name: "last login update failure does not block login",
			req:  dto.LoginRequest{Username: "maria", Password: "front-desk-1"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(validUser, nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				mockUserRepo.EXPECT().RecordLogin(gomock.Any(), validUser.ID, gomock.Any()).Return(errors.New("database error"))
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "ghost", Password: "front-desk-1"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "maria", Password: "wrongpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(validUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Username: "maria", Password: "front-desk-1"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(userModel.User{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Username: "maria", Password: "front-desk-1"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(validUser, nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "maria", res.User.Username)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(userMocks.NewMockUser(ctrl), &config.Config{}, mocks.NewOtel(), mockJWT)

	t.Run("valid token", func(t *testing.T) {
		mockJWT.EXPECT().RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockJWT.EXPECT().RefreshTokens("expired").Return(nil, jwt.ErrExpiredToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "expired"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	actor := principal.Principal{UserID: "user-id-123", Username: "maria", Role: constant.RoleReceptionist}
	current := userModel.User{ID: actor.UserID, Username: actor.Username, Password: hashed(t, "front-desk-1")}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "success",
			req:  dto.ChangePasswordRequest{CurrentPassword: "front-desk-1", NewPassword: "front-desk-2"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						hash, ok := fields[userModel.FieldPassword].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("front-desk-2", hash))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "front-desk-2"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user removed",
			req:  dto.ChangePasswordRequest{CurrentPassword: "front-desk-1", NewPassword: "front-desk-2"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

			err := svc.ChangePassword(context.Background(), actor, tt.req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
