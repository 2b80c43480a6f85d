package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelpos/config"
	"hotelpos/infras/jwt"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/auth/model/dto"
	userModel "hotelpos/internal/domains/user/model"
	userDto "hotelpos/internal/domains/user/model/dto"
	userRepo "hotelpos/internal/domains/user/repository"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
	"hotelpos/shared/password"
	"hotelpos/shared/principal"
	"hotelpos/shared/timezone"

	"github.com/rs/zerolog/log"
)

const msgInvalidCredentials = "invalid username or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, actor principal.Principal, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) newScope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth."+op)
}

// authenticate returns the user owning username when plain matches the stored hash.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *serviceImpl) authenticate(ctx context.Context, username, plain string) (userModel.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	reason := ""

	switch {
	case user.ID == constant.Empty:
		reason = "unknown username"
	case password.Verify(plain, user.Password) != nil:
		reason = "wrong password"
	}

	if reason != "" {
		log.Warn().Str("username", username).Str("reason", reason).Msg("login rejected")

		return userModel.User{}, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.newScope(ctx, "Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	if recordErr := s.userRepo.RecordLogin(ctx, user.ID, now); recordErr != nil {
		log.Warn().Err(recordErr).Str("user_id", user.ID).Msg("failed to record login")
	} else {
		user.LastLogin = &now
	}

	res.TokenResponse = dto.NewTokenResponse(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.newScope(ctx, "RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	return dto.NewTokenResponse(tokenPair), nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, actor principal.Principal, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.newScope(ctx, "ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(actor.UserID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if password.Verify(req.CurrentPassword, user.Password) != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(userDto.UpdatePasswordRequest{Password: hashedPassword}, actor.Username)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("password changed")

	return nil
}
