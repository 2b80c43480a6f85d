package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/user/model"
	"hotelpos/internal/domains/user/model/dto"
	"hotelpos/internal/domains/user/repository"
	"hotelpos/shared"
	"hotelpos/shared/cache"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/password"
	"hotelpos/shared/principal"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = model.CachePrefix + ":get"
	cacheGetAllUser = model.CachePrefix + ":gets"
	cacheCountUser  = model.CachePrefix + ":count"
)

var errAdminPassword = errors.New("APP_ADMIN_PASSWORD is required to create the admin account")

type User interface {
	Create(ctx context.Context, actor principal.Principal, req dto.CreateUserRequest) (dto.UserResponse, error)
	// GetAll lists every account except the protected admin.
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Delete(ctx context.Context, actor principal.Principal, id string) error
	ResetPassword(ctx context.Context, actor principal.Principal, id string, req dto.ResetPasswordRequest) error
	// EnsureAdmin creates the protected admin account when it is missing.
	EnsureAdmin(ctx context.Context) (created bool, err error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func usernameFilter(username string) gDto.FilterGroup {
	return shared.FilterByID(username, model.FieldUsername, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, actor principal.Principal, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, usernameFilter(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(fmt.Sprintf("username %s is already taken", req.Username)) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(actor.Username, hashedPassword)

	if err = s.repo.Insert(ctx, user); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict(fmt.Sprintf("username %s is already taken", req.Username)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("username", user.Username).Str("role", user.Role).Str("actor", actor.Username).Msg("user created")

	s.invalidate(ctx)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldUsername,
		Operator: gDto.FilterOperatorNotEq,
		Value:    constant.ProtectedUsername,
		Table:    model.TableName,
	})

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountUser, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) Delete(ctx context.Context, actor principal.Principal, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if id == actor.UserID {
		return failure.BadRequestFromString("you cannot delete your own account") // nolint:wrapcheck
	}

	user, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if user.Username == constant.ProtectedUsername {
		return failure.Forbidden("the admin account cannot be deleted") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return failure.IntegrityViolation(fmt.Sprintf("user %s has recorded orders", user.Username)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info().Str("username", user.Username).Str("actor", actor.Username).Msg("user deleted")

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, actor principal.Principal, id string, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, actor.Username)

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reset password")

		return fmt.Errorf("failed to reset password: %w", err)
	}

	log.Info().Str("username", user.Username).Str("actor", actor.Username).Msg("password reset")

	return nil
}

func (s *serviceImpl) EnsureAdmin(ctx context.Context) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.EnsureAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, usernameFilter(constant.ProtectedUsername))
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin account")

		return false, fmt.Errorf("failed to check admin account: %w", err)
	}

	if exists {
		return false, nil
	}

	if s.cfg.App.Admin.Password == constant.Empty {
		return false, errAdminPassword
	}

	_, err = s.Create(ctx, principal.System, dto.CreateUserRequest{
		Username: constant.ProtectedUsername,
		Password: s.cfg.App.Admin.Password,
		Role:     constant.RoleAdmin,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save user cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)
	}()
}
