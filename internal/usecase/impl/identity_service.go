// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"afritrade/internal/domain/entity"
	domainerrors "afritrade/internal/domain/errors"
	"afritrade/internal/domain/repository"
	"afritrade/internal/domain/service"
	"afritrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// RegisterClient registers a new account in the clients collection.
func (srv *identityService) RegisterClient(ctx context.Context, input *usecase.RegisterClientInput) (*usecase.RegisterOutput, error) {
	user := &entity.User{
		Role:     entity.RoleClient,
		Email:    input.Email,
		Name:     input.Name,
		Location: input.Location,
		Client: &entity.ClientProfile{
			BusinessType: input.BusinessType,
			TradeFocus:   input.TradeFocus,
		},
	}

	return srv.register(ctx, user, input.Password)
}

// RegisterSupplier registers a new account in the suppliers collection.
func (srv *identityService) RegisterSupplier(ctx context.Context, input *usecase.RegisterSupplierInput) (*usecase.RegisterOutput, error) {
	user := &entity.User{
		Role:     entity.RoleSupplier,
		Email:    input.Email,
		Name:     input.Name,
		Location: input.Location,
		Supplier: &entity.SupplierProfile{
			CompanyName:       input.CompanyName,
			ProductCategories: input.ProductCategories,
			Capacity:          input.Capacity,
		},
	}

	return srv.register(ctx, user, input.Password)
}

// RegisterTransporter registers a new account in the transporters collection.
func (srv *identityService) RegisterTransporter(ctx context.Context, input *usecase.RegisterTransporterInput) (*usecase.RegisterOutput, error) {
	user := &entity.User{
		Role:     entity.RoleTransporter,
		Email:    input.Email,
		Name:     input.Name,
		Location: input.Location,
		Transporter: &entity.TransporterProfile{
			TransportModes: input.TransportModes,
			RegionsCovered: input.RegionsCovered,
		},
	}

	return srv.register(ctx, user, input.Password)
}

// register hashes the password, assigns a fresh generated id, and persists
// the account into its role collection. Duplicate (role, email) keys fail
// with DuplicateIdentity; registration never overwrites silently.
func (srv *identityService) register(ctx context.Context, user *entity.User, password string) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration",
		slog.String("role", user.Role.String()),
		slog.String("email", user.Email),
	)

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	user.GeneratedID = uuid.New()
	user.PasswordHash = hashedPassword
	user.CreatedAt = time.Now().UTC()

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrDuplicateIdentity.WrapMessage("registration failed")
		}

		srv.logger.Error("Failed to persist registration", "error", err, "email", user.Email)

		return nil, domainerrors.ErrPersistenceFailed.WithDetails(err.Error())
	}

	srv.logger.Debug("Registration successful",
		slog.String("role", user.Role.String()),
		slog.String("user_id", user.GeneratedID.String()),
	)

	return &usecase.RegisterOutput{Role: user.Role, GeneratedID: user.GeneratedID}, nil
}

// Login scans the role collections in the fixed order. A password mismatch in
// one collection does not abort the scan: the same email registered under
// another role may still match. Exhausting the scan yields InvalidCredentials,
// never a user-not-found signal, so account existence is not leaked.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	for _, role := range entity.AllRoles {
		user, err := srv.userRepo.FindByEmail(ctx, role, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			continue
		}
		if err != nil {
			srv.logger.Error("Failed to look up credentials", "error", err, "role", role.String())

			return nil, errors.Wrap(err, "failed to look up credentials")
		}

		if srv.hasher.Check(input.Password, user.PasswordHash) {
			srv.logger.Info("Login successful",
				slog.String("role", role.String()),
				slog.String("user_id", user.GeneratedID.String()),
			)

			return &usecase.LoginOutput{Role: role, GeneratedID: user.GeneratedID}, nil
		}
	}

	return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
}

// GetUserByID resolves a generated id across all role collections in the
// fixed order; the first match wins.
func (srv *identityService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, role := range entity.AllRoles {
		user, err := srv.userRepo.FindByGeneratedID(ctx, role, id)
		if errors.Is(err, repository.ErrUserNotFound) {
			continue
		}
		if err != nil {
			srv.logger.Error("Failed to look up user by id", "error", err, "role", role.String())

			return nil, errors.Wrap(err, "failed to look up user by id")
		}

		return user, nil
	}

	return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
}
