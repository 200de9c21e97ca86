package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"afritrade/internal/domain/entity"
	domainerrors "afritrade/internal/domain/errors"
	"afritrade/internal/infra/auth"
	"afritrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestIdentityService(t *testing.T) (usecase.IdentityUsecase, *fakeUserRepo) {
	t.Helper()

	repo := newFakeUserRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewIdentityService(repo, auth.NewBcryptHasherWithCost(bcrypt.MinCost), logger)

	return svc, repo
}

func clientInput(email string) *usecase.RegisterClientInput {
	return &usecase.RegisterClientInput{
		Name:         "Amina Traders",
		Email:        email,
		Location:     "Lagos",
		BusinessType: "SME",
		TradeFocus:   "textiles",
		Password:     "client-secret",
	}
}

func supplierInput(email string) *usecase.RegisterSupplierInput {
	return &usecase.RegisterSupplierInput{
		Name:              "Kano Mills",
		Email:             email,
		CompanyName:       "Kano Mills Ltd",
		Location:          "Kano",
		ProductCategories: []string{"grain", "flour"},
		Capacity:          500,
		Password:          "supplier-secret",
	}
}

func TestIdentityService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc, repo := createTestIdentityService(t)
	ctx := context.Background()

	registered, err := svc.RegisterClient(ctx, clientInput("amina@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, registered.Role)
	assert.NotEqual(t, uuid.Nil, registered.GeneratedID)

	stored, err := repo.FindByEmail(ctx, entity.RoleClient, "amina@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "client-secret", stored.PasswordHash, "password must not be stored in the clear")
	require.NotNil(t, stored.Client)
	assert.Equal(t, "SME", stored.Client.BusinessType)
	assert.False(t, stored.CreatedAt.IsZero())

	logged, err := svc.Login(ctx, &usecase.LoginInput{Email: "amina@example.com", Password: "client-secret"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, logged.Role)
	assert.Equal(t, registered.GeneratedID, logged.GeneratedID)
}

func TestIdentityService_RegisterDuplicateSameRole(t *testing.T) {
	t.Parallel()

	svc, _ := createTestIdentityService(t)
	ctx := context.Background()

	_, err := svc.RegisterSupplier(ctx, supplierInput("mills@example.com"))
	require.NoError(t, err)

	_, err = svc.RegisterSupplier(ctx, supplierInput("mills@example.com"))
	require.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)
}

func TestIdentityService_SameEmailAcrossRoles(t *testing.T) {
	t.Parallel()

	svc, _ := createTestIdentityService(t)
	ctx := context.Background()

	// The same email is a distinct account per role collection.
	asClient, err := svc.RegisterClient(ctx, clientInput("shared@example.com"))
	require.NoError(t, err)
	asSupplier, err := svc.RegisterSupplier(ctx, supplierInput("shared@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, asClient.GeneratedID, asSupplier.GeneratedID)

	// The client's password resolves to the client account.
	logged, err := svc.Login(ctx, &usecase.LoginInput{Email: "shared@example.com", Password: "client-secret"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, logged.Role)
	assert.Equal(t, asClient.GeneratedID, logged.GeneratedID)

	// A mismatch in the clients collection does not abort the scan: the
	// supplier's password still resolves to the supplier account.
	logged, err = svc.Login(ctx, &usecase.LoginInput{Email: "shared@example.com", Password: "supplier-secret"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupplier, logged.Role)
	assert.Equal(t, asSupplier.GeneratedID, logged.GeneratedID)
}

func TestIdentityService_LoginFailures(t *testing.T) {
	t.Parallel()

	svc, _ := createTestIdentityService(t)
	ctx := context.Background()

	_, err := svc.RegisterClient(ctx, clientInput("amina@example.com"))
	require.NoError(t, err)

	// Wrong password and unknown email collapse into the same error, so
	// login responses do not reveal whether an account exists.
	_, err = svc.Login(ctx, &usecase.LoginInput{Email: "amina@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "client-secret"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_GetUserByID(t *testing.T) {
	t.Parallel()

	svc, _ := createTestIdentityService(t)
	ctx := context.Background()

	registered, err := svc.RegisterSupplier(ctx, supplierInput("mills@example.com"))
	require.NoError(t, err)

	user, err := svc.GetUserByID(ctx, registered.GeneratedID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupplier, user.Role)
	assert.Equal(t, "mills@example.com", user.Email)

	_, err = svc.GetUserByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
