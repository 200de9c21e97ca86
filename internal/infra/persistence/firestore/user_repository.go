// Package firestore contains the concrete implementation of the persistence
// layer on Google Cloud Firestore. Every operation is scoped to a single
// document key or a single equality query; per-document atomicity is the only
// consistency guarantee relied upon.
package firestore

import (
	"context"

	"afritrade/internal/domain/entity"
	"afritrade/internal/domain/repository"
	"afritrade/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements repository.UserRepository on Firestore.
// Each role maps to its own collection; documents are keyed by email.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// Create persists a new user document at (role collection, email).
// Doc.Create fails atomically when the key is taken, which gives the
// create-or-fail duplicate semantics without a separate existence check.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := repo.client.Collection(user.Role.Collection()).Doc(user.Email)

	if _, err := doc.Create(ctx, model.UserDocumentFromEntity(user)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user document")
	}

	return nil
}

// FindByEmail fetches the document keyed by email within the role collection.
func (repo *userRepository) FindByEmail(ctx context.Context, role entity.Role, email string) (*entity.User, error) {
	snap, err := repo.client.Collection(role.Collection()).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user document")
	}

	return snapToUser(snap, role)
}

// FindByGeneratedID runs an equality query on the generatedId field within
// one role collection. Multiple matches are not expected (128-bit random ids);
// the first document wins.
func (repo *userRepository) FindByGeneratedID(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.User, error) {
	iter := repo.client.Collection(role.Collection()).
		Where(model.GeneratedIDField, "==", id.String()).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user by generated id")
	}

	return snapToUser(snap, role)
}

func snapToUser(snap *firestore.DocumentSnapshot, role entity.Role) (*entity.User, error) {
	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	user, err := doc.ToEntity(role)
	if err != nil {
		return nil, errors.Wrap(err, "malformed user document")
	}

	return user, nil
}
