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

const productsCollection = "products"

// productRepository implements repository.ProductRepository on Firestore.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// Create writes the product document at its generated id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	doc := repo.client.Collection(productsCollection).Doc(product.ID.String())

	if _, err := doc.Create(ctx, model.ProductDocumentFromEntity(product)); err != nil {
		return errors.Wrap(err, "failed to create product document")
	}

	return nil
}

// FindByID fetches a product by its document key.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	snap, err := repo.client.Collection(productsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product document")
	}

	return snapToProduct(snap, id)
}

// ListAll streams every product document.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.collect(repo.client.Collection(productsCollection).Documents(ctx))
}

// ListByOwner runs an equality query on the owner field. An empty result is a
// valid empty slice, never an error.
func (repo *productRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	iter := repo.client.Collection(productsCollection).
		Where(model.OwnerIDField, "==", ownerID.String()).
		Documents(ctx)

	return repo.collect(iter)
}

// Update applies a field-path merge of the supplied fields only. Firestore's
// Update fails with NotFound when the document key is absent.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, update *entity.ProductUpdate) error {
	var updates []firestore.Update
	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: model.ProductNameField, Value: *update.Name})
	}
	if update.Location != nil {
		updates = append(updates, firestore.Update{Path: model.LocationField, Value: *update.Location})
	}
	if update.SupplierName != nil {
		updates = append(updates, firestore.Update{Path: model.SupplierNameField, Value: *update.SupplierName})
	}
	if update.Description != nil {
		updates = append(updates, firestore.Update{Path: model.DescriptionField, Value: *update.Description})
	}
	if update.ImageURL != nil {
		updates = append(updates, firestore.Update{Path: model.ImageURLField, Value: *update.ImageURL})
	}

	doc := repo.client.Collection(productsCollection).Doc(id.String())
	if _, err := doc.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product document")
	}

	return nil
}

// Delete removes the product document. Firestore deletes are no-ops on absent
// keys, so existence is checked first to surface NotFound faithfully.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	doc := repo.client.Collection(productsCollection).Doc(id.String())

	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to check product document")
	}

	if _, err := doc.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete product document")
	}

	return nil
}

func (repo *productRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Product, error) {
	defer iter.Stop()

	products := make([]*entity.Product, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate product documents")
		}

		id, err := uuid.Parse(snap.Ref.ID)
		if err != nil {
			return nil, errors.Wrap(err, "malformed product document key")
		}

		product, err := snapToProduct(snap, id)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func snapToProduct(snap *firestore.DocumentSnapshot, id uuid.UUID) (*entity.Product, error) {
	var doc model.ProductDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	product, err := doc.ToEntity(id)
	if err != nil {
		return nil, errors.Wrap(err, "malformed product document")
	}

	return product, nil
}
