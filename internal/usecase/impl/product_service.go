package impl

import (
	"context"
	"log/slog"
	"path"
	"time"

	"afritrade/internal/domain/entity"
	domainerrors "afritrade/internal/domain/errors"
	"afritrade/internal/domain/repository"
	"afritrade/internal/domain/service"
	"afritrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const productTagKey = "qr.png"

// productService implements the ProductUsecase interface. It coordinates the
// product document with its media blobs: upload-then-write on create,
// delete-then-cleanup on delete. The two stores share no transaction; the
// accepted partial-failure states are signalled through the event publisher
// so an external sweep can reconcile them.
type productService struct {
	productRepo repository.ProductRepository
	media       service.MediaStore
	tags        service.QRCodeService
	events      service.EventPublisher
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	media service.MediaStore,
	tags service.QRCodeService,
	events service.EventPublisher,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		media:       media,
		tags:        tags,
		events:      events,
		logger:      logger,
	}
}

// Create uploads the image, then writes the product document referencing its
// URL. The ordering guarantees a document never points at a nonexistent blob;
// the inverse orphan (blob without document) is tolerated and signalled.
// Each storage call is attempted exactly once.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*usecase.CreateProductOutput, error) {
	productID := uuid.New()
	prefix := entity.ProductMediaPrefix(productID)

	srv.logger.Info("Creating product",
		slog.String("product_id", productID.String()),
		slog.String("owner_id", input.OwnerID.String()),
	)

	imageKey := prefix + path.Base(input.ImageFilename)
	imageURL, err := srv.media.Upload(ctx, imageKey, input.ImageData, input.ImageContentType)
	if err != nil {
		srv.logger.Error("Image upload failed", "error", err, "key", imageKey)

		return nil, domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	// The share tag is a convenience asset; its failure never fails the listing.
	if tag, tagErr := srv.tags.GenerateProductTag(productID); tagErr != nil {
		srv.logger.Warn("Failed to generate product tag", "error", tagErr)
	} else if _, tagErr := srv.media.Upload(ctx, prefix+productTagKey, tag, "image/png"); tagErr != nil {
		srv.logger.Warn("Failed to upload product tag", "error", tagErr)
	}

	product := &entity.Product{
		ID:           productID,
		Name:         input.Name,
		Location:     input.Location,
		SupplierName: input.SupplierName,
		Description:  input.Description,
		ImageURL:     imageURL,
		OwnerID:      input.OwnerID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.logger.Error("Product document write failed after upload",
			"error", err,
			slog.String("product_id", productID.String()),
		)
		srv.publish(ctx, service.EventProductCreateOrphan, productID, map[string]string{
			"prefix": prefix,
		})

		return nil, domainerrors.ErrPersistenceFailed.WithDetails(err.Error())
	}

	srv.publish(ctx, service.EventProductCreated, productID, map[string]string{
		"owner_id": input.OwnerID.String(),
	})

	return &usecase.CreateProductOutput{ProductID: productID, ImageURL: imageURL}, nil
}

// Get fetches one product by id.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to fetch product")
	}

	return product, nil
}

// List returns every product.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListByOwner returns the owner's products; no matches is an empty slice.
func (srv *productService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by owner")
	}

	return products, nil
}

// Update merges the supplied fields into the product document.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) error {
	update := &entity.ProductUpdate{
		Name:         input.Name,
		Location:     input.Location,
		SupplierName: input.SupplierName,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
	}
	if update.IsEmpty() {
		return domainerrors.ErrEmptyProductUpdate.WrapMessage("product update rejected")
	}

	if err := srv.productRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product update failed")
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// Delete removes the document first, then every blob under the product's
// prefix. A cleanup failure after the document delete is downgraded: the
// caller sees success, the orphaned blobs are signalled for reconciliation.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	prefix := entity.ProductMediaPrefix(id)
	if deleted, err := srv.media.DeletePrefix(ctx, prefix); err != nil {
		srv.logger.Error("Blob cleanup failed after product delete",
			"error", err,
			slog.String("product_id", id.String()),
			slog.Int("deleted", deleted),
		)
		srv.publish(ctx, service.EventProductBlobsOrphaned, id, map[string]string{
			"prefix": prefix,
		})

		return nil
	}

	srv.publish(ctx, service.EventProductDeleted, id, nil)

	return nil
}

// publish emits a domain event best effort; publishing never fails the
// operation that triggered it.
func (srv *productService) publish(ctx context.Context, eventType string, subject uuid.UUID, attrs map[string]string) {
	event := &service.DomainEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		Subject:    subject.String(),
		Attributes: attrs,
	}

	if err := srv.events.PublishEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish event", "error", err, "event_type", eventType)
	}
}
