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

const ordersCollection = "orders"

// orderRepository implements repository.OrderRepository on Firestore.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// Create writes the order document at its generated id.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	doc := repo.client.Collection(ordersCollection).Doc(order.ID.String())

	if _, err := doc.Create(ctx, model.OrderDocumentFromEntity(order)); err != nil {
		return errors.Wrap(err, "failed to create order document")
	}

	return nil
}

// FindByID fetches an order by its document key.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	snap, err := repo.client.Collection(ordersCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order document")
	}

	return snapToOrder(snap, id)
}

// ListByBuyer runs an equality query on the buyer field. An empty result is a
// valid empty slice, never an error.
func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	iter := repo.client.Collection(ordersCollection).
		Where(model.BuyerIDField, "==", buyerID.String()).
		Documents(ctx)
	defer iter.Stop()

	orders := make([]*entity.Order, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate order documents")
		}

		id, err := uuid.Parse(snap.Ref.ID)
		if err != nil {
			return nil, errors.Wrap(err, "malformed order document key")
		}

		order, err := snapToOrder(snap, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateStatus overwrites only the status field via a field-path update.
// Firestore's Update fails with NotFound when the document key is absent.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, orderStatus entity.OrderStatus) error {
	doc := repo.client.Collection(ordersCollection).Doc(id.String())

	_, err := doc.Update(ctx, []firestore.Update{
		{Path: model.StatusField, Value: orderStatus.String()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

func snapToOrder(snap *firestore.DocumentSnapshot, id uuid.UUID) (*entity.Order, error) {
	var doc model.OrderDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode order document")
	}

	order, err := doc.ToEntity(id)
	if err != nil {
		return nil, errors.Wrap(err, "malformed order document")
	}

	return order, nil
}
