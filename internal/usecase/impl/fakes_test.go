package impl

import (
	"context"
	"sync"

	"afritrade/internal/domain/entity"
	"afritrade/internal/domain/repository"
	"afritrade/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory repository fakes. They keep the document-store contract honest:
// per-key writes, equality-filtered scans, merge-only partial updates, and
// the same sentinel errors the Firestore implementations return.

type fakeUserRepo struct {
	mu          sync.Mutex
	collections map[entity.Role]map[string]*entity.User
	createErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{collections: make(map[entity.Role]map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	coll := r.collections[user.Role]
	if coll == nil {
		coll = make(map[string]*entity.User)
		r.collections[user.Role] = coll
	}
	if _, exists := coll[user.Email]; exists {
		return repository.ErrUserAlreadyExists
	}

	clone := *user
	coll[user.Email] = &clone

	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, role entity.Role, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.collections[role][email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByGeneratedID(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.collections[role] {
		if user.GeneratedID == id {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

type fakeProductRepo struct {
	mu        sync.Mutex
	docs      map[uuid.UUID]*entity.Product
	createErr error
	deleteErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{docs: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	clone := *product
	r.docs[product.ID] = &clone

	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	clone := *product

	return &clone, nil
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]*entity.Product, 0, len(r.docs))
	for _, product := range r.docs {
		clone := *product
		products = append(products, &clone)
	}

	return products, nil
}

func (r *fakeProductRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]*entity.Product, 0)
	for _, product := range r.docs {
		if product.OwnerID == ownerID {
			clone := *product
			products = append(products, &clone)
		}
	}

	return products, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id uuid.UUID, update *entity.ProductUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.docs[id]
	if !ok {
		return repository.ErrProductNotFound
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Location != nil {
		product.Location = *update.Location
	}
	if update.SupplierName != nil {
		product.SupplierName = *update.SupplierName
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}

	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return repository.ErrProductNotFound
	}
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.docs, id)

	return nil
}

type fakeOrderRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{docs: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *order
	r.docs[order.ID] = &clone

	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	clone := *order

	return &clone, nil
}

func (r *fakeOrderRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]*entity.Order, 0)
	for _, order := range r.docs {
		if order.BuyerID == buyerID {
			clone := *order
			orders = append(orders, &clone)
		}
	}

	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.docs[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status

	return nil
}

// capturingPublisher records every published event for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []*service.DomainEvent
}

func (p *capturingPublisher) PublishEvent(ctx context.Context, event *service.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) byType(eventType string) []*service.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	matched := make([]*service.DomainEvent, 0)
	for _, event := range p.events {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}

	return matched
}
