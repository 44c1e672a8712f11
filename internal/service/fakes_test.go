package service

import (
	"context"
	"fmt"

	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/parser"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*domain.Product
	txWrites int
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[primitive.ObjectID]*domain.Product)}
	for _, product := range products {
		if product.ID.IsZero() {
			product.ID = primitive.NewObjectID()
		}
		r.products[product.ID] = product
	}
	return r
}

func (r *fakeProductRepo) Upsert(ctx context.Context, product *domain.Product) error {
	if inTransaction(ctx) {
		r.txWrites++
	}
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	var found []domain.Product
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			found = append(found, *product)
		}
	}
	return found, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var all []domain.Product
	for _, product := range r.products {
		all = append(all, *product)
	}
	return all, nil
}

type fakeOrderRepo struct {
	created    []*domain.Order
	unfinished []domain.Order
	assigned   map[primitive.ObjectID]primitive.ObjectID
	statuses   map[primitive.ObjectID]domain.OrderStatus
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	copied := *order
	r.created = append(r.created, &copied)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	for _, order := range r.created {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeOrderRepo) ListUnfinished(_ context.Context) ([]domain.Order, error) {
	return r.unfinished, nil
}

func (r *fakeOrderRepo) AssignRestaurant(_ context.Context, id, restaurantID primitive.ObjectID) error {
	if r.assigned == nil {
		r.assigned = make(map[primitive.ObjectID]primitive.ObjectID)
	}
	r.assigned[id] = restaurantID
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.OrderStatus) error {
	if r.statuses == nil {
		r.statuses = make(map[primitive.ObjectID]domain.OrderStatus)
	}
	r.statuses[id] = status
	return nil
}

type fakeBroker struct {
	published  map[string][][]byte
	publishErr error
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{published: make(map[string][][]byte)}
}

func (b *fakeBroker) Publish(_ context.Context, queueName string, message []byte) error {
	if b.publishErr != nil {
		return b.publishErr
	}
	b.published[queueName] = append(b.published[queueName], message)
	return nil
}

func (b *fakeBroker) Subscribe(_ context.Context, _ string, _ func(context.Context, []byte) error) error {
	return nil
}

func (b *fakeBroker) Ping(_ context.Context) error { return nil }

func (b *fakeBroker) Close() error { return nil }

// txMarkerKey marks contexts handed out by fakeTxRunner so repo fakes can
// tell transactional writes from plain ones.
type txMarkerKey struct{}

func inTransaction(ctx context.Context) bool {
	marked, _ := ctx.Value(txMarkerKey{}).(bool)
	return marked
}

type fakeTxRunner struct {
	calls int
	err   error
}

func (r *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	return fn(context.WithValue(ctx, txMarkerKey{}, true))
}

type fakeImportTaskRepo struct {
	tasks        map[primitive.ObjectID]*domain.ImportTask
	completeInTx bool
	completeErr  error
}

func newFakeImportTaskRepo(tasks ...*domain.ImportTask) *fakeImportTaskRepo {
	r := &fakeImportTaskRepo{tasks: make(map[primitive.ObjectID]*domain.ImportTask)}
	for _, task := range tasks {
		if task.ID.IsZero() {
			task.ID = primitive.NewObjectID()
		}
		r.tasks[task.ID] = task
	}
	return r
}

func (r *fakeImportTaskRepo) Create(_ context.Context, task *domain.ImportTask) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeImportTaskRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("import task: %w", repo.ErrNotFound)
	}
	return task, nil
}

func (r *fakeImportTaskRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	if task, ok := r.tasks[id]; ok {
		task.Status = status
		task.ErrorMessage = errorMsg
	}
	return nil
}

func (r *fakeImportTaskRepo) Complete(ctx context.Context, id primitive.ObjectID, products, categories int) error {
	if r.completeErr != nil {
		return r.completeErr
	}
	r.completeInTx = inTransaction(ctx)
	if task, ok := r.tasks[id]; ok {
		task.Status = domain.ImportStatusCompleted
		task.Products = products
		task.Categories = categories
	}
	return nil
}

func (r *fakeImportTaskRepo) IncrementRetryCount(_ context.Context, id primitive.ObjectID) error {
	if task, ok := r.tasks[id]; ok {
		task.RetryCount++
	}
	return nil
}

type fakeCatalogParser struct {
	catalog *parser.ParsedCatalog
	err     error
}

func (p *fakeCatalogParser) ParseCatalog(_ context.Context, _ string) (*parser.ParsedCatalog, error) {
	return p.catalog, p.err
}

type fakeAddressRepo struct {
	rows map[string]*domain.Address
}

func newFakeAddressRepo(rows ...*domain.Address) *fakeAddressRepo {
	r := &fakeAddressRepo{rows: make(map[string]*domain.Address)}
	for _, row := range rows {
		r.rows[row.Address] = row
	}
	return r
}

func (r *fakeAddressRepo) GetByAddress(_ context.Context, address string) (*domain.Address, error) {
	row, ok := r.rows[address]
	if !ok {
		return nil, fmt.Errorf("address: %w", repo.ErrNotFound)
	}
	return row, nil
}

func (r *fakeAddressRepo) GetByAddresses(_ context.Context, addresses []string) ([]domain.Address, error) {
	var found []domain.Address
	for _, address := range addresses {
		if row, ok := r.rows[address]; ok {
			found = append(found, *row)
		}
	}
	return found, nil
}

func (r *fakeAddressRepo) Upsert(_ context.Context, address *domain.Address) error {
	copied := *address
	r.rows[address.Address] = &copied
	return nil
}

// fakeGeocoder serves points from a map and counts lookups; addresses not in
// the map geocode to nothing.
type fakeGeocoder struct {
	points map[string]domain.Coordinates
	err    error
	calls  int
}

func (g *fakeGeocoder) Geocode(_ context.Context, address string) (float64, float64, bool, error) {
	g.calls++
	if g.err != nil {
		return 0, 0, false, g.err
	}
	coords, ok := g.points[address]
	if !ok {
		return 0, 0, false, nil
	}
	return coords.Latitude, coords.Longitude, true, nil
}

type fakeRestaurantRepo struct {
	restaurants []domain.Restaurant
}

func (r *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	if restaurant.ID.IsZero() {
		restaurant.ID = primitive.NewObjectID()
	}
	r.restaurants = append(r.restaurants, *restaurant)
	return nil
}

func (r *fakeRestaurantRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Restaurant, error) {
	for i := range r.restaurants {
		if r.restaurants[i].ID == id {
			return &r.restaurants[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeRestaurantRepo) List(_ context.Context) ([]domain.Restaurant, error) {
	return r.restaurants, nil
}

type fakeMenuItemRepo struct {
	items []domain.MenuItem
}

func (r *fakeMenuItemRepo) Set(_ context.Context, item *domain.MenuItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeMenuItemRepo) List(_ context.Context) ([]domain.MenuItem, error) {
	return r.items, nil
}

func (r *fakeMenuItemRepo) ListAvailable(_ context.Context) ([]domain.MenuItem, error) {
	var available []domain.MenuItem
	for _, item := range r.items {
		if item.Availability {
			available = append(available, item)
		}
	}
	return available, nil
}

type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]*domain.ProductCategory
	txWrites   int
}

func newFakeCategoryRepo(categories ...*domain.ProductCategory) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[primitive.ObjectID]*domain.ProductCategory)}
	for _, category := range categories {
		if category.ID.IsZero() {
			category.ID = primitive.NewObjectID()
		}
		r.categories[category.ID] = category
	}
	return r
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ProductCategory, error) {
	if category, ok := r.categories[id]; ok {
		return category, nil
	}
	return nil, fmt.Errorf("category: %w", repo.ErrNotFound)
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*domain.ProductCategory, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, fmt.Errorf("category: %w", repo.ErrNotFound)
}

func (r *fakeCategoryRepo) Upsert(ctx context.Context, category *domain.ProductCategory) error {
	if inTransaction(ctx) {
		r.txWrites++
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.ProductCategory, error) {
	var all []domain.ProductCategory
	for _, category := range r.categories {
		all = append(all, *category)
	}
	return all, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repo.ErrNotFound)
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if user, ok := r.users[username]; ok {
		return user, nil
	}
	return nil, fmt.Errorf("user: %w", repo.ErrNotFound)
}
