package service

import (
	"context"
	"io"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/events"
	"github.com/spec-kit/venue-service/internal/identity"
	"github.com/spec-kit/venue-service/internal/repository"
)

type fakeIdentityStore struct {
	mu        sync.Mutex
	accounts  map[string]*domain.Account
	created   []identity.NewAccount
	deleted   []string
	disabled  []string
	nextID    string
	createErr error
	deleteErr error
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{accounts: map[string]*domain.Account{}, nextID: "acc-1"}
}

func (f *fakeIdentityStore) CreateAccount(ctx context.Context, acc identity.NewAccount) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, acc)
	account := &domain.Account{ID: f.nextID, Email: acc.Email, Confirmed: acc.Confirmed}
	f.accounts[account.ID] = account
	return account, nil
}

func (f *fakeIdentityStore) DeleteAccount(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeIdentityStore) SetDisabled(ctx context.Context, id string, disabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.Disabled = disabled
	f.disabled = append(f.disabled, id)
	return nil
}

func (f *fakeIdentityStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return account, nil
}

func (f *fakeIdentityStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeIdentityStore) VerifyPassword(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := f.GetByEmail(ctx, email)
	if err != nil {
		return nil, identity.ErrInvalidCredentials
	}
	return account, nil
}

type fakeProfileRepo struct {
	mu            sync.Mutex
	profiles      map[string]*domain.Profile
	provisioned   []string
	provisionErr  error
	setManagerErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) Provision(ctx context.Context, id string, write repository.ProfileWrite) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.provisionErr != nil {
		return nil, f.provisionErr
	}
	profile := &domain.Profile{
		ID:          id,
		Role:        write.Role,
		VenueID:     write.VenueID,
		FullName:    write.FullName,
		PhoneNumber: write.PhoneNumber,
	}
	f.profiles[id] = profile
	f.provisioned = append(f.provisioned, id)
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) SetManagerOf(ctx context.Context, id, venueID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setManagerErr != nil {
		return f.setManagerErr
	}
	profile, ok := f.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Role = domain.RoleManager
	profile.VenueID = &venueID
	return nil
}

func (f *fakeProfileRepo) List(ctx context.Context, filter repository.ProfileFilter) ([]domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Profile
	for _, profile := range f.profiles {
		if filter.VenueID != nil && (profile.VenueID == nil || *profile.VenueID != *filter.VenueID) {
			continue
		}
		if filter.Role != nil && profile.Role != *filter.Role {
			continue
		}
		result = append(result, *profile)
	}
	return result, nil
}

type fakeVenueRepo struct {
	mu              sync.Mutex
	venues          map[string]*domain.Venue
	setManagerErr   error
	setManagerCalls []string
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: map[string]*domain.Venue{}}
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *domain.Venue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if venue.ID == "" {
		venue.ID = "venue-" + venue.Name
	}
	copied := *venue
	f.venues[venue.ID] = &copied
	return nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue *domain.Venue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.venues[venue.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *venue
	f.venues[venue.ID] = &copied
	return nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.venues[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.venues, id)
	return nil
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	venue, ok := f.venues[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *venue
	return &copied, nil
}

func (f *fakeVenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Venue
	for _, venue := range f.venues {
		result = append(result, *venue)
	}
	return result, nil
}

func (f *fakeVenueRepo) SetManager(ctx context.Context, id, managerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setManagerCalls = append(f.setManagerCalls, id+":"+managerID)
	if f.setManagerErr != nil {
		return f.setManagerErr
	}
	venue, ok := f.venues[id]
	if !ok {
		return pgx.ErrNoRows
	}
	venue.ManagerID = &managerID
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*domain.Category{}}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category.ID == "" {
		category.ID = "cat-" + category.Name
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepo) ListByVenue(ctx context.Context, venueID string) ([]domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Category
	for _, category := range f.categories {
		if category.VenueID == venueID {
			result = append(result, *category)
		}
	}
	return result, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*domain.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if product.ID == "" {
		product.ID = "prod-" + product.Name
	}
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) ListByVenue(ctx context.Context, venueID string) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Product
	for _, product := range f.products {
		if product.VenueID == venueID {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Product
	for _, product := range f.products {
		if product.CategoryID != nil && *product.CategoryID == categoryID {
			result = append(result, *product)
		}
	}
	return result, nil
}

type fakeMediaStore struct {
	mu        sync.Mutex
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeMediaStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploaded = append(f.uploaded, key)
	return nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeMediaStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) published(typ events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var result []events.Event
	for _, event := range d.events {
		if event.Type == typ {
			result = append(result, event)
		}
	}
	return result
}

func strptr(s string) *string { return &s }
