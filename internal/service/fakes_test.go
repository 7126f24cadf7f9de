package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"fragrance_finder/internal/domain"
)

// memUsers is an in-memory UserStore with a unique email constraint
type memUsers struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*domain.User

	listFn func(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uint]*domain.User{}}
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == user.Email {
			return domain.Conflict("user with this email already exists")
		}
	}
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.byID[user.ID] = &cp
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.NotFound("user not found")
}

func (m *memUsers) FindByID(_ context.Context, id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.NotFound("user not found")
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) UpdateRole(_ context.Context, id uint, role domain.Role) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.NotFound("user not found")
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (m *memUsers) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, offset, limit)
	}
	return nil, 0, nil
}

// fakeFragrances is a FragranceStore with func fields and a call counter
type fakeFragrances struct {
	mu    sync.Mutex
	items map[uint]domain.Fragrance
	calls map[string]int

	createFn func(ctx context.Context, f *domain.Fragrance) error
}

func newFakeFragrances(items ...domain.Fragrance) *fakeFragrances {
	f := &fakeFragrances{items: map[uint]domain.Fragrance{}, calls: map[string]int{}}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

func (f *fakeFragrances) FindByID(_ context.Context, id uint) (*domain.Fragrance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["FindByID"]++
	it, ok := f.items[id]
	if !ok {
		return nil, domain.NotFound("fragrance not found")
	}
	return &it, nil
}

func (f *fakeFragrances) FindByIDs(_ context.Context, ids []uint) ([]domain.Fragrance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["FindByIDs"]++
	var out []domain.Fragrance
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			out = append(out, it)
		}
	}
	// Storage order is not the caller's order
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFragrances) FindBySlug(_ context.Context, slug string) (*domain.Fragrance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["FindBySlug"]++
	for _, it := range f.items {
		if it.Slug == slug {
			return &it, nil
		}
	}
	return nil, domain.NotFound("fragrance not found")
}

func (f *fakeFragrances) List(_ context.Context) ([]domain.Fragrance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["List"]++
	out := make([]domain.Fragrance, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFragrances) Create(ctx context.Context, it *domain.Fragrance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Create"]++
	if f.createFn != nil {
		return f.createFn(ctx, it)
	}
	it.ID = uint(len(f.items) + 1)
	f.items[it.ID] = *it
	return nil
}

func (f *fakeFragrances) DeleteMany(_ context.Context, ids []uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["DeleteMany"]++
	var n int64
	for _, id := range ids {
		if _, ok := f.items[id]; ok {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

// memWishlist is an in-memory WishlistStore; the mutex plays the role of the unique index
type memWishlist struct {
	mu      sync.Mutex
	nextID  uint
	entries []domain.WishlistEntry
	clock   time.Time
	inserts int
}

func newMemWishlist() *memWishlist {
	return &memWishlist{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memWishlist) Insert(_ context.Context, userID, fragranceID uint) (*domain.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++
	for _, e := range m.entries {
		if e.UserID == userID && e.FragranceID == fragranceID {
			return nil, domain.Conflict("fragrance already in wishlist")
		}
	}
	m.nextID++
	m.clock = m.clock.Add(time.Second)
	e := domain.WishlistEntry{ID: m.nextID, UserID: userID, FragranceID: fragranceID, CreatedAt: m.clock}
	m.entries = append(m.entries, e)
	return &e, nil
}

func (m *memWishlist) Delete(_ context.Context, userID, fragranceID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.UserID == userID && e.FragranceID == fragranceID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.NotFound("fragrance not found in wishlist")
}

func (m *memWishlist) ListByUser(_ context.Context, userID uint) ([]domain.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.WishlistEntry
	for i := len(m.entries) - 1; i >= 0; i-- { // Newest first
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *memWishlist) Exists(_ context.Context, userID, fragranceID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID == userID && e.FragranceID == fragranceID {
			return true, nil
		}
	}
	return false, nil
}

// fakeTokens mints predictable tokens
type fakeTokens struct {
	issueFn func(userID uint, role domain.Role) (string, error)
}

func (f fakeTokens) Issue(userID uint, role domain.Role) (string, error) {
	if f.issueFn != nil {
		return f.issueFn(userID, role)
	}
	return "token-" + role.String(), nil
}
