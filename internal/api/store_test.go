package api

import (
	"context"
	"sync"

	"fragrance_finder/internal/domain"
)

// In-memory stores backing the real services in handler tests

type memUserStore struct {
	mu    sync.Mutex
	users []domain.User
}

func (m *memUserStore) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.Conflict("user with this email already exists")
		}
	}
	user.ID = uint(len(m.users) + 1)
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.NotFound("user not found")
}

func (m *memUserStore) FindByID(_ context.Context, id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.NotFound("user not found")
}

func (m *memUserStore) UpdateRole(_ context.Context, id uint, role domain.Role) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = role
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, domain.NotFound("user not found")
}

func (m *memUserStore) List(_ context.Context, offset, limit int) ([]domain.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := int64(len(m.users))
	if offset >= len(m.users) {
		return []domain.User{}, total, nil
	}
	end := min(offset+limit, len(m.users))
	return append([]domain.User(nil), m.users[offset:end]...), total, nil
}

type memFragranceStore struct {
	mu    sync.Mutex
	items []domain.Fragrance
}

func (m *memFragranceStore) FindByID(_ context.Context, id uint) (*domain.Fragrance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, domain.NotFound("fragrance not found")
}

func (m *memFragranceStore) FindByIDs(_ context.Context, ids []uint) ([]domain.Fragrance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Fragrance
	for _, it := range m.items {
		for _, id := range ids {
			if it.ID == id {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (m *memFragranceStore) FindBySlug(_ context.Context, slug string) (*domain.Fragrance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.Slug == slug {
			return &it, nil
		}
	}
	return nil, domain.NotFound("fragrance not found")
}

func (m *memFragranceStore) List(_ context.Context) ([]domain.Fragrance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Fragrance(nil), m.items...), nil
}

func (m *memFragranceStore) Create(_ context.Context, f *domain.Fragrance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.Slug == f.Slug || (it.Brand == f.Brand && it.Name == f.Name) {
			return domain.Conflict("fragrance already exists")
		}
	}
	f.ID = uint(len(m.items) + 100)
	m.items = append(m.items, *f)
	return nil
}

func (m *memFragranceStore) DeleteMany(_ context.Context, ids []uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	kept := m.items[:0]
	for _, it := range m.items {
		deleted := false
		for _, id := range ids {
			if it.ID == id {
				deleted = true
			}
		}
		if deleted {
			n++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return n, nil
}

type memWishlistStore struct {
	mu      sync.Mutex
	entries []domain.WishlistEntry
	calls   int
}

func (m *memWishlistStore) Insert(_ context.Context, userID, fragranceID uint) (*domain.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, e := range m.entries {
		if e.UserID == userID && e.FragranceID == fragranceID {
			return nil, domain.Conflict("fragrance already in wishlist")
		}
	}
	e := domain.WishlistEntry{ID: uint(len(m.entries) + 1), UserID: userID, FragranceID: fragranceID}
	m.entries = append(m.entries, e)
	return &e, nil
}

func (m *memWishlistStore) Delete(_ context.Context, userID, fragranceID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for i, e := range m.entries {
		if e.UserID == userID && e.FragranceID == fragranceID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.NotFound("fragrance not found in wishlist")
}

func (m *memWishlistStore) ListByUser(_ context.Context, userID uint) ([]domain.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	var out []domain.WishlistEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *memWishlistStore) Exists(_ context.Context, userID, fragranceID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, e := range m.entries {
		if e.UserID == userID && e.FragranceID == fragranceID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memWishlistStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
