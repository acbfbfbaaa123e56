package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// CategoryRepository implementación en memoria.
type CategoryRepository struct {
	s *Store
}

// NewCategoryRepository crea el repositorio.
func NewCategoryRepository(s *Store) *CategoryRepository {
	return &CategoryRepository{s: s}
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.categories {
		if other.Code == c.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepository) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range r.s.categories {
		if id != c.ID && other.Code == c.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) List(_ context.Context, status string, limit, offset int) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Category
	for _, c := range r.s.categories {
		if status != "" && c.Status != status {
			continue
		}
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *CategoryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, it := range r.s.items {
		if it.CategoryID == id {
			return domain.ErrDeleteBlocked
		}
	}
	delete(r.s.categories, id)
	return nil
}

// VendorRepository implementación en memoria.
type VendorRepository struct {
	s *Store
}

// NewVendorRepository crea el repositorio.
func NewVendorRepository(s *Store) *VendorRepository {
	return &VendorRepository{s: s}
}

var _ repository.VendorRepository = (*VendorRepository)(nil)

func (r *VendorRepository) Create(_ context.Context, v *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.vendors {
		if other.Email == v.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.vendors[v.ID] = *v
	return nil
}

func (r *VendorRepository) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.vendors[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VendorRepository) Update(_ context.Context, v *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.vendors[v.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range r.s.vendors {
		if id != v.ID && other.Email == v.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.vendors[v.ID] = *v
	return nil
}

func (r *VendorRepository) List(_ context.Context, status string, limit, offset int) ([]*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Vendor
	for _, v := range r.s.vendors {
		if status != "" && v.Status != status {
			continue
		}
		v := v
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *VendorRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.vendors[id]; !ok {
		return domain.ErrNotFound
	}
	for _, it := range r.s.items {
		if it.VendorID == id {
			return domain.ErrDeleteBlocked
		}
	}
	delete(r.s.vendors, id)
	return nil
}

// UserRepository implementación en memoria.
type UserRepository struct {
	s *Store
}

// NewUserRepository crea el repositorio.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return page(out, limit, offset), nil
}
