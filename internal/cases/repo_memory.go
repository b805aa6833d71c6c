package cases

import (
	"context"
	"sort"
	"sync"
)

// OwnerLookup resolves owner identity for populated responses. The users
// memory repo satisfies this in dev mode.
type OwnerLookup interface {
	LookupOwner(ctx context.Context, userID string) (name, email string, err error)
}

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	data   map[string]Case
	owners OwnerLookup
}

// NewMemoryRepo constructs a MemoryRepo. owners may be nil, in which case
// owner identity is left empty.
func NewMemoryRepo(owners OwnerLookup) *MemoryRepo {
	return &MemoryRepo{
		data:   make(map[string]Case),
		owners: owners,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, c Case) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[c.ID] = c
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Case, error) {
	if err := ctx.Err(); err != nil {
		return Case{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.data[id]
	if !ok {
		return Case{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) GetWithOwner(ctx context.Context, id string) (CaseWithOwner, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return CaseWithOwner{}, err
	}
	return r.withOwner(ctx, c), nil
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]CaseWithOwner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	all := make([]Case, 0, len(r.data))
	for _, c := range r.data {
		all = append(all, c)
	}
	r.mu.RUnlock()

	return r.sorted(ctx, all), nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]CaseWithOwner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var own []Case
	for _, c := range r.data {
		if c.UserID == userID {
			own = append(own, c)
		}
	}
	r.mu.RUnlock()

	return r.sorted(ctx, own), nil
}

func (r *MemoryRepo) Update(ctx context.Context, c Case) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[c.ID]; !ok {
		return ErrNotFound
	}
	r.data[c.ID] = c
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *MemoryRepo) OwnerOf(ctx context.Context, id string) (string, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return c.UserID, nil
}

func (r *MemoryRepo) sorted(ctx context.Context, list []Case) []CaseWithOwner {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	out := make([]CaseWithOwner, 0, len(list))
	for _, c := range list {
		out = append(out, r.withOwner(ctx, c))
	}
	return out
}

func (r *MemoryRepo) withOwner(ctx context.Context, c Case) CaseWithOwner {
	cw := CaseWithOwner{Case: c}
	if r.owners != nil {
		if name, email, err := r.owners.LookupOwner(ctx, c.UserID); err == nil {
			cw.OwnerName = name
			cw.OwnerEmail = email
		}
	}
	return cw
}

var _ Repo = (*MemoryRepo)(nil)
