package categoryprefix

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// fakePrefixRepo keeps prefix rules in memory, in insertion order.
type fakePrefixRepo struct {
	rules      []*entity.CategoryPrefix
	categories map[uuid.UUID]*entity.Category
}

func (f *fakePrefixRepo) Create(_ context.Context, prefix *entity.CategoryPrefix) error {
	f.rules = append(f.rules, prefix)
	return nil
}

func (f *fakePrefixRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CategoryPrefix, error) {
	for _, r := range f.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domainerror.ErrCategoryPrefixNotFound
}

func (f *fakePrefixRepo) FindAll(_ context.Context) ([]*entity.CategoryPrefix, error) {
	return f.rules, nil
}

func (f *fakePrefixRepo) FindAllWithCategories(_ context.Context) ([]*entity.CategoryPrefixWithCategory, error) {
	out := make([]*entity.CategoryPrefixWithCategory, 0, len(f.rules))
	for _, r := range f.rules {
		out = append(out, &entity.CategoryPrefixWithCategory{
			Prefix:   r,
			Category: f.categories[r.CategoryID],
		})
	}
	return out, nil
}

func (f *fakePrefixRepo) Update(_ context.Context, prefix *entity.CategoryPrefix) error {
	for i, r := range f.rules {
		if r.ID == prefix.ID {
			f.rules[i] = prefix
			return nil
		}
	}
	return domainerror.ErrCategoryPrefixNotFound
}

func (f *fakePrefixRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.rules {
		if r.ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCategoryPrefixNotFound
}

// fakeCategoryRepo serves a fixed category set.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindByCode(_ context.Context, code string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) SeedDefaults(_ context.Context, categories []*entity.Category) error {
	if len(f.categories) == 0 {
		f.categories = categories
	}
	return nil
}

// spyCache records invalidations.
type spyCache struct {
	invalidations int
}

func (s *spyCache) Get(context.Context, string) ([]byte, bool)                { return nil, false }
func (s *spyCache) Set(context.Context, string, []byte, time.Duration) error  { return nil }
func (s *spyCache) InvalidateAll(context.Context) error {
	s.invalidations++
	return nil
}
