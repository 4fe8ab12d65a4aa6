package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// fakeReceiptRepo serves receipts from memory.
type fakeReceiptRepo struct {
	receipts []*entity.Receipt
}

func (f *fakeReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	f.receipts = append(f.receipts, receipt)
	return nil
}

func (f *fakeReceiptRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	for _, r := range f.receipts {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domainerror.ErrReceiptNotFound
}

func (f *fakeReceiptRepo) FindAll(_ context.Context) ([]*entity.Receipt, error) {
	return f.receipts, nil
}

func (f *fakeReceiptRepo) FindByMonth(_ context.Context, year, monthIndex int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range f.receipts {
		if !r.HasValidIssueDate() || InMonth(r.IssuedAt, year, monthIndex) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReceiptRepo) ExistsByAccessKey(_ context.Context, accessKey string) (bool, error) {
	for _, r := range f.receipts {
		if r.AccessKey == accessKey {
			return true, nil
		}
	}
	return false, nil
}

// fakePrefixRepo serves prefix rules with their categories from memory.
type fakePrefixRepo struct {
	rules []*entity.CategoryPrefixWithCategory
}

func (f *fakePrefixRepo) Create(_ context.Context, prefix *entity.CategoryPrefix) error {
	f.rules = append(f.rules, &entity.CategoryPrefixWithCategory{Prefix: prefix})
	return nil
}

func (f *fakePrefixRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CategoryPrefix, error) {
	for _, r := range f.rules {
		if r.Prefix.ID == id {
			return r.Prefix, nil
		}
	}
	return nil, domainerror.ErrCategoryPrefixNotFound
}

func (f *fakePrefixRepo) FindAll(_ context.Context) ([]*entity.CategoryPrefix, error) {
	out := make([]*entity.CategoryPrefix, 0, len(f.rules))
	for _, r := range f.rules {
		out = append(out, r.Prefix)
	}
	return out, nil
}

func (f *fakePrefixRepo) FindAllWithCategories(_ context.Context) ([]*entity.CategoryPrefixWithCategory, error) {
	return f.rules, nil
}

func (f *fakePrefixRepo) Update(_ context.Context, prefix *entity.CategoryPrefix) error {
	for _, r := range f.rules {
		if r.Prefix.ID == prefix.ID {
			r.Prefix = prefix
			return nil
		}
	}
	return domainerror.ErrCategoryPrefixNotFound
}

func (f *fakePrefixRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.rules {
		if r.Prefix.ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCategoryPrefixNotFound
}

// fakeCategoryRepo serves categories from memory.
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

// noopCache always misses and never stores.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool)                 { return nil, false }
func (noopCache) Set(context.Context, string, []byte, time.Duration) error  { return nil }
func (noopCache) InvalidateAll(context.Context) error                       { return nil }
