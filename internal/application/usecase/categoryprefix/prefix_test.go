package categoryprefix

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

func TestCreatePrefixUseCase_Execute(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")

	t.Run("normalizes the prefix before storing", func(t *testing.T) {
		prefixRepo := &fakePrefixRepo{}
		cache := &spyCache{}
		uc := NewCreatePrefixUseCase(prefixRepo, &fakeCategoryRepo{categories: []*entity.Category{produce}}, cache)

		output, err := uc.Execute(context.Background(), CreatePrefixInput{
			Prefix:     "  banana prata ",
			CategoryID: produce.ID,
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if output.Rule.Prefix.Prefix != "BANANA PRATA" {
			t.Errorf("stored prefix = %q, want BANANA PRATA", output.Rule.Prefix.Prefix)
		}
		if output.Rule.Category.ID != produce.ID {
			t.Errorf("rule category = %s, want %s", output.Rule.Category.ID, produce.ID)
		}
		if cache.invalidations != 1 {
			t.Errorf("cache invalidations = %d, want 1", cache.invalidations)
		}
	})

	t.Run("rejects a blank prefix", func(t *testing.T) {
		uc := NewCreatePrefixUseCase(&fakePrefixRepo{}, &fakeCategoryRepo{categories: []*entity.Category{produce}}, &spyCache{})

		_, err := uc.Execute(context.Background(), CreatePrefixInput{Prefix: "   ", CategoryID: produce.ID})
		if !errors.Is(err, domainerror.ErrBlankPrefix) {
			t.Errorf("err = %v, want ErrBlankPrefix", err)
		}
	})

	t.Run("rejects an oversized prefix", func(t *testing.T) {
		uc := NewCreatePrefixUseCase(&fakePrefixRepo{}, &fakeCategoryRepo{categories: []*entity.Category{produce}}, &spyCache{})

		_, err := uc.Execute(context.Background(), CreatePrefixInput{
			Prefix:     strings.Repeat("A", MaxPrefixLength+1),
			CategoryID: produce.ID,
		})
		if !errors.Is(err, domainerror.ErrPrefixTooLong) {
			t.Errorf("err = %v, want ErrPrefixTooLong", err)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		cache := &spyCache{}
		uc := NewCreatePrefixUseCase(&fakePrefixRepo{}, &fakeCategoryRepo{}, cache)

		_, err := uc.Execute(context.Background(), CreatePrefixInput{Prefix: "BANANA", CategoryID: uuid.New()})
		if !errors.Is(err, domainerror.ErrCategoryNotFoundForPrefix) {
			t.Errorf("err = %v, want ErrCategoryNotFoundForPrefix", err)
		}
		if cache.invalidations != 0 {
			t.Errorf("cache invalidated on a failed create")
		}
	})

	t.Run("allows duplicate prefixes", func(t *testing.T) {
		prefixRepo := &fakePrefixRepo{}
		uc := NewCreatePrefixUseCase(prefixRepo, &fakeCategoryRepo{categories: []*entity.Category{produce}}, &spyCache{})

		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(context.Background(), CreatePrefixInput{Prefix: "BANANA", CategoryID: produce.ID}); err != nil {
				t.Fatalf("Execute #%d: %v", i+1, err)
			}
		}
		if len(prefixRepo.rules) != 2 {
			t.Errorf("stored %d rules, want 2", len(prefixRepo.rules))
		}
	})
}

func TestUpdatePrefixUseCase_Execute(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")
	dairy := entity.NewCategory("LATICINIOS_E_OVOS", "Laticínios", "", "#f59e0b", "Milk")
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{produce, dairy}}

	t.Run("replaces prefix text and category", func(t *testing.T) {
		rule := entity.NewCategoryPrefix("BANANA", produce.ID)
		prefixRepo := &fakePrefixRepo{rules: []*entity.CategoryPrefix{rule}}
		cache := &spyCache{}
		uc := NewUpdatePrefixUseCase(prefixRepo, categoryRepo, cache)

		output, err := uc.Execute(context.Background(), UpdatePrefixInput{
			PrefixID:   rule.ID,
			Prefix:     " leite ",
			CategoryID: dairy.ID,
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if output.Rule.Prefix.Prefix != "LEITE" {
			t.Errorf("prefix = %q, want LEITE", output.Rule.Prefix.Prefix)
		}
		if output.Rule.Prefix.CategoryID != dairy.ID {
			t.Errorf("category = %s, want %s", output.Rule.Prefix.CategoryID, dairy.ID)
		}
		if cache.invalidations != 1 {
			t.Errorf("cache invalidations = %d, want 1", cache.invalidations)
		}
	})

	t.Run("keeps the creation time", func(t *testing.T) {
		rule := entity.NewCategoryPrefix("BANANA", produce.ID)
		created := rule.CreatedAt
		prefixRepo := &fakePrefixRepo{rules: []*entity.CategoryPrefix{rule}}
		uc := NewUpdatePrefixUseCase(prefixRepo, categoryRepo, &spyCache{})

		output, err := uc.Execute(context.Background(), UpdatePrefixInput{
			PrefixID:   rule.ID,
			Prefix:     "BANANA NANICA",
			CategoryID: produce.ID,
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !output.Rule.Prefix.CreatedAt.Equal(created) {
			t.Errorf("creation time changed on update")
		}
	})

	t.Run("fails for an unknown rule", func(t *testing.T) {
		uc := NewUpdatePrefixUseCase(&fakePrefixRepo{}, categoryRepo, &spyCache{})

		_, err := uc.Execute(context.Background(), UpdatePrefixInput{
			PrefixID:   uuid.New(),
			Prefix:     "LEITE",
			CategoryID: dairy.ID,
		})
		if !errors.Is(err, domainerror.ErrCategoryPrefixNotFound) {
			t.Errorf("err = %v, want ErrCategoryPrefixNotFound", err)
		}
	})
}

func TestDeletePrefixUseCase_Execute(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")

	t.Run("removes the rule and invalidates reports", func(t *testing.T) {
		rule := entity.NewCategoryPrefix("BANANA", produce.ID)
		prefixRepo := &fakePrefixRepo{rules: []*entity.CategoryPrefix{rule}}
		cache := &spyCache{}
		uc := NewDeletePrefixUseCase(prefixRepo, cache)

		output, err := uc.Execute(context.Background(), DeletePrefixInput{PrefixID: rule.ID})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !output.Success {
			t.Error("expected Success")
		}
		if len(prefixRepo.rules) != 0 {
			t.Errorf("%d rules remain, want 0", len(prefixRepo.rules))
		}
		if cache.invalidations != 1 {
			t.Errorf("cache invalidations = %d, want 1", cache.invalidations)
		}
	})

	t.Run("fails for an unknown rule", func(t *testing.T) {
		uc := NewDeletePrefixUseCase(&fakePrefixRepo{}, &spyCache{})

		_, err := uc.Execute(context.Background(), DeletePrefixInput{PrefixID: uuid.New()})
		if !errors.Is(err, domainerror.ErrCategoryPrefixNotFound) {
			t.Errorf("err = %v, want ErrCategoryPrefixNotFound", err)
		}
	})
}

func TestTestPrefixUseCase_Execute(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")
	rule := entity.NewCategoryPrefix("BANANA", produce.ID)
	prefixRepo := &fakePrefixRepo{
		rules:      []*entity.CategoryPrefix{rule},
		categories: map[uuid.UUID]*entity.Category{produce.ID: produce},
	}
	uc := NewTestPrefixUseCase(prefixRepo)

	t.Run("previews a match", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), TestPrefixInput{ProductName: "banana prata"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !output.Matched || output.Category == nil || output.Category.ID != produce.ID {
			t.Errorf("got (matched=%v, category=%v), want a produce match", output.Matched, output.Category)
		}
	})

	t.Run("previews a miss", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), TestPrefixInput{ProductName: "SABAO EM PO"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if output.Matched || output.Category != nil {
			t.Errorf("expected an uncategorized preview, got %+v", output)
		}
	})
}
