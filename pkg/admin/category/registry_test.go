// FILE: pkg/admin/category/registry_test.go
package category

import (
	"context"
	"fmt"
	"testing"

	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/pkg/apperrors"
	"ai-character-admin-be/internal/repository/unitofwork"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestUow(t *testing.T) (unitofwork.UnitOfWork, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:category_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Category{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return unitofwork.NewUnitOfWork(db), db
}

func seedCategories(t *testing.T, db *gorm.DB, names ...string) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, len(names))
	for i, name := range names {
		c := model.Category{Id: uuid.New(), Name: name, DisplayOrder: i + 1}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed category %s: %v", name, err)
		}
		ids = append(ids, c.Id)
	}
	return ids
}

func orderOf(t *testing.T, uow unitofwork.UnitOfWork) []string {
	t.Helper()
	categories, err := uow.CategoryRepository().FindAll(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

func TestReorder_MovesAndRepacks(t *testing.T) {
	uow, db := newTestUow(t)
	registry := NewRegistry()
	ids := seedCategories(t, db, "A", "B", "C", "D")

	// Move D to the front.
	resequenced, err := registry.Reorder(context.Background(), uow, ids[3], 1)
	assert.NoError(t, err)
	assert.Len(t, resequenced, 4)

	assert.Equal(t, []string{"D", "A", "B", "C"}, orderOf(t, uow))

	// Orders are exactly 1..N after the move.
	categories, err := uow.CategoryRepository().FindAll(context.Background())
	assert.NoError(t, err)
	for i, c := range categories {
		assert.Equal(t, i+1, c.DisplayOrder)
	}
}

func TestReorder_MiddlePreservesRelativeOrder(t *testing.T) {
	uow, db := newTestUow(t)
	registry := NewRegistry()
	ids := seedCategories(t, db, "A", "B", "C", "D")

	_, err := registry.Reorder(context.Background(), uow, ids[0], 3)
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A", "D"}, orderOf(t, uow))
}

func TestReorder_RejectsOutOfRange(t *testing.T) {
	uow, db := newTestUow(t)
	registry := NewRegistry()
	ids := seedCategories(t, db, "A", "B")

	_, err := registry.Reorder(context.Background(), uow, ids[0], 0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = registry.Reorder(context.Background(), uow, ids[0], 3)
	assert.True(t, apperrors.IsValidation(err))

	_, err = registry.Reorder(context.Background(), uow, uuid.New(), 1)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReorder_SamePositionIsNoOp(t *testing.T) {
	uow, db := newTestUow(t)
	registry := NewRegistry()
	ids := seedCategories(t, db, "A", "B", "C")

	_, err := registry.Reorder(context.Background(), uow, ids[1], 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, orderOf(t, uow))
}

func TestNormalize_ClosesGapsAfterDelete(t *testing.T) {
	uow, db := newTestUow(t)
	registry := NewRegistry()
	ids := seedCategories(t, db, "A", "B", "C", "D")

	assert.NoError(t, uow.CategoryRepository().Delete(context.Background(), ids[1]))

	_, err := registry.Normalize(context.Background(), uow)
	assert.NoError(t, err)

	categories, err := uow.CategoryRepository().FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 3)
	for i, c := range categories {
		assert.Equal(t, i+1, c.DisplayOrder)
	}
	assert.Equal(t, []string{"A", "C", "D"}, orderOf(t, uow))
}
