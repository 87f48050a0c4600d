package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepository_Create(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Tag{Name: "Tech", Slug: "tech"}))

	err := repo.Create(ctx, &models.Tag{Name: "Technology", Slug: "tech"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, "Tag slug already exists", appErr.Message)
}

func TestTagRepository_List(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	mustTag(t, db, "Zebra", "zebra")
	mustTag(t, db, "Apple", "apple")
	mustTag(t, db, "Mango", "mango")

	tags, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "Apple", tags[0].Name)
	assert.Equal(t, "Zebra", tags[2].Name)
}

func TestTagRepository_GetByIDs(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tech := mustTag(t, db, "Tech", "tech")

	t.Run("unknown ids are skipped", func(t *testing.T) {
		tags, err := repo.GetByIDs(ctx, []uint{tech.ID, 999})
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "tech", tags[0].Slug)
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		tags, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, tags)
	})
}

func TestTagRepository_UpdateFields(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tech := mustTag(t, db, "Tech", "tech")
	mustTag(t, db, "Travel", "travel")

	t.Run("rename keeps slug", func(t *testing.T) {
		tag, err := repo.UpdateFields(ctx, tech.ID, map[string]any{"name": "Technology"})
		require.NoError(t, err)
		assert.Equal(t, "Technology", tag.Name)
		assert.Equal(t, "tech", tag.Slug)
	})

	t.Run("slug collision", func(t *testing.T) {
		_, err := repo.UpdateFields(ctx, tech.ID, map[string]any{"slug": "travel"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Tag slug already exists", appErr.Message)
	})

	t.Run("missing tag", func(t *testing.T) {
		_, err := repo.UpdateFields(ctx, 999, map[string]any{"name": "Ghost"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestTagRepository_Delete(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tech := mustTag(t, db, "Tech", "tech")

	require.NoError(t, repo.Delete(ctx, tech.ID))

	err := repo.Delete(ctx, tech.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
