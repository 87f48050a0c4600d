package repository

import (
	"context"
	"fmt"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_UpdateOwned(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := mustUser(t, db, "owner")
	intruder := mustUser(t, db, "intruder")
	tech := mustTag(t, db, "Tech", "tech")
	travel := mustTag(t, db, "Travel", "travel")

	post := &models.Post{Title: "Original", Content: "text", AuthorID: owner.ID}
	require.NoError(t, repo.Create(ctx, post, []models.Tag{*tech}))

	t.Run("owner updates fields", func(t *testing.T) {
		updated, err := repo.UpdateOwned(ctx, post.ID, owner.ID, map[string]any{"title": "Renamed"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "text", updated.Content)
		require.Len(t, updated.Tags, 1)
	})

	t.Run("nil tags leaves associations alone", func(t *testing.T) {
		updated, err := repo.UpdateOwned(ctx, post.ID, owner.ID, map[string]any{"content": "more text"}, nil)
		require.NoError(t, err)
		require.Len(t, updated.Tags, 1)
		assert.Equal(t, "tech", updated.Tags[0].Slug)
	})

	t.Run("tags replace the set", func(t *testing.T) {
		updated, err := repo.UpdateOwned(ctx, post.ID, owner.ID, nil, []models.Tag{*travel})
		require.NoError(t, err)
		require.Len(t, updated.Tags, 1)
		assert.Equal(t, "travel", updated.Tags[0].Slug)
	})

	t.Run("empty tag slice clears the set", func(t *testing.T) {
		updated, err := repo.UpdateOwned(ctx, post.ID, owner.ID, nil, []models.Tag{})
		require.NoError(t, err)
		assert.Len(t, updated.Tags, 0)
	})

	t.Run("foreign author conflates to not found", func(t *testing.T) {
		_, err := repo.UpdateOwned(ctx, post.ID, intruder.ID, map[string]any{"title": "Stolen"}, nil)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.Equal(t, "Post not found or not owned by user", appErr.Message)
	})

	t.Run("missing post conflates to not found", func(t *testing.T) {
		_, err := repo.UpdateOwned(ctx, 9999, owner.ID, map[string]any{"title": "Ghost"}, nil)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Post not found or not owned by user", appErr.Message)
	})
}

func TestPostRepository_DeleteOwned(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := mustUser(t, db, "owner")
	intruder := mustUser(t, db, "intruder")
	post := mustPost(t, db, owner.ID, "Doomed")

	err := repo.DeleteOwned(ctx, post.ID, intruder.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	require.NoError(t, repo.DeleteOwned(ctx, post.ID, owner.ID))

	_, err = repo.GetByID(ctx, post.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Post not found", appErr.Message)
}

func TestPostRepository_List(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := mustUser(t, db, "alice")
	bob := mustUser(t, db, "bob")
	tech := mustTag(t, db, "Tech", "tech")

	tagged := &models.Post{Title: "Tagged", Content: "x", AuthorID: alice.ID}
	require.NoError(t, repo.Create(ctx, tagged, []models.Tag{*tech}))
	mustPost(t, db, alice.ID, "Plain")
	mustPost(t, db, bob.ID, "Bob's")

	t.Run("unfiltered", func(t *testing.T) {
		posts, err := repo.List(ctx, PostFilter{})
		require.NoError(t, err)
		assert.Len(t, posts, 3)
	})

	t.Run("by author", func(t *testing.T) {
		posts, err := repo.List(ctx, PostFilter{AuthorID: alice.ID})
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("by tag", func(t *testing.T) {
		posts, err := repo.List(ctx, PostFilter{TagID: tech.ID})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Tagged", posts[0].Title)
	})
}

func TestPostRepository_Search(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := mustUser(t, db, "prolific")
	for i := 0; i < 25; i++ {
		mustPost(t, db, author.ID, fmt.Sprintf("Kubernetes diary %d", i))
	}
	mustPost(t, db, author.ID, "Unrelated")

	t.Run("caps at the search limit", func(t *testing.T) {
		posts, err := repo.Search(ctx, "kubernetes")
		require.NoError(t, err)
		assert.Len(t, posts, searchLimit)
	})

	t.Run("matches content case insensitively", func(t *testing.T) {
		posts, err := repo.Search(ctx, "UNRELATED")
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "prolific", posts[0].Author.Username)
	})

	t.Run("no matches", func(t *testing.T) {
		posts, err := repo.Search(ctx, "zzzzz")
		require.NoError(t, err)
		assert.Len(t, posts, 0)
	})
}
