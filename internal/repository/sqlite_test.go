package repository

import (
	"fmt"
	"strings"
	"testing"

	"inkwell/internal/cache"
	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupSQLiteDB opens a fresh named in-memory database for tests that need
// real SQL semantics (ownership predicates, association tables, LIKE).
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	cache.SetClient(nil)

	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)
	return db
}

func mustUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustPost(t *testing.T, db *gorm.DB, authorID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "body", AuthorID: authorID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func mustTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}
