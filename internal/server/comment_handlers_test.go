package server

import (
	"fmt"
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPost(t *testing.T, s *Server, authorID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "body", AuthorID: authorID}
	require.NoError(t, s.db.Create(post).Error)
	return post
}

func TestCommentLifecycle(t *testing.T) {
	s, app := setupTestServer(t)
	author, _ := createTestUser(t, s, "author", "author@example.com", "user")
	_, commenterToken := createTestUser(t, s, "commenter", "commenter@example.com", "user")
	_, strangerToken := createTestUser(t, s, "stranger", "stranger@example.com", "user")
	post := createTestPost(t, s, author.ID, "Commented post")

	var commentID uint

	t.Run("create on existing post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), commenterToken, map[string]string{
			"content": "Nice post!",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var comment models.Comment
		decodeBody(t, resp, &comment)
		assert.Equal(t, "Nice post!", comment.Content)
		assert.Equal(t, "commenter", comment.Author.Username)
		commentID = comment.ID
	})

	t.Run("create on missing post is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/9999/comments", commenterToken, map[string]string{
			"content": "Ghost comment",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), commenterToken, map[string]string{
			"content": "   ",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("public listing", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var comments []models.Comment
		decodeBody(t, resp, &comments)
		require.Len(t, comments, 1)
	})

	t.Run("update by author", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, commentID), commenterToken, map[string]string{
			"content": "Edited!",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var comment models.Comment
		decodeBody(t, resp, &comment)
		assert.Equal(t, "Edited!", comment.Content)
	})

	t.Run("update by stranger reads as not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, commentID), strangerToken, map[string]string{
			"content": "Hijack",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "Comment not found or not owned by user", body["error"])
	})

	t.Run("update under the wrong post reads as not found", func(t *testing.T) {
		otherPost := createTestPost(t, s, author.ID, "Another post")
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/posts/%d/comments/%d", otherPost.ID, commentID), commenterToken, map[string]string{
			"content": "Wrong parent",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete by stranger reads as not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, commentID), strangerToken, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete by author", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, commentID), commenterToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), "", nil)
		var comments []models.Comment
		decodeBody(t, resp, &comments)
		assert.Len(t, comments, 0)
	})
}
