package seed

import (
	"fmt"
	"log"
	"math/rand"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configure the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	ShouldClean bool
	TagPreset   string
}

// Seed populates the database with demo data: the tag catalog, users with
// profiles, tagged posts, and comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database: %d users, %d posts, %d comments", opts.NumUsers, opts.NumPosts, opts.NumComments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	if opts.TagPreset != "" {
		if err := TagsFromFile(db, opts.TagPreset); err != nil {
			return fmt.Errorf("seed tag preset: %w", err)
		}
	} else if err := Tags(db); err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}

	var tags []models.Tag
	if err := db.Find(&tags).Error; err != nil {
		return fmt.Errorf("load tag catalog: %w", err)
	}

	factory, err := NewFactory(db)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[rand.Intn(len(users))]
		post, err := factory.CreatePost(author, tags)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("Created %d posts", len(posts))

	if len(posts) > 0 {
		for i := 0; i < opts.NumComments; i++ {
			post := posts[rand.Intn(len(posts))]
			author := users[rand.Intn(len(users))]
			if _, err := factory.CreateComment(post, author); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}
		log.Printf("Created %d comments", opts.NumComments)
	}

	return nil
}

// clearData removes seedable rows. Join rows go first so foreign keys never
// block the deletes.
func clearData(db *gorm.DB) error {
	statements := []string{
		"DELETE FROM post_tags",
		"DELETE FROM comments",
		"DELETE FROM posts",
		"DELETE FROM profiles",
		"DELETE FROM users",
		"DELETE FROM tags",
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
