package seed

import (
	"fmt"
	"os"

	"inkwell/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInTag is a permanent catalog entry.
type BuiltInTag struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

// BuiltInTags defines the default tag catalog. Deployments can override it
// with a YAML preset via TagsFromFile.
var BuiltInTags = []BuiltInTag{
	{Name: "Tech", Slug: "tech"},
	{Name: "Travel", Slug: "travel"},
	{Name: "Food", Slug: "food"},
	{Name: "Science", Slug: "science"},
	{Name: "Music", Slug: "music"},
	{Name: "Books", Slug: "books"},
	{Name: "Fitness", Slug: "fitness"},
	{Name: "Photography", Slug: "photography"},
}

// Tags upserts the built-in tag catalog, keyed by slug.
func Tags(db *gorm.DB) error {
	return upsertTags(db, BuiltInTags)
}

// TagsFromFile loads a YAML tag preset and upserts it. The file is a list
// of {name, slug} entries.
func TagsFromFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tag preset: %w", err)
	}

	var preset []BuiltInTag
	if err := yaml.Unmarshal(raw, &preset); err != nil {
		return fmt.Errorf("parse tag preset: %w", err)
	}
	if len(preset) == 0 {
		return fmt.Errorf("tag preset %s is empty", path)
	}
	for _, item := range preset {
		if item.Name == "" || item.Slug == "" {
			return fmt.Errorf("tag preset %s contains an entry without name or slug", path)
		}
	}

	return upsertTags(db, preset)
}

func upsertTags(db *gorm.DB, items []BuiltInTag) error {
	for _, item := range items {
		tag := models.Tag{
			Name: item.Name,
			Slug: item.Slug,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).Create(&tag).Error; err != nil {
			return fmt.Errorf("upsert tag %q: %w", item.Slug, err)
		}
	}
	return nil
}
