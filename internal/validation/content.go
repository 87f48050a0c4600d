package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var tagSlugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

const (
	maxTitleLen   = 200
	maxBioLen     = 500
	maxTagNameLen = 50
	maxTagSlugLen = 50
)

// ValidatePostTitle checks post title length constraints.
func ValidatePostTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLen)
	}
	return nil
}

// ValidatePostContent checks that post content is non-empty.
func ValidatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ValidateCommentContent checks that comment content is non-empty.
func ValidateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ValidateTagName checks tag name length constraints.
func ValidateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxTagNameLen {
		return fmt.Errorf("name must not exceed %d characters", maxTagNameLen)
	}
	return nil
}

// ValidateTagSlug checks that the slug is URL-safe and within length limits.
func ValidateTagSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug is required")
	}
	if len(slug) > maxTagSlugLen {
		return fmt.Errorf("slug must not exceed %d characters", maxTagSlugLen)
	}
	if !tagSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug can only contain lowercase letters, numbers, and hyphens")
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}
	return nil
}

// ValidateBio checks profile bio length.
func ValidateBio(bio string) error {
	if len(bio) > maxBioLen {
		return fmt.Errorf("bio must not exceed %d characters", maxBioLen)
	}
	return nil
}

// ValidateAvatarURL checks that the avatar URL is empty or a valid absolute URL.
func ValidateAvatarURL(avatarURL string) error {
	if avatarURL == "" {
		return nil
	}
	parsed, err := url.Parse(avatarURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("avatar_url must be a valid URL")
	}
	return nil
}
