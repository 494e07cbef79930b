package domain

import (
	"fmt"
	"time"
)

// ArticleStatus represents publication states for an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// ParseArticleStatus validates a status string.
func ParseArticleStatus(s string) (ArticleStatus, error) {
	status := ArticleStatus(s)
	switch status {
	case ArticleStatusDraft, ArticleStatusPublished:
		return status, nil
	default:
		return "", fmt.Errorf("unknown article status %q", s)
	}
}

// Article is a content record. Status moves freely between draft and
// published in either direction; no transition graph is enforced.
type Article struct {
	ID        string
	Title     string
	Body      string
	Status    ArticleStatus
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
