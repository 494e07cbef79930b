package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// ArticleService handles the content workflow. Articles are born as
// drafts; updates write title, body and status verbatim with no
// transition graph, so published work can be pulled back to draft.
type ArticleService struct {
	articles repository.ArticleRepository
	logger   *zap.Logger
}

// NewArticleService constructs the service.
func NewArticleService(articles repository.ArticleRepository, logger *zap.Logger) *ArticleService {
	return &ArticleService{articles: articles, logger: logger}
}

// CreateArticle inserts a draft owned by the caller.
func (s *ArticleService) CreateArticle(ctx context.Context, caller domain.Principal, title, body string) (string, error) {
	if err := auth.Authorize(auth.OpCreateArticle, caller.Role); err != nil {
		return "", err
	}

	article := &domain.Article{
		Title:    title,
		Body:     body,
		Status:   domain.ArticleStatusDraft,
		AuthorID: caller.ID,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		s.logger.Error("create article failed", zap.String("title", title), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}
	return fmt.Sprintf("Article %q created successfully.", title), nil
}

// UpdateArticle overwrites title, body and status for an existing record.
func (s *ArticleService) UpdateArticle(ctx context.Context, caller domain.Principal, id, title, body string, status domain.ArticleStatus) (string, error) {
	if err := auth.Authorize(auth.OpUpdateArticle, caller.Role); err != nil {
		return "", err
	}

	fields := repository.ArticleUpdate{Title: title, Body: body, Status: status}
	if err := s.articles.Update(ctx, id, fields); err != nil {
		s.logger.Error("update article failed", zap.String("article_id", id), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}
	return fmt.Sprintf("Article %q updated successfully.", title), nil
}

// DeleteArticle removes a record by id. No existence or authorship check:
// deleting an absent article reports success when the store does not
// signal not-found.
func (s *ArticleService) DeleteArticle(ctx context.Context, caller domain.Principal, id string) (string, error) {
	if err := auth.Authorize(auth.OpDeleteArticle, caller.Role); err != nil {
		return "", err
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		s.logger.Error("delete article failed", zap.String("article_id", id), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}
	return "Article deleted successfully.", nil
}
