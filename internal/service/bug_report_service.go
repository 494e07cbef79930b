package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// BugReportService is the append-only intake path. No deduplication:
// identical resubmissions produce distinct records.
type BugReportService struct {
	reports repository.BugReportRepository
	logger  *zap.Logger
}

// NewBugReportService constructs the service.
func NewBugReportService(reports repository.BugReportRepository, logger *zap.Logger) *BugReportService {
	return &BugReportService{reports: reports, logger: logger}
}

// CreateBugReport files a new report bound to the reporting caller.
func (s *BugReportService) CreateBugReport(ctx context.Context, caller domain.Principal, description, stepsToReproduce string) (string, error) {
	if err := auth.Authorize(auth.OpCreateBugReport, caller.Role); err != nil {
		return "", err
	}

	report := &domain.BugReport{
		Description:      description,
		StepsToReproduce: stepsToReproduce,
		Status:           domain.BugReportStatusNew,
		ReporterID:       caller.ID,
		ReporterEmail:    caller.Email,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		s.logger.Error("create bug report failed", zap.String("reporter_id", caller.ID), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}
	return "Bug report submitted successfully.", nil
}
