package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/domain"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

func testerCaller() domain.Principal {
	return domain.Principal{ID: "tester-1", Email: "tester@example.com", Role: domain.RoleTester}
}

func TestCreateBugReportBindsReporter(t *testing.T) {
	reports := &fakeBugReportRepo{}
	svc := NewBugReportService(reports, zap.NewNop())

	result, err := svc.CreateBugReport(context.Background(), testerCaller(), "crash on save", "1. open 2. save")

	require.NoError(t, err)
	assert.Equal(t, "Bug report submitted successfully.", result)
	require.Len(t, reports.reports, 1)
	report := reports.reports[0]
	assert.Equal(t, "new", report.Status)
	assert.Equal(t, "tester-1", report.ReporterID)
	assert.Equal(t, "tester@example.com", report.ReporterEmail)
	assert.Equal(t, "crash on save", report.Description)
	assert.Equal(t, "1. open 2. save", report.StepsToReproduce)
}

// No dedup invariant: identical resubmissions create distinct records.
func TestDuplicateBugReportsAreDistinct(t *testing.T) {
	reports := &fakeBugReportRepo{}
	svc := NewBugReportService(reports, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateBugReport(ctx, testerCaller(), "crash on save", "steps")
	require.NoError(t, err)
	_, err = svc.CreateBugReport(ctx, testerCaller(), "crash on save", "steps")
	require.NoError(t, err)

	require.Len(t, reports.reports, 2)
	assert.NotEqual(t, reports.reports[0].ID, reports.reports[1].ID)
	assert.Equal(t, reports.reports[0].Description, reports.reports[1].Description)
}

func TestCreateBugReportDeniedOutsideIntakeSet(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleEditor, domain.RoleViewer, domain.RoleGuest} {
		t.Run(string(role), func(t *testing.T) {
			reports := &fakeBugReportRepo{}
			svc := NewBugReportService(reports, zap.NewNop())
			caller := domain.Principal{ID: "x", Email: "x@example.com", Role: role}

			_, err := svc.CreateBugReport(context.Background(), caller, "desc", "steps")

			require.Error(t, err)
			assert.True(t, apperrors.IsPermissionDenied(err))
			assert.Equal(t, "You do not have permission to submit bug reports.", err.Error())
			assert.Zero(t, reports.createCalls)
		})
	}
}
