package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/identity"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// AccountService is the dual-write coordinator: it keeps the identity
// provider's role claim and the accounts collection consistent across the
// three lifecycle operations. Steps run sequentially in a fixed order;
// a step failure aborts the remainder without compensating the steps
// already applied.
type AccountService struct {
	provider   identity.Provider
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AccountDependencies bundles collaborator requirements.
type AccountDependencies struct {
	Provider    identity.Provider
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAccountService constructs the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		provider:   deps.Provider,
		accounts:   deps.AccountRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// writeStep is one named external write in a dual-write sequence.
type writeStep struct {
	name string
	run  func(ctx context.Context) error
}

// runSequence executes steps in order, tracking the completion cursor.
// On failure it emits a structured partial-failure event and surfaces an
// opaque internal error; completed steps stay applied.
func (s *AccountService) runSequence(ctx context.Context, op auth.Operation, meta events.AccountWritePartialFailurePayload, steps []writeStep) error {
	completed := make([]string, 0, len(steps))
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			s.logger.Error("account write sequence aborted",
				zap.String("operation", string(op)),
				zap.String("failed_step", step.name),
				zap.Strings("completed_steps", completed),
				zap.Error(err),
			)
			meta.Operation = string(op)
			meta.CompletedSteps = completed
			meta.FailedStep = step.name
			meta.Cause = err.Error()
			_ = s.dispatcher.Publish(ctx, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventAccountWritePartialFailure,
				Timestamp: time.Now(),
				Payload:   meta,
			})
			return apperrors.NewInternalError(err)
		}
		completed = append(completed, step.name)
	}
	return nil
}

// CreateUser provisions a principal in the identity provider, attaches
// its role claim, and mirrors the account into the document store.
func (s *AccountService) CreateUser(ctx context.Context, caller domain.Principal, email, password string, role domain.Role) (string, error) {
	if err := auth.Authorize(auth.OpCreateUser, caller.Role); err != nil {
		return "", err
	}

	var id string
	steps := []writeStep{
		{name: "create_principal", run: func(ctx context.Context) error {
			created, err := s.provider.CreatePrincipal(ctx, email, password)
			if err != nil {
				return err
			}
			id = created
			return nil
		}},
		{name: "set_role_claim", run: func(ctx context.Context) error {
			return s.provider.SetClaim(ctx, id, role)
		}},
		{name: "create_account_record", run: func(ctx context.Context) error {
			return s.accounts.Create(ctx, &domain.Account{ID: id, Email: email, Role: role})
		}},
	}

	meta := events.AccountWritePartialFailurePayload{Email: email, Role: role}
	if err := s.runSequence(ctx, auth.OpCreateUser, meta, steps); err != nil {
		return "", err
	}
	return fmt.Sprintf("User %s created successfully.", email), nil
}

// UpdateUserRole sets the role claim, then the mirrored role field.
func (s *AccountService) UpdateUserRole(ctx context.Context, caller domain.Principal, uid string, role domain.Role) (string, error) {
	if err := auth.Authorize(auth.OpUpdateUserRole, caller.Role); err != nil {
		return "", err
	}

	steps := []writeStep{
		{name: "set_role_claim", run: func(ctx context.Context) error {
			return s.provider.SetClaim(ctx, uid, role)
		}},
		{name: "update_account_record", run: func(ctx context.Context) error {
			return s.accounts.UpdateRole(ctx, uid, role)
		}},
	}

	meta := events.AccountWritePartialFailurePayload{PrincipalID: uid, Role: role}
	if err := s.runSequence(ctx, auth.OpUpdateUserRole, meta, steps); err != nil {
		return "", err
	}
	return "User role updated successfully.", nil
}

// DeleteUser removes the principal, then the mirrored account record.
func (s *AccountService) DeleteUser(ctx context.Context, caller domain.Principal, uid string) (string, error) {
	if err := auth.Authorize(auth.OpDeleteUser, caller.Role); err != nil {
		return "", err
	}

	steps := []writeStep{
		{name: "delete_principal", run: func(ctx context.Context) error {
			return s.provider.DeletePrincipal(ctx, uid)
		}},
		{name: "delete_account_record", run: func(ctx context.Context) error {
			return s.accounts.Delete(ctx, uid)
		}},
	}

	meta := events.AccountWritePartialFailurePayload{PrincipalID: uid}
	if err := s.runSequence(ctx, auth.OpDeleteUser, meta, steps); err != nil {
		return "", err
	}
	return "User deleted successfully.", nil
}
