package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/events"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

func newAccountFixture() (*AccountService, *fakeProvider, *fakeAccountRepo, *captureDispatcher) {
	provider := newFakeProvider()
	accounts := newFakeAccountRepo()
	dispatcher := &captureDispatcher{}
	svc := NewAccountService(AccountDependencies{
		Provider:    provider,
		AccountRepo: accounts,
		Dispatcher:  dispatcher,
		Logger:      zap.NewNop(),
	})
	return svc, provider, accounts, dispatcher
}

func adminCaller() domain.Principal {
	return domain.Principal{ID: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin}
}

func TestCreateUserDeniedForNonAdmins(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleEditor, domain.RoleViewer, domain.RoleDeveloper, domain.RoleTester, domain.RoleGuest} {
		t.Run(string(role), func(t *testing.T) {
			svc, provider, accounts, dispatcher := newAccountFixture()
			caller := domain.Principal{ID: "p1", Email: "p1@example.com", Role: role}

			_, err := svc.CreateUser(context.Background(), caller, "a@b.com", "x", domain.RoleEditor)

			require.Error(t, err)
			assert.True(t, apperrors.IsPermissionDenied(err))
			assert.Equal(t, "Only admins can create new users.", err.Error())
			assert.Zero(t, provider.createCalls)
			assert.Zero(t, provider.claimCalls)
			assert.Zero(t, accounts.createCalls)
			assert.Empty(t, dispatcher.published)
		})
	}
}

func TestCreateUserWritesProviderThenStore(t *testing.T) {
	svc, provider, accounts, _ := newAccountFixture()

	result, err := svc.CreateUser(context.Background(), adminCaller(), "a@b.com", "x", domain.RoleEditor)

	require.NoError(t, err)
	assert.Equal(t, "User a@b.com created successfully.", result)
	assert.Equal(t, 1, provider.createCalls)
	assert.Equal(t, 1, provider.claimCalls)
	assert.Equal(t, 1, accounts.createCalls)

	account, err := accounts.GetByID(context.Background(), "principal-1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", account.Email)
	assert.Equal(t, domain.RoleEditor, account.Role)
	assert.Equal(t, provider.claims["principal-1"], account.Role)
}

func TestCreateUserPartialFailureEmitsEvent(t *testing.T) {
	svc, provider, accounts, dispatcher := newAccountFixture()
	provider.failClaim = errors.New("claim backend down")

	_, err := svc.CreateUser(context.Background(), adminCaller(), "a@b.com", "x", domain.RoleEditor)

	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, "internal server error", domainErr.Message)

	// The sequence stopped after principal creation: no store write, no
	// rollback of the principal.
	assert.Equal(t, 1, provider.createCalls)
	assert.Zero(t, accounts.createCalls)

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	assert.Equal(t, events.EventAccountWritePartialFailure, event.Type)
	payload, ok := event.Payload.(events.AccountWritePartialFailurePayload)
	require.True(t, ok)
	assert.Equal(t, "createUser", payload.Operation)
	assert.Equal(t, []string{"create_principal"}, payload.CompletedSteps)
	assert.Equal(t, "set_role_claim", payload.FailedStep)
}

func TestUpdateUserRoleDeniedForViewer(t *testing.T) {
	svc, provider, accounts, _ := newAccountFixture()
	caller := domain.Principal{ID: "v1", Email: "v@example.com", Role: domain.RoleViewer}

	_, err := svc.UpdateUserRole(context.Background(), caller, "u1", domain.RoleViewer)

	require.Error(t, err)
	assert.True(t, apperrors.IsPermissionDenied(err))
	assert.Zero(t, provider.claimCalls)
	assert.Zero(t, accounts.updateCalls)
}

func TestUpdateUserRoleUpdatesClaimAndRecord(t *testing.T) {
	svc, provider, accounts, _ := newAccountFixture()
	accounts.accounts["u1"] = domain.Account{ID: "u1", Email: "u1@example.com", Role: domain.RoleEditor}

	result, err := svc.UpdateUserRole(context.Background(), adminCaller(), "u1", domain.RoleViewer)

	require.NoError(t, err)
	assert.Equal(t, "User role updated successfully.", result)
	assert.Equal(t, domain.RoleViewer, provider.claims["u1"])
	assert.Equal(t, domain.RoleViewer, accounts.accounts["u1"].Role)
}

func TestUpdateUserRolePartialFailureLeavesClaimApplied(t *testing.T) {
	svc, provider, accounts, dispatcher := newAccountFixture()
	accounts.accounts["u1"] = domain.Account{ID: "u1", Email: "u1@example.com", Role: domain.RoleEditor}
	accounts.failUpdate = errors.New("store rejected write")

	_, err := svc.UpdateUserRole(context.Background(), adminCaller(), "u1", domain.RoleViewer)

	require.Error(t, err)
	// Divergence: claim updated, record not. Surfaced via event, not
	// rolled back.
	assert.Equal(t, domain.RoleViewer, provider.claims["u1"])
	assert.Equal(t, domain.RoleEditor, accounts.accounts["u1"].Role)
	require.Len(t, dispatcher.published, 1)
	payload := dispatcher.published[0].Payload.(events.AccountWritePartialFailurePayload)
	assert.Equal(t, []string{"set_role_claim"}, payload.CompletedSteps)
	assert.Equal(t, "update_account_record", payload.FailedStep)
}

func TestDeleteUserRemovesPrincipalAndRecord(t *testing.T) {
	svc, provider, accounts, _ := newAccountFixture()
	provider.emails["u1"] = "u1@example.com"
	provider.claims["u1"] = domain.RoleEditor
	accounts.accounts["u1"] = domain.Account{ID: "u1", Email: "u1@example.com", Role: domain.RoleEditor}

	result, err := svc.DeleteUser(context.Background(), adminCaller(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully.", result)
	assert.Equal(t, 1, provider.deleteCalls)
	assert.Equal(t, 1, accounts.deleteCalls)
	assert.NotContains(t, provider.claims, "u1")
	assert.NotContains(t, accounts.accounts, "u1")
}

func TestDeleteUserDeniedForNonAdmins(t *testing.T) {
	svc, provider, accounts, _ := newAccountFixture()
	caller := domain.Principal{ID: "d1", Email: "d@example.com", Role: domain.RoleDeveloper}

	_, err := svc.DeleteUser(context.Background(), caller, "u1")

	require.Error(t, err)
	assert.True(t, apperrors.IsPermissionDenied(err))
	assert.Zero(t, provider.deleteCalls)
	assert.Zero(t, accounts.deleteCalls)
}

// Role consistency across a full lifecycle: after every successful
// non-partial sequence the claim equals the mirrored record.
func TestRoleConsistencyAcrossLifecycle(t *testing.T) {
	svc, provider, accounts, _ := newAccountFixture()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, adminCaller(), "a@b.com", "x", domain.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, provider.claims["principal-1"], accounts.accounts["principal-1"].Role)

	_, err = svc.UpdateUserRole(ctx, adminCaller(), "principal-1", domain.RoleTester)
	require.NoError(t, err)
	assert.Equal(t, provider.claims["principal-1"], accounts.accounts["principal-1"].Role)

	_, err = svc.DeleteUser(ctx, adminCaller(), "principal-1")
	require.NoError(t, err)
	_, claimLeft := provider.claims["principal-1"]
	_, recordLeft := accounts.accounts["principal-1"]
	assert.False(t, claimLeft)
	assert.False(t, recordLeft)
}
