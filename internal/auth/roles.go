package auth

import (
	"github.com/spec-kit/console-service/internal/domain"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// Operation names a privileged RPC operation.
type Operation string

const (
	OpCreateUser        Operation = "createUser"
	OpUpdateUserRole    Operation = "updateUserRole"
	OpDeleteUser        Operation = "deleteUser"
	OpCreateArticle     Operation = "createArticle"
	OpUpdateArticle     Operation = "updateArticle"
	OpDeleteArticle     Operation = "deleteArticle"
	OpCreateFeatureFlag Operation = "createFeatureFlag"
	OpToggleFeatureFlag Operation = "toggleFeatureFlag"
	OpCreateBugReport   Operation = "createBugReport"
)

// permittedRoles fixes the role set for each operation.
var permittedRoles = map[Operation][]domain.Role{
	OpCreateUser:        {domain.RoleAdmin},
	OpUpdateUserRole:    {domain.RoleAdmin},
	OpDeleteUser:        {domain.RoleAdmin},
	OpCreateArticle:     {domain.RoleAdmin, domain.RoleEditor},
	OpUpdateArticle:     {domain.RoleAdmin, domain.RoleEditor},
	OpDeleteArticle:     {domain.RoleAdmin, domain.RoleEditor},
	OpCreateFeatureFlag: {domain.RoleAdmin, domain.RoleDeveloper},
	OpToggleFeatureFlag: {domain.RoleAdmin, domain.RoleDeveloper},
	OpCreateBugReport:   {domain.RoleAdmin, domain.RoleDeveloper, domain.RoleTester},
}

// denialReasons carries the caller-facing reason per operation.
var denialReasons = map[Operation]string{
	OpCreateUser:        "Only admins can create new users.",
	OpUpdateUserRole:    "Only admins can update user roles.",
	OpDeleteUser:        "Only admins can delete users.",
	OpCreateArticle:     "Only admins or editors can create articles.",
	OpUpdateArticle:     "Only admins or editors can update articles.",
	OpDeleteArticle:     "Only admins or editors can delete articles.",
	OpCreateFeatureFlag: "Only admins or developers can create feature flags.",
	OpToggleFeatureFlag: "Only admins or developers can toggle feature flags.",
	OpCreateBugReport:   "You do not have permission to submit bug reports.",
}

// Authorize is a pure lookup: it maps (operation, caller role) to allow or
// a permission-denied error. It performs no I/O and is evaluated before
// any store or provider call.
func Authorize(op Operation, role domain.Role) error {
	allowed, ok := permittedRoles[op]
	if !ok {
		return apperrors.NewPermissionDenied("Unknown operation.")
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return apperrors.NewPermissionDenied(denialReasons[op])
}

// PermittedRoles exposes the role set for an operation.
func PermittedRoles(op Operation) []domain.Role {
	allowed := permittedRoles[op]
	out := make([]domain.Role, len(allowed))
	copy(out, allowed)
	return out
}
