package identity

import (
	"context"

	"github.com/spec-kit/console-service/internal/domain"
)

// Provider is the identity-provider contract consumed by the account
// coordinator. Each call is a single request/response with no retry;
// failures are provider-specific and mapped to internal errors upstream.
type Provider interface {
	// CreatePrincipal registers credentials and returns the generated
	// principal id.
	CreatePrincipal(ctx context.Context, email, password string) (string, error)
	// SetClaim attaches the role claim to a principal. Setting the claim
	// to its current value is a no-op.
	SetClaim(ctx context.Context, id string, role domain.Role) error
	// DeletePrincipal removes the principal and its credentials.
	DeletePrincipal(ctx context.Context, id string) error
}
