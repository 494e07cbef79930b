package domain

// Account is the document-store mirror of an identity-provider principal.
// Its id equals the principal id; the role field duplicates the provider's
// claim and is kept in step by the account coordinator only.
type Account struct {
	ID    string
	Email string
	Role  Role
}
