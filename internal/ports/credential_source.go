package ports

import "context"

// CredentialSource resolves a credential reference to its secret value.
type CredentialSource interface {
	Lookup(ctx context.Context, ref string) (string, error)
}
