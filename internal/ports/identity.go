package ports

import "context"

// Principal is an authenticated user as confirmed by the identity service.
type Principal struct {
	ID    string
	Email string
}

// Identity wraps the external identity service's registration and
// password-grant endpoints.
type Identity interface {
	// SignUp registers a new account. Success does not log the user in.
	SignUp(ctx context.Context, email, password string) error
	// SignIn exchanges credentials for an authenticated principal. Returns
	// domain.ErrInvalidCredentials when the service confirms no principal.
	SignIn(ctx context.Context, email, password string) (Principal, error)
}
