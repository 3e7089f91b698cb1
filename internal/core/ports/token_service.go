package ports

// TokenService issues and validates stateless identity tokens. Validity is
// fully determined by the token's signed contents plus current time; there is
// no server-side session table.
type TokenService interface {
	Issue(username, role string) (string, error)
	Validate(token string) (username, role string, err error)
}
