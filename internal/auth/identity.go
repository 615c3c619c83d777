package auth

// Identity is the verified user identity extracted from the external
// provider's bearer token. It is passed explicitly into every domain-core
// call; nothing in the services reads ambient auth state.
type Identity struct {
	UID   string
	Email string
	Name  string
}
