package auth

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is the caller attached to one request. The zero value is an
// anonymous caller; identity is always passed explicitly, never held in
// process-wide state, so concurrent requests stay isolated.
type Identity struct {
	UserID        string
	Role          string
	Authenticated bool
}

// Anonymous is the identity of a request that presented no valid credentials.
func Anonymous() Identity {
	return Identity{}
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated && i.Role == RoleAdmin
}
