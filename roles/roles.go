package roles

// Role is the trust tier a caller resolves to
type Role string

const (
	None   Role = "none"   // No valid session
	Client Role = "client" // Can read orders and open the client board
	Admin  Role = "admin"  // Can also create, update and delete orders
)

func (r Role) String() string {
	if r == "" {
		return string(None)
	}
	return string(r)
}

// CanRead is true for the client and admin tiers
func (r Role) CanRead() bool {
	return r == Client || r == Admin
}

// CanWrite is true for the admin tier only
func (r Role) CanWrite() bool {
	return r == Admin
}

// Satisfies reports whether r meets the required tier.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case Admin:
		return r.CanWrite()
	case Client:
		return r.CanRead()
	default:
		return true
	}
}
