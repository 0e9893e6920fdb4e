package model

const authorityPrefix = "ROLE_"

// Principal is the authenticated identity for a single request. It is a
// plain value built from the stored user at authentication time and is
// never persisted or shared across requests.
type Principal struct {
	user User
}

func NewPrincipal(user User) Principal {
	return Principal{user: user}
}

// Username returns the token subject, which is the user's email.
func (p Principal) Username() string {
	return p.user.Email
}

// Authorities returns the granted authorities, each role label prefixed
// with ROLE_. A user with no roles is granted ROLE_USER.
func (p Principal) Authorities() []string {
	if len(p.user.Roles) == 0 {
		return []string{authorityPrefix + string(RoleUser)}
	}

	authorities := make([]string, 0, len(p.user.Roles))
	for _, role := range p.user.Roles {
		authorities = append(authorities, authorityPrefix+string(role))
	}
	return authorities
}

func (p Principal) PasswordHash() string {
	return p.user.PasswordHash
}

func (p Principal) User() User {
	return p.user
}
