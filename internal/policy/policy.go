// Package policy holds the two authorization gates evaluated per endpoint.
// They are plain predicates so endpoints compose them explicitly instead of
// resolving permission objects at runtime.
package policy

// Caller is the identity the middleware extracts from a validated access
// token. Role and Staff are independent privilege axes; neither implies
// the other.
type Caller struct {
	AccountID string
	Role      string
	Staff     bool
}

const roleAdmin = "admin"

// RoleGate grants access to admins and staff only.
func RoleGate(caller Caller) bool {
	return caller.Role == roleAdmin || caller.Staff
}

// OwnershipOrAdmin allows safe operations broadly; mutating operations are
// allowed only to the resource owner or to callers passing the role gate.
func OwnershipOrAdmin(caller Caller, ownerID string, safe bool) bool {
	if safe {
		return true
	}
	return caller.AccountID == ownerID || RoleGate(caller)
}
