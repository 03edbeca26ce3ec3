package domain

import (
	"context"
	"errors"
)

// Permission is a sub-administrator capability bit.
type Permission uint8

const (
	PermDeposit Permission = 1 << iota
	PermWithdraw
	PermEdit
	PermDelete
	PermRenew
)

// PermAll grants every capability.
const PermAll = PermDeposit | PermWithdraw | PermEdit | PermDelete | PermRenew

// Has reports whether p contains every bit of q.
func (p Permission) Has(q Permission) bool {
	return p&q == q
}

var permissionNames = []struct {
	bit  Permission
	name string
}{
	{PermDeposit, "deposit"},
	{PermWithdraw, "withdraw"},
	{PermEdit, "edit"},
	{PermDelete, "delete"},
	{PermRenew, "renew"},
}

// Names lists the set bits as lower-case strings, in declaration order.
func (p Permission) Names() []string {
	var names []string
	for _, pn := range permissionNames {
		if p.Has(pn.bit) {
			names = append(names, pn.name)
		}
	}
	return names
}

// ParsePermissions builds a bit-set from permission names. Unknown names are
// ignored; the caller already validated the payload shape.
func ParsePermissions(names []string) Permission {
	var p Permission
	for _, name := range names {
		for _, pn := range permissionNames {
			if pn.name == name {
				p |= pn.bit
			}
		}
	}
	return p
}

// SubAdmin is a staff member authorized on an account, with the operations
// they may perform there.
type SubAdmin struct {
	ID          string     `json:"subAdminId"`
	Name        string     `json:"subAdminName"`
	Permissions Permission `json:"permissions"`
}

// Role is an actor's access level.
type Role string

const (
	// RoleSuperAdmin resolves change requests and manages accounts.
	RoleSuperAdmin Role = "superadmin"

	// RoleSubAdmin records entries and proposes changes, subject to
	// per-account permission bits.
	RoleSubAdmin Role = "subadmin"
)

// IsValid checks if the role is a known role.
func (r Role) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleSubAdmin
}

// CanResolve reports whether the role may approve or reject requests.
func (r Role) CanResolve() bool {
	return r == RoleSuperAdmin
}

// Actor is the authenticated staff identity supplied by the transport layer.
// The core trusts it; authentication mechanics live outside the core.
type Actor struct {
	ID          string
	Name        string
	Role        Role
	Permissions Permission
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrForbidden    = errors.New("insufficient permissions for this operation")
)

type actorContextKey struct{}

// ActorToContext attaches the authenticated actor to the context.
func ActorToContext(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext extracts the authenticated actor, if present.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(*Actor)
	return actor, ok
}
