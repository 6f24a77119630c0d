package auth

import "blogserver/models"

type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

type Decision int

const (
	Allow Decision = iota
	DenyUnauthorized
	DenyForbidden
)

// Authorize applies the ownership rule for posts and comments: reads are
// open to everyone, writes only to the resource's author. The user may be
// nil (anonymous). The unauthorized branch stays even though authenticated
// routes already reject anonymous callers, so the policy holds on its own
// if a route is ever wired without the auth router.
func Authorize(action Action, ownerID uint64, user *models.User) Decision {
	if action == ActionRead {
		return Allow
	}
	if user == nil || user.ID == 0 {
		return DenyUnauthorized
	}
	if user.ID != ownerID {
		return DenyForbidden
	}
	return Allow
}
