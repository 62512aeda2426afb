package permission

import (
	"fmt"

	"bulletin/internal/shared/authorization"
	"bulletin/internal/shared/logger"
)

// Resources and actions guarded by the router.
const (
	ResourceAnnouncements = "announcements"
	ResourceFeed          = "feed"

	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
	ActionMark   = "mark"
)

// DefaultPolicies returns the built-in role grants. Admins manage
// announcements and may use the feed like any other user.
func DefaultPolicies() [][]string {
	admin := authorization.RoleAdmin.String()
	user := authorization.RoleUser.String()

	return [][]string{
		{admin, ResourceAnnouncements, ActionRead},
		{admin, ResourceAnnouncements, ActionWrite},
		{admin, ResourceAnnouncements, ActionDelete},
		{admin, ResourceFeed, ActionRead},
		{admin, ResourceFeed, ActionMark},

		{user, ResourceFeed, ActionRead},
		{user, ResourceFeed, ActionMark},
	}
}

// SeedDefaultPolicies adds any missing default grants. Existing rows are
// left untouched so operators can extend the table by hand.
func SeedDefaultPolicies(e *Enforcer, log logger.Interface) error {
	for _, p := range DefaultPolicies() {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			log.Errorw("failed to add default policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	log.Infow("default permissions ensured", "count", len(DefaultPolicies()))
	return nil
}
