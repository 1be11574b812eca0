package access

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"posterlib/observability"
)

// Store holds access settings for all known projects. Like the editor it is
// single-goroutine by contract.
type Store struct {
	log observability.Logger
	now func() time.Time

	byProject map[string]*Settings
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger.
func WithLogger(log observability.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		log:       observability.NopLogger{},
		now:       time.Now,
		byProject: make(map[string]*Settings),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the store contents with a decoded settings map.
func (s *Store) Load(settings map[string]*Settings) {
	if settings == nil {
		settings = make(map[string]*Settings)
	}
	s.byProject = settings
}

// Snapshot returns the live settings map for persistence.
func (s *Store) Snapshot() map[string]*Settings { return s.byProject }

// normalizeEmail lower-cases and trims an address for comparisons.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Ensure seeds settings for a project if none exist yet: the owner as sole
// member and default editor permissions.
func (s *Store) Ensure(projectID, ownerID, ownerName, ownerEmail string) *Settings {
	if existing, ok := s.byProject[projectID]; ok {
		return existing
	}
	settings := &Settings{
		ProjectID: projectID,
		Members: []TeamMember{{
			ID:    ownerID,
			Name:  ownerName,
			Email: normalizeEmail(ownerEmail),
			Role:  RoleOwner,
		}},
		TeamAccesses:      []TeamAccess{},
		EditorPermissions: DefaultEditorPermissions(),
		ShareLinks:        []ShareLink{},
		UpdatedAt:         s.now(),
	}
	s.byProject[projectID] = settings
	s.log.Info("project access seeded", observability.String("project", projectID))
	return settings
}

// Get returns the settings for a project, or nil.
func (s *Store) Get(projectID string) *Settings { return s.byProject[projectID] }

func (s *Store) touch(settings *Settings) { settings.UpdatedAt = s.now() }

// AddMember invites a collaborator as editor or viewer. Duplicate emails and
// attempts to add a second owner are refused.
func (s *Store) AddMember(projectID, name, email string, role Role) bool {
	settings := s.byProject[projectID]
	if settings == nil || role == RoleOwner {
		return false
	}
	normalized := normalizeEmail(email)
	for _, m := range settings.Members {
		if normalizeEmail(m.Email) == normalized {
			return false
		}
	}
	settings.Members = append(settings.Members, TeamMember{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Email: normalized,
		Role:  role,
	})
	s.touch(settings)
	return true
}

// UpdateMemberRole changes a member's role. The owner's role can never be
// changed through this operation; such calls are silently ignored.
func (s *Store) UpdateMemberRole(projectID, memberID string, role Role) {
	settings := s.byProject[projectID]
	if settings == nil {
		return
	}
	for i := range settings.Members {
		member := &settings.Members[i]
		if member.ID != memberID || member.Role == RoleOwner {
			continue
		}
		member.Role = role
		s.touch(settings)
		return
	}
}

// RemoveMember removes a non-owner member by id.
func (s *Store) RemoveMember(projectID, memberID string) {
	settings := s.byProject[projectID]
	if settings == nil {
		return
	}
	for i, member := range settings.Members {
		if member.ID != memberID || member.Role == RoleOwner {
			continue
		}
		settings.Members = append(settings.Members[:i], settings.Members[i+1:]...)
		s.touch(settings)
		return
	}
}

// SetEditorPermission flips one of the shared editor toggles.
func (s *Store) SetEditorPermission(projectID string, key PermissionKey, enabled bool) {
	settings := s.byProject[projectID]
	if settings == nil {
		return
	}
	settings.EditorPermissions.set(key, enabled)
	s.touch(settings)
}

// AddTeamAccess maps a team to a role. Owner is not a valid team role.
func (s *Store) AddTeamAccess(projectID, teamID string, role Role, memberEmails []string) bool {
	settings := s.byProject[projectID]
	if settings == nil || (role != RoleEditor && role != RoleViewer) {
		return false
	}
	emails := make([]string, 0, len(memberEmails))
	for _, email := range memberEmails {
		if normalized := normalizeEmail(email); normalized != "" {
			emails = append(emails, normalized)
		}
	}
	settings.TeamAccesses = append(settings.TeamAccesses, TeamAccess{
		TeamID:       teamID,
		Role:         role,
		MemberEmails: emails,
	})
	s.touch(settings)
	return true
}

// UpdateTeamAccess changes the role of an existing team mapping.
func (s *Store) UpdateTeamAccess(projectID, teamID string, role Role) {
	settings := s.byProject[projectID]
	if settings == nil || (role != RoleEditor && role != RoleViewer) {
		return
	}
	for i := range settings.TeamAccesses {
		if settings.TeamAccesses[i].TeamID == teamID {
			settings.TeamAccesses[i].Role = role
			s.touch(settings)
			return
		}
	}
}

// RemoveTeamAccess deletes a team mapping.
func (s *Store) RemoveTeamAccess(projectID, teamID string) {
	settings := s.byProject[projectID]
	if settings == nil {
		return
	}
	for i, ta := range settings.TeamAccesses {
		if ta.TeamID == teamID {
			settings.TeamAccesses = append(settings.TeamAccesses[:i], settings.TeamAccesses[i+1:]...)
			s.touch(settings)
			return
		}
	}
}

// CreateShareLink mints an active link with an opaque random token. Owner is
// not a valid link role.
func (s *Store) CreateShareLink(projectID string, role Role) *ShareLink {
	settings := s.byProject[projectID]
	if settings == nil || (role != RoleEditor && role != RoleViewer) {
		return nil
	}
	now := s.now()
	link := ShareLink{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	settings.ShareLinks = append(settings.ShareLinks, link)
	s.touch(settings)
	return &settings.ShareLinks[len(settings.ShareLinks)-1]
}

// SetShareLinkActive toggles a link without deleting it.
func (s *Store) SetShareLinkActive(projectID, linkID string, active bool) {
	settings := s.byProject[projectID]
	if settings == nil {
		return
	}
	for i := range settings.ShareLinks {
		link := &settings.ShareLinks[i]
		if link.ID != linkID {
			continue
		}
		link.IsActive = active
		link.UpdatedAt = s.now()
		s.touch(settings)
		return
	}
}

// RevokeShareLink removes a link entirely.
func (s *Store) RevokeShareLink(projectID, linkID string) {
	settings := s.byProject[projectID]
	if settings == nil {
		return
	}
	for i, link := range settings.ShareLinks {
		if link.ID == linkID {
			settings.ShareLinks = append(settings.ShareLinks[:i], settings.ShareLinks[i+1:]...)
			s.touch(settings)
			return
		}
	}
}
