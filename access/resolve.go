package access

// ResolveRole maps a caller to their effective role on a project. Direct
// membership (by id or normalized email) wins. Otherwise team accesses are
// scanned: an editor team returns immediately and always beats a viewer team
// regardless of scan order; a viewer team only counts when no editor team
// matched. Callers with no match get RoleNone.
func (s *Store) ResolveRole(projectID, userID, email string) Role {
	settings := s.byProject[projectID]
	if settings == nil {
		return RoleNone
	}
	normalized := normalizeEmail(email)
	for _, member := range settings.Members {
		if (userID != "" && member.ID == userID) ||
			(normalized != "" && normalizeEmail(member.Email) == normalized) {
			return member.Role
		}
	}
	if normalized == "" {
		return RoleNone
	}
	viewerMatched := false
	for _, ta := range settings.TeamAccesses {
		if !containsEmail(ta.MemberEmails, normalized) {
			continue
		}
		if ta.Role == RoleEditor {
			return RoleEditor
		}
		viewerMatched = true
	}
	if viewerMatched {
		return RoleViewer
	}
	return RoleNone
}

func containsEmail(emails []string, normalized string) bool {
	for _, email := range emails {
		if normalizeEmail(email) == normalized {
			return true
		}
	}
	return false
}

// CanRolePerform answers whether a role may perform a fine-grained editor
// action on a project. Owners may do everything, viewers nothing; editors are
// subject to the project's shared permission toggles.
func (s *Store) CanRolePerform(projectID string, role Role, key PermissionKey) bool {
	switch role {
	case RoleOwner:
		return true
	case RoleEditor:
		settings := s.byProject[projectID]
		if settings == nil {
			return false
		}
		return settings.EditorPermissions.Enabled(key)
	default:
		return false
	}
}

// FindAccessByToken scans all projects' share links for an active link with
// the given token. Inactive links never resolve.
func (s *Store) FindAccessByToken(token string) (projectID string, role Role, ok bool) {
	if token == "" {
		return "", RoleNone, false
	}
	for id, settings := range s.byProject {
		for _, link := range settings.ShareLinks {
			if link.IsActive && link.Token == token {
				return id, link.Role, true
			}
		}
	}
	return "", RoleNone, false
}
