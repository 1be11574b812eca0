package access

import "encoding/json"

// Persisted-state normalization. The stored form is a JSON object keyed by
// project id. Recovery policy, in order of severity: a corrupt blob yields an
// empty map; a structurally invalid project record is dropped; missing
// optional arrays come back as empty slices. No path returns an error to the
// caller — a bad store must never take down the session.

// DecodeSettingsMap parses persisted access settings with partial recovery.
func DecodeSettingsMap(data []byte) map[string]*Settings {
	out := make(map[string]*Settings)
	if len(data) == 0 {
		return out
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return out
	}
	for projectID, entry := range raw {
		settings := decodeSettings(projectID, entry)
		if settings == nil {
			continue
		}
		out[projectID] = settings
	}
	return out
}

func decodeSettings(projectID string, data []byte) *Settings {
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil
	}
	if settings.ProjectID == "" {
		settings.ProjectID = projectID
	}
	if settings.Members == nil {
		settings.Members = []TeamMember{}
	}
	if settings.TeamAccesses == nil {
		settings.TeamAccesses = []TeamAccess{}
	}
	if settings.ShareLinks == nil {
		settings.ShareLinks = []ShareLink{}
	}
	for i := range settings.TeamAccesses {
		if settings.TeamAccesses[i].MemberEmails == nil {
			settings.TeamAccesses[i].MemberEmails = []string{}
		}
	}
	return &settings
}

// EncodeSettingsMap serializes the settings map for persistence.
func EncodeSettingsMap(settings map[string]*Settings) ([]byte, error) {
	return json.Marshal(settings)
}
