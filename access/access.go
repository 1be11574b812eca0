// Package access resolves a caller's effective role on a project and gates
// fine-grained editor actions. Roles come from direct membership, team
// membership or an active share link. The editor itself never consults this
// package; callers deny before invoking mutations.
package access

import "time"

// Role is a project-level access tier.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	// RoleNone means the caller has no access to the project.
	RoleNone Role = ""
)

// PermissionKey names one of the fixed editor permission toggles.
type PermissionKey string

const (
	PermEditTextContent PermissionKey = "editTextContent"
	PermEditTypography  PermissionKey = "editTypography"
	PermEditColors      PermissionKey = "editColors"
	PermMoveAndResize   PermissionKey = "moveAndResizeElements"
	PermAddNewElements  PermissionKey = "addNewElements"
	PermUploadOwnAssets PermissionKey = "uploadOwnAssets"
	PermDeleteElements  PermissionKey = "deleteElements"
	PermManagePages     PermissionKey = "managePages"
	PermExportFiles     PermissionKey = "exportFiles"
)

// PermissionKeys lists every toggle in definition order.
var PermissionKeys = []PermissionKey{
	PermEditTextContent,
	PermEditTypography,
	PermEditColors,
	PermMoveAndResize,
	PermAddNewElements,
	PermUploadOwnAssets,
	PermDeleteElements,
	PermManagePages,
	PermExportFiles,
}

// EditorPermissions is the single per-project flag set applied uniformly to
// every non-owner editor.
type EditorPermissions struct {
	EditTextContent       bool `json:"editTextContent"`
	EditTypography        bool `json:"editTypography"`
	EditColors            bool `json:"editColors"`
	MoveAndResizeElements bool `json:"moveAndResizeElements"`
	AddNewElements        bool `json:"addNewElements"`
	UploadOwnAssets       bool `json:"uploadOwnAssets"`
	DeleteElements        bool `json:"deleteElements"`
	ManagePages           bool `json:"managePages"`
	ExportFiles           bool `json:"exportFiles"`
}

// DefaultEditorPermissions is the "safe editor" starting posture: content and
// typography edits, own uploads and file export on; everything structural off.
func DefaultEditorPermissions() EditorPermissions {
	return EditorPermissions{
		EditTextContent: true,
		EditTypography:  true,
		UploadOwnAssets: true,
		ExportFiles:     true,
	}
}

// Enabled reports the state of one toggle. Unknown keys are disabled.
func (p EditorPermissions) Enabled(key PermissionKey) bool {
	switch key {
	case PermEditTextContent:
		return p.EditTextContent
	case PermEditTypography:
		return p.EditTypography
	case PermEditColors:
		return p.EditColors
	case PermMoveAndResize:
		return p.MoveAndResizeElements
	case PermAddNewElements:
		return p.AddNewElements
	case PermUploadOwnAssets:
		return p.UploadOwnAssets
	case PermDeleteElements:
		return p.DeleteElements
	case PermManagePages:
		return p.ManagePages
	case PermExportFiles:
		return p.ExportFiles
	default:
		return false
	}
}

// set flips one toggle in place.
func (p *EditorPermissions) set(key PermissionKey, enabled bool) {
	switch key {
	case PermEditTextContent:
		p.EditTextContent = enabled
	case PermEditTypography:
		p.EditTypography = enabled
	case PermEditColors:
		p.EditColors = enabled
	case PermMoveAndResize:
		p.MoveAndResizeElements = enabled
	case PermAddNewElements:
		p.AddNewElements = enabled
	case PermUploadOwnAssets:
		p.UploadOwnAssets = enabled
	case PermDeleteElements:
		p.DeleteElements = enabled
	case PermManagePages:
		p.ManagePages = enabled
	case PermExportFiles:
		p.ExportFiles = enabled
	}
}

// TeamMember is one directly invited collaborator. Exactly one member holds
// RoleOwner; this is a convention kept by the store's mutations, not a
// structurally validated invariant (a corrupt stored record could violate it).
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// TeamAccess maps a whole team to a role by member email. Team roles are
// restricted to editor and viewer.
type TeamAccess struct {
	TeamID       string   `json:"teamId"`
	Role         Role     `json:"role"`
	MemberEmails []string `json:"memberEmails"`
}

// ShareLink grants link-holders a role. Inactive links never resolve. Link
// roles are restricted to editor and viewer by construction.
type ShareLink struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Settings is the per-project access aggregate.
type Settings struct {
	ProjectID         string            `json:"projectId"`
	Members           []TeamMember      `json:"members"`
	TeamAccesses      []TeamAccess      `json:"teamAccesses"`
	EditorPermissions EditorPermissions `json:"editorPermissions"`
	ShareLinks        []ShareLink       `json:"shareLinks"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
