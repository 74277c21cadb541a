package model

// Permission represents a string tag for a specific management capability.
type Permission string

const (
	// PermissionManageDepartments allows managing academic departments.
	PermissionManageDepartments Permission = "manage_departments"

	// PermissionManageFaculty allows managing faculty member profiles.
	PermissionManageFaculty Permission = "manage_faculty"

	// PermissionManageNews allows managing news and event posts.
	PermissionManageNews Permission = "manage_news"

	// PermissionManageDownloads allows managing downloadable documents.
	PermissionManageDownloads Permission = "manage_downloads"

	// PermissionManageNotifications allows managing site notifications.
	PermissionManageNotifications Permission = "manage_notifications"

	// PermissionManageResearch allows managing research entries.
	PermissionManageResearch Permission = "manage_research"

	// PermissionManageSliders allows managing homepage sliders.
	PermissionManageSliders Permission = "manage_sliders"

	// PermissionManageSettings allows editing site settings.
	PermissionManageSettings Permission = "manage_settings"

	// PermissionManageAdmins allows managing admin accounts.
	PermissionManageAdmins Permission = "manage_admins"
)

// AllPermissions is a slice of all available permission tags.
var AllPermissions = []Permission{
	PermissionManageDepartments,
	PermissionManageFaculty,
	PermissionManageNews,
	PermissionManageDownloads,
	PermissionManageNotifications,
	PermissionManageResearch,
	PermissionManageSliders,
	PermissionManageSettings,
	PermissionManageAdmins,
}

// DefaultPermissions returns the fixed permission set derived from a role.
func DefaultPermissions(role Role) []Permission {
	switch role {
	case RoleSuperAdmin:
		return append([]Permission(nil), AllPermissions...)
	case RoleAdmin:
		return []Permission{
			PermissionManageDepartments,
			PermissionManageFaculty,
			PermissionManageNews,
			PermissionManageDownloads,
			PermissionManageNotifications,
			PermissionManageResearch,
			PermissionManageSliders,
		}
	case RoleModerator:
		return []Permission{
			PermissionManageNews,
			PermissionManageNotifications,
			PermissionManageDownloads,
		}
	default:
		return []Permission{
			PermissionManageNews,
			PermissionManageDownloads,
			PermissionManageNotifications,
		}
	}
}

// ValidPermission reports whether p is part of the fixed enumeration.
func ValidPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if known == p {
			return true
		}
	}
	return false
}
