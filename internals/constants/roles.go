package constants

import "fmt"

// User roles (column user.user_type)
const (
	RoleAdmin      = "admin"
	RoleCoach      = "coach"
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// Access denied message templates
const (
	ErrOnlyAdminsCanAccess  = "Only admins can %s"
	ErrOnlyCoachesCanAccess = "Only coaches can %s"
	MsgAccessDenied         = "Access denied"
)

func RoleErrorAdmin(action string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, action)
}

func RoleErrorCoach(action string) string {
	return fmt.Sprintf(ErrOnlyCoachesCanAccess, action)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCoach,
		RoleStudent,
		RoleInstructor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	CoachOnly = []string{
		RoleCoach,
	}

	CoachAndAdmin = []string{
		RoleCoach,
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
