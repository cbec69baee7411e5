package constants

import "fmt"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleParent  Role = "PARENT"
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
)

var AllRoles = []Role{RoleStudent, RoleParent, RoleAdmin, RoleTeacher}

func (r Role) Valid() bool {
	for _, x := range AllRoles {
		if r == x {
			return true
		}
	}
	return false
}

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "Only admins can access %s"
	ErrOnlyStudentsCanAccess = "Only students can access %s"
	ErrOnlyTeachersCanAccess = "Only teachers can access %s"
)

func RoleErrorAdmin(feature string) string   { return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature) }
func RoleErrorStudent(feature string) string { return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature) }
func RoleErrorTeacher(feature string) string { return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature) }
