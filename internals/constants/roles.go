package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "docente"
	RoleStudent = "alumno"
)

// Plantillas de mensajes de error por rol
const (
	ErrOnlyAdminsCanAccess   = "Solo un administrador puede acceder a %s."
	ErrOnlyTeachersCanAccess = "Solo docentes o administradores pueden acceder a %s."
	ErrRoleCannotAccess      = "Tu rol no tiene acceso a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorGeneric(feature string) string {
	return fmt.Sprintf(ErrRoleCannotAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
