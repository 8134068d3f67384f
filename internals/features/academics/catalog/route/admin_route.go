// file: internals/features/academics/catalog/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catctl "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/catalog/controller"
)

// CatalogAdminRoutes registra las altas del catálogo (solo admin).
func CatalogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	cat := catctl.NewCatalogController(db, nil)

	admin.Post("/periodos", cat.CreatePeriod)
	admin.Post("/carreras", cat.CreateCareer)
	admin.Post("/grupos", cat.CreateGroup)
	admin.Post("/materias", cat.CreateSubject)
	admin.Post("/actividades", cat.CreateActivity)
	admin.Post("/asignaciones-clase", cat.CreateClassAssignment)
}

// CatalogUserRoutes registra las consultas del catálogo (cualquier usuario
// autenticado).
func CatalogUserRoutes(user fiber.Router, db *gorm.DB) {
	cat := catctl.NewCatalogController(db, nil)

	user.Get("/periodos", cat.ListPeriods)
	user.Get("/carreras", cat.ListCareers)
	user.Get("/grupos", cat.ListGroups)
	user.Get("/materias", cat.ListSubjects)
	user.Get("/actividades", cat.ListActivities)
	user.Get("/asignaciones-clase", cat.ListClassAssignments)
}
