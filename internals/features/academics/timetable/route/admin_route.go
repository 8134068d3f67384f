// file: internals/features/academics/timetable/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttctl "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/controller"
)

// TimetableAdminRoutes registra el CRUD de bloques (solo admin).
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	blocks := ttctl.New(db, nil)

	grp := admin.Group("/bloques-horario")
	grp.Post("/", blocks.Create)
	grp.Get("/", blocks.List)
	grp.Patch("/:id", blocks.Patch)
	grp.Delete("/:id", blocks.Delete)
}
