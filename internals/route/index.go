// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogRoute "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/catalog/route"
	enrollRoute "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/route"
	timetableRoute "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/route"
	authRoute "github.com/L20660042/Backend-Proy-sub000/internals/features/users/auth/route"

	"github.com/L20660042/Backend-Proy-sub000/internals/constants"
	authMw "github.com/L20660042/Backend-Proy-sub000/internals/middlewares/auth"
)

// SetupRoutes arma los tres grupos de la API:
//
//	/api    → público (login)
//	/api/u  → autenticado (horarios, catálogo de consulta, perfil)
//	/api/a  → solo admin (catálogo, bloques de horario, inscripciones, registro)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Registrando rutas públicas...")
	public := app.Group("/api")
	authRoute.AuthPublicRoutes(public, db)

	log.Println("[INFO] Registrando rutas de usuario...")
	user := app.Group("/api/u", authMw.AuthMiddleware())
	authRoute.AuthUserRoutes(user, db)
	catalogRoute.CatalogUserRoutes(user, db)
	timetableRoute.TimetableUserRoutes(user, db)

	log.Println("[INFO] Registrando rutas de administración...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorAdmin("administración académica"), constants.AdminOnly...),
	)
	authRoute.AuthAdminRoutes(admin, db)
	catalogRoute.CatalogAdminRoutes(admin, db)
	timetableRoute.TimetableAdminRoutes(admin, db)
	enrollRoute.EnrollmentAdminRoutes(admin, db)
}
