// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctl "github.com/L20660042/Backend-Proy-sub000/internals/features/users/auth/controller"
)

// AuthPublicRoutes: login sin token.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	ac := authctl.NewAuthController(db, nil)
	public.Post("/auth/login", ac.Login)
}

// AuthUserRoutes: perfil del usuario autenticado.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ac := authctl.NewAuthController(db, nil)
	user.Get("/auth/me", ac.Me)
}

// AuthAdminRoutes: alta de usuarios (solo admin).
func AuthAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ac := authctl.NewAuthController(db, nil)
	admin.Post("/auth/register", ac.Register)
}
