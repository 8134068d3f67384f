package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	raw, ok := c.Locals(key).(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("claim " + key + " no presente en el token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("claim " + key + " inválido")
	}
	return id, nil
}

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, "user_id")
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

// GetDocenteID regresa la identidad de docente vinculada al token.
func GetDocenteID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, "docente_id")
}

// GetAlumnoID regresa la identidad de alumno vinculada al token.
func GetAlumnoID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, "alumno_id")
}
