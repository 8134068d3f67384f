// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	d "github.com/L20660042/Backend-Proy-sub000/internals/features/users/auth/dto"
	m "github.com/L20660042/Backend-Proy-sub000/internals/features/users/auth/model"
	svc "github.com/L20660042/Backend-Proy-sub000/internals/features/users/auth/service"
	helper "github.com/L20660042/Backend-Proy-sub000/internals/helpers"
	authMw "github.com/L20660042/Backend-Proy-sub000/internals/middlewares/auth"
	"github.com/L20660042/Backend-Proy-sub000/internals/constants"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validate: v}
}

/* =========================
   POST /auth/register (solo admin)
   ========================= */

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// la identidad vinculada debe corresponder al rol
	if req.UserRole == constants.RoleTeacher && req.UserTeacherID == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Un docente requiere user_teacher_id")
	}
	if req.UserRole == constants.RoleStudent && req.UserStudentID == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Un alumno requiere user_student_id")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	user := req.ToModel(string(hashed))
	if err := ac.DB.Create(&user).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Usuario registrado", user)
}

/* =========================
   POST /auth/login
   ========================= */

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user m.UserModel
	err := ac.DB.Where("user_email = ? AND user_active = TRUE", req.UserEmail).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := svc.IssueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	return helper.JsonOK(c, "Sesión iniciada", d.LoginResponse{AccessToken: token, User: user})
}

/* =========================
   GET /auth/me
   ========================= */

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authMw.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user m.UserModel
	if err := ac.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "Perfil", user)
}
