// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/users/auth/model"
	"github.com/L20660042/Backend-Proy-sub000/internals/configs"
)

const accessTokenTTL = 24 * time.Hour

// IssueAccessToken firma el token con los claims que consumen los middlewares
// (user_id, role y las identidades académicas vinculadas).
func IssueAccessToken(user *model.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET no configurado")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	if user.UserTeacherID != nil {
		claims["docente_id"] = user.UserTeacherID.String()
	}
	if user.UserStudentID != nil {
		claims["alumno_id"] = user.UserStudentID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
