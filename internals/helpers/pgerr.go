package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError traduce errores de Postgres (pgx o lib/pq) a (status, mensaje).
// 23505 = unique violation, 23503 = FK violation, 23P01 = exclusion.
func MapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgCodeToStatus(pgxErr.Code, pgxErr.Message)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgCodeToStatus(string(pqErr.Code), pqErr.Message)
	}
	return http.StatusInternalServerError, err.Error()
}

func pgCodeToStatus(code, msg string) (int, string) {
	switch code {
	case "23505":
		return http.StatusConflict, "Registro duplicado (violación de índice único)."
	case "23503":
		return http.StatusBadRequest, "Referencia no encontrada (violación de llave foránea)."
	case "23P01":
		return http.StatusConflict, "Empalme de horario detectado por la base de datos."
	default:
		return http.StatusInternalServerError, msg
	}
}
