// file: internals/features/academics/timetable/model/delivery_mode.go
package model

import "strings"

// Sinónimos legacy → modo canónico. Las llaves ya están canonicalizadas
// (minúsculas, sin acentos, espacios colapsados).
var deliveryModeSynonyms = map[string]DeliveryMode{
	// canónicos
	"in_person":    DeliveryInPerson,
	"hybrid":       DeliveryHybrid,
	"asynchronous": DeliveryAsynchronous,

	// presencial
	"presencial": DeliveryInPerson,
	"in person":  DeliveryInPerson,
	"fisico":     DeliveryInPerson,
	"fisica":     DeliveryInPerson,

	// híbrido
	"hibrido":         DeliveryHybrid,
	"hibrida":         DeliveryHybrid,
	"semipresencial":  DeliveryHybrid,
	"semi presencial": DeliveryHybrid,
	"blended":         DeliveryHybrid,
	"mixto":           DeliveryHybrid,
	"mixta":           DeliveryHybrid,

	// asíncrono
	"asincrono":   DeliveryAsynchronous,
	"asincrona":   DeliveryAsynchronous,
	"asincronico": DeliveryAsynchronous,
	"asincronica": DeliveryAsynchronous,
	"virtual":     DeliveryAsynchronous,
	"online":      DeliveryAsynchronous,
	"en linea":    DeliveryAsynchronous,
	"a distancia": DeliveryAsynchronous,
	"remoto":      DeliveryAsynchronous,
	"remota":      DeliveryAsynchronous,
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"à", "a", "è", "e", "ì", "i", "ò", "o", "ù", "u", "ñ", "n",
)

// NormalizeDeliveryMode mapea texto libre/legacy a un modo canónico.
// Función total: entrada vacía o no reconocida regresa in_person.
func NormalizeDeliveryMode(raw string) DeliveryMode {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = accentFolder.Replace(s)
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	// los canónicos usan guion bajo
	if mode, ok := deliveryModeSynonyms[s]; ok {
		return mode
	}
	if mode, ok := deliveryModeSynonyms[strings.ReplaceAll(s, " ", "_")]; ok {
		return mode
	}
	return DeliveryInPerson
}
