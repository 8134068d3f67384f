// file: internals/helpers/timeutil/timeutil.go
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMinutes convierte "HH:MM" (o "H:MM") a minutos desde medianoche.
// Rango aceptado: 00:00 .. 23:59.
func ParseMinutes(hhmm string) (int, error) {
	s := strings.TrimSpace(hhmm)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("hora inválida: %q (se espera HH:MM)", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("hora inválida: %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("hora inválida: %q", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("hora fuera de rango: %q", hhmm)
	}
	return h*60 + m, nil
}

// FormatMinutes regresa la forma canónica "HH:MM" (zero-padded).
func FormatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Overlaps evalúa traslape estricto de intervalos semiabiertos [aStart, aEnd) y
// [bStart, bEnd): tocar en la frontera (aEnd == bStart) NO es traslape.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
