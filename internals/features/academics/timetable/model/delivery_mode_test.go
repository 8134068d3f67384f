package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDeliveryModeHybrid(t *testing.T) {
	for _, raw := range []string{
		"hybrid", "Híbrido", "HIBRIDO", "semi-presencial", "Semipresencial",
		"  Semi Presencial  ", "blended", "Mixto",
	} {
		assert.Equal(t, DeliveryHybrid, NormalizeDeliveryMode(raw), raw)
	}
}

func TestNormalizeDeliveryModeAsynchronous(t *testing.T) {
	for _, raw := range []string{
		"asynchronous", "Asíncrono", "ASINCRONA", "virtual", "Online",
		"en línea", "a distancia", "Remoto",
	} {
		assert.Equal(t, DeliveryAsynchronous, NormalizeDeliveryMode(raw), raw)
	}
}

func TestNormalizeDeliveryModeDefaultsToInPerson(t *testing.T) {
	for _, raw := range []string{
		"", "presencial", "Presencial", "in_person", "IN PERSON",
		"lo que sea", "???", "físico",
	} {
		assert.Equal(t, DeliveryInPerson, NormalizeDeliveryMode(raw), raw)
	}
}

func TestNormalizeDeliveryModeDeterministic(t *testing.T) {
	// misma entrada, misma salida en llamadas repetidas
	for i := 0; i < 3; i++ {
		assert.Equal(t, DeliveryHybrid, NormalizeDeliveryMode("Semi-Presencial"))
	}
}
