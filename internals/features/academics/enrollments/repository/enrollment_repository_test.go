package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/model"
)

func TestDedupTriples(t *testing.T) {
	g1, s1, d1 := uuid.New(), uuid.New(), uuid.New()
	g2, s2, d2 := uuid.New(), uuid.New(), uuid.New()

	mk := func(g, s, d uuid.UUID) model.CourseEnrollmentModel {
		return model.CourseEnrollmentModel{
			CourseEnrollmentGroupID:   g,
			CourseEnrollmentSubjectID: s,
			CourseEnrollmentTeacherID: d,
		}
	}

	// altas duplicadas históricas de la misma oferta
	rows := []model.CourseEnrollmentModel{
		mk(g1, s1, d1),
		mk(g2, s2, d2),
		mk(g1, s1, d1),
		mk(g1, s1, d1),
	}

	triples := DedupTriples(rows)
	assert.Len(t, triples, 2)
	assert.Equal(t, g1, triples[0].GroupID)
	assert.Equal(t, g2, triples[1].GroupID)
}

func TestDedupTriplesEmpty(t *testing.T) {
	assert.Empty(t, DedupTriples(nil))
}

func TestDedupTriplesSameGroupDifferentSubject(t *testing.T) {
	g, d := uuid.New(), uuid.New()
	rows := []model.CourseEnrollmentModel{
		{CourseEnrollmentGroupID: g, CourseEnrollmentSubjectID: uuid.New(), CourseEnrollmentTeacherID: d},
		{CourseEnrollmentGroupID: g, CourseEnrollmentSubjectID: uuid.New(), CourseEnrollmentTeacherID: d},
	}
	// materias distintas ⇒ combinaciones distintas
	assert.Len(t, DedupTriples(rows), 2)
}
