// file: internals/features/academics/timetable/model/timetable_block_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/L20660042/Backend-Proy-sub000/internals/helpers/timeutil"
)

type BlockKind string

const (
	BlockKindClass           BlockKind = "class"
	BlockKindExtracurricular BlockKind = "extracurricular"
)

type DeliveryMode string

const (
	DeliveryInPerson     DeliveryMode = "in_person"
	DeliveryHybrid       DeliveryMode = "hybrid"
	DeliveryAsynchronous DeliveryMode = "asynchronous"
)

type TimetableBlockModel struct {
	// PK
	TimetableBlockID uuid.UUID `gorm:"column:timetable_block_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_block_id"`

	// Periodo dueño + día (la rebanada sobre la que se valida empalme)
	TimetableBlockPeriodID  uuid.UUID `gorm:"column:timetable_block_period_id;type:uuid;not null;index:idx_timetable_blocks_period_day,priority:1" json:"timetable_block_period_id"`
	TimetableBlockDayOfWeek int       `gorm:"column:timetable_block_day_of_week;not null;index:idx_timetable_blocks_period_day,priority:2" json:"timetable_block_day_of_week"`

	TimetableBlockKind         BlockKind    `gorm:"column:timetable_block_kind;type:varchar(20);not null" json:"timetable_block_kind"`
	TimetableBlockDeliveryMode DeliveryMode `gorm:"column:timetable_block_delivery_mode;type:varchar(20);not null;default:'in_person'" json:"timetable_block_delivery_mode"`

	// Horario en formato canónico "HH:MM" (24h)
	TimetableBlockStartTime string `gorm:"column:timetable_block_start_time;type:varchar(5);not null" json:"timetable_block_start_time"`
	TimetableBlockEndTime   string `gorm:"column:timetable_block_end_time;type:varchar(5);not null" json:"timetable_block_end_time"`

	// Offsets en minutos, sincronizados en BeforeSave (para el anti-empalme)
	TimetableBlockStartMin int `gorm:"column:timetable_block_start_min;type:smallint;not null" json:"timetable_block_start_min"`
	TimetableBlockEndMin   int `gorm:"column:timetable_block_end_min;type:smallint;not null" json:"timetable_block_end_min"`

	// Aula física; nil = sin aula (sesiones asíncronas)
	TimetableBlockRoom *string `gorm:"column:timetable_block_room;type:varchar(60);index" json:"timetable_block_room,omitempty"`

	// Actores según kind: class → grupo/materia/docente; extracurricular → actividad
	TimetableBlockGroupID    *uuid.UUID `gorm:"column:timetable_block_group_id;type:uuid;index" json:"timetable_block_group_id,omitempty"`
	TimetableBlockSubjectID  *uuid.UUID `gorm:"column:timetable_block_subject_id;type:uuid" json:"timetable_block_subject_id,omitempty"`
	TimetableBlockTeacherID  *uuid.UUID `gorm:"column:timetable_block_teacher_id;type:uuid;index" json:"timetable_block_teacher_id,omitempty"`
	TimetableBlockActivityID *uuid.UUID `gorm:"column:timetable_block_activity_id;type:uuid;index" json:"timetable_block_activity_id,omitempty"`

	// Snapshot de nombres para armar horarios sin joins (grupo, materia, docente, actividad)
	TimetableBlockLabels datatypes.JSONMap `gorm:"column:timetable_block_labels;type:jsonb" json:"timetable_block_labels,omitempty"`

	// Audit
	TimetableBlockCreatedAt time.Time      `gorm:"column:timetable_block_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_block_created_at"`
	TimetableBlockUpdatedAt time.Time      `gorm:"column:timetable_block_updated_at;type:timestamptz;not null;autoUpdateTime" json:"timetable_block_updated_at"`
	TimetableBlockDeletedAt gorm.DeletedAt `gorm:"column:timetable_block_deleted_at;index" json:"timetable_block_deleted_at,omitempty"`
}

func (TimetableBlockModel) TableName() string { return "timetable_blocks" }

// BeforeSave mantiene los offsets en minutos alineados con los strings HH:MM.
func (m *TimetableBlockModel) BeforeSave(tx *gorm.DB) error {
	start, err := timeutil.ParseMinutes(m.TimetableBlockStartTime)
	if err != nil {
		return err
	}
	end, err := timeutil.ParseMinutes(m.TimetableBlockEndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("la hora de fin debe ser mayor a la de inicio (%s-%s)",
			m.TimetableBlockStartTime, m.TimetableBlockEndTime)
	}
	m.TimetableBlockStartMin = start
	m.TimetableBlockEndMin = end
	// formato canónico zero-padded
	m.TimetableBlockStartTime = timeutil.FormatMinutes(start)
	m.TimetableBlockEndTime = timeutil.FormatMinutes(end)
	return nil
}

// TimeRange regresa la ventana "HH:MM-HH:MM" para mensajes al usuario.
func (m *TimetableBlockModel) TimeRange() string {
	return m.TimetableBlockStartTime + "-" + m.TimetableBlockEndTime
}

// Label arma la etiqueta legible del bloque a partir del snapshot.
func (m *TimetableBlockModel) Label() string {
	get := func(k string) string {
		if m.TimetableBlockLabels == nil {
			return ""
		}
		if v, ok := m.TimetableBlockLabels[k].(string); ok {
			return v
		}
		return ""
	}
	if m.TimetableBlockKind == BlockKindExtracurricular {
		if name := get("activity_name"); name != "" {
			return name
		}
		return "actividad extracurricular"
	}
	subject := get("subject_name")
	group := get("group_name")
	switch {
	case subject != "" && group != "":
		return subject + " (" + group + ")"
	case subject != "":
		return subject
	case group != "":
		return group
	default:
		return "clase"
	}
}
