package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type SurveyQuestion struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	QuestionID   string         `gorm:"uniqueIndex;not null"`
	QuestionText string         `gorm:"type:text;not null"`
	QuestionType string         `gorm:"not null"`
	Options      pq.StringArray `gorm:"type:text[]"`
	OrderIndex   int            `gorm:"not null"`
	IsRequired   bool           `gorm:"not null"`
	SurveyType   string         `gorm:"index;not null;default:default"`
	IsActive     bool           `gorm:"not null"`
}

type SurveyResponse struct {
	BaseModel
	SessionID string            `gorm:"index;not null"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index"`
	Answers   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
}

type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	Role      string    `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
