package models

import (
	"time"
)

// GenerationRun is the audit record for one workflow run, scheduled or manual.
type GenerationRun struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	InstanceID string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	Trigger    string    `gorm:"type:varchar(20);not null"`
	Date       string    `gorm:"type:varchar(10);index"`
	IndexKey   string    `gorm:"type:varchar(64)"`
	Model      string    `gorm:"type:varchar(128);index"`
	StartedAt  time.Time `gorm:"index;not null"`
	Status     string    `gorm:"type:varchar(16);not null;index"`
	DurationMs int64     `gorm:"not null;default:0"`

	PromptTokens     int `gorm:"not null;default:0"`
	CompletionTokens int `gorm:"not null;default:0"`
	TotalTokens      int `gorm:"not null;default:0"`

	Cost  *float64
	Error string `gorm:"type:text"`
}

type AccessLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"index;not null"`
	Method    string    `gorm:"type:varchar(10);not null"`
	Path      string    `gorm:"type:text;not null;index:,length:256"`
	Status    int       `gorm:"not null;index"`
	Duration  time.Duration
	ClientIP  string `gorm:"type:varchar(45);not null"`
	UserAgent string `gorm:"type:text"`
	BytesSent int    `gorm:"not null;default:0"`
}

func (GenerationRun) TableName() string {
	return "generation_runs"
}

func (AccessLog) TableName() string {
	return "access_logs"
}
