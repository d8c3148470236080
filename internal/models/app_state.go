package models

import "time"

type StoredState struct {
	Key       string    `gorm:"primaryKey;column:state_key"`
	Payload   string    `gorm:"not null;column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (StoredState) TableName() string {
	return "app_state"
}
