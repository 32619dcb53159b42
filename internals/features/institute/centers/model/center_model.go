package model

import (
	"time"

	"github.com/google/uuid"
)

// Center adalah Authorized Training Center (ATC): subcenter/franchise
// yang memiliki sebagian siswa.
type Center struct {
	CenterID       uuid.UUID  `json:"center_id" gorm:"column:center_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CenterCode     string     `json:"center_code" gorm:"column:center_code;uniqueIndex;not null"`
	CenterName     string     `json:"center_name" gorm:"column:center_name;not null"`
	CenterEmail    string     `json:"center_email" gorm:"column:center_email"`
	CenterPhone    string     `json:"center_phone" gorm:"column:center_phone"`
	CenterAddress  string     `json:"center_address" gorm:"column:center_address"`
	CenterCity     string     `json:"center_city" gorm:"column:center_city"`
	CenterIsActive bool       `json:"center_is_active" gorm:"column:center_is_active;not null;default:true"`
	CreatedAt      time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (Center) TableName() string {
	return "centers"
}
