package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleCenter = "center" // akun ATC, scoped ke satu center
)

type AdminUser struct {
	AdminUserID       uuid.UUID  `json:"admin_user_id" gorm:"column:admin_user_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminUserName     string     `json:"admin_user_name" gorm:"column:admin_user_name;not null"`
	AdminUserEmail    string     `json:"admin_user_email" gorm:"column:admin_user_email;uniqueIndex;not null"`
	AdminUserPassword string     `json:"-" gorm:"column:admin_user_password;not null"`
	AdminUserRole     string     `json:"admin_user_role" gorm:"column:admin_user_role;not null;default:'admin'"`
	AdminUserCenterID *uuid.UUID `json:"admin_user_center_id,omitempty" gorm:"column:admin_user_center_id;type:uuid"`
	AdminUserIsActive bool       `json:"admin_user_is_active" gorm:"column:admin_user_is_active;not null;default:true"`
	CreatedAt         time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
