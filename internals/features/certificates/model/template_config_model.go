package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TemplateTypeCertificate = "certificate"
	TemplateTypeMarksheet   = "marksheet"
)

/* =========================================================
   TemplateConfig: layout sertifikat/marksheet. Satu baris per
   (template_code, type); field diposisikan persen dari kiri-atas
   background supaya ikut skala saat dicetak.
   ========================================================= */

type TemplateConfig struct {
	TemplateConfigID      uuid.UUID      `json:"template_config_id" gorm:"column:template_config_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TemplateConfigCode    string         `json:"template_config_code" gorm:"column:template_config_code;not null;uniqueIndex:uq_template_code_type"`
	TemplateConfigType    string         `json:"template_config_type" gorm:"column:template_config_type;not null;uniqueIndex:uq_template_code_type"` // certificate|marksheet
	TemplateConfigBgURL   string         `json:"template_config_bg_url" gorm:"column:template_config_bg_url"`
	TemplateConfigFields  datatypes.JSON `json:"template_config_fields" gorm:"column:template_config_fields"` // map[name]FieldStyle
	CreatedAt             time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt             time.Time      `json:"updated_at" gorm:"column:updated_at"`
}

func (TemplateConfig) TableName() string {
	return "template_configs"
}

// FieldStyle adalah isi JSON template_config_fields per field.
type FieldStyle struct {
	TopPct     float64 `json:"top_pct"`
	LeftPct    float64 `json:"left_pct"`
	FontSize   int     `json:"font_size"`
	FontWeight string  `json:"font_weight"`
	FontStyle  string  `json:"font_style"`
	Color      string  `json:"color"`
	FontFamily string  `json:"font_family"`
	Visible    bool    `json:"visible"`
}
