package dto

import (
	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	model "eduadmin_backend/internals/features/certificates/model"
)

// UpsertTemplateRequest menimpa layout untuk (code,type) sekaligus.
type UpsertTemplateRequest struct {
	TemplateCode    string                      `json:"template_code" validate:"required,min=1,max=64"`
	TemplateType    string                      `json:"template_type" validate:"required,oneof=certificate marksheet"`
	BackgroundURL   string                      `json:"background_url" validate:"omitempty,url"`
	Fields          map[string]model.FieldStyle `json:"fields" validate:"required,min=1"`
}

func (r UpsertTemplateRequest) ToModel() (*model.TemplateConfig, error) {
	raw, err := sonic.Marshal(r.Fields)
	if err != nil {
		return nil, err
	}
	return &model.TemplateConfig{
		TemplateConfigCode:   r.TemplateCode,
		TemplateConfigType:   r.TemplateType,
		TemplateConfigBgURL:  r.BackgroundURL,
		TemplateConfigFields: datatypes.JSON(raw),
	}, nil
}
