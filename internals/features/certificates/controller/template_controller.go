package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "eduadmin_backend/internals/features/certificates/dto"
	model "eduadmin_backend/internals/features/certificates/model"
	helper "eduadmin_backend/internals/helpers"
)

type TemplateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db, Validator: validator.New()}
}

// PUT /api/a/templates — upsert per (code,type).
func (ctl *TemplateController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fields payload")
	}
	err = ctl.DB.WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "template_config_code"}, {Name: "template_config_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"template_config_bg_url", "template_config_fields", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save template")
	}
	return helper.Success(c, "Template saved", m)
}

// GET /api/templates?type=
func (ctl *TemplateController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TemplateConfig{})
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("template_config_type = ?", t)
	}
	var templates []model.TemplateConfig
	if err := q.Order("template_config_code ASC").Find(&templates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch templates")
	}
	return helper.Success(c, "OK", templates)
}

// GET /api/templates/:code?type=certificate
func (ctl *TemplateController) Get(c *fiber.Ctx) error {
	t := strings.TrimSpace(c.Query("type"))
	if t == "" {
		t = model.TemplateTypeCertificate
	}
	var tmpl model.TemplateConfig
	err := ctl.DB.WithContext(c.UserContext()).
		First(&tmpl, "template_config_code = ? AND template_config_type = ?", c.Params("code"), t).Error
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Template not found")
	}
	return helper.Success(c, "OK", tmpl)
}

// DELETE /api/a/templates/:id
func (ctl *TemplateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid template id")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.TemplateConfig{}, "template_config_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete template")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Template not found")
	}
	return helper.Success(c, "Template deleted", nil)
}
