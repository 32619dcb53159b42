package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "eduadmin_backend/internals/features/cms/dto"
	model "eduadmin_backend/internals/features/cms/model"
	helper "eduadmin_backend/internals/helpers"
)

type ContentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db, Validator: validator.New()}
}

// PUT /api/a/cms/contents — upsert per (section,key).
func (ctl *ContentController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &model.CmsContent{
		CmsContentSection: strings.ToLower(strings.TrimSpace(req.Section)),
		CmsContentKey:     strings.TrimSpace(req.Key),
		CmsContentValue:   req.Value,
	}
	err := ctl.DB.WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cms_content_section"}, {Name: "cms_content_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"cms_content_value", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save content")
	}
	return helper.Success(c, "Content saved", m)
}

// GET /api/cms/contents/:section — semua key dalam satu section.
func (ctl *ContentController) ListBySection(c *fiber.Ctx) error {
	section := strings.ToLower(strings.TrimSpace(c.Params("section")))
	var contents []model.CmsContent
	err := ctl.DB.WithContext(c.UserContext()).
		Where("cms_content_section = ?", section).
		Order("cms_content_key ASC").
		Find(&contents).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch contents")
	}

	// Bentuk map key→value supaya halaman publik gampang konsumsi.
	kv := make(map[string]string, len(contents))
	for _, item := range contents {
		kv[item.CmsContentKey] = item.CmsContentValue
	}
	return helper.Success(c, "OK", fiber.Map{"section": section, "contents": kv})
}

// DELETE /api/a/cms/contents/:section/:key
func (ctl *ContentController) Delete(c *fiber.Ctx) error {
	section := strings.ToLower(strings.TrimSpace(c.Params("section")))
	res := ctl.DB.WithContext(c.UserContext()).
		Where("cms_content_section = ? AND cms_content_key = ?", section, c.Params("key")).
		Delete(&model.CmsContent{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete content")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Content not found")
	}
	return helper.Success(c, "Content deleted", nil)
}
