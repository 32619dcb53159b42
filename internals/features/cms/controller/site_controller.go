package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/cms/dto"
	model "eduadmin_backend/internals/features/cms/model"
	helper "eduadmin_backend/internals/helpers"
)

// SiteController mengurus galeri, dokumen legal, dan anggota tim.
type SiteController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSiteController(db *gorm.DB) *SiteController {
	return &SiteController{DB: db, Validator: validator.New()}
}

/* ================= Gallery ================= */

// GET /api/cms/gallery
func (ctl *SiteController) ListGallery(c *fiber.Ctx) error {
	var items []model.GalleryItem
	err := ctl.DB.WithContext(c.UserContext()).
		Order("gallery_item_sort_order ASC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch gallery")
	}
	return helper.Success(c, "OK", items)
}

// POST /api/a/cms/gallery
func (ctl *SiteController) CreateGalleryItem(c *fiber.Ctx) error {
	var req dto.GalleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create gallery item")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gallery item created", m)
}

// PUT /api/a/cms/gallery/:id
func (ctl *SiteController) UpdateGalleryItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	var m model.GalleryItem
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.First(&m, "gallery_item_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Gallery item not found")
	}
	var req dto.GalleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update gallery item")
	}
	return helper.Success(c, "Gallery item updated", m)
}

// DELETE /api/a/cms/gallery/:id
func (ctl *SiteController) DeleteGalleryItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.GalleryItem{}, "gallery_item_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete gallery item")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Gallery item not found")
	}
	return helper.Success(c, "Gallery item deleted", nil)
}

/* ================= Legal documents ================= */

// GET /api/cms/legal
func (ctl *SiteController) ListLegalDocuments(c *fiber.Ctx) error {
	var docs []model.LegalDocument
	err := ctl.DB.WithContext(c.UserContext()).
		Order("legal_document_title ASC").
		Find(&docs).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch legal documents")
	}
	return helper.Success(c, "OK", docs)
}

// GET /api/cms/legal/:slug
func (ctl *SiteController) GetLegalDocument(c *fiber.Ctx) error {
	var doc model.LegalDocument
	err := ctl.DB.WithContext(c.UserContext()).
		First(&doc, "legal_document_slug = ?", c.Params("slug")).Error
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Legal document not found")
	}
	return helper.Success(c, "OK", doc)
}

// POST /api/a/cms/legal
func (ctl *SiteController) CreateLegalDocument(c *fiber.Ctx) error {
	var req dto.LegalDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Slug already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create legal document")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Legal document created", m)
}

// PUT /api/a/cms/legal/:id
func (ctl *SiteController) UpdateLegalDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.LegalDocument
	if err := db.First(&m, "legal_document_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Legal document not found")
	}
	var req dto.LegalDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Slug already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update legal document")
	}
	return helper.Success(c, "Legal document updated", m)
}

// DELETE /api/a/cms/legal/:id
func (ctl *SiteController) DeleteLegalDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.LegalDocument{}, "legal_document_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete legal document")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Legal document not found")
	}
	return helper.Success(c, "Legal document deleted", nil)
}

/* ================= Team members ================= */

// GET /api/cms/team
func (ctl *SiteController) ListTeamMembers(c *fiber.Ctx) error {
	var members []model.TeamMember
	err := ctl.DB.WithContext(c.UserContext()).
		Order("team_member_sort_order ASC, team_member_name ASC").
		Find(&members).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch team members")
	}
	return helper.Success(c, "OK", members)
}

// POST /api/a/cms/team
func (ctl *SiteController) CreateTeamMember(c *fiber.Ctx) error {
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create team member")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Team member created", m)
}

// PUT /api/a/cms/team/:id
func (ctl *SiteController) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.TeamMember
	if err := db.First(&m, "team_member_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Team member not found")
	}
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update team member")
	}
	return helper.Success(c, "Team member updated", m)
}

// DELETE /api/a/cms/team/:id
func (ctl *SiteController) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.TeamMember{}, "team_member_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete team member")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Team member not found")
	}
	return helper.Success(c, "Team member deleted", nil)
}
