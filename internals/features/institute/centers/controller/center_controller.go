package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/institute/centers/dto"
	model "eduadmin_backend/internals/features/institute/centers/model"
	helper "eduadmin_backend/internals/helpers"
)

type CenterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCenterController(db *gorm.DB) *CenterController {
	return &CenterController{DB: db, Validator: validator.New()}
}

// GET /api/a/centers
func (ctl *CenterController) List(c *fiber.Ctx) error {
	p := helper.ParsePageWith(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Center{}).Where("deleted_at IS NULL")
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("center_name ILIKE ? OR center_code ILIKE ? OR center_city ILIKE ?", like, like, like)
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("center_is_active = ?", strings.EqualFold(active, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count centers")
	}

	var centers []model.Center
	order := p.OrderClause(map[string]string{
		"created_at": "created_at",
		"name":       "center_name",
		"code":       "center_code",
	})
	if err := q.Order(order).Limit(p.PerPage).Offset(p.Offset()).Find(&centers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch centers")
	}

	return helper.Success(c, "OK", fiber.Map{
		"centers":    centers,
		"pagination": helper.NewPageMeta(p, total),
	})
}

// GET /api/a/centers/:id
func (ctl *CenterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid center id")
	}
	var center model.Center
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&center, "center_id = ? AND deleted_at IS NULL", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Center not found")
	}
	return helper.Success(c, "OK", center)
}

// POST /api/a/centers
func (ctl *CenterController) Create(c *fiber.Ctx) error {
	var req dto.CreateCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Center code already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create center")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Center created", m)
}

// PUT /api/a/centers/:id
func (ctl *CenterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid center id")
	}
	var center model.Center
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&center, "center_id = ? AND deleted_at IS NULL", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Center not found")
	}

	var req dto.UpdateCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&center)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&center).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update center")
	}
	return helper.Success(c, "Center updated", center)
}

// DELETE /api/a/centers/:id (soft delete)
func (ctl *CenterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid center id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Model(&model.Center{}).
		Where("center_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete center")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Center not found")
	}
	return helper.Success(c, "Center deleted", nil)
}
