// file: internals/features/school/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campusModel "schoolku_backend/internals/features/school/campuses/model"
	d "schoolku_backend/internals/features/school/rooms/dto"
	m "schoolku_backend/internals/features/school/rooms/model"
	helper "schoolku_backend/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// POST /api/a/rooms
func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req d.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()

	// campus harus ada
	var count int64
	if err := ctl.DB.Model(&campusModel.CampusModel{}).
		Where("campus_id = ?", row.RoomCampusID).
		Count(&count).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Campus tidak ditemukan")
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode ruangan sudah dipakai di campus ini")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Room created", d.FromModel(row))
}

// GET /api/a/rooms?campus_id=&q=
func (ctl *RoomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.RoomModel{})
	if campusID := strings.TrimSpace(c.Query("campus_id")); campusID != "" {
		id, err := uuid.Parse(campusID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "campus_id tidak valid")
		}
		q = q.Where("room_campus_id = ?", id)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("room_code ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.RoomModel
	if err := q.Order("room_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/rooms/:id
func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.RoomModel
	if err := ctl.DB.First(&row, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Room tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// PUT /api/a/rooms/:id
func (ctl *RoomController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.RoomModel
	if err := ctl.DB.First(&row, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Room tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&row)

	if err := ctl.DB.Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode ruangan sudah dipakai di campus ini")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Room updated", d.FromModel(row))
}

// DELETE /api/a/rooms/:id
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&m.RoomModel{}, "room_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Room tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Room deleted", fiber.Map{"room_id": id})
}
