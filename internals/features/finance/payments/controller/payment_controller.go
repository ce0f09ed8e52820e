// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/finance/payments/dto"
	m "schoolku_backend/internals/features/finance/payments/model"
	"schoolku_backend/internals/features/finance/payments/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.PaymentService
}

func New(db *gorm.DB, v *validator.Validate) *PaymentController {
	return &PaymentController{DB: db, Validate: v, Service: service.NewPaymentService(db)}
}

// POST /api/a/payments — buat tagihan SPP + Snap token.
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var req d.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.Service.CreateTuition(&row); err != nil {
		if strings.Contains(err.Error(), "tidak ditemukan") {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		log.Println("[ERROR] create tuition:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}
	return helper.JsonCreated(c, "Payment created", d.FromModel(row))
}

// GET /api/a/payments
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.PaymentModel{})
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("payment_student_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if period := strings.TrimSpace(c.Query("period")); period != "" {
		q = q.Where("payment_period = ?", period)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/payments/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.PaymentModel
	if err := ctl.DB.First(&row, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// GET /api/u/payments — tagihan milik student yang login.
func (ctl *PaymentController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if !helperAuth.IsStudent(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya untuk siswa")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var rows []m.PaymentModel
	if err := ctl.DB.
		Where("payment_student_id = ?", student.StudentID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", d.FromModels(rows), nil)
}

// POST /api/public/payments/notification — webhook Midtrans (tanpa auth).
// Selalu balas 200 untuk order yang tidak dikenal supaya gateway berhenti retry.
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	raw := c.Body()
	row, err := ctl.Service.ApplyNotification(raw)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			log.Println("[WARN] webhook untuk order tidak dikenal")
			return helper.JsonOK(c, "ignored", nil)
		}
		log.Println("[ERROR] webhook:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"payment_id": row.PaymentID,
		"status":     row.PaymentStatus,
	})
}
