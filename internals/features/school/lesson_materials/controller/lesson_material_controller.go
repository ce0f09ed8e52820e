// file: internals/features/school/lesson_materials/controller/lesson_material_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classroomModel "schoolku_backend/internals/features/school/classrooms/model"
	d "schoolku_backend/internals/features/school/lesson_materials/dto"
	m "schoolku_backend/internals/features/school/lesson_materials/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	helperOSS "schoolku_backend/internals/helpers/oss"
)

type LessonMaterialController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *LessonMaterialController {
	return &LessonMaterialController{DB: db, Validate: v}
}

func (ctl *LessonMaterialController) checkRefs(req d.CreateLessonMaterialRequest) (int, string, error) {
	var n int64
	if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_id = ?", req.LessonMaterialClassroomID).Count(&n).Error; err != nil {
		return 0, "", err
	}
	if n == 0 {
		return fiber.StatusNotFound, "Classroom tidak ditemukan", nil
	}
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", req.LessonMaterialSubjectID).Count(&n).Error; err != nil {
		return 0, "", err
	}
	if n == 0 {
		return fiber.StatusNotFound, "Subject tidak ditemukan", nil
	}
	if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", req.LessonMaterialTeacherID).Count(&n).Error; err != nil {
		return 0, "", err
	}
	if n == 0 {
		return fiber.StatusNotFound, "Teacher tidak ditemukan", nil
	}
	return 0, "", nil
}

// ownsMaterial: admin/owner bebas; guru hanya boleh menyentuh materi miliknya
// (teacher record yang terhubung ke user login).
func (ctl *LessonMaterialController) ownsMaterial(c *fiber.Ctx, teacherID uuid.UUID) (bool, error) {
	if helperAuth.CanManageMasterData(c) {
		return true, nil
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return false, nil
	}
	var n int64
	if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ? AND teacher_user_id = ?", teacherID, userID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// POST /api/a/lesson-materials (multipart; field "file" opsional)
func (ctl *LessonMaterialController) Create(c *fiber.Ctx) error {
	var req d.CreateLessonMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	status, msg, err := ctl.checkRefs(req)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if status != 0 {
		return helper.JsonError(c, status, msg)
	}

	row := req.ToModel()

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		svc, err := helperOSS.NewOSSServiceFromEnv("lesson-materials")
		if err != nil {
			log.Println("[ERROR] OSS init:", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Penyimpanan file tidak tersedia")
		}
		var url string
		if constants.DetectFileTypeFromExt(fh.Filename) == constants.FileTypeImage {
			url, err = svc.UploadAsWebP(c.Context(), fh, "files")
		} else {
			url, err = svc.UploadRaw(c.Context(), fh, "files")
		}
		if err != nil {
			log.Println("[ERROR] OSS upload:", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Upload file gagal")
		}
		row.LessonMaterialFileURL = &url
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Lesson material created", d.FromModel(row))
}

// GET /api/a/lesson-materials
func (ctl *LessonMaterialController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.LessonMaterialModel{})
	if cid := strings.TrimSpace(c.Query("classroom_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
		}
		q = q.Where("lesson_material_classroom_id = ?", id)
	}
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		q = q.Where("lesson_material_subject_id = ?", id)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("lesson_material_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.LessonMaterialModel
	if err := q.Order("lesson_material_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/lesson-materials/:id
func (ctl *LessonMaterialController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.LessonMaterialModel
	if err := ctl.DB.First(&row, "lesson_material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson material tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// PUT /api/a/lesson-materials/:id
func (ctl *LessonMaterialController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.LessonMaterialModel
	if err := ctl.DB.First(&row, "lesson_material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson material tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	ok, err := ctl.ownsMaterial(c, row.LessonMaterialTeacherID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Materi milik guru lain")
	}

	var req d.UpdateLessonMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&row)

	// File baru menggantikan yang lama; objek lama dibersihkan best-effort.
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		svc, err := helperOSS.NewOSSServiceFromEnv("lesson-materials")
		if err != nil {
			log.Println("[ERROR] OSS init:", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Penyimpanan file tidak tersedia")
		}
		var url string
		if constants.DetectFileTypeFromExt(fh.Filename) == constants.FileTypeImage {
			url, err = svc.UploadAsWebP(c.Context(), fh, "files")
		} else {
			url, err = svc.UploadRaw(c.Context(), fh, "files")
		}
		if err != nil {
			log.Println("[ERROR] OSS upload:", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Upload file gagal")
		}
		if row.LessonMaterialFileURL != nil {
			if key, err := helperOSS.ExtractKeyFromPublicURL(*row.LessonMaterialFileURL); err == nil {
				if err := svc.DeleteObject(c.Context(), key); err != nil {
					log.Println("[WARN] OSS delete old object:", err)
				}
			}
		}
		row.LessonMaterialFileURL = &url
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Lesson material updated", d.FromModel(row))
}

// DELETE /api/a/lesson-materials/:id (soft delete; file dibiarkan di OSS)
func (ctl *LessonMaterialController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.LessonMaterialModel
	if err := ctl.DB.First(&row, "lesson_material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson material tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	ok, err := ctl.ownsMaterial(c, row.LessonMaterialTeacherID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Materi milik guru lain")
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Lesson material deleted", fiber.Map{"lesson_material_id": id})
}
