package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "eduadmin_backend/internals/helpers"
	"eduadmin_backend/internals/helpers/storage"
)

const maxUploadBytes = 10 << 20 // 10 MB per file

type UploadController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewUploadController(db *gorm.DB, blob storage.BlobService) *UploadController {
	return &UploadController{DB: db, Blob: blob}
}

// POST /api/upload — satu file, gambar dikonversi WebP, sisanya apa adanya.
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required (field: file)")
	}
	if fh.Size > maxUploadBytes {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge, "File exceeds 10 MB limit")
	}

	dir := strings.TrimSpace(c.FormValue("dir"))
	if dir == "" {
		dir = "general"
	}

	var url string
	if storage.IsImageContentType(fh) {
		url, err = ctl.Blob.UploadImage(c.UserContext(), dir, fh)
	} else {
		url, err = ctl.Blob.UploadAny(c.UserContext(), dir, fh)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Upload failed")
	}
	return helper.Success(c, "File uploaded", fiber.Map{"url": url})
}

// POST /api/upload-gallery — multi file, field "files".
// Satu file gagal tidak membatalkan yang lain; yang gagal dilaporkan.
func (ctl *UploadController) UploadGallery(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Multipart form is required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "At least one file is required (field: files)")
	}

	urls := make([]string, 0, len(files))
	var failed []string
	for _, fh := range files {
		if fh.Size > maxUploadBytes || !storage.IsImageContentType(fh) {
			failed = append(failed, fh.Filename)
			continue
		}
		url, err := ctl.Blob.UploadImage(c.UserContext(), "gallery", fh)
		if err != nil {
			failed = append(failed, fh.Filename)
			continue
		}
		urls = append(urls, url)
	}
	if len(urls) == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "All uploads failed", failed)
	}
	return helper.Success(c, "Files uploaded", fiber.Map{"urls": urls, "failed": failed})
}

// POST /api/local-upload — paksa simpan ke disk lokal walau OSS aktif.
// Dipakai untuk berkas yang memang harus ikut deploy (template bg dsb).
func (ctl *UploadController) LocalUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required (field: file)")
	}
	if fh.Size > maxUploadBytes {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge, "File exceeds 10 MB limit")
	}

	dir := strings.TrimSpace(c.FormValue("dir"))
	if dir == "" {
		dir = "local"
	}
	local := storage.NewLocalBlobService()
	var url string
	if storage.IsImageContentType(fh) {
		url, err = local.UploadImage(c.UserContext(), dir, fh)
	} else {
		url, err = local.UploadAny(c.UserContext(), dir, fh)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Upload failed")
	}
	return helper.Success(c, "File uploaded", fiber.Map{"url": url})
}
