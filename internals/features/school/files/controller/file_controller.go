package controller

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/features/school/files/dto"
	"ksms_backend/internals/features/school/files/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type FileController struct {
	Svc *service.FileService
}

func NewFileController(svc *service.FileService) *FileController {
	return &FileController{Svc: svc}
}

// POST /teacher/upload (multipart "file")
func (ctl *FileController) Upload(c *fiber.Ctx) error {
	user, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.FromError(c, helper.InvalidField("file", "is required"))
	}
	src, err := fh.Open()
	if err != nil {
		return helper.FromError(c, err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return helper.FromError(c, err)
	}

	f, err := ctl.Svc.Upload(c.UserContext(), fh.Filename, data, &user.ID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "File uploaded", dto.FromModel(f))
}

// GET /teacher/files
func (ctl *FileController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctl.Svc.List(c.UserContext(), p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Files fetched", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /teacher/download/:filename
func (ctl *FileController) Download(c *fiber.Ctx) error {
	f, err := ctl.Svc.Open(c.UserContext(), c.Params("filename"))
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] download %s", f.Filename)
	return c.Download(f.Filepath, f.Filename)
}

// DELETE /teacher/files/:id
func (ctl *FileController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	f, err := ctl.Svc.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "File deleted", dto.FromModel(f))
}
