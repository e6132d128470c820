package handlers

import (
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// FileHandler accepts avatar uploads.
type FileHandler struct {
	files services.IFileService
}

func NewFileHandler(files services.IFileService) *FileHandler {
	return &FileHandler{files: files}
}

// Store saves an uploaded avatar and returns its record.
// POST /files (multipart, field "file")
func (h *FileHandler) Store(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return fail(c, services.ErrInvalidInput)
	}

	src, err := header.Open()
	if err != nil {
		return fail(c, services.ErrInvalidInput)
	}
	defer src.Close()

	file, err := h.files.SaveAvatar(c.UserContext(), header.Filename, src)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}
