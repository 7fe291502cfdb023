package basehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vidtube/internal/common"
	"vidtube/internal/global"
)

// UploadFormFile đọc một file từ multipart form và đẩy lên object storage,
// trả về URL công khai của file. File vắng mặt trả về lỗi BadRequest.
func UploadFormFile(c fiber.Ctx, fieldName, folder string) (string, error) {
	fileHeader, err := c.FormFile(fieldName)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Thiếu file %s trong multipart form", fieldName),
			common.StatusBadRequest,
			nil,
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(common.ErrCodeBusinessUpload, "Không thể đọc file upload", common.StatusBadRequest, err)
	}
	defer file.Close()

	return global.MediaStore.Save(c.Context(), folder, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
}
