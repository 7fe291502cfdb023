// Package basehdl cung cấp các tiện ích chung cho handler:
// parse/validate request, đọc param ObjectID, phân trang và chuẩn hóa response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"vidtube/internal/common"
	"vidtube/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseHandler chứa các helper dùng chung, được embed vào các domain handler
type BaseHandler struct{}

// ParseRequestBody parse request body JSON vào input rồi validate bằng struct tag.
// Dùng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	reader := bytes.NewReader(c.Body())
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ValidateInput validate struct input với các validate tag đã đăng ký
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseObjectIDParam đọc một URL param và chuyển thành ObjectID.
// Trả về lỗi BadRequest khi param rỗng hoặc sai định dạng.
func (h *BaseHandler) ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Thiếu param %s trong URL", name),
			common.StatusBadRequest,
			nil,
		)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Param %s '%s' không đúng định dạng MongoDB ObjectID (chuỗi hex 24 ký tự)", name, id),
			common.StatusBadRequest,
			nil,
		)
	}

	return objID, nil
}

// CurrentUserID đọc user id đã xác thực từ context request (do SessionMiddleware ghi).
// Trả về lỗi 401 khi request chưa qua middleware xác thực.
func (h *BaseHandler) CurrentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, ok := c.Locals("user_id").(string)
	if !ok || id == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return objID, nil
}

// ParsePagination đọc page và limit từ query string.
// page mặc định 1, limit mặc định 10, giá trị không hợp lệ được đưa về mặc định.
func (h *BaseHandler) ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}
