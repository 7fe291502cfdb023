package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"vidtube/internal/common"
	"vidtube/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc handler với recover để server luôn trả về response, kể cả khi panic.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// errorEnvelope dựng status code và envelope lỗi từ một error.
// Lỗi ngoài taxonomy trả về message chung chung, không lộ chi tiết nội bộ ra client.
func errorEnvelope(err error) (int, fiber.Map) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		}
	}
	return common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"status":  "error",
	}
}

// HandleResponse chuẩn hóa response trả về cho client theo envelope thống nhất.
// Lỗi không thuộc taxonomy được ghi log đầy đủ và trả về như internal server error.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if !errors.As(err, &customErr) {
			logger.GetErrorLogger().WithError(err).WithField("path", c.Path()).Error("Lỗi ngoài taxonomy khi xử lý request")
		}
		statusCode, body := errorEnvelope(err)
		JSONResponse(c, statusCode, body)
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleCreatedResponse trả về envelope thành công với status 201 cho thao tác tạo mới
func (h *BaseHandler) HandleCreatedResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		h.HandleResponse(c, nil, err)
		return
	}

	JSONResponse(c, common.StatusCreated, fiber.Map{
		"code":    common.StatusCreated,
		"message": common.MsgCreated,
		"data":    data,
		"status":  "success",
	})
}
