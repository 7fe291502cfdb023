// Package subhdl xử lý các request của domain subscriptions.
package subhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "vidtube/internal/api/base/handler"
	basesvc "vidtube/internal/api/base/service"
	subsvc "vidtube/internal/api/subscriptions/service"
	usermodels "vidtube/internal/api/users/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
)

// SubscriptionHandler xử lý các request đăng ký kênh
type SubscriptionHandler struct {
	basehdl.BaseHandler
	subService *subsvc.SubscriptionService
	userCRUD   basesvc.BaseServiceMongo[usermodels.User]
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subService, err := subsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	userCol, exists := global.RegistryCollections.Get(global.ColNames.Users)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Users)
	}
	return &SubscriptionHandler{
		subService: subService,
		userCRUD:   basesvc.NewBaseServiceMongo[usermodels.User](userCol),
	}, nil
}

// HandleToggleSubscription đảo trạng thái đăng ký trên một kênh. Kênh phải tồn tại.
func (h *SubscriptionHandler) HandleToggleSubscription(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	channelID, err := h.ParseObjectIDParam(c, "channelId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	exists, err := h.userCRUD.DocumentExists(c.Context(), bson.M{"_id": channelID})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if !exists {
		h.HandleResponse(c, nil, common.ErrNotFound)
		return nil
	}

	subscribed, err := h.subService.Toggle(c.Context(), userID, channelID)
	h.HandleResponse(c, fiber.Map{"subscribed": subscribed}, err)
	return nil
}

// HandleListChannelSubscribers trả về danh sách người đăng ký của một kênh
func (h *SubscriptionHandler) HandleListChannelSubscribers(c fiber.Ctx) error {
	channelID, err := h.ParseObjectIDParam(c, "channelId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	subscribers, err := h.subService.ListChannelSubscribers(c.Context(), channelID)
	h.HandleResponse(c, subscribers, err)
	return nil
}

// HandleListSubscribedChannels trả về danh sách kênh user hiện tại đã đăng ký
func (h *SubscriptionHandler) HandleListSubscribedChannels(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	channels, err := h.subService.ListSubscribedChannels(c.Context(), userID)
	h.HandleResponse(c, channels, err)
	return nil
}
