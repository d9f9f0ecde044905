package response

import (
	"time"

	"photodesk/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	Kind      entity.NotificationKind `json:"kind"`
	Message   string                  `json:"message"`
	RefID     *string                 `json:"ref_id,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        notification.ID.String(),
		Kind:      notification.Kind,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}

	if notification.RefID != nil {
		id := notification.RefID.String()
		resp.RefID = &id
	}

	return resp
}
