package dto

import (
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/notification"
)

// NotificationListResponse is a paginated notification listing
type NotificationListResponse struct {
	Notifications []notification.Notification `json:"notifications"`
	TotalCount    int                         `json:"total_count"`
	Page          int                         `json:"page"`
	PageSize      int                         `json:"page_size"`
	TotalPages    int                         `json:"total_pages"`
}

// ToNotificationListResponse builds the paginated notification listing
func ToNotificationListResponse(notifications []notification.Notification, totalCount int, p Pagination) NotificationListResponse {
	if notifications == nil {
		notifications = []notification.Notification{}
	}
	return NotificationListResponse{
		Notifications: notifications,
		TotalCount:    totalCount,
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalPages:    calculateTotalPages(totalCount, p.PageSize),
	}
}
