package dto

import "github.com/fekuna/omnipos-warehouse-service/internal/model"

type ActionRequest struct {
	ID         string `json:"id"`
	ActionType string `json:"actionType"`
}

type ActionResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Alert   model.Alert              `json:"alert"`
	Alerts  []model.Alert            `json:"alerts"`
	Order   *model.OrderHistoryEntry `json:"order,omitempty"`
}
