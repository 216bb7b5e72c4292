package dto

import (
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/timezone"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
	Actor      string `json:"actor"`
	CreatedAt  string `json:"created_at"`
}

func (r *AuditLogResponse) FromModel(model model.AuditLog) {
	r.ID = model.ID
	r.EntityType = model.EntityType
	r.EntityID = model.EntityID
	r.Action = model.Action
	r.OldValue = model.OldValue
	r.NewValue = model.NewValue
	r.Actor = model.Actor
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateTimeFormat)
}

type GetAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"audit_logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AuditLogs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		r.AuditLogs[i].FromModel(mod)
	}
}
