package http

import (
	"net/http"

	"github.com/teamhub-intranet/leave-backend-go/internal/handler/http/response"
	"github.com/teamhub-intranet/leave-backend-go/internal/service/approval"
)

type ApprovalHandler interface {
	PendingQueue(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	approvalService *approval.Service
}

func NewApprovalHandler(approvalService *approval.Service) ApprovalHandler {
	return &ApprovalHandlerImpl{approvalService: approvalService}
}

// PendingQueue implements ApprovalHandler.
func (a *ApprovalHandlerImpl) PendingQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := a.approvalService.PendingQueue(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, queue)
}
