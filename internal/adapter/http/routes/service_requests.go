package routes

import (
	"portal_servicos/internal/adapter/http/handlers"
	"portal_servicos/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathRequestTypes = "/request-types"
	PathRequests     = "/requests"
	PathPix          = "/pix"
	PathWebhooks     = "/webhooks"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	RequestTypes *handlers.RequestTypeHandler
	Requests     *handlers.ServiceRequestHandler
	Attachments  *handlers.AttachmentHandler
	Chat         *handlers.ChatHandler
	Pix          *handlers.PixHandler

	// MockPayments exposes the settlement simulation route.
	MockPayments bool
}

func addServiceRequestRoutes(rg *gin.RouterGroup, h Handlers) {
	types := rg.Group(PathRequestTypes, middleware.Actor())
	{
		types.POST("", h.RequestTypes.CreateRequestType)
		types.GET("", h.RequestTypes.ListRequestTypes)
		types.GET("/:type_id", h.RequestTypes.GetRequestType)
	}

	requests := rg.Group(PathRequests, middleware.Actor())
	{
		requests.POST("", h.Requests.CreateServiceRequest)
		requests.GET("", h.Requests.ListServiceRequests)
		requests.GET("/trash", h.Requests.ListTrash)
		requests.GET("/:id", h.Requests.GetServiceRequest)
		requests.PATCH("/:id/start", h.Requests.StartResolution)
		requests.PATCH("/:id/send-for-validation", h.Requests.SendForValidation)
		requests.PATCH("/:id/approve", h.Requests.Approve)
		requests.PATCH("/:id/reopen", h.Requests.Reopen)
		requests.DELETE("/:id", h.Requests.SoftDelete)
		requests.PATCH("/:id/restore", h.Requests.Restore)
		requests.POST("/:id/document/retry", h.Requests.RetryDocument)

		requests.POST("/:id/attachments", h.Attachments.AddAttachment)
		requests.GET("/:id/attachments/:attachment_id", h.Attachments.DownloadAttachment)
		requests.DELETE("/:id/attachments/:attachment_id", h.Attachments.RemoveAttachment)

		requests.POST("/:id/chat", h.Chat.PostMessage)

		requests.POST("/:id/pix", h.Pix.GenerateCharge)
		requests.GET("/:id/pix/wait", h.Pix.WaitSettlement)
	}

	pix := rg.Group(PathPix)
	{
		pix.POST("/validate", h.Pix.ValidatePayload)
		if h.MockPayments {
			pix.POST("/settlements", h.Pix.SimulateSettlement)
		}
	}

	rg.POST(PathWebhooks+"/payments", h.Pix.PaymentWebhook)
}
