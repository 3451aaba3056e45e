package v1

import (
	"github.com/gin-gonic/gin"

	"vendordash/internal/service/cache"
)

// Handler V1 API 处理器
type Handler struct {
	workspace *cache.Workspace
	maxUpload int64
}

// NewHandler 创建 V1 API 处理器
func NewHandler(workspace *cache.Workspace, maxUpload int64) *Handler {
	return &Handler{
		workspace: workspace,
		maxUpload: maxUpload,
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 会话状态
	router.GET("/status", h.GetStatus)

	// 文件上传
	router.POST("/upload", h.Upload)
	router.DELETE("/upload", h.ClearUpload)

	// 筛选项
	router.GET("/options", h.GetOptions)

	// 供应商查询
	router.GET("/dashboard", h.GetDashboard)
	router.GET("/vendors", h.ListVendors)
	router.GET("/vendors/lookup", h.LookupVendor)
}
