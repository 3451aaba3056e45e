package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vendordash/internal/model"
	"vendordash/internal/service/vendor"
)

// StatusResponse 会话状态
type StatusResponse struct {
	Uploaded   bool           `json:"uploaded"`
	FileName   string         `json:"fileName,omitempty"`
	Hash       string         `json:"hash,omitempty"`
	Rows       int            `json:"rows"`
	Columns    []string       `json:"columns"`
	Schema     []model.Column `json:"schema"`
	UploadedAt string         `json:"uploadedAt,omitempty"`
}

// GetStatus 获取当前会话状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	upload := currentUpload(c, h.workspace.Sessions)
	if upload == nil {
		c.JSON(http.StatusOK, StatusResponse{Columns: []string{}, Schema: []model.Column{}})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{
		Uploaded:   true,
		FileName:   upload.FileName,
		Hash:       upload.Hash,
		Rows:       upload.Table.Len(),
		Columns:    upload.Table.ColumnNames(),
		Schema:     upload.Table.Columns(),
		UploadedAt: upload.UploadedAt.Format("2006-01-02 15:04:05"),
	})
}

// OptionsResponse 下拉框选项
type OptionsResponse struct {
	Vendors    []string `json:"vendors"`
	Capacities []string `json:"capacities"`
}

// GetOptions 获取供应商与接待能力选项
// GET /api/options
func (h *Handler) GetOptions(c *gin.Context) {
	tbl, ok := h.currentTable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, OptionsResponse{
		Vendors:    vendor.VendorNames(tbl),
		Capacities: vendor.CapacityOptions(tbl),
	})
}

// GetDashboard 按筛选条件返回完整视图
// GET /api/dashboard?vendor=&advanced=&q=&capacity=
func (h *Handler) GetDashboard(c *gin.Context) {
	tbl, ok := h.currentTable(c)
	if !ok {
		return
	}
	var f model.FilterState
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor.BuildDashboard(tbl, f))
}

type listVendorsResponse struct {
	Total   int           `json:"total"`
	Message string        `json:"message,omitempty"`
	Items   []vendor.Card `json:"items"`
}

// ListVendors 高级搜索
// GET /api/vendors?q=&capacity=
func (h *Handler) ListVendors(c *gin.Context) {
	tbl, ok := h.currentTable(c)
	if !ok {
		return
	}

	d := vendor.BuildDashboard(tbl, model.FilterState{
		Advanced: true,
		Query:    c.Query("q"),
		Capacity: c.DefaultQuery("capacity", model.AllCapacities),
	})
	c.JSON(http.StatusOK, listVendorsResponse{
		Total:   d.Advanced.Total,
		Message: d.Advanced.Message,
		Items:   d.Advanced.Cards,
	})
}

// LookupVendor 按名称精确查找供应商（重名取第一条）
// GET /api/vendors/lookup?name=
func (h *Handler) LookupVendor(c *gin.Context) {
	tbl, ok := h.currentTable(c)
	if !ok {
		return
	}

	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	row, found := vendor.FindByName(tbl, name)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": vendor.MsgVendorNotFound})
		return
	}
	c.JSON(http.StatusOK, vendor.NewCard(row))
}
