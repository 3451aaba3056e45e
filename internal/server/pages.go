package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vendordash/internal/api/v1"
	"vendordash/internal/model"
	"vendordash/internal/parser"
	"vendordash/internal/service/cache"
	"vendordash/internal/service/vendor"
)

const (
	pageTitle   = "Vendor Master Dashboard"
	pageCaption = "Single source of truth for vendor master data"
)

// pageData 页面渲染数据
type pageData struct {
	Title     string
	Caption   string
	Accept    string
	Upload    *cache.Upload
	Prompt    string
	Error     string
	Dashboard *vendor.Dashboard
}

func newPageData(upload *cache.Upload) pageData {
	return pageData{
		Title:   pageTitle,
		Caption: pageCaption,
		Accept:  strings.Join(parser.AcceptedExtensions, ","),
		Upload:  upload,
	}
}

// Dashboard 渲染供应商看板
// GET /?vendor=&advanced=&q=&capacity=
func (s *Server) Dashboard(c *gin.Context) {
	sess := v1.Session(c, s.workspace.Sessions)
	upload := sess.Upload()
	data := newPageData(upload)

	if upload == nil {
		data.Prompt = vendor.MsgUploadPrompt
		c.HTML(http.StatusOK, "page", data)
		return
	}

	var f model.FilterState
	if err := c.ShouldBindQuery(&f); err != nil {
		f = model.FilterState{}
	}
	d := vendor.BuildDashboard(upload.Table, f)
	data.Dashboard = &d

	c.HTML(http.StatusOK, "page", data)
}

// Upload 处理侧栏上传，成功后跳回看板
// 解析失败时只显示错误信息，不渲染看板
// POST /upload
func (s *Server) Upload(c *gin.Context) {
	sess := v1.Session(c, s.workspace.Sessions)

	fh, err := c.FormFile("file")
	if err != nil {
		data := newPageData(sess.Upload())
		data.Prompt = vendor.MsgUploadPrompt
		c.HTML(http.StatusBadRequest, "page", data)
		return
	}

	if _, err := v1.ReceiveUpload(s.workspace, sess, fh, s.maxUpload); err != nil {
		log.Printf("dashboard upload failed: %v", err)
		data := newPageData(nil)
		data.Error = err.Error()
		c.HTML(v1.UploadErrorStatus(err), "page", data)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
