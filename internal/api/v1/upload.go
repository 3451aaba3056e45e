package v1

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"vendordash/internal/parser"
	"vendordash/internal/service/cache"
)

// ErrUploadTooLarge 上传文件超过大小限制
var ErrUploadTooLarge = errors.New("uploaded file is too large")

// UploadResponse 上传结果
type UploadResponse struct {
	FileName string   `json:"fileName"`
	Hash     string   `json:"hash"`
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`
}

// Upload 上传供应商文件
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	sess := Session(c, h.workspace.Sessions)
	u, err := ReceiveUpload(h.workspace, sess, fh, h.maxUpload)
	if err != nil {
		c.JSON(UploadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		FileName: u.FileName,
		Hash:     u.Hash,
		Rows:     u.Table.Len(),
		Columns:  u.Table.ColumnNames(),
	})
}

// ClearUpload 解除会话的上传文件并结束会话
// DELETE /api/upload
func (h *Handler) ClearUpload(c *gin.Context) {
	if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
		if sess, ok := h.workspace.Sessions.Get(id); ok {
			sess.Clear()
		}
		h.workspace.Sessions.Remove(id)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// ReceiveUpload 读取 multipart 文件、解析并绑定到会话
func ReceiveUpload(ws *cache.Workspace, sess *cache.Session, fh *multipart.FileHeader, maxBytes int64) (*cache.Upload, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, ErrUploadTooLarge
	}
	if err := parser.CheckExtension(fh.Filename); err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, ErrUploadTooLarge
	}

	u, err := ws.Upload(sess, fh.Filename, data)
	if err != nil {
		log.Printf("upload %q rejected: %v", fh.Filename, err)
		return nil, err
	}
	log.Printf("upload %q loaded: %d rows, %d columns", u.FileName, u.Table.Len(), len(u.Table.ColumnNames()))
	return u, nil
}

// UploadErrorStatus 上传错误对应的 HTTP 状态码
func UploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, parser.ErrUnsupportedExtension):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, parser.ErrEmptyFile):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}
