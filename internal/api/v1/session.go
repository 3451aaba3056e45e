package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendordash/internal/model"
	"vendordash/internal/service/cache"
)

// SessionCookie 会话 cookie 名称
const SessionCookie = "vendordash_session"

// Session 取当前请求的会话，没有则新建并写回 cookie
func Session(c *gin.Context, sessions *cache.Sessions) *cache.Session {
	id, _ := c.Cookie(SessionCookie)
	sess, created := sessions.GetOrCreate(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

// currentUpload 只读接口使用：不新建会话，没有会话或未上传时返回 nil
func currentUpload(c *gin.Context, sessions *cache.Sessions) *cache.Upload {
	id, err := c.Cookie(SessionCookie)
	if err != nil || id == "" {
		return nil
	}
	sess, ok := sessions.Get(id)
	if !ok {
		return nil
	}
	return sess.Upload()
}

// currentTable 当前会话的表；未上传时写入 409 并返回 false
func (h *Handler) currentTable(c *gin.Context) (*model.Table, bool) {
	upload := currentUpload(c, h.workspace.Sessions)
	if upload == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no file uploaded"})
		return nil, false
	}
	return upload.Table, true
}
