package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"vendordash/internal/api/v1"
	"vendordash/internal/config"
	"vendordash/internal/service/cache"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	router    *gin.Engine
	workspace *cache.Workspace
	v1        *v1.Handler
	maxUpload int64
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	workspace, err := cache.NewWorkspace(
		cfg.Cache.TableEntries,
		cfg.Cache.SessionEntries,
		cfg.Cache.SessionTTLDuration(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize workspace: %w", err)
	}

	tmpl, err := template.ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	maxUpload := cfg.Server.MaxUploadBytes()
	s := &Server{
		router:    gin.Default(),
		workspace: workspace,
		v1:        v1.NewHandler(workspace, maxUpload),
		maxUpload: maxUpload,
	}
	s.router.SetHTMLTemplate(tmpl)
	s.router.MaxMultipartMemory = maxUpload

	s.setupRoutes()

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 静态资源
	sub, _ := fs.Sub(staticFiles, "static")
	s.router.StaticFS("/static", http.FS(sub))

	// 页面
	s.router.GET("/", s.Dashboard)
	s.router.POST("/upload", s.Upload)

	// API 路由
	api := s.router.Group("/api")
	api.Use(cors())
	{
		s.v1.RegisterRoutes(api)
	}
}

// cors 允许本地前端跨域调用 API
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Handler 返回 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
