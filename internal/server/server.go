package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"seatboard/internal/config"
	"seatboard/internal/server/handlers"
	"seatboard/internal/service/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	router   *gin.Engine
	store    *store.MemoryStore
	handlers *handlers.Handlers
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	memStore := store.NewMemoryStore()

	s := &Server{
		router:   gin.Default(),
		store:    memStore,
		handlers: handlers.NewHandlers(memStore, cfg.Business),
	}

	s.router.Use(corsMiddleware())
	s.handlers.RegisterRoutes(s.router.Group("/api"))
	s.mountFrontend(devMode)

	return s
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// mountFrontend 挂载前端
// 开发模式重定向到 vite 开发服务器，生产模式走 embed 的 dist
func (s *Server) mountFrontend(devMode bool) {
	if devMode {
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	dist, _ := fs.Sub(staticFiles, "dist")
	assets, _ := fs.Sub(dist, "assets")
	s.router.StaticFS("/assets", http.FS(assets))

	s.router.GET("/favicon.svg", func(c *gin.Context) {
		data, err := fs.ReadFile(dist, "favicon.svg")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "image/svg+xml", data)
	})

	serveIndex := func(c *gin.Context) {
		data, _ := fs.ReadFile(dist, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
	s.router.GET("/", serveIndex)
	// SPA 前端路由 fallback
	s.router.NoRoute(serveIndex)
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}

// Router 获取路由（用于测试）
func (s *Server) Router() http.Handler {
	return s.router
}
