package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	nhttp "github.com/chaos-io/cutout/util/http"
)

type Config struct {
	MaxSide      int           // 输入图最长边上限，超出则先缩放
	FetchTimeout time.Duration // 拉取源图超时
	OutputDir    string        // 调试产物目录，为空则不落盘
}

type Server struct {
	cfg Config
	cli nhttp.IClient
}

func New(cfg Config) *Server {
	if cfg.MaxSide <= 0 {
		cfg.MaxSide = 2048
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 45 * time.Second
	}
	return &Server{
		cfg: cfg,
		cli: nhttp.NewHTTPClient(),
	}
}

// Router 注册全部路由
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())

	r.GET("/", s.handleRoot)
	r.POST("/remove-bg", s.handleRemoveBG)
	r.GET("/test", s.handleTestPage)
	r.POST("/test", s.handleTestSubmit)

	return r
}

// requestLog 给每个请求分配 ksuid 并记录耗时
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := ksuid.New().String()
		c.Set("request_id", reqID)
		c.Header("X-Request-ID", reqID)

		start := time.Now()
		c.Next()

		slog.Info("request",
			"id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"cost", time.Since(start),
		)
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"endpoint":  "/remove-bg",
		"test_page": "/test",
		"tips":      "For JPG use color_tolerance 45-65. For halos increase erode_px to 2.",
	})
}
