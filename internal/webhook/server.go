// Package webhook — HTTP-приёмник заявок верификации с внешнего сайта плюс
// служебные эндпоинты (health, status, metrics). Работает в отдельной
// горутине рядом с long polling бота и пишет в те же хранилища.
package webhook

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourname/starcheck-bot/internal/config"
	"github.com/yourname/starcheck-bot/internal/store"
)

type Server struct {
	router *gin.Engine

	vouchers *store.Vouchers
	admins   *store.Admins
	verifs   *store.Verifications
}

func New(cfg config.Config, vouchers *store.Vouchers, admins *store.Admins, verifs *store.Verifications) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		vouchers: vouchers,
		admins:   admins,
		verifs:   verifs,
	}

	router := gin.New()
	router.Use(RequestLoggingMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}))

	router.POST("/webhook", RateLimitMiddleware(cfg.WebhookRPS, cfg.WebhookBurst), s.handleSubmission)
	router.GET("/health", s.handleHealth)
	router.GET("/status", s.handleStatus)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router = router
	return s
}

func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// Router отдаёт движок напрямую (для httptest).
func (s *Server) Router() http.Handler {
	return s.router
}
