package webhook

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yourname/starcheck-bot/internal/logger"
	"github.com/yourname/starcheck-bot/internal/metrics"
)

var validate = validator.New()

// SubmissionRequest — тело POST /webhook от формы верификации.
type SubmissionRequest struct {
	Phone string `json:"phone" validate:"required,startswith=+"`
	Code  string `json:"code" validate:"required,len=6,number"`
}

type SubmissionResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	VerificationID string `json:"verification_id"`
	Timestamp      string `json:"timestamp"`
}

func (s *Server) handleSubmission(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data received"})
		return
	}

	req.Phone = strings.TrimSpace(req.Phone)
	req.Code = strings.TrimSpace(req.Code)
	if req.Phone == "" || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Phone or code missing"})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validationMessage(err)})
		return
	}

	ip := c.ClientIP()
	id := s.verifs.SubmitFromWebsite(req.Phone, req.Code, ip)
	metrics.RecordVerification("website")
	logger.Info("website verification received", "id", id, "phone", req.Phone, "ip", ip)

	c.JSON(http.StatusOK, SubmissionResponse{
		Success:        true,
		Message:        "Verification data received",
		VerificationID: id,
		Timestamp:      time.Now().Format(time.RFC3339),
	})
}

// validationMessage переводит ошибку валидатора в текст, который понимает
// форма на сайте.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid submission"
	}
	switch errs[0].Field() {
	case "Phone":
		return "Phone must start with +"
	case "Code":
		return "Code must be 6 digits"
	}
	return "Invalid submission"
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"status":            "running",
		"timestamp":         time.Now().Format(time.RFC3339),
		"bot_checks":        s.vouchers.Count(),
		"users":             s.vouchers.IssuerCount(),
		"verifications":     s.verifs.WebsiteCount(),
		"bot_verifications": s.verifs.SessionCount(),
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"bot_running":  true,
		"checks_count": s.vouchers.Count(),
		"users_count":  s.vouchers.IssuerCount(),
		"admins_count": s.admins.Count(),
		"timestamp":    time.Now().Format(time.RFC3339),
	})
}
