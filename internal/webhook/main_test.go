package webhook

import (
	"os"
	"testing"

	"github.com/yourname/starcheck-bot/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}
