package controller

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	logger "github.com/dev-sahilarora/nestly/api/logging"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dir, err := os.MkdirTemp("", "nestly-test-logs")
	if err != nil {
		panic(err)
	}
	logger.InitLogger(dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
