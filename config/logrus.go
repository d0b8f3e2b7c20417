package config

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // Green for 200 OK
	yellow = "\033[33m" // Yellow for 300 series
	red    = "\033[31m" // Red for 400 and 500 series
	reset  = "\033[0m"  // Reset to default color
)

// PrintLogInfo writes one colored access line per handled request.
func PrintLogInfo(ip *string, statusCode int, functionName string) {
	var logColor string

	switch statusCode {
	case fiber.StatusOK, fiber.StatusCreated:
		logColor = green
	case fiber.StatusAccepted:
		logColor = yellow
	case fiber.StatusBadRequest, fiber.StatusConflict, fiber.StatusNotFound, fiber.StatusInternalServerError:
		logColor = red
	default:
		logColor = reset
	}

	client := "Unknown"
	if ip != nil {
		client = *ip
	}

	logMsg := fmt.Sprintf("Client: %s, (%s) => Status: %s[%d] - %s%s", client, functionName, logColor, statusCode, http.StatusText(statusCode), reset)
	GetLogrusInstance().Info(logMsg)
}
