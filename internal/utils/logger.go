package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// LogInfo affiche un message d'information en jaune
func LogInfo(format string, v ...interface{}) {
	color.Yellow("[INFO] %s", fmt.Sprintf(format, v...))
}

// LogError affiche un message d'erreur en rouge
func LogError(format string, v ...interface{}) {
	color.Red("[ERROR] %s", fmt.Sprintf(format, v...))
}

// LogDebug affiche un message de debug en cyan
func LogDebug(format string, v ...interface{}) {
	color.Cyan("[DEBUG] %s", fmt.Sprintf(format, v...))
}

// LogRequest affiche les détails d'une requête HTTP entrante
func LogRequest(method, path, ip string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	color.Yellow("[%s] %s %s from %s", timestamp, method, path, ip)
}
