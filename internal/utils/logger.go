package utils

import (
	"log"
	"strings"
)

// LogEvent emits one line per domain mutation (itinerary, activity,
// booking, docs). Messages carry ids only, never entity payloads, so
// confirmation numbers and free-text notes stay out of the logs.
func LogEvent(requestID, module, action, message string) {
	module = strings.ToUpper(strings.TrimSpace(module))
	if module == "" {
		module = "APP"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", module, action, strings.TrimSpace(requestID), message)
}
