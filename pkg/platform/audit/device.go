package audit

import (
	"strings"

	"github.com/mssola/useragent"
)

// DeviceFromUserAgent condenses a User-Agent header to "<browser> on <os>".
// Bots are reported as "bot: <name>"; an empty header yields "".
func DeviceFromUserAgent(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	ua := useragent.New(header)
	browser, _ := ua.Browser()
	if ua.Bot() {
		return "bot: " + browser
	}
	os := ua.OS()
	switch {
	case browser == "" && os == "":
		return "unknown"
	case os == "":
		return browser
	case browser == "":
		return os
	}
	return browser + " on " + os
}
