package useragent

import (
	"strings"
)

type keywordSet []string

func newKeywordSet(keywords ...string) keywordSet {
	return keywordSet(keywords)
}

func (k keywordSet) contains(s string) bool {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "lighthouse", "slurp", "yeti", "facebookexternalhit", "slackbot", "linkedinbot", "whatsapp", "telegrambot", "discordbot", "monitor", "validator", "fetcher", "scraper", "headlesschrome", "curl/", "wget/")
	tvKeywords      = newKeywordSet("smart-tv", "smarttv", "googletv", "appletv", "android tv", "crkey", "webos", "tizen", "hbbtv", "roku")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk", "playbook", "kftt", "kfjwi", "nexus 7", "nexus 9", "sm-t", "gt-p", "mediapad")
	mobileKeywords  = newKeywordSet("mobi", "iphone", "ipod", "windows phone", "iemobile", "blackberry", "bb10", "nokia", "opera mini", "fennec", "symbian")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "chromeos", "cros")
)

// Classify returns the device type of a raw user-agent string. Empty and
// unrecognised agents are DeviceTypeUnknown.
func Classify(ua string) DeviceType {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return DeviceTypeUnknown
	}
	return ParseDeviceType(strings.ToLower(ua))
}

// ParseDeviceType classifies an already lowercased user-agent. Rules run
// from the most specific marker to the most generic one.
func ParseDeviceType(lowerUA string) DeviceType {
	if lowerUA == "" {
		return DeviceTypeUnknown
	}

	switch {
	case strings.Contains(lowerUA, "ipad"):
		return DeviceTypeTablet
	case strings.Contains(lowerUA, "iphone"), strings.Contains(lowerUA, "ipod"):
		return DeviceTypeMobile
	case botKeywords.contains(lowerUA):
		return DeviceTypeBot
	case tvKeywords.contains(lowerUA):
		return DeviceTypeTV
	case consoleKeywords.contains(lowerUA):
		return DeviceTypeConsole
	case tabletKeywords.contains(lowerUA):
		return DeviceTypeTablet
	case strings.Contains(lowerUA, "android"):
		// Android tablets omit the "mobile" token phones carry.
		if strings.Contains(lowerUA, "mobile") {
			return DeviceTypeMobile
		}
		return DeviceTypeTablet
	case mobileKeywords.contains(lowerUA):
		return DeviceTypeMobile
	case strings.Contains(lowerUA, "windows") && strings.Contains(lowerUA, "touch") && strings.Contains(lowerUA, "arm"):
		return DeviceTypeTablet
	case desktopKeywords.contains(lowerUA):
		return DeviceTypeDesktop
	}
	return DeviceTypeUnknown
}

// IsHandheld reports whether a device type is a phone or tablet.
func IsHandheld(deviceType DeviceType) bool {
	return deviceType == DeviceTypeMobile || deviceType == DeviceTypeTablet
}
