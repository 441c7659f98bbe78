package useragent

// DeviceType is the coarse screen category of a user agent.
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeTablet  DeviceType = "tablet"
	DeviceTypeDesktop DeviceType = "desktop"

	// Crawlers and link previewers
	DeviceTypeBot     DeviceType = "bot"
	DeviceTypeTV      DeviceType = "tv"
	DeviceTypeConsole DeviceType = "console"

	// DeviceTypeUnknown covers empty and unrecognised agents
	DeviceTypeUnknown DeviceType = "unknown"
)

