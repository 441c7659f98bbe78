// Package useragent sorts HTTP User-Agent strings into coarse device types:
// mobile, tablet, desktop, TV, console, bot or unknown.
//
//	switch useragent.Classify(r.UserAgent()) {
//	case useragent.DeviceTypeMobile:
//	    // phone layout
//	case useragent.DeviceTypeTablet:
//	    // tablet layout
//	default:
//	    // full layout
//	}
//
// Classification is keyword based and allocation light. It answers "what
// kind of screen is this" and nothing finer; it does not extract browser or
// OS versions.
package useragent
