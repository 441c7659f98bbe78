package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". All nil gives an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil err gives an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the client address under "client_ip".
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// MediaVersion records a site version key under "media_version".
func MediaVersion(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("media_version", key)
}

// DeviceClass records a detected device class under "device_class".
func DeviceClass(class string) slog.Attr {
	if class == "" {
		return slog.Attr{}
	}
	return slog.String("device_class", class)
}

// RedirectURL records a redirect target under "redirect_url".
func RedirectURL(u string) slog.Attr {
	if u == "" {
		return slog.Attr{}
	}
	return slog.String("redirect_url", u)
}

// Reason records why a decision was taken under "reason".
func Reason(r string) slog.Attr {
	return slog.String("reason", r)
}

// Method and Path record the request line.
func Method(m string) slog.Attr { return slog.String("method", m) }
func Path(p string) slog.Attr   { return slog.String("path", p) }
