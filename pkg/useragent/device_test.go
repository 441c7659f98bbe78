package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mediakit/pkg/useragent"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want useragent.DeviceType
	}{
		{"empty", "", useragent.DeviceTypeUnknown},
		{"blank", "   ", useragent.DeviceTypeUnknown},
		{"garbage", "foo/1.0", useragent.DeviceTypeUnknown},
		{"iPhone", "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1", useragent.DeviceTypeMobile},
		{"iPad", "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1", useragent.DeviceTypeTablet},
		{"Android phone", "Mozilla/5.0 (Linux; Android 11; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36", useragent.DeviceTypeMobile},
		{"Android tablet", "Mozilla/5.0 (Linux; Android 11; SM-T870) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36", useragent.DeviceTypeTablet},
		{"Kindle", "Mozilla/5.0 (Linux; U; Android 4.0.3; en-us; KFTT Build/IML74K) AppleWebKit/537.36 (KHTML, like Gecko) Silk/3.68 like Chrome/39.0.2171.93 Safari/537.36", useragent.DeviceTypeTablet},
		{"Opera Mini", "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80 (S60; SymbOS; Opera Mobi/23.348; U; en) Presto/2.5.25 Version/10.54", useragent.DeviceTypeMobile},
		{"Windows desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36", useragent.DeviceTypeDesktop},
		{"Mac desktop", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15", useragent.DeviceTypeDesktop},
		{"Linux desktop", "Mozilla/5.0 (X11; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0", useragent.DeviceTypeDesktop},
		{"Googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", useragent.DeviceTypeBot},
		{"Android TV", "Mozilla/5.0 (Linux; Android 9; Android TV) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/80.0.3987.99 Safari/537.36", useragent.DeviceTypeTV},
		{"PlayStation", "Mozilla/5.0 (PlayStation 4 3.11) AppleWebKit/537.73 (KHTML, like Gecko)", useragent.DeviceTypeConsole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, useragent.Classify(tt.ua))
		})
	}
}

func TestParseDeviceType_ExpectsLowercase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, useragent.DeviceTypeTablet, useragent.ParseDeviceType("mozilla/5.0 (ipad)"))
	assert.Equal(t, useragent.DeviceTypeUnknown, useragent.ParseDeviceType(""))
}

func TestIsHandheld(t *testing.T) {
	t.Parallel()
	assert.True(t, useragent.IsHandheld(useragent.DeviceTypeMobile))
	assert.True(t, useragent.IsHandheld(useragent.DeviceTypeTablet))
	assert.False(t, useragent.IsHandheld(useragent.DeviceTypeDesktop))
	assert.False(t, useragent.IsHandheld(useragent.DeviceTypeBot))
}
