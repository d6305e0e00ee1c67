package chrome

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"rubra/settings"
)

func defaultBrowser(t *testing.T) *Browser {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	b := New(DefaultOptions(), logger)
	settings.NewApplier(logger).Apply(b, settings.Default())
	return b
}

func TestFlagsForDefaults(t *testing.T) {
	b := defaultBrowser(t)

	assert.Equal(t, map[string]interface{}{
		"autoplay-policy": "user-gesture-required",
		"no-pings":        true,
	}, b.Target().Flags())
	assert.Empty(t, b.Target().Actions())
}

func TestFlagsFollowSettings(t *testing.T) {
	b := defaultBrowser(t)

	doc := settings.Default()
	doc.Set("Disable Web Security", "true")
	doc.Set("Auto Load Images", "false")
	doc.Set("Enable WebGL", "false")
	doc.Set("Enable Caret Browsing", "true")
	doc.Set("Enable Mock Capture Devices", "true")
	doc.Set("Media Playback Requires User Gesture", "false")
	doc.Set("Enable Hyperlink Auditing", "true")
	settings.NewApplier(nil).Apply(b, doc)

	flags := b.Target().Flags()
	assert.Equal(t, true, flags["disable-web-security"])
	assert.Equal(t, "imagesEnabled=false", flags["blink-settings"])
	assert.Equal(t, true, flags["disable-webgl"])
	assert.Equal(t, true, flags["enable-caret-browsing"])
	assert.Equal(t, true, flags["use-fake-device-for-media-stream"])
	assert.Equal(t, "no-user-gesture-required", flags["autoplay-policy"])
	assert.NotContains(t, flags, "no-pings")
}

func TestActionsFollowSettings(t *testing.T) {
	b := defaultBrowser(t)

	doc := settings.Default()
	doc.Set("Enable JavaScript", "false")
	settings.NewApplier(nil).Apply(b, doc)
	assert.Len(t, b.Target().Actions(), 1)

	doc.Set("Disable Web Security", "true")
	settings.NewApplier(nil).Apply(b, doc)
	assert.Len(t, b.Target().Actions(), 2)
}

func TestReapplyIsStable(t *testing.T) {
	b := defaultBrowser(t)
	first := b.Target().Flags()

	settings.NewApplier(nil).Apply(b, settings.Default())
	assert.Equal(t, first, b.Target().Flags())
}

func TestAllocatorOptions(t *testing.T) {
	b := defaultBrowser(t)
	base := len(b.AllocatorOptions())

	b.opts.ChromePath = "/usr/bin/chromium"
	b.opts.UserAgent = "Rubra/1.0"
	assert.Len(t, b.AllocatorOptions(), base+2)
}

func TestUnsupportedComplementsSupported(t *testing.T) {
	unsupported := Unsupported()
	assert.Len(t, unsupported, len(settings.Keys())-len(supported))
	for _, k := range unsupported {
		assert.False(t, supported[k], k.String())
	}
	assert.Contains(t, unsupported, settings.ZoomTextOnly)
	assert.NotContains(t, unsupported, settings.EnableJavaScript)
}
