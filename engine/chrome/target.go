package chrome

import (
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"rubra/engine"
	"rubra/settings"
)

// Target is the settings surface of a Chrome instance. Toggles are
// recorded in the embedded profile and translated into launch flags and
// per-page commands when a page is opened.
type Target struct {
	engine.Profile
}

// Settings returns the target itself.
func (t *Target) Settings() engine.Settings { return t }

// Flags returns the Chrome command-line switches implied by the toggles.
// Switches whose toggle is at Chrome's own default are omitted.
func (t *Target) Flags() map[string]interface{} {
	flags := map[string]interface{}{}

	if t.DisableWebSecurity {
		flags["disable-web-security"] = true
	}
	if t.AllowFileAccessFromFileURLs || t.AllowUniversalAccessFromFileURLs {
		flags["allow-file-access-from-files"] = true
	}
	if t.MediaPlaybackRequiresUserGesture {
		flags["autoplay-policy"] = "user-gesture-required"
	} else {
		flags["autoplay-policy"] = "no-user-gesture-required"
	}
	if !t.AutoLoadImages {
		flags["blink-settings"] = "imagesEnabled=false"
	}
	if !t.EnableWebGL {
		flags["disable-webgl"] = true
	}
	if !t.EnableSmoothScrolling {
		flags["disable-smooth-scrolling"] = true
	}
	if t.EnableSpatialNavigation {
		flags["enable-spatial-navigation"] = true
	}
	if t.EnableCaretBrowsing {
		flags["enable-caret-browsing"] = true
	}
	if !t.EnableDNSPrefetching {
		flags["dns-prefetch-disable"] = true
	}
	if !t.EnableHyperlinkAuditing {
		flags["no-pings"] = true
	}
	if t.EnableMockCaptureDevices {
		flags["use-fake-device-for-media-stream"] = true
		flags["use-fake-ui-for-media-stream"] = true
	}
	if t.DrawCompositingIndicators {
		flags["show-composited-layer-borders"] = true
	}
	if t.EnableDeveloperExtras {
		flags["auto-open-devtools-for-tabs"] = true
	}

	return flags
}

// Actions returns the DevTools commands to run on each new page before
// navigation.
func (t *Target) Actions() []chromedp.Action {
	var actions []chromedp.Action
	if !t.EnableJavaScript {
		actions = append(actions, emulation.SetScriptExecutionDisabled(true))
	}
	if t.DisableWebSecurity {
		actions = append(actions, page.SetBypassCSP(true))
	}
	return actions
}

// supported are the toggles translated by Flags, Actions or console
// forwarding.
var supported = map[settings.Key]bool{
	settings.EnableJavaScript:                   true,
	settings.AutoLoadImages:                     true,
	settings.AllowFileAccessFromFileURLs:        true,
	settings.MediaPlaybackRequiresUserGesture:   true,
	settings.EnableWebGL:                        true,
	settings.EnableSpatialNavigation:            true,
	settings.EnableSmoothScrolling:              true,
	settings.EnableDNSPrefetching:               true,
	settings.EnableCaretBrowsing:                true,
	settings.DisableWebSecurity:                 true,
	settings.AllowUniversalAccessFromFileURLs:   true,
	settings.EnableDeveloperExtras:              true,
	settings.EnableHyperlinkAuditing:            true,
	settings.DrawCompositingIndicators:          true,
	settings.EnableMockCaptureDevices:           true,
	settings.EnableWriteConsoleMessagesToStdout: true,
}

// Unsupported lists the toggles Chrome has no switch or command for.
// They are recorded but have no effect on the browser.
func Unsupported() []settings.Key {
	var keys []settings.Key
	for _, k := range settings.Keys() {
		if !supported[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
