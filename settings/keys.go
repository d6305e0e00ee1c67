package settings

import "rubra/engine"

// Key identifies a known engine setting. The persisted name of each key is
// part of the settings file format and must not change.
type Key int

const (
	EnableJavaScript Key = iota
	ZoomTextOnly
	PrintBackgrounds
	AutoLoadImages
	AllowModalDialogs
	AllowFileAccessFromFileURLs
	LoadIconsIgnoringImageLoadSetting

	MediaPlaybackRequiresUserGesture
	MediaPlaybackAllowsInline
	EnableMedia
	EnableWebRTC
	EnableMediaStream
	EnableMediaCapabilities
	EnableEncryptedMedia
	EnableWebGL
	EnableWebAudio

	JavaScriptCanOpenWindowsAutomatically
	JavaScriptCanAccessClipboard
	EnableJavaScriptMarkup

	EnableTabsToLinks
	EnableSpatialNavigation
	EnableSmoothScrolling
	EnableResizableTextAreas
	EnablePageCache
	EnableOfflineWebApplicationCache
	EnableHTML5LocalStorage
	EnableHTML5Database
	EnableFullscreen
	EnableDNSPrefetching
	EnableCaretBrowsing

	DisableWebSecurity
	AllowUniversalAccessFromFileURLs
	AllowTopNavigationToDataURLs
	EnableDeveloperExtras
	EnableHyperlinkAuditing
	DrawCompositingIndicators
	EnableMockCaptureDevices
	EnableSiteSpecificQuirks
	EnableBackForwardNavigationGestures
	EnableWriteConsoleMessagesToStdout

	numKeys
)

// Category names, in display order.
const (
	CategoryGeneral    = "General Settings"
	CategoryMedia      = "Media Settings"
	CategoryJavaScript = "JavaScript Settings"
	CategoryWeb        = "Web Features"
	CategorySecurity   = "Security Settings"
)

var categoryOrder = []string{
	CategoryGeneral,
	CategoryMedia,
	CategoryJavaScript,
	CategoryWeb,
	CategorySecurity,
}

// feature binds a key to its persisted name, default placement and the
// engine setter it drives.
type feature struct {
	name     string
	category string
	def      bool
	apply    func(engine.Settings, bool)
}

// features is indexed by Key. Both the default document and the apply
// dispatch are derived from it.
var features = [numKeys]feature{
	EnableJavaScript:                  {"Enable JavaScript", CategoryGeneral, true, engine.Settings.SetEnableJavaScript},
	ZoomTextOnly:                      {"Zoom Text Only", CategoryGeneral, false, engine.Settings.SetZoomTextOnly},
	PrintBackgrounds:                  {"Print Backgrounds", CategoryGeneral, true, engine.Settings.SetPrintBackgrounds},
	AutoLoadImages:                    {"Auto Load Images", CategoryGeneral, true, engine.Settings.SetAutoLoadImages},
	AllowModalDialogs:                 {"Allow Modal Dialogs", CategoryGeneral, true, engine.Settings.SetAllowModalDialogs},
	AllowFileAccessFromFileURLs:       {"Allow File Access from File URLs", CategoryGeneral, false, engine.Settings.SetAllowFileAccessFromFileURLs},
	LoadIconsIgnoringImageLoadSetting: {"Load Icons Ignoring Image Load Setting", CategoryGeneral, false, engine.Settings.SetLoadIconsIgnoringImageLoadSetting},

	MediaPlaybackRequiresUserGesture: {"Media Playback Requires User Gesture", CategoryMedia, true, engine.Settings.SetMediaPlaybackRequiresUserGesture},
	MediaPlaybackAllowsInline:        {"Media Playback Allows Inline", CategoryMedia, true, engine.Settings.SetMediaPlaybackAllowsInline},
	EnableMedia:                      {"Enable Media", CategoryMedia, true, engine.Settings.SetEnableMedia},
	EnableWebRTC:                     {"Enable WebRTC", CategoryMedia, true, engine.Settings.SetEnableWebRTC},
	EnableMediaStream:                {"Enable Media Stream", CategoryMedia, true, engine.Settings.SetEnableMediaStream},
	EnableMediaCapabilities:          {"Enable Media Capabilities", CategoryMedia, true, engine.Settings.SetEnableMediaCapabilities},
	EnableEncryptedMedia:             {"Enable Encrypted Media", CategoryMedia, true, engine.Settings.SetEnableEncryptedMedia},
	EnableWebGL:                      {"Enable WebGL", CategoryMedia, true, engine.Settings.SetEnableWebGL},
	EnableWebAudio:                   {"Enable WebAudio", CategoryMedia, true, engine.Settings.SetEnableWebAudio},

	JavaScriptCanOpenWindowsAutomatically: {"JavaScript Can Open Windows Automatically", CategoryJavaScript, true, engine.Settings.SetJavaScriptCanOpenWindowsAutomatically},
	JavaScriptCanAccessClipboard:          {"JavaScript Can Access Clipboard", CategoryJavaScript, true, engine.Settings.SetJavaScriptCanAccessClipboard},
	EnableJavaScriptMarkup:                {"Enable JavaScript Markup", CategoryJavaScript, false, engine.Settings.SetEnableJavaScriptMarkup},

	EnableTabsToLinks:                {"Enable Tabs to Links", CategoryWeb, true, engine.Settings.SetEnableTabsToLinks},
	EnableSpatialNavigation:          {"Enable Spatial Navigation", CategoryWeb, false, engine.Settings.SetEnableSpatialNavigation},
	EnableSmoothScrolling:            {"Enable Smooth Scrolling", CategoryWeb, true, engine.Settings.SetEnableSmoothScrolling},
	EnableResizableTextAreas:         {"Enable Resizable Text Areas", CategoryWeb, true, engine.Settings.SetEnableResizableTextAreas},
	EnablePageCache:                  {"Enable Page Cache", CategoryWeb, true, engine.Settings.SetEnablePageCache},
	EnableOfflineWebApplicationCache: {"Enable Offline Web Application Cache", CategoryWeb, false, engine.Settings.SetEnableOfflineWebApplicationCache},
	EnableHTML5LocalStorage:          {"Enable HTML5 Local Storage", CategoryWeb, true, engine.Settings.SetEnableHTML5LocalStorage},
	EnableHTML5Database:              {"Enable HTML5 Database", CategoryWeb, false, engine.Settings.SetEnableHTML5Database},
	EnableFullscreen:                 {"Enable Fullscreen", CategoryWeb, true, engine.Settings.SetEnableFullscreen},
	EnableDNSPrefetching:             {"Enable DNS Prefetching", CategoryWeb, true, engine.Settings.SetEnableDNSPrefetching},
	EnableCaretBrowsing:              {"Enable Caret Browsing", CategoryWeb, false, engine.Settings.SetEnableCaretBrowsing},

	DisableWebSecurity:                  {"Disable Web Security", CategorySecurity, false, engine.Settings.SetDisableWebSecurity},
	AllowUniversalAccessFromFileURLs:    {"Allow Universal Access from File URLs", CategorySecurity, false, engine.Settings.SetAllowUniversalAccessFromFileURLs},
	AllowTopNavigationToDataURLs:        {"Allow Top Navigation to Data URLs", CategorySecurity, false, engine.Settings.SetAllowTopNavigationToDataURLs},
	EnableDeveloperExtras:               {"Enable Developer Extras", CategorySecurity, false, engine.Settings.SetEnableDeveloperExtras},
	EnableHyperlinkAuditing:             {"Enable Hyperlink Auditing", CategorySecurity, false, engine.Settings.SetEnableHyperlinkAuditing},
	DrawCompositingIndicators:           {"Draw Compositing Indicators", CategorySecurity, false, engine.Settings.SetDrawCompositingIndicators},
	EnableMockCaptureDevices:            {"Enable Mock Capture Devices", CategorySecurity, false, engine.Settings.SetEnableMockCaptureDevices},
	EnableSiteSpecificQuirks:            {"Enable Site-Specific Quirks", CategorySecurity, false, engine.Settings.SetEnableSiteSpecificQuirks},
	EnableBackForwardNavigationGestures: {"Enable Back Forward Navigation Gestures", CategorySecurity, false, engine.Settings.SetEnableBackForwardNavigationGestures},
	EnableWriteConsoleMessagesToStdout:  {"Enable Write Console Messages to Stdout", CategorySecurity, false, engine.Settings.SetEnableWriteConsoleMessagesToStdout},
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, numKeys)
	for k := Key(0); k < numKeys; k++ {
		m[features[k].name] = k
	}
	return m
}()

// ParseKey maps a persisted setting name to its Key.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// Keys returns every known key in table order.
func Keys() []Key {
	keys := make([]Key, numKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// String returns the persisted name of the key.
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "Key(unknown)"
	}
	return features[k].name
}

// Category returns the category the key is placed in by default.
func (k Key) Category() string {
	if k < 0 || k >= numKeys {
		return ""
	}
	return features[k].category
}

// Default returns the key's default value.
func (k Key) Default() bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return features[k].def
}

// Apply drives the engine setter bound to the key.
func (k Key) Apply(s engine.Settings, on bool) {
	if k < 0 || k >= numKeys {
		return
	}
	features[k].apply(s, on)
}
