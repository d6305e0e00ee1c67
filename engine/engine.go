// Package engine describes the configuration surface of an embedded
// browser engine that settings are applied to.
package engine

// Settings is the set of boolean feature toggles an engine exposes.
type Settings interface {
	// General
	SetEnableJavaScript(bool)
	SetZoomTextOnly(bool)
	SetPrintBackgrounds(bool)
	SetAutoLoadImages(bool)
	SetAllowModalDialogs(bool)
	SetAllowFileAccessFromFileURLs(bool)
	SetLoadIconsIgnoringImageLoadSetting(bool)

	// Media
	SetMediaPlaybackRequiresUserGesture(bool)
	SetMediaPlaybackAllowsInline(bool)
	SetEnableMedia(bool)
	SetEnableWebRTC(bool)
	SetEnableMediaStream(bool)
	SetEnableMediaCapabilities(bool)
	SetEnableEncryptedMedia(bool)
	SetEnableWebGL(bool)
	SetEnableWebAudio(bool)

	// JavaScript
	SetJavaScriptCanOpenWindowsAutomatically(bool)
	SetJavaScriptCanAccessClipboard(bool)
	SetEnableJavaScriptMarkup(bool)

	// Web features
	SetEnableTabsToLinks(bool)
	SetEnableSpatialNavigation(bool)
	SetEnableSmoothScrolling(bool)
	SetEnableResizableTextAreas(bool)
	SetEnablePageCache(bool)
	SetEnableOfflineWebApplicationCache(bool)
	SetEnableHTML5LocalStorage(bool)
	SetEnableHTML5Database(bool)
	SetEnableFullscreen(bool)
	SetEnableDNSPrefetching(bool)
	SetEnableCaretBrowsing(bool)

	// Security and developer tooling
	SetDisableWebSecurity(bool)
	SetAllowUniversalAccessFromFileURLs(bool)
	SetAllowTopNavigationToDataURLs(bool)
	SetEnableDeveloperExtras(bool)
	SetEnableHyperlinkAuditing(bool)
	SetDrawCompositingIndicators(bool)
	SetEnableMockCaptureDevices(bool)
	SetEnableSiteSpecificQuirks(bool)
	SetEnableBackForwardNavigationGestures(bool)
	SetEnableWriteConsoleMessagesToStdout(bool)
}

// View is anything hosting an engine, such as a tab.
// Settings returns an untyped nil when the engine has no settings object;
// a nil pointer wrapped in the interface is treated the same way.
type View interface {
	Settings() Settings
}
