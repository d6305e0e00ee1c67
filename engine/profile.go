package engine

// Profile records every toggle in memory. It is the engine state for
// headless use and the base that concrete engine targets embed.
type Profile struct {
	EnableJavaScript                  bool `json:"enableJavaScript"`
	ZoomTextOnly                      bool `json:"zoomTextOnly"`
	PrintBackgrounds                  bool `json:"printBackgrounds"`
	AutoLoadImages                    bool `json:"autoLoadImages"`
	AllowModalDialogs                 bool `json:"allowModalDialogs"`
	AllowFileAccessFromFileURLs       bool `json:"allowFileAccessFromFileURLs"`
	LoadIconsIgnoringImageLoadSetting bool `json:"loadIconsIgnoringImageLoadSetting"`

	MediaPlaybackRequiresUserGesture bool `json:"mediaPlaybackRequiresUserGesture"`
	MediaPlaybackAllowsInline        bool `json:"mediaPlaybackAllowsInline"`
	EnableMedia                      bool `json:"enableMedia"`
	EnableWebRTC                     bool `json:"enableWebRTC"`
	EnableMediaStream                bool `json:"enableMediaStream"`
	EnableMediaCapabilities          bool `json:"enableMediaCapabilities"`
	EnableEncryptedMedia             bool `json:"enableEncryptedMedia"`
	EnableWebGL                      bool `json:"enableWebGL"`
	EnableWebAudio                   bool `json:"enableWebAudio"`

	JavaScriptCanOpenWindowsAutomatically bool `json:"javaScriptCanOpenWindowsAutomatically"`
	JavaScriptCanAccessClipboard          bool `json:"javaScriptCanAccessClipboard"`
	EnableJavaScriptMarkup                bool `json:"enableJavaScriptMarkup"`

	EnableTabsToLinks                bool `json:"enableTabsToLinks"`
	EnableSpatialNavigation          bool `json:"enableSpatialNavigation"`
	EnableSmoothScrolling            bool `json:"enableSmoothScrolling"`
	EnableResizableTextAreas         bool `json:"enableResizableTextAreas"`
	EnablePageCache                  bool `json:"enablePageCache"`
	EnableOfflineWebApplicationCache bool `json:"enableOfflineWebApplicationCache"`
	EnableHTML5LocalStorage          bool `json:"enableHTML5LocalStorage"`
	EnableHTML5Database              bool `json:"enableHTML5Database"`
	EnableFullscreen                 bool `json:"enableFullscreen"`
	EnableDNSPrefetching             bool `json:"enableDNSPrefetching"`
	EnableCaretBrowsing              bool `json:"enableCaretBrowsing"`

	DisableWebSecurity                  bool `json:"disableWebSecurity"`
	AllowUniversalAccessFromFileURLs    bool `json:"allowUniversalAccessFromFileURLs"`
	AllowTopNavigationToDataURLs        bool `json:"allowTopNavigationToDataURLs"`
	EnableDeveloperExtras               bool `json:"enableDeveloperExtras"`
	EnableHyperlinkAuditing             bool `json:"enableHyperlinkAuditing"`
	DrawCompositingIndicators           bool `json:"drawCompositingIndicators"`
	EnableMockCaptureDevices            bool `json:"enableMockCaptureDevices"`
	EnableSiteSpecificQuirks            bool `json:"enableSiteSpecificQuirks"`
	EnableBackForwardNavigationGestures bool `json:"enableBackForwardNavigationGestures"`
	EnableWriteConsoleMessagesToStdout  bool `json:"enableWriteConsoleMessagesToStdout"`
}

// Settings returns the profile itself, so a Profile is also a View.
func (p *Profile) Settings() Settings { return p }

func (p *Profile) SetEnableJavaScript(v bool) { p.EnableJavaScript = v }
func (p *Profile) SetZoomTextOnly(v bool) { p.ZoomTextOnly = v }
func (p *Profile) SetPrintBackgrounds(v bool) { p.PrintBackgrounds = v }
func (p *Profile) SetAutoLoadImages(v bool) { p.AutoLoadImages = v }
func (p *Profile) SetAllowModalDialogs(v bool) { p.AllowModalDialogs = v }
func (p *Profile) SetAllowFileAccessFromFileURLs(v bool) { p.AllowFileAccessFromFileURLs = v }
func (p *Profile) SetLoadIconsIgnoringImageLoadSetting(v bool) {
	p.LoadIconsIgnoringImageLoadSetting = v
}

func (p *Profile) SetMediaPlaybackRequiresUserGesture(v bool) { p.MediaPlaybackRequiresUserGesture = v }
func (p *Profile) SetMediaPlaybackAllowsInline(v bool) { p.MediaPlaybackAllowsInline = v }
func (p *Profile) SetEnableMedia(v bool) { p.EnableMedia = v }
func (p *Profile) SetEnableWebRTC(v bool) { p.EnableWebRTC = v }
func (p *Profile) SetEnableMediaStream(v bool) { p.EnableMediaStream = v }
func (p *Profile) SetEnableMediaCapabilities(v bool) { p.EnableMediaCapabilities = v }
func (p *Profile) SetEnableEncryptedMedia(v bool) { p.EnableEncryptedMedia = v }
func (p *Profile) SetEnableWebGL(v bool) { p.EnableWebGL = v }
func (p *Profile) SetEnableWebAudio(v bool) { p.EnableWebAudio = v }

func (p *Profile) SetJavaScriptCanOpenWindowsAutomatically(v bool) {
	p.JavaScriptCanOpenWindowsAutomatically = v
}
func (p *Profile) SetJavaScriptCanAccessClipboard(v bool) { p.JavaScriptCanAccessClipboard = v }
func (p *Profile) SetEnableJavaScriptMarkup(v bool) { p.EnableJavaScriptMarkup = v }

func (p *Profile) SetEnableTabsToLinks(v bool) { p.EnableTabsToLinks = v }
func (p *Profile) SetEnableSpatialNavigation(v bool) { p.EnableSpatialNavigation = v }
func (p *Profile) SetEnableSmoothScrolling(v bool) { p.EnableSmoothScrolling = v }
func (p *Profile) SetEnableResizableTextAreas(v bool) { p.EnableResizableTextAreas = v }
func (p *Profile) SetEnablePageCache(v bool) { p.EnablePageCache = v }
func (p *Profile) SetEnableOfflineWebApplicationCache(v bool) { p.EnableOfflineWebApplicationCache = v }
func (p *Profile) SetEnableHTML5LocalStorage(v bool) { p.EnableHTML5LocalStorage = v }
func (p *Profile) SetEnableHTML5Database(v bool) { p.EnableHTML5Database = v }
func (p *Profile) SetEnableFullscreen(v bool) { p.EnableFullscreen = v }
func (p *Profile) SetEnableDNSPrefetching(v bool) { p.EnableDNSPrefetching = v }
func (p *Profile) SetEnableCaretBrowsing(v bool) { p.EnableCaretBrowsing = v }

func (p *Profile) SetDisableWebSecurity(v bool) { p.DisableWebSecurity = v }
func (p *Profile) SetAllowUniversalAccessFromFileURLs(v bool) { p.AllowUniversalAccessFromFileURLs = v }
func (p *Profile) SetAllowTopNavigationToDataURLs(v bool) { p.AllowTopNavigationToDataURLs = v }
func (p *Profile) SetEnableDeveloperExtras(v bool) { p.EnableDeveloperExtras = v }
func (p *Profile) SetEnableHyperlinkAuditing(v bool) { p.EnableHyperlinkAuditing = v }
func (p *Profile) SetDrawCompositingIndicators(v bool) { p.DrawCompositingIndicators = v }
func (p *Profile) SetEnableMockCaptureDevices(v bool) { p.EnableMockCaptureDevices = v }
func (p *Profile) SetEnableSiteSpecificQuirks(v bool) { p.EnableSiteSpecificQuirks = v }
func (p *Profile) SetEnableBackForwardNavigationGestures(v bool) {
	p.EnableBackForwardNavigationGestures = v
}
func (p *Profile) SetEnableWriteConsoleMessagesToStdout(v bool) {
	p.EnableWriteConsoleMessagesToStdout = v
}
