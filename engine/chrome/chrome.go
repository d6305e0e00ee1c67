// Package chrome drives a Chrome instance over the DevTools protocol as a
// settings-aware engine.
package chrome

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"rubra/engine"
)

// Options configures how Chrome is launched.
type Options struct {
	ChromePath string // Path to Chrome binary (empty = auto-detect)
	UserAgent  string // Empty keeps Chrome's own
	Timeout    time.Duration
	Headless   bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:  30 * time.Second,
		Headless: true,
	}
}

// Page is the result of opening a URL.
type Page struct {
	URL      string // URL after redirects
	Title    string
	LoadTime time.Duration
}

// Browser is an engine view backed by Chrome.
type Browser struct {
	opts    Options
	logger  *logrus.Logger
	console io.Writer
	target  Target
}

// New creates a Browser. Chrome is not started until Open.
func New(opts Options, logger *logrus.Logger) *Browser {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &Browser{opts: opts, logger: logger, console: os.Stdout}
}

// Settings returns the browser's settings target.
func (b *Browser) Settings() engine.Settings { return &b.target }

// Target returns the current toggle state.
func (b *Browser) Target() *Target { return &b.target }

// SetConsole redirects forwarded console messages.
func (b *Browser) SetConsole(w io.Writer) { b.console = w }

// userDataDir returns a persistent directory for Chrome user data.
func userDataDir() string {
	dir, _ := os.UserCacheDir()
	return filepath.Join(dir, "rubra-chrome-profile")
}

// AllocatorOptions returns the Chrome launch options for the current
// settings.
func (b *Browser) AllocatorOptions() []chromedp.ExecAllocatorOption {
	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-component-update", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("password-store", "basic"),
		chromedp.Flag("use-mock-keychain", true),
		chromedp.WindowSize(1500, 900),
		chromedp.UserDataDir(userDataDir()),
	}

	if b.opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", "new"))
	}
	if b.opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(b.opts.UserAgent))
	}
	if b.opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(b.opts.ChromePath))
	}

	flags := b.target.Flags()
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		allocOpts = append(allocOpts, chromedp.Flag(name, flags[name]))
	}

	return allocOpts
}

// Open launches Chrome with the current settings and navigates to url.
func (b *Browser) Open(ctx context.Context, url string) (*Page, error) {
	start := time.Now()

	var unsupported []string
	for _, k := range Unsupported() {
		unsupported = append(unsupported, k.String())
	}
	b.logger.WithFields(logrus.Fields{
		"url":         url,
		"flags":       b.target.Flags(),
		"unsupported": unsupported,
	}).Debug("Launching Chrome")

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, b.AllocatorOptions()...)
	defer allocCancel()

	ctx, cancel := context.WithTimeout(allocCtx, b.opts.Timeout)
	defer cancel()

	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	actions := b.target.Actions()
	if b.target.EnableWriteConsoleMessagesToStdout {
		b.forwardConsole(ctx)
		actions = append(actions, cdpruntime.Enable())
	}

	var title, finalURL string
	actions = append(actions,
		chromedp.Navigate(url),
		chromedp.Title(&title),
		chromedp.Location(&finalURL),
	)
	if err := chromedp.Run(ctx, actions...); err != nil {
		return nil, fmt.Errorf("opening %s: %w", url, err)
	}

	p := &Page{URL: finalURL, Title: title, LoadTime: time.Since(start)}
	b.logger.WithFields(logrus.Fields{
		"url":      p.URL,
		"duration": p.LoadTime,
	}).Info("Page loaded")
	return p, nil
}

func (b *Browser) forwardConsole(ctx context.Context) {
	chromedp.ListenTarget(ctx, func(ev interface{}) {
		msg, ok := ev.(*cdpruntime.EventConsoleAPICalled)
		if !ok {
			return
		}
		parts := make([]string, 0, len(msg.Args))
		for _, arg := range msg.Args {
			if len(arg.Value) > 0 {
				parts = append(parts, string(arg.Value))
			} else {
				parts = append(parts, arg.Description)
			}
		}
		fmt.Fprintf(b.console, "console.%s: %s\n", msg.Type, strings.Join(parts, " "))
	})
}
