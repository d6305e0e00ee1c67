// Package omnibox turns free-form address bar input into a navigable target.
package omnibox

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// DefaultSearch is the search URL format used when input is not an address.
const DefaultSearch = "https://duckduckgo.com/?q=%s"

// Kind describes how an input was classified.
type Kind int

const (
	KindURL      Kind = iota // explicit scheme, used as-is
	KindLoopback             // localhost or 127.x, served over http
	KindFile                 // absolute filesystem path
	KindDomain               // host name, served over https
	KindSearch               // anything else
)

func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindLoopback:
		return "loopback"
	case KindFile:
		return "file"
	case KindDomain:
		return "domain"
	case KindSearch:
		return "search"
	}
	return "unknown"
}

// Result is a classified omnibox input.
type Result struct {
	URL  string // Target to navigate to
	Kind Kind
}

// domainPattern matches bare host names such as example.com or sub.example.co.uk.
var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z]{2,})+$`)

// Parser resolves omnibox input.
type Parser struct {
	defaultSearch string // URL format for search fallback
}

// NewParser creates a parser using DuckDuckGo for search.
func NewParser() *Parser {
	return &Parser{defaultSearch: DefaultSearch}
}

// SetDefaultSearch sets the search URL format. The first %s is replaced
// with the encoded query; an empty format restores the default.
func (p *Parser) SetDefaultSearch(urlFmt string) {
	if urlFmt == "" {
		urlFmt = DefaultSearch
	}
	p.defaultSearch = urlFmt
}

// Resolve returns the navigation target for input. It never fails.
func (p *Parser) Resolve(input string) string {
	return p.Classify(input).URL
}

// Classify resolves input and reports which rule produced the target.
func (p *Parser) Classify(input string) Result {
	input = strings.TrimSpace(input)

	if u, explicit, ok := parse(input); ok {
		host := u.Hostname()
		switch {
		case explicit:
			return Result{URL: input, Kind: KindURL}
		case host == "localhost" || strings.HasPrefix(host, "127."):
			return Result{URL: "http://" + input, Kind: KindLoopback}
		case strings.HasPrefix(u.Path, "/") && host == "":
			return Result{URL: "file://" + input, Kind: KindFile}
		default:
			return Result{URL: "https://" + input, Kind: KindDomain}
		}
	}

	if isDomain(input) {
		return Result{URL: "https://" + input, Kind: KindDomain}
	}

	return Result{URL: p.searchURL(input), Kind: KindSearch}
}

func (p *Parser) searchURL(query string) string {
	// QueryEscape turns a literal '+' into %2B, so remaining '+' are spaces.
	escaped := strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
	if !strings.Contains(p.defaultSearch, "%s") {
		return p.defaultSearch + escaped
	}
	return strings.Replace(p.defaultSearch, "%s", escaped, 1)
}

// parse reports whether input is a structured URL. explicit is true when
// the input itself carries a scheme.
func parse(input string) (u *url.URL, explicit bool, ok bool) {
	if input == "" {
		return nil, false, false
	}

	// Absolute paths may legitimately contain spaces.
	if strings.HasPrefix(input, "/") && !strings.HasPrefix(input, "//") {
		return &url.URL{Path: input}, false, true
	}
	if strings.ContainsAny(input, " \t\r\n") {
		return nil, false, false
	}

	if u, err := url.Parse(input); err == nil && u.Scheme != "" && !hasPort(u.Opaque) {
		// "localhost:8080/api" parses as scheme "localhost"; an opaque part
		// starting with a port number means it was really host:port.
		return u, true, true
	}

	u, err := url.Parse("//" + input)
	if err != nil {
		return nil, false, false
	}
	host := u.Hostname()
	switch {
	case host == "":
		return nil, false, false
	case host == "localhost" || net.ParseIP(host) != nil:
		return u, false, true
	case strings.Contains(host, ".") && isHostname(host) &&
		(u.Port() != "" || u.Path != "" || u.RawQuery != "" || u.Fragment != ""):
		return u, false, true
	}
	return nil, false, false
}

// hasPort reports whether an opaque URL part begins with a port number,
// optionally followed by a path.
func hasPort(opaque string) bool {
	port, _, _ := strings.Cut(opaque, "/")
	return isPort(port)
}

func isPort(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isHostname(host string) bool {
	ascii, err := idna.Lookup.ToASCII(host)
	return err == nil && domainPattern.MatchString(ascii)
}

// isDomain matches bare host names, including internationalized ones.
func isDomain(input string) bool {
	if domainPattern.MatchString(input) {
		return true
	}
	if strings.ContainsAny(input, " /:?#") {
		return false
	}
	return isHostname(input)
}

var defaultParser = NewParser()

// Resolve resolves input with the default search provider.
func Resolve(input string) string {
	return defaultParser.Resolve(input)
}
