package omnibox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserClassify(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		in   string
		want Result
	}{
		{
			name: "https url",
			in:   "https://example.com",
			want: Result{URL: "https://example.com", Kind: KindURL},
		},
		{
			name: "ftp url",
			in:   "ftp://x",
			want: Result{URL: "ftp://x", Kind: KindURL},
		},
		{
			name: "opaque scheme",
			in:   "about:blank",
			want: Result{URL: "about:blank", Kind: KindURL},
		},
		{
			name: "file url",
			in:   "file:///etc/hosts",
			want: Result{URL: "file:///etc/hosts", Kind: KindURL},
		},
		{
			name: "localhost",
			in:   "localhost",
			want: Result{URL: "http://localhost", Kind: KindLoopback},
		},
		{
			name: "localhost with port",
			in:   "localhost:8080",
			want: Result{URL: "http://localhost:8080", Kind: KindLoopback},
		},
		{
			name: "localhost with port and path",
			in:   "localhost:8080/api",
			want: Result{URL: "http://localhost:8080/api", Kind: KindLoopback},
		},
		{
			name: "localhost with port and query",
			in:   "localhost:8080?q=1",
			want: Result{URL: "http://localhost:8080?q=1", Kind: KindLoopback},
		},
		{
			name: "domain with port and path",
			in:   "example.com:8080/path",
			want: Result{URL: "https://example.com:8080/path", Kind: KindDomain},
		},
		{
			name: "localhost with path",
			in:   "localhost/admin",
			want: Result{URL: "http://localhost/admin", Kind: KindLoopback},
		},
		{
			name: "loopback ip with port",
			in:   "127.0.0.1:3000/api",
			want: Result{URL: "http://127.0.0.1:3000/api", Kind: KindLoopback},
		},
		{
			name: "absolute path",
			in:   "/etc/hosts",
			want: Result{URL: "file:///etc/hosts", Kind: KindFile},
		},
		{
			name: "absolute path with spaces",
			in:   "/home/me/My Notes.html",
			want: Result{URL: "file:///home/me/My Notes.html", Kind: KindFile},
		},
		{
			name: "bare domain",
			in:   "example.com",
			want: Result{URL: "https://example.com", Kind: KindDomain},
		},
		{
			name: "nested domain",
			in:   "sub.example.co.uk",
			want: Result{URL: "https://sub.example.co.uk", Kind: KindDomain},
		},
		{
			name: "domain with path",
			in:   "go.dev/doc/effective_go",
			want: Result{URL: "https://go.dev/doc/effective_go", Kind: KindDomain},
		},
		{
			name: "domain with port",
			in:   "example.com:8443",
			want: Result{URL: "https://example.com:8443", Kind: KindDomain},
		},
		{
			name: "private ip",
			in:   "192.168.1.1",
			want: Result{URL: "https://192.168.1.1", Kind: KindDomain},
		},
		{
			name: "internationalized domain",
			in:   "bücher.de",
			want: Result{URL: "https://bücher.de", Kind: KindDomain},
		},
		{
			name: "surrounding whitespace",
			in:   "  example.com \n",
			want: Result{URL: "https://example.com", Kind: KindDomain},
		},
		{
			name: "phrase",
			in:   "how to code",
			want: Result{URL: "https://duckduckgo.com/?q=how%20to%20code", Kind: KindSearch},
		},
		{
			name: "single word",
			in:   "golang",
			want: Result{URL: "https://duckduckgo.com/?q=golang", Kind: KindSearch},
		},
		{
			name: "reserved characters",
			in:   "what is 1+1?",
			want: Result{URL: "https://duckduckgo.com/?q=what%20is%201%2B1%3F", Kind: KindSearch},
		},
		{
			name: "email-like text",
			in:   "user@example.com",
			want: Result{URL: "https://duckduckgo.com/?q=user%40example.com", Kind: KindSearch},
		},
		{
			name: "leading hyphen label",
			in:   "-bad.com",
			want: Result{URL: "https://duckduckgo.com/?q=-bad.com", Kind: KindSearch},
		},
		{
			name: "empty",
			in:   "",
			want: Result{URL: "https://duckduckgo.com/?q=", Kind: KindSearch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Classify(tt.in), "Classify(%q)", tt.in)
		})
	}
}

func TestResolveExplicitSchemeUnchanged(t *testing.T) {
	for _, in := range []string{
		"https://example.com",
		"http://example.com/a?b=c#d",
		"ftp://x",
		"mailto:someone@example.com",
		"data:text/plain,hello",
	} {
		assert.Equal(t, in, Resolve(in))
	}
}

func TestSetDefaultSearch(t *testing.T) {
	p := NewParser()

	p.SetDefaultSearch("https://search.example/find?query=%s&lang=en")
	assert.Equal(t, "https://search.example/find?query=rust%20vs%20go&lang=en", p.Resolve("rust vs go"))

	p.SetDefaultSearch("https://search.example/?q=")
	assert.Equal(t, "https://search.example/?q=cats", p.Resolve("cats"))

	p.SetDefaultSearch("")
	assert.Equal(t, "https://duckduckgo.com/?q=cats", p.Resolve("cats"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "loopback", KindLoopback.String())
	assert.Equal(t, "search", KindSearch.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
