package notion

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/standup-scribe/internal/apierr"
)

// transport points the client at the configured endpoint and version, and
// turns every non-2xx response into an apierr.Error. A 429 therefore fails
// the call instead of entering the client's wait-and-retry loop.
type transport struct {
	base    *url.URL
	version string
	next    http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.base.Scheme
	out.URL.Host = t.base.Host
	out.URL.Path = strings.TrimRight(t.base.Path, "/") + req.URL.Path
	out.URL.RawPath = ""
	out.Host = ""
	out.Header.Set("Notion-Version", t.version)

	resp, err := t.next.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return nil, apierr.Classify(service, resp.StatusCode, body)
}
