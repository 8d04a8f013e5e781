package httpclient

import (
	"net/http"
	"strings"
)

// NextLink returns the target of the rel="next" entry of a Link header, as
// sent by paginated REST services such as UniProt. It returns "" on the last page.
func NextLink(h http.Header) string {
	for _, v := range h.Values("Link") {
		for v != "" {
			start := strings.IndexByte(v, '<')
			end := strings.IndexByte(v, '>')
			if start < 0 || end < start {
				break
			}
			target := v[start+1 : end]
			v = v[end+1:]

			// Parameters run up to the next link target.
			params := v
			if i := strings.IndexByte(v, '<'); i >= 0 {
				params = v[:i]
			}
			for _, p := range strings.Split(params, ";") {
				k, val, ok := strings.Cut(strings.Trim(strings.TrimSpace(p), ","), "=")
				if ok && strings.EqualFold(strings.TrimSpace(k), "rel") && relHas(val, "next") {
					return target
				}
			}
		}
	}
	return ""
}

func relHas(val, rel string) bool {
	for _, r := range strings.Fields(strings.Trim(strings.TrimSpace(val), `",`)) {
		if strings.EqualFold(r, rel) {
			return true
		}
	}
	return false
}
