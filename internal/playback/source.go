package playback

import "strings"

// ResolveSource turns a track's audio source into a fetchable location.
//
// Absolute http(s) URLs are returned unchanged. Anything else is treated
// as a server path: a leading slash is added when missing and the path is
// joined to baseURL. An empty baseURL leaves the normalized path alone.
func ResolveSource(baseURL, src string) string {
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if !strings.HasPrefix(src, "/") {
		src = "/" + src
	}
	if baseURL == "" {
		return src
	}
	return strings.TrimRight(baseURL, "/") + src
}
