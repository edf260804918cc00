package helpdex

import (
	"path"
	"regexp"
	"strings"
)

// absoluteLinkRe matches links that already carry an absolute scheme and
// must pass through resolution unchanged.
var absoluteLinkRe = regexp.MustCompile(`(?i)^(https?|file|ftp):`)

// prefixSchemeRe captures a leading scheme plus its slashes off a prefix so
// that path canonicalization does not collapse the double slash of URLs.
var prefixSchemeRe = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*:/*`)

// ResolveLink resolves a possibly-relative link against a base prefix and
// the name of the document it came from. Always returns a string; malformed
// input passes through untouched.
//
// In the default (non-expanding) mode a fragment link becomes
// prefix+docName+link, a leading "./" is stripped, and everything else is
// prefix+link. Expanding mode additionally normalizes "." and ".." segments
// against a filesystem-style path grammar; it splits a leading scheme off
// the prefix first and reattaches it afterwards. The non-expanding path
// deliberately performs no scheme handling — the two paths are asymmetric
// and kept that way.
func ResolveLink(link, prefix, docName string, expand bool) string {
	if absoluteLinkRe.MatchString(link) {
		return link
	}
	if !expand {
		if strings.HasPrefix(link, "#") {
			return prefix + docName + link
		}
		return prefix + strings.TrimPrefix(link, "./")
	}

	scheme := prefixSchemeRe.FindString(prefix)
	rest := prefix[len(scheme):]
	link = strings.TrimPrefix(link, "./")

	if strings.HasPrefix(link, "#") {
		return scheme + cleanPath(rest+docName) + link
	}
	return scheme + cleanPath(rest+link)
}

// cleanPath resolves "." and ".." segments without disturbing a leading
// slash. path.Clean also drops a trailing slash, which is acceptable for
// resolved links.
func cleanPath(p string) string {
	if p == "" {
		return p
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return ""
	}
	return cleaned
}
