package valuedomain

import (
	"strings"
)

// relativeName converts a possibly fully-qualified record name to its
// zone-relative form. The zone apex is represented as "@".
func relativeName(name, domain string) string {
	name = strings.TrimSuffix(name, ".")
	if name == domain {
		return "@"
	}

	name = strings.TrimSuffix(name, "."+domain)
	if name == "" {
		return "@"
	}

	return name
}

// fullName converts a zone-relative record name to its fully-qualified form
// without a trailing dot, substituting the domain for the "@" apex marker.
func fullName(name, domain string) string {
	if name == "@" {
		return domain
	}

	name = strings.TrimSuffix(name, ".")
	if name == domain || strings.HasSuffix(name, "."+domain) {
		return name
	}

	return name + "." + domain
}

// bindFormatTarget canonicalizes record content for storage. CNAME targets
// must be absolute in the vendor's zone format, so a missing trailing dot
// is added on write. Read content is never touched.
func bindFormatTarget(rtype, target string) string {
	if strings.EqualFold(rtype, "cname") && !strings.HasSuffix(target, ".") {
		return target + "."
	}

	return target
}
