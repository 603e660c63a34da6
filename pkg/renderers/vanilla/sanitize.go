package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	copyrightPolicyOnce sync.Once
	copyrightPolicy     *bluemonday.Policy
)

// sanitizeCopyright keeps the inline markup commonly found in copyright
// notices (links, emphasis, line breaks) and strips everything else.
func sanitizeCopyright(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(copyrightSanitizer().Sanitize(trimmed))
}

func copyrightSanitizer() *bluemonday.Policy {
	copyrightPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "small", "span", "br", "b", "i")
		policy.AllowAttrs("class").OnElements("span")

		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoReferrerOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)

		copyrightPolicy = policy
	})
	return copyrightPolicy
}
