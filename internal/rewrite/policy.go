package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownPolicy is returned when an asset policy name is not recognised
var ErrUnknownPolicy = errors.New("unknown asset policy")

// Policy decides which request paths are treated as static assets. Both
// patterns are anchored at the end of the path and cannot cross a "/", so
// only the final path segment is ever inspected.
type Policy int

const (
	// PolicyExtension treats a path as an asset when its final segment ends
	// with a dot followed by two or more characters that are neither a dot
	// nor a slash, e.g. /app.min.js or /archive.tar-gz.
	PolicyExtension Policy = iota

	// PolicyAlphanumeric treats a path as an asset when its final segment
	// ends with a dot followed by one to eight ASCII letters or digits,
	// e.g. /a.b or /font.woff2 but not /file.d_ts or /a.123456789.
	PolicyAlphanumeric
)

// DefaultPolicy is used when no policy is configured
const DefaultPolicy = PolicyExtension

// The patterns are shared verbatim with the rendered edge function, so they
// must stay valid in both RE2 and JavaScript regex literals.
var policies = map[Policy]struct {
	name    string
	pattern string
}{
	PolicyExtension:    {name: "extension", pattern: `\.[^.\/]{2,}$`},
	PolicyAlphanumeric: {name: "alphanumeric", pattern: `\.[a-zA-Z0-9]{1,8}$`},
}

var compiled = func() map[Policy]*regexp.Regexp {
	m := make(map[Policy]*regexp.Regexp, len(policies))
	for p, def := range policies {
		m[p] = regexp.MustCompile(def.pattern)
	}

	return m
}()

// ParsePolicy returns the policy for name. An empty name selects DefaultPolicy.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultPolicy, nil
	}

	for p, def := range policies {
		if def.name == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q, supported values are %s", ErrUnknownPolicy, name, PolicyNames())
}

// PolicyNames lists the accepted policy names, used for flag usage strings
func PolicyNames() string {
	return fmt.Sprintf("%q, %q", policies[PolicyExtension].name, policies[PolicyAlphanumeric].name)
}

func (p Policy) String() string {
	if def, ok := policies[p]; ok {
		return def.name
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// Pattern returns the regular expression source of the policy
func (p Policy) Pattern() string {
	return policies[p].pattern
}

// Valid reports whether p is one of the defined policies
func (p Policy) Valid() bool {
	_, ok := policies[p]
	return ok
}

func (p Policy) match(path string) bool {
	re, ok := compiled[p]
	if !ok {
		return false
	}

	return re.MatchString(path)
}
