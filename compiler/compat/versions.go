// Package compat decides whether a prefixable feature is required for a
// set of target browser versions. The compatibility table is data, not
// logic: it ships with the binary and is loaded once.
package compat

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// BrowserNames is the fixed set of browser slots a Versions may carry.
var BrowserNames = []string{
	"chrome",
	"and_chr",
	"and_ff",
	"and_qq",
	"and_uc",
	"android",
	"baidu",
	"bb",
	"edge",
	"firefox",
	"ie",
	"ie_mob",
	"ios_saf",
	"kaios",
	"op_mini",
	"op_mob",
	"opera",
	"safari",
	"samsung",
}

var validBrowser = func() map[string]bool {
	m := make(map[string]bool, len(BrowserNames))
	for _, n := range BrowserNames {
		m[n] = true
	}
	return m
}()

// Versions maps browser names to an optional version. A missing entry
// means the browser is not targeted.
type Versions map[string]*semver.Version

// ParseVersions builds a Versions from browser → version strings, e.g.
// {"chrome": "4", "firefox": "3.5"}. Unknown browser names are rejected.
func ParseVersions(raw map[string]string) (Versions, error) {
	v := Versions{}
	for name, verStr := range raw {
		if !validBrowser[name] {
			return nil, fmt.Errorf("unknown browser %q", name)
		}
		if verStr == "" {
			continue
		}
		ver, err := semver.NewVersion(verStr)
		if err != nil {
			return nil, fmt.Errorf("browser %s: invalid version %q: %w", name, verStr, err)
		}
		v[name] = ver
	}
	return v, nil
}

// MustParseVersions is ParseVersions that panics on error; for tests and
// static tables.
func MustParseVersions(raw map[string]string) Versions {
	v, err := ParseVersions(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the version for a browser slot, or nil.
func (v Versions) Get(name string) *semver.Version {
	if v == nil {
		return nil
	}
	return v[name]
}

// IsAnyTarget reports whether no browser slot is set. An empty target set
// means "assume the worst": every prefix is emitted.
func (v Versions) IsAnyTarget() bool {
	for _, name := range BrowserNames {
		if v.Get(name) != nil {
			return false
		}
	}
	return true
}

// String renders the target set in stable order for logs.
func (v Versions) String() string {
	names := make([]string, 0, len(v))
	for name, ver := range v {
		if ver != nil {
			names = append(names, name+" "+ver.String())
		}
	}
	sort.Strings(names)

	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
