package mcgen

import "strings"

// ResourceLocation is a canonical (domain, path) identifier pair. Both parts
// are non-empty after resolution; path segments are joined with '/'.
type ResourceLocation struct {
	Domain string
	Path   string
}

// String renders the identifier as domain:path.
func (r ResourceLocation) String() string {
	return r.Domain + ":" + r.Path
}

// Join renders the identifier with an optional path prefix. When simple is
// true and the domain is the default domain, the domain prefix is dropped.
func (r ResourceLocation) Join(prefix string, simple bool) string {
	if simple && r.Domain == DefaultDomain {
		return prefix + r.Path
	}
	return r.Domain + ":" + prefix + r.Path
}

// Location parses a ResourceLocation from one or two positional inputs: an
// optional domain followed by a path specification. The path specification
// may be:
//
//   - a ResourceLocation, returned unchanged
//   - a string, possibly containing '/' separators and one ':' domain separator
//   - a sequence of strings or nested sequences, flattened and '/'-joined
//
// If the joined path text contains a ':', it is split at the first occurrence
// and any caller-supplied domain is ignored. Otherwise the supplied domain
// applies, defaulting to "minecraft".
func Location(parts ...Json) (ResourceLocation, error) {
	if len(parts) != 1 && len(parts) != 2 {
		return ResourceLocation{}, InvalidArityAt("mcgen.Location",
			"must take one or two arguments: [optional] domain, and path elements")
	}
	domain, data := DefaultDomain, parts[0]
	if len(parts) == 2 {
		d, ok := parts[0].(string)
		if !ok {
			return ResourceLocation{}, UnknownShapeAt("mcgen.Location", parts[0])
		}
		domain, data = d, parts[1]
	}
	if loc, ok := data.(ResourceLocation); ok {
		return loc, nil
	}
	segments, err := StrPath(data)
	if err != nil {
		return ResourceLocation{}, err
	}
	// The split happens on the fully joined string, not per-segment.
	joined := strings.Join(segments, "/")
	if i := strings.Index(joined, ":"); i >= 0 {
		return ResourceLocation{Domain: joined[:i], Path: joined[i+1:]}, nil
	}
	return ResourceLocation{Domain: domain, Path: joined}, nil
}

// SimpleLocation resolves data and renders it as a bare path when the domain
// is the default domain, unless forceDomain requests the domain:path form.
func SimpleLocation(data Json, forceDomain bool) (string, error) {
	loc, err := Location(DefaultDomain, data)
	if err != nil {
		return "", err
	}
	if loc.Domain == DefaultDomain && !forceDomain {
		return loc.Path, nil
	}
	return loc.Domain + ":" + loc.Path, nil
}

// StrPath converts a string or nested sequence to a flat string list,
// splitting on '/', for use in path construction.
func StrPath(v Json) ([]string, error) {
	switch t := v.(type) {
	case string:
		return strings.Split(t, "/"), nil
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			out = append(out, strings.Split(s, "/")...)
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			segments, err := StrPath(e)
			if err != nil {
				return nil, err
			}
			out = append(out, segments...)
		}
		return out, nil
	default:
		return nil, UnknownShapeAt("mcgen.StrPath", v)
	}
}

// StrList converts a string or nested sequence to a flat string list without
// splitting on '/'.
func StrList(v Json) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []string:
		return append([]string(nil), t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range Flatten(t) {
			s, ok := e.(string)
			if !ok {
				return nil, UnknownShapeAt("mcgen.StrList", e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, UnknownShapeAt("mcgen.StrList", v)
	}
}

// DomainPathParts resolves a name specification into a domain and its path
// segments, applying defaultDomain when the joined text carries no ':'.
func DomainPathParts(nameParts Json, defaultDomain string) (string, []string, error) {
	segments, err := StrPath(nameParts)
	if err != nil {
		return "", nil, err
	}
	joined := strings.Join(segments, "/")
	if i := strings.Index(joined, ":"); i >= 0 {
		return joined[:i], strings.Split(joined[i+1:], "/"), nil
	}
	return defaultDomain, strings.Split(joined, "/"), nil
}
