// Package digest preprocesses a server's static list of offered media types
// once, at matcher construction, into the compact form the matcher walks on
// every request.
package digest

import "strings"

// Type is the preprocessed form of one server-offered media type: type,
// subtype, its parameters, and the original string the server registered,
// returned verbatim by the matcher on a successful match.
//
// Unlike accept.Range, Type and Subtype here are never "*" — the server
// never offers wildcards; only clients express preferences with them.
type Type struct {
	Type         string
	Subtype      string
	Parameters   map[string]string
	OriginalType string
}

// Digest splits each of types at the first ';' into spec and parameters,
// splits spec at '/' into type and subtype, and splits each parameter at
// the first '='. It is lax by design: servers supply their own values, not
// attacker-controlled input, so malformed entries are tolerated rather than
// rejected (an entry with no '/' yields an empty Subtype; one with no '='
// in a parameter yields an empty parameter value).
func Digest(types []string) []Type {
	digests := make([]Type, len(types))
	for i, t := range types {
		digests[i] = digestOne(t)
	}
	return digests
}

func digestOne(original string) Type {
	spec, paramStr, hasParams := strings.Cut(original, ";")

	typ, subtyp, _ := strings.Cut(spec, "/")

	d := Type{
		Type:         typ,
		Subtype:      subtyp,
		OriginalType: original,
	}
	if hasParams {
		d.Parameters = parseParams(paramStr)
	}
	return d
}

func parseParams(s string) map[string]string {
	params := make(map[string]string)
	for _, part := range strings.Split(s, ";") {
		name, value, _ := strings.Cut(part, "=")
		params[name] = value
	}
	return params
}
