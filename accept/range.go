// Package accept implements the Accept-header grammar: parsing a header
// value into media ranges (RFC 9110 §12.5.1) and ranking those ranges by
// precedence.
package accept

// Param is a single parameter of a media range, in the order it appeared on
// the wire.
type Param struct {
	Name  string
	Value string
}

// Range is a single parsed media range: a pattern like type/subtype;p=v that
// can match one or more concrete media types.
//
// Type and Subtype are either "*" or a non-empty token. Parse does not
// require Subtype to be "*" when Type is "*": a header such as "*/html"
// yields Type "*" and Subtype "html". Parameters preserves insertion order (later
// duplicates of the same name overwrite the earlier value in place, per
// RFC 9110 parameter semantics) because precedence scoring counts
// parameters by number, and match-time lookup needs the final value of each
// name. Q defaults to 1 when the header omits a q parameter.
type Range struct {
	Type       string
	Subtype    string
	Parameters []Param
	Q          float64
}

// Get returns the value of the named parameter and whether it is present.
func (r *Range) Get(name string) (string, bool) {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// set appends name=value, or overwrites the value of an existing parameter
// of the same name in place (so that later duplicates "silently overwrite"
// per RFC 9110 while insertion order used for scoring is unaffected).
func (r *Range) set(name, value string) {
	for i := range r.Parameters {
		if r.Parameters[i].Name == name {
			r.Parameters[i].Value = value
			return
		}
	}
	r.Parameters = append(r.Parameters, Param{Name: name, Value: value})
}

// delete removes the named parameter, if present. Used to extract the "q"
// parameter out of Parameters once its value has been read into Q.
func (r *Range) delete(name string) {
	for i, p := range r.Parameters {
		if p.Name == name {
			r.Parameters = append(r.Parameters[:i], r.Parameters[i+1:]...)
			if len(r.Parameters) == 0 {
				r.Parameters = nil
			}
			return
		}
	}
}
