package domain

// EnvAssignment is one KEY=VALUE directive parsed from an env file.
// Value is kept verbatim: it is never trimmed, unquoted or expanded.
type EnvAssignment struct {
	Key   string
	Value string
}

// String renders the assignment back to KEY=VALUE.
func (a EnvAssignment) String() string {
	return a.Key + "=" + a.Value
}

// EnvAssignmentList keeps assignments in file line order.
// Duplicate keys are preserved; consumers decide how to merge them.
type EnvAssignmentList []EnvAssignment

// Strings renders every assignment as KEY=VALUE, keeping order.
func (l EnvAssignmentList) Strings() []string {
	out := make([]string, 0, len(l))
	for _, a := range l {
		out = append(out, a.String())
	}
	return out
}

// Keys returns the keys in order, duplicates included.
func (l EnvAssignmentList) Keys() []string {
	out := make([]string, 0, len(l))
	for _, a := range l {
		out = append(out, a.Key)
	}
	return out
}

// Lookup returns the value of the last assignment for key.
func (l EnvAssignmentList) Lookup(key string) (string, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Key == key {
			return l[i].Value, true
		}
	}
	return "", false
}

// Environment is a loaded env file together with where it came from.
type Environment struct {
	Source  string
	Entries EnvAssignmentList
}
