// Package records loads tabular input for the CLI. A Record keeps its fields
// in input order, so columns inferred from records appear in the order the
// data file lists them.
package records

// Record is an ordered set of named values.
type Record struct {
	names  []string
	values map[string]any
}

// New returns a record with the given fields, in order. Later duplicates
// overwrite earlier values but keep the first position.
func New(pairs ...Pair) Record {
	var r Record
	for _, p := range pairs {
		r.Set(p.Name, p.Value)
	}
	return r
}

// Pair is a name and value, used to build records.
type Pair struct {
	Name  string
	Value any
}

// Fields returns the field names in order.
func (r Record) Fields() []string {
	return r.names
}

// Field returns the named value.
func (r Record) Field(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set adds or replaces a field.
func (r *Record) Set(name string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Len is the number of fields.
func (r Record) Len() int {
	return len(r.names)
}
