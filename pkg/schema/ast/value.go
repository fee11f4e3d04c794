package ast

// Kind discriminates the three shapes a node in a parsed settings or
// diagnostics document can take. Validators match on Kind instead of
// probing runtime types.
type Kind string

const (
	KindScalar   Kind = "scalar"
	KindSequence Kind = "sequence"
	KindMapping  Kind = "mapping"
)

// Entry is a single key/value pair of a mapping. Entries preserve the
// order in which keys appear in the source document.
type Entry struct {
	Key   string
	Value *Value
}

// Value is a node of a decoded settings or diagnostics document.
// Exactly one of the shape fields is meaningful, selected by Kind:
// Text for scalars, Items for sequences, Entries for mappings.
type Value struct {
	Kind Kind

	// Text is the scalar text as written in the source document.
	Text string

	// Items holds sequence elements in document order.
	Items []*Value

	// Entries holds mapping pairs in document order.
	Entries []Entry

	// Location is the position of this node in the source file.
	Location Location

	index map[string]*Value
}

// Scalar constructs a scalar value.
func Scalar(text string) *Value {
	return &Value{Kind: KindScalar, Text: text}
}

// Sequence constructs a sequence value.
func Sequence(items ...*Value) *Value {
	return &Value{Kind: KindSequence, Items: items}
}

// Mapping constructs a mapping value. Entry order is preserved.
func Mapping(entries ...Entry) *Value {
	return &Value{Kind: KindMapping, Entries: entries}
}

// Pair constructs a mapping entry.
func Pair(key string, value *Value) Entry {
	return Entry{Key: key, Value: value}
}

// IsScalar returns true if the value is a scalar.
func (v *Value) IsScalar() bool {
	return v != nil && v.Kind == KindScalar
}

// IsSequence returns true if the value is a sequence.
func (v *Value) IsSequence() bool {
	return v != nil && v.Kind == KindSequence
}

// IsMapping returns true if the value is a mapping.
func (v *Value) IsMapping() bool {
	return v != nil && v.Kind == KindMapping
}

// Get returns the value stored under key. The second return is false if
// the value is not a mapping or the key is absent.
func (v *Value) Get(key string) (*Value, bool) {
	if !v.IsMapping() {
		return nil, false
	}
	if v.index == nil {
		v.index = make(map[string]*Value, len(v.Entries))
		for _, e := range v.Entries {
			if _, dup := v.index[e.Key]; !dup {
				v.index[e.Key] = e.Value
			}
		}
	}
	val, ok := v.index[key]
	return val, ok
}

// Has returns true if the mapping contains key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the mapping keys in document order. It returns nil for
// non-mapping values.
func (v *Value) Keys() []string {
	if !v.IsMapping() {
		return nil
	}
	keys := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Len returns the number of sequence items or mapping entries, and 0 for
// scalars.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case KindSequence:
		return len(v.Items)
	case KindMapping:
		return len(v.Entries)
	}
	return 0
}

// String returns the scalar text, or a short shape tag for composite
// values. Used in log messages where a value stands in for itself.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case KindScalar:
		return v.Text
	case KindSequence:
		return "<sequence>"
	default:
		return "<mapping>"
	}
}
