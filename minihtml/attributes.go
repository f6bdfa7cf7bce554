package minihtml

import "strings"

// An Attribute is a single name="value" pair of a node.
type Attribute struct {
	Key string
	Val string
}

// Attributes is an insertion-ordered attribute map. Setting an existing key
// replaces its value in place, so successive attribute lists keep the
// position where a key first appeared.
type Attributes []Attribute

// Get returns the value of key and whether it is present.
func (as Attributes) Get(key string) (string, bool) {
	for _, a := range as {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (as Attributes) Has(key string) bool {
	_, ok := as.Get(key)
	return ok
}

// Set assigns val to key.
func (as *Attributes) Set(key string, val string) {
	for i := range *as {
		if (*as)[i].Key == key {
			(*as)[i].Val = val
			return
		}
	}
	*as = append(*as, Attribute{Key: key, Val: val})
}

// Delete removes key, if present.
func (as *Attributes) Delete(key string) {
	for i, a := range *as {
		if a.Key == key {
			*as = append((*as)[:i], (*as)[i+1:]...)
			return
		}
	}
}

// Merge sets every pair of other, in order.
func (as *Attributes) Merge(other Attributes) {
	for _, a := range other {
		as.Set(a.Key, a.Val)
	}
}

// Clone returns a copy that does not share storage with as.
func (as Attributes) Clone() Attributes {
	if as == nil {
		return nil
	}
	out := make(Attributes, len(as))
	copy(out, as)
	return out
}

// ParseAttributes parses the raw inner text of one '(...)' span, with pairs
// like `key="value", key2=value2` separated by commas or spaces.
//
// Double quotes toggle quote mode and are never stored. Inside quotes every
// character goes to the value, so values may contain delimiters.
// A pair ending on a delimiter is kept when its key is not empty. The last
// pair is only kept when both its key and its value are not empty, which
// means that valueless (boolean) attributes are not supported.
func ParseAttributes(raw string) Attributes {
	var pairs Attributes
	var key, value strings.Builder
	parsingKey := true
	inQuotes := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if c == '"' {
			inQuotes = !inQuotes
			continue
		}

		if inQuotes {
			value.WriteByte(c)
			continue
		}

		switch {
		case c == '=' && parsingKey:
			parsingKey = false

		case (c == ',' || c == ' ') && !parsingKey:
			k := strings.TrimSpace(key.String())
			if len(k) > 0 {
				pairs.Set(k, strings.TrimSpace(value.String()))
			}
			key.Reset()
			value.Reset()
			parsingKey = true

		case parsingKey:
			key.WriteByte(c)

		default:
			value.WriteByte(c)
		}
	}

	// Flush the last pair
	if key.Len() > 0 && value.Len() > 0 {
		k := strings.TrimSpace(key.String())
		if len(k) > 0 {
			pairs.Set(k, strings.TrimSpace(value.String()))
		}
	}

	return pairs
}
