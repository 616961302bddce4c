package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Counts is an occurrence count per name that remembers the order in which
// names were first counted.
type Counts struct {
	keys []string
	n    map[string]int
}

// Add increments the count for name.
func (c *Counts) Add(name string) {
	if c.n == nil {
		c.n = make(map[string]int)
	}
	if _, seen := c.n[name]; !seen {
		c.keys = append(c.keys, name)
	}
	c.n[name]++
}

// Get returns the count for name, 0 when it was never counted.
func (c Counts) Get(name string) int {
	return c.n[name]
}

// Keys returns names in first-counted order.
func (c Counts) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of distinct names.
func (c Counts) Len() int {
	return len(c.keys)
}

// Map returns a plain copy of the counts.
func (c Counts) Map() map[string]int {
	out := make(map[string]int, len(c.keys))
	for _, k := range c.keys {
		out[k] = c.n[k]
	}
	return out
}

// MarshalJSON encodes the counts as an object whose keys keep first-counted order.
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.n[k]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CountCategories counts non-empty category tokens across songs. A token that
// appears twice on one song counts twice.
func CountCategories(songs []Song) Counts {
	var c Counts
	for _, s := range songs {
		for _, cat := range s.Categories {
			if cat != "" {
				c.Add(cat)
			}
		}
	}
	return c
}

// CountLanguages counts songs per non-empty language.
func CountLanguages(songs []Song) Counts {
	var c Counts
	for _, s := range songs {
		if s.Language != "" {
			c.Add(s.Language)
		}
	}
	return c
}
