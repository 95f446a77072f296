package oauth

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is preserved on
// encoding and duplicate keys (repeated facets) are kept as separate entries.
type Params []Param

// Set replaces every existing value of key with value, or appends it.
func (p *Params) Set(key, value string) {
	out := (*p)[:0]
	replaced := false
	for _, kv := range *p {
		if kv.Key != key {
			out = append(out, kv)
			continue
		}
		if !replaced {
			out = append(out, Param{Key: key, Value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Param{Key: key, Value: value})
	}
	*p = out
}

// SetInt sets key to the decimal form of v.
func (p *Params) SetInt(key string, v int) { p.Set(key, strconv.Itoa(v)) }

// SetBool sets key to "true" or "false".
func (p *Params) SetBool(key string, v bool) { p.Set(key, strconv.FormatBool(v)) }

// Add appends a value for key, keeping earlier ones.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// Clone returns an independent copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// Encode serializes the parameters as key=value pairs joined by '&', both
// sides percent-encoded per RFC 3986.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(SafeEncode(kv.Key))
		b.WriteByte('=')
		b.WriteString(SafeEncode(kv.Value))
	}
	return b.String()
}

// ParseQuery decodes a raw query string into Params, keeping pair order.
func ParseQuery(raw string) (Params, error) {
	var p Params
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		p.Add(k, v)
	}
	return p, nil
}
