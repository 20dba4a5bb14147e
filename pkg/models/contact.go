package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// ContactNameKey is the only contact field that always exists.
const ContactNameKey = "name"

// ContactIcon names the glyph shown next to a contact field.
type ContactIcon string

const (
	IconUser     ContactIcon = "user"
	IconMail     ContactIcon = "mail"
	IconPhone    ContactIcon = "phone"
	IconMapPin   ContactIcon = "map-pin"
	IconLinkedIn ContactIcon = "linkedin"
	IconGitHub   ContactIcon = "github"
	IconGlobe    ContactIcon = "globe"
	IconTwitter  ContactIcon = "twitter"
)

// ContactFieldSpec describes a well-known contact field.
type ContactFieldSpec struct {
	Key   string
	Label string
	Icon  ContactIcon
}

// ContactFields is the catalog of well-known contact fields in display order.
var ContactFields = []ContactFieldSpec{
	{Key: "name", Label: "Name", Icon: IconUser},
	{Key: "title", Label: "Title", Icon: IconUser},
	{Key: "email", Label: "Email", Icon: IconMail},
	{Key: "phone", Label: "Phone", Icon: IconPhone},
	{Key: "location", Label: "Location", Icon: IconMapPin},
	{Key: "linkedin", Label: "LinkedIn", Icon: IconLinkedIn},
	{Key: "github", Label: "GitHub", Icon: IconGitHub},
	{Key: "website", Label: "Website", Icon: IconGlobe},
	{Key: "twitter", Label: "Twitter", Icon: IconTwitter},
}

// LookupContactField returns the catalog entry for key. Unknown keys get a
// generic spec labelled with the key itself.
func LookupContactField(key string) (ContactFieldSpec, bool) {
	for _, f := range ContactFields {
		if f.Key == key {
			return f, true
		}
	}
	return ContactFieldSpec{Key: key, Label: key, Icon: IconGlobe}, false
}

// ContactInfo holds the required name plus an open set of optional fields.
// A field that is not present is absent, which is different from present
// with an empty value.
//
// ContactInfo values are never modified after construction; With and Without
// return new values.
type ContactInfo struct {
	Name   string
	fields map[string]string
}

// NewContactInfo builds a contact block. A "name" entry in fields is ignored.
func NewContactInfo(name string, fields map[string]string) *ContactInfo {
	c := &ContactInfo{Name: name, fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		if k == ContactNameKey {
			continue
		}
		c.fields[k] = v
	}
	return c
}

// Get returns the value of key and whether it is present.
func (c *ContactInfo) Get(key string) (string, bool) {
	if key == ContactNameKey {
		return c.Name, true
	}
	v, ok := c.fields[key]
	return v, ok
}

// Has reports whether key is present.
func (c *ContactInfo) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the present keys in canonical order: name first, then the
// catalog order, then any other keys alphabetically.
func (c *ContactInfo) Keys() []string {
	keys := []string{ContactNameKey}
	for _, f := range ContactFields {
		if f.Key == ContactNameKey {
			continue
		}
		if _, ok := c.fields[f.Key]; ok {
			keys = append(keys, f.Key)
		}
	}
	var extra []string
	for k := range c.fields {
		if _, known := LookupContactField(k); !known {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// With returns a copy of c with key set to value.
func (c *ContactInfo) With(key, value string) *ContactInfo {
	next := c.clone()
	if key == ContactNameKey {
		next.Name = value
	} else {
		next.fields[key] = value
	}
	return next
}

// Without returns a copy of c with key removed. The name cannot be removed;
// asking for it returns c unchanged.
func (c *ContactInfo) Without(key string) *ContactInfo {
	if key == ContactNameKey {
		return c
	}
	if _, ok := c.fields[key]; !ok {
		return c
	}
	next := c.clone()
	delete(next.fields, key)
	return next
}

// Equal reports whether both blocks hold the same fields and values.
func (c *ContactInfo) Equal(other *ContactInfo) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Name != other.Name || len(c.fields) != len(other.fields) {
		return false
	}
	for k, v := range c.fields {
		if ov, ok := other.fields[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func (c *ContactInfo) clone() *ContactInfo {
	next := &ContactInfo{Name: c.Name, fields: make(map[string]string, len(c.fields)+1)}
	for k, v := range c.fields {
		next.fields[k] = v
	}
	return next
}

// MarshalJSON writes the fields in canonical key order so that the raw view is
// stable across re-serialisation. Markup is not HTML-escaped.
func (c *ContactInfo) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, _ := c.Get(k)
		if err := writeJSONString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// UnmarshalJSON reads an object of string values. The name key is required.
func (c *ContactInfo) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return c.fromMap(raw)
}

// MarshalYAML writes the fields in canonical key order.
func (c *ContactInfo) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range c.Keys() {
		v, _ := c.Get(k)
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping of string values. The name key is required.
func (c *ContactInfo) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return c.fromMap(raw)
}

func (c *ContactInfo) fromMap(raw map[string]string) error {
	name, ok := raw[ContactNameKey]
	if !ok {
		return fmt.Errorf("contact info: missing required field %q", ContactNameKey)
	}
	*c = *NewContactInfo(name, raw)
	return nil
}

// AvailableContactFields lists the catalog fields that are not yet present in
// c. The name is never offered.
func AvailableContactFields(c *ContactInfo) []ContactFieldSpec {
	var out []ContactFieldSpec
	for _, f := range ContactFields {
		if f.Key == ContactNameKey {
			continue
		}
		if c != nil && c.Has(f.Key) {
			continue
		}
		out = append(out, f)
	}
	return slices.Clip(out)
}
