/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package mit

import (
	"encoding/json"
	"encoding/xml"
	"sort"
)

// Mo is a managed object: an ACI class with string attributes and ordered
// children. The zero value is not usable; construct with New.
type Mo struct {
	Class    string
	Attrs    map[string]string
	Children []*Mo
}

// New creates a managed object of the given class. A nil attrs map is
// allowed and treated as empty.
func New(class string, attrs map[string]string) *Mo {
	m := &Mo{
		Class: class,
		Attrs: map[string]string{},
	}
	m.SetAttrs(attrs)
	return m
}

// Attr returns the value of the named attribute, or "" when unset.
func (m *Mo) Attr(name string) string {
	return m.Attrs[name]
}

// SetAttrs merges attrs into the object, overriding existing values.
// Empty values never override a previously set one.
func (m *Mo) SetAttrs(attrs map[string]string) *Mo {
	for k, v := range attrs {
		if v == "" && m.Attrs[k] != "" {
			continue
		}
		m.Attrs[k] = v
	}
	return m
}

// Add appends children and returns the receiver.
func (m *Mo) Add(children ...*Mo) *Mo {
	m.Children = append(m.Children, children...)
	return m
}

// Ensure returns the child of the given class whose naming attribute matches
// attrs[nameAttr], creating it when absent. Attributes are merged into an
// existing match. An empty nameAttr matches on class alone, which yields the
// singleton containers (infraInfra, fabricInst, ...).
func (m *Mo) Ensure(class, nameAttr string, attrs map[string]string) *Mo {
	for _, c := range m.Children {
		if c.Class != class {
			continue
		}
		if nameAttr == "" || c.Attrs[nameAttr] == attrs[nameAttr] {
			return c.SetAttrs(attrs)
		}
	}
	child := New(class, attrs)
	m.Add(child)
	return child
}

// Count returns the number of managed objects in the subtree, including the
// receiver.
func (m *Mo) Count() int {
	n := 1
	for _, c := range m.Children {
		n += c.Count()
	}
	return n
}

// moBody is the wire body of a managed object.
type moBody struct {
	Attributes map[string]string `json:"attributes"`
	Children   []*Mo             `json:"children,omitempty"`
}

// MarshalJSON renders the APIC JSON payload shape.
func (m *Mo) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]moBody{
		m.Class: {
			Attributes: m.Attrs,
			Children:   m.Children,
		},
	})
}

// UnmarshalJSON decodes the APIC JSON payload shape. Only the first class
// key is considered; the controller never emits more than one per object.
func (m *Mo) UnmarshalJSON(data []byte) error {
	var raw map[string]moBody
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for class, body := range raw {
		m.Class = class
		m.Attrs = body.Attributes
		if m.Attrs == nil {
			m.Attrs = map[string]string{}
		}
		m.Children = body.Children
		break
	}
	return nil
}

// MarshalXML renders the APIC XML payload shape: the class becomes the
// element name and attributes become XML attributes, sorted for stable
// output.
func (m *Mo) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: m.Class}}
	keys := make([]string, 0, len(m.Attrs))
	for k := range m.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: k},
			Value: m.Attrs[k],
		})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range m.Children {
		if err := c.MarshalXML(e, start); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
