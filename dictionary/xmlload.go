package dictionary

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/bitwyre/fixparser/health"
)

// LoadFile reads and parses a FIX 4.4 XML dictionary file at path,
// per the FIX data-dictionary XML grammar, and builds a validated Schema
// from it.
//
// This loader is kept as an external collaborator, separate
// from the core: Validate never calls it, it only ever consumes an
// already-built *Schema. LoadFile exists so this module is usable
// standalone, the way the original C++ implementation loaded its own
// dictionary via pugixml (original_source/src/fixparser.hpp).
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses a FIX 4.4 XML dictionary from r and builds a
// validated Schema from it.
func LoadReader(r io.Reader) (*Schema, error) {
	var doc xmlFix
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dictionary: parse xml: %w", err)
	}

	fields := make([]FieldDef, 0, len(doc.Fields.Field))
	for _, xf := range doc.Fields.Field {
		fd := FieldDef{
			Number: xf.Number,
			Name:   xf.Name,
			Type:   xf.Type,
		}
		if len(xf.Value) > 0 {
			fd.Enum = make(map[string]string, len(xf.Value))
			for _, v := range xf.Value {
				fd.Enum[v.Enum] = v.Description
			}
		}
		fields = append(fields, fd)
	}

	components := make([]ComponentDef, 0, len(doc.Components.Component))
	for _, xc := range doc.Components.Component {
		components = append(components, ComponentDef{
			Name:  xc.Name,
			Items: xc.Items(),
		})
	}

	messages := make([]MessageDef, 0, len(doc.Messages.Message))
	for _, xm := range doc.Messages.Message {
		messages = append(messages, MessageDef{
			MsgType:  xm.MsgType,
			Name:     xm.Name,
			Category: xm.MsgCat,
			Items:    xm.Items(),
		})
	}

	header := doc.Header.Items()
	trailer := doc.Trailer.Items()

	return NewSchema(fields, header, trailer, components, messages)
}

// LoadFileStatus behaves like LoadFile, but also reports the load as a
// health.Status under name, for callers that feed dictionary loads into
// a health.Monitor rather than handling the error directly.
func LoadFileStatus(name, path string) (*Schema, health.Status) {
	schema, err := LoadFile(path)
	return schema, health.SchemaStatus(name, err)
}

// LoadReaderStatus behaves like LoadReader, but also reports the load
// as a health.Status under name.
func LoadReaderStatus(name string, r io.Reader) (*Schema, health.Status) {
	schema, err := LoadReader(r)
	return schema, health.SchemaStatus(name, err)
}

// xmlFix mirrors the FIX data-dictionary XML grammar:
//
//	<fix><fields>...</fields><header>...</header><trailer>...</trailer>
//	     <messages>...</messages><components>...</components></fix>
type xmlFix struct {
	XMLName    xml.Name      `xml:"fix"`
	Header     xmlItemHolder `xml:"header"`
	Trailer    xmlItemHolder `xml:"trailer"`
	Messages   struct {
		Message []xmlMessage `xml:"message"`
	} `xml:"messages"`
	Components struct {
		Component []xmlComponent `xml:"component"`
	} `xml:"components"`
	Fields struct {
		Field []xmlField `xml:"field"`
	} `xml:"fields"`
}

type xmlField struct {
	Number uint32     `xml:"number,attr"`
	Name   string     `xml:"name,attr"`
	Type   string     `xml:"type,attr"`
	Value  []xmlValue `xml:"value"`
}

type xmlValue struct {
	Enum        string `xml:"enum,attr"`
	Description string `xml:"description,attr"`
}

type xmlMessage struct {
	MsgType string `xml:"msgtype,attr"`
	Name    string `xml:"name,attr"`
	MsgCat  string `xml:"msgcat,attr"`
	xmlItemHolder
}

type xmlComponent struct {
	Name string `xml:"name,attr"`
	xmlItemHolder
}

// xmlItemHolder holds the ordered children of <header>, <trailer>,
// <message>, and <component>: any mix of <field>, <group>, <component>.
// encoding/xml's ",any" tag decodes them into a single slice in document
// order, which xmlRawItem then recurses through for <group>'s own
// children (a group may itself contain fields, nested groups, and
// components).
type xmlItemHolder struct {
	Inner []xmlRawItem `xml:",any"`
}

type xmlRawItem struct {
	XMLName  xml.Name
	Name     string       `xml:"name,attr"`
	Required string       `xml:"required,attr"`
	Children []xmlRawItem `xml:",any"`
}

func (h xmlItemHolder) Items() []Item {
	return rawItemsToItems(h.Inner)
}

func rawItemsToItems(raw []xmlRawItem) []Item {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		required := r.Required == "Y"
		switch r.XMLName.Local {
		case "field":
			items = append(items, Item{Kind: ItemField, Name: r.Name, Required: required})
		case "component":
			items = append(items, Item{Kind: ItemComponent, Name: r.Name, Required: required})
		case "group":
			items = append(items, Item{
				Kind:       ItemGroup,
				Name:       r.Name,
				Required:   required,
				CountField: r.Name,
				GroupItems: rawItemsToItems(r.Children),
			})
		}
	}
	return items
}
