package dictionary

import "fmt"

// ItemKind discriminates the three shapes a structural item in the
// dictionary can take: the "(kind, name,
// required)" triple.
type ItemKind int

const (
	// ItemField is a direct reference to a field in the field catalogue.
	ItemField ItemKind = iota
	// ItemGroup is a repeating block of fields, counted by CountField.
	ItemGroup
	// ItemComponent is a named, reusable block resolved by name against
	// the schema's component table.
	ItemComponent
)

func (k ItemKind) String() string {
	switch k {
	case ItemField:
		return "field"
	case ItemGroup:
		return "group"
	case ItemComponent:
		return "component"
	default:
		return "unknown"
	}
}

// FieldDef describes one entry of the FIX field catalogue.
type FieldDef struct {
	Number uint32
	Name   string
	Type   string
	// Enum maps a field's legal wire value to its human-readable
	// description, e.g. "1" -> "Buy". Never consulted during validation
	// (value-domain checks are out of scope here) — carried
	// purely as descriptive data for callers that want it.
	Enum map[string]string
}

// Item is one child of a header, trailer, message, group, or component:
// a field reference, a nested group, or a reference to a named component.
type Item struct {
	Kind     ItemKind
	Name     string
	Required bool

	// Group only: the ordered children of the group, and the name of the
	// field that carries the group's repetition count.
	GroupItems []Item
	CountField string

	// Component only: the referenced component's name. Resolve it via
	// Schema.Component to get its Items.
}

// ComponentDef is a named, reusable ordered list of structural items,
// referenced from messages, groups, or other components by name.
type ComponentDef struct {
	Name  string
	Items []Item
}

// MessageDef is one <message> entry: a msgtype, a display name, a
// category, and the ordered structural items that make up its body.
type MessageDef struct {
	MsgType  string
	Name     string
	Category string
	Items    []Item
}

// Schema is the read-only, in-memory FIX dictionary. Build one with
// NewSchema or LoadFile/LoadReader; every method is a pure lookup.
type Schema struct {
	fieldsByNumber map[uint32]FieldDef
	fieldsByName   map[string]FieldDef
	messages       map[string]MessageDef
	components     map[string]ComponentDef

	header      []Item
	trailer     []Item
	headerNames map[string]bool
	trailerNames map[string]bool
}

// NewSchema builds and validates a Schema from already-parsed dictionary
// structures. It resolves every FieldRef and ComponentRef, and rejects a
// component reference graph containing a cycle.
func NewSchema(fields []FieldDef, header, trailer []Item, components []ComponentDef, messages []MessageDef) (*Schema, error) {
	s := &Schema{
		fieldsByNumber: make(map[uint32]FieldDef, len(fields)),
		fieldsByName:   make(map[string]FieldDef, len(fields)),
		messages:       make(map[string]MessageDef, len(messages)),
		components:     make(map[string]ComponentDef, len(components)),
		header:         header,
		trailer:        trailer,
		headerNames:    itemNameSet(header),
		trailerNames:   itemNameSet(trailer),
	}

	for _, f := range fields {
		s.fieldsByNumber[f.Number] = f
		s.fieldsByName[f.Name] = f
	}
	for _, c := range components {
		s.components[c.Name] = c
	}
	for _, m := range messages {
		s.messages[m.MsgType] = m
	}

	if err := s.validateItems(header, "header"); err != nil {
		return nil, err
	}
	if err := s.validateItems(trailer, "trailer"); err != nil {
		return nil, err
	}
	for _, c := range components {
		if err := s.validateItems(c.Items, fmt.Sprintf("component %q", c.Name)); err != nil {
			return nil, err
		}
	}
	for _, m := range messages {
		if err := s.validateItems(m.Items, fmt.Sprintf("message %q", m.MsgType)); err != nil {
			return nil, err
		}
	}
	if err := s.checkComponentCycles(); err != nil {
		return nil, err
	}

	return s, nil
}

func itemNameSet(items []Item) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it.Name] = true
	}
	return set
}

// validateItems recurses through a structural item list, checking that
// every FieldRef resolves against the field catalogue and every
// ComponentRef resolves against the component table.
func (s *Schema) validateItems(items []Item, context string) error {
	for _, it := range items {
		switch it.Kind {
		case ItemField:
			if _, ok := s.fieldsByName[it.Name]; !ok {
				return fmt.Errorf("dictionary: %s references unknown field %q", context, it.Name)
			}
		case ItemGroup:
			if err := s.validateItems(it.GroupItems, fmt.Sprintf("group %q in %s", it.Name, context)); err != nil {
				return err
			}
		case ItemComponent:
			if _, ok := s.components[it.Name]; !ok {
				return fmt.Errorf("dictionary: %s references unknown component %q", context, it.Name)
			}
		default:
			return fmt.Errorf("dictionary: %s has item %q with unknown kind", context, it.Name)
		}
	}
	return nil
}

// checkComponentCycles walks the component reference graph with a
// standard grey/black DFS and rejects any cycle.
func (s *Schema) checkComponentCycles() error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(s.components))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("dictionary: component cycle detected at %q", name)
		case done:
			return nil
		}
		state[name] = visiting
		for _, it := range componentRefs(s.components[name].Items) {
			if err := visit(it); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for name := range s.components {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// componentRefs collects the component names directly referenced by an
// item list, including inside nested groups.
func componentRefs(items []Item) []string {
	var refs []string
	for _, it := range items {
		switch it.Kind {
		case ItemComponent:
			refs = append(refs, it.Name)
		case ItemGroup:
			refs = append(refs, componentRefs(it.GroupItems)...)
		}
	}
	return refs
}

// HeaderContains reports whether the header places a field of the given
// name.
func (s *Schema) HeaderContains(name string) bool {
	return s.headerNames[name]
}

// TrailerContains reports whether the trailer places a field of the
// given name.
func (s *Schema) TrailerContains(name string) bool {
	return s.trailerNames[name]
}

// FieldByNumber looks up a field's definition by its tag number.
func (s *Schema) FieldByNumber(number uint32) (FieldDef, bool) {
	f, ok := s.fieldsByNumber[number]
	return f, ok
}

// FieldByName looks up a field's definition by name.
func (s *Schema) FieldByName(name string) (FieldDef, bool) {
	f, ok := s.fieldsByName[name]
	return f, ok
}

// MessageByMsgType looks up a message definition by its wire msgtype,
// e.g. "D" for NewOrderSingle.
func (s *Schema) MessageByMsgType(msgType string) (MessageDef, bool) {
	m, ok := s.messages[msgType]
	return m, ok
}

// Component looks up a named, reusable component definition.
func (s *Schema) Component(name string) (ComponentDef, bool) {
	c, ok := s.components[name]
	return c, ok
}

// HeaderItems returns the header's ordered structural items.
func (s *Schema) HeaderItems() []Item {
	return s.header
}

// TrailerItems returns the trailer's ordered structural items.
func (s *Schema) TrailerItems() []Item {
	return s.trailer
}
