package validate

import (
	"github.com/bitwyre/fixparser/dictionary"
	"github.com/bitwyre/fixparser/fixerrors"
	"github.com/bitwyre/fixparser/message"
)

// RequiredFields walks the dictionary's
// required-field tree for the header, for the message type recorded in
// tag 35, and for the trailer, appending a RequiredMissing error for
// every miss and an UnknownMsgType error if tag 35's value has no
// MessageDef. It returns true iff no error was appended.
//
// Unlike the original C++ implementation, which returned from the first
// missing required child of a group or component, this walks and
// accumulates every miss in every group and component the message type
// requires — the original C++ implementation's early return there was a
// bug, not a design choice.
func RequiredFields(msg *message.ParsedMessage, schema *dictionary.Schema, bag *fixerrors.Bag) bool {
	ok := true

	for _, item := range schema.HeaderItems() {
		if item.Kind == dictionary.ItemField && item.Required {
			if _, found := msg.HeaderField(item.Name); !found {
				bag.Add(fixerrors.RequiredMissingErr(fixerrors.Header, item.Name))
				ok = false
			}
		}
	}

	msgType, _ := msg.MsgType()
	msgDef, found := schema.MessageByMsgType(msgType)
	if !found {
		bag.Add(fixerrors.UnknownMsgTypeErr(msgType))
		ok = false
	} else if !checkRequiredItems(msgDef.Items, msg, schema, bag) {
		ok = false
	}

	for _, item := range schema.TrailerItems() {
		if item.Kind == dictionary.ItemField && item.Required {
			if _, found := msg.TrailerField(item.Name); !found {
				bag.Add(fixerrors.RequiredMissingErr(fixerrors.Trailer, item.Name))
				ok = false
			}
		}
	}

	return ok
}

// checkRequiredItems recurses into groups and components, checking every
// required child rather than stopping at the first miss. Group and
// component membership is a flat name lookup against the message body
// (group counts and repetition structure are not verified by this
// design).
func checkRequiredItems(items []dictionary.Item, msg *message.ParsedMessage, schema *dictionary.Schema, bag *fixerrors.Bag) bool {
	ok := true
	for _, item := range items {
		if !item.Required {
			continue
		}
		switch item.Kind {
		case dictionary.ItemField:
			if _, found := msg.BodyField(item.Name); !found {
				bag.Add(fixerrors.RequiredMissingErr(fixerrors.Body, item.Name))
				ok = false
			}
		case dictionary.ItemGroup:
			if !checkRequiredItems(item.GroupItems, msg, schema, bag) {
				ok = false
			}
		case dictionary.ItemComponent:
			comp, found := schema.Component(item.Name)
			if !found {
				// NewSchema already rejects unresolved component
				// references, so this can only happen for a Schema
				// built by hand outside NewSchema's validation.
				continue
			}
			if !checkRequiredItems(comp.Items, msg, schema, bag) {
				ok = false
			}
		}
	}
	return ok
}
