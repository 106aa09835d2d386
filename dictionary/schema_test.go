package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalFields() []FieldDef {
	return []FieldDef{
		{Number: 8, Name: "BeginString", Type: "STRING"},
		{Number: 9, Name: "BodyLength", Type: "LENGTH"},
		{Number: 35, Name: "MsgType", Type: "STRING"},
		{Number: 10, Name: "CheckSum", Type: "STRING"},
		{Number: 262, Name: "MDReqID", Type: "STRING"},
		{Number: 263, Name: "SubscriptionRequestType", Type: "CHAR", Enum: map[string]string{
			"0": "Snapshot",
			"1": "SnapshotPlusUpdates",
		}},
	}
}

func minimalSchema(t *testing.T) *Schema {
	t.Helper()
	header := []Item{
		{Kind: ItemField, Name: "BeginString", Required: true},
		{Kind: ItemField, Name: "BodyLength", Required: true},
		{Kind: ItemField, Name: "MsgType", Required: true},
	}
	trailer := []Item{
		{Kind: ItemField, Name: "CheckSum", Required: true},
	}
	messages := []MessageDef{
		{MsgType: "V", Name: "MarketDataRequest", Category: "app", Items: []Item{
			{Kind: ItemField, Name: "MDReqID", Required: true},
			{Kind: ItemField, Name: "SubscriptionRequestType", Required: true},
		}},
	}
	s, err := NewSchema(minimalFields(), header, trailer, nil, messages)
	require.NoError(t, err)
	return s
}

func TestSchemaMembership(t *testing.T) {
	s := minimalSchema(t)

	assert.True(t, s.HeaderContains("MsgType"))
	assert.False(t, s.TrailerContains("MsgType"))
	assert.True(t, s.TrailerContains("CheckSum"))

	f, ok := s.FieldByNumber(35)
	require.True(t, ok)
	assert.Equal(t, "MsgType", f.Name)

	m, ok := s.MessageByMsgType("V")
	require.True(t, ok)
	assert.Equal(t, "MarketDataRequest", m.Name)

	_, ok = s.MessageByMsgType("ZZ")
	assert.False(t, ok)
}

func TestNewSchemaRejectsUnknownFieldRef(t *testing.T) {
	header := []Item{{Kind: ItemField, Name: "NoSuchField", Required: true}}
	_, err := NewSchema(minimalFields(), header, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchField")
}

func TestNewSchemaRejectsUnknownComponentRef(t *testing.T) {
	messages := []MessageDef{
		{MsgType: "D", Items: []Item{{Kind: ItemComponent, Name: "Ghost", Required: true}}},
	}
	_, err := NewSchema(minimalFields(), nil, nil, nil, messages)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Ghost"))
}

func TestNewSchemaRejectsComponentCycle(t *testing.T) {
	components := []ComponentDef{
		{Name: "A", Items: []Item{{Kind: ItemComponent, Name: "B", Required: true}}},
		{Name: "B", Items: []Item{{Kind: ItemComponent, Name: "A", Required: true}}},
	}
	_, err := NewSchema(minimalFields(), nil, nil, components, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestGroupItemsResolveNestedFields(t *testing.T) {
	fields := append(minimalFields(), FieldDef{Number: 146, Name: "NoRelatedSym", Type: "NUMINGROUP"})
	fields = append(fields, FieldDef{Number: 55, Name: "Symbol", Type: "STRING"})
	messages := []MessageDef{
		{MsgType: "V", Items: []Item{
			{Kind: ItemGroup, Name: "NoRelatedSym", Required: true, CountField: "NoRelatedSym", GroupItems: []Item{
				{Kind: ItemField, Name: "Symbol", Required: true},
			}},
		}},
	}
	_, err := NewSchema(fields, nil, nil, nil, messages)
	require.NoError(t, err)
}
