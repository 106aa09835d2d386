package testutil

import "github.com/bitwyre/fixparser/dictionary"

// Separator is the print-safe field separator the fixtures below use in
// place of SOH, matching the end-to-end scenario fixtures in messages.go.
const Separator = byte('|')

// Fields lists the FieldDefs the fixture messages reference: header
// fields shared by every message, the trailer checksum, and a handful
// of body fields spanning the three message types the scenarios cover
// (OrderCancelRequest "F", Heartbeat "0", MarketDataRequest "V").
var Fields = []dictionary.FieldDef{
	{Number: 8, Name: "BeginString", Type: "STRING"},
	{Number: 9, Name: "BodyLength", Type: "LENGTH"},
	{Number: 10, Name: "CheckSum", Type: "STRING"},
	{Number: 11, Name: "ClOrdID", Type: "STRING"},
	{Number: 34, Name: "MsgSeqNum", Type: "SEQNUM"},
	{Number: 35, Name: "MsgType", Type: "STRING"},
	{Number: 38, Name: "OrderQty", Type: "QTY"},
	{Number: 41, Name: "OrigClOrdID", Type: "STRING"},
	{Number: 49, Name: "SenderCompID", Type: "STRING"},
	{Number: 52, Name: "SendingTime", Type: "UTCTIMESTAMP"},
	{Number: 54, Name: "Side", Type: "CHAR"},
	{Number: 55, Name: "Symbol", Type: "STRING"},
	{Number: 56, Name: "TargetCompID", Type: "STRING"},
	{Number: 60, Name: "TransactTime", Type: "UTCTIMESTAMP"},
	{Number: 146, Name: "NoRelatedSym", Type: "NUMINGROUP"},
	{Number: 262, Name: "MDReqID", Type: "STRING"},
	{Number: 263, Name: "SubscriptionRequestType", Type: "CHAR"},
	{Number: 264, Name: "MarketDepth", Type: "INT"},
}

var headerItems = []dictionary.Item{
	{Kind: dictionary.ItemField, Name: "BeginString", Required: true},
	{Kind: dictionary.ItemField, Name: "BodyLength", Required: true},
	{Kind: dictionary.ItemField, Name: "MsgType", Required: true},
	{Kind: dictionary.ItemField, Name: "MsgSeqNum", Required: false},
	{Kind: dictionary.ItemField, Name: "SenderCompID", Required: false},
	{Kind: dictionary.ItemField, Name: "SendingTime", Required: false},
	{Kind: dictionary.ItemField, Name: "TargetCompID", Required: false},
}

var trailerItems = []dictionary.Item{
	{Kind: dictionary.ItemField, Name: "CheckSum", Required: true},
}

var messages = []dictionary.MessageDef{
	{
		MsgType: "F",
		Name:    "OrderCancelRequest",
		Items: []dictionary.Item{
			{Kind: dictionary.ItemField, Name: "ClOrdID", Required: false},
			{Kind: dictionary.ItemField, Name: "OrigClOrdID", Required: false},
			{Kind: dictionary.ItemField, Name: "OrderQty", Required: false},
			{Kind: dictionary.ItemField, Name: "Side", Required: false},
			{Kind: dictionary.ItemField, Name: "Symbol", Required: false},
			{Kind: dictionary.ItemField, Name: "TransactTime", Required: false},
		},
	},
	{
		MsgType: "0",
		Name:    "Heartbeat",
	},
	{
		MsgType: "V",
		Name:    "MarketDataRequest",
		Items: []dictionary.Item{
			{Kind: dictionary.ItemField, Name: "MDReqID", Required: true},
			{Kind: dictionary.ItemField, Name: "SubscriptionRequestType", Required: true},
			{Kind: dictionary.ItemField, Name: "MarketDepth", Required: true},
			{Kind: dictionary.ItemField, Name: "NoRelatedSym", Required: true},
		},
	},
}

// Schema builds the fixture dictionary. It is cheap enough (a handful
// of maps over a couple dozen items) to call fresh in every test rather
// than share a package-level instance.
func Schema() *dictionary.Schema {
	s, err := dictionary.NewSchema(Fields, headerItems, trailerItems, nil, messages)
	if err != nil {
		// The fixture dictionary is fixed at compile time; if it fails
		// to build, every test using it will fail immediately and
		// loudly rather than silently validating against a nil Schema.
		panic("testutil: fixture schema failed to build: " + err.Error())
	}
	return s
}
