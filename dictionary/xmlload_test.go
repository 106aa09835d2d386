package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDictionary = `<?xml version="1.0"?>
<fix major="4" minor="4">
  <header>
    <field name="BeginString" required="Y"/>
    <field name="BodyLength" required="Y"/>
    <field name="MsgType" required="Y"/>
  </header>
  <trailer>
    <field name="CheckSum" required="Y"/>
  </trailer>
  <messages>
    <message name="MarketDataRequest" msgtype="V" msgcat="app">
      <field name="MDReqID" required="Y"/>
      <field name="SubscriptionRequestType" required="Y"/>
      <group name="NoRelatedSym" required="Y">
        <field name="Symbol" required="Y"/>
        <component name="Instrument" required="N"/>
      </group>
    </message>
  </messages>
  <components>
    <component name="Instrument">
      <field name="SecurityID" required="N"/>
    </component>
  </components>
  <fields>
    <field number="8" name="BeginString" type="STRING"/>
    <field number="9" name="BodyLength" type="LENGTH"/>
    <field number="10" name="CheckSum" type="STRING"/>
    <field number="35" name="MsgType" type="STRING">
      <value enum="V" description="MARKET_DATA_REQUEST"/>
    </field>
    <field number="262" name="MDReqID" type="STRING"/>
    <field number="263" name="SubscriptionRequestType" type="CHAR"/>
    <field number="146" name="NoRelatedSym" type="NUMINGROUP"/>
    <field number="55" name="Symbol" type="STRING"/>
    <field number="167" name="SecurityID" type="STRING"/>
  </fields>
</fix>`

func TestLoadReader(t *testing.T) {
	s, err := LoadReader(strings.NewReader(sampleDictionary))
	require.NoError(t, err)

	assert.True(t, s.HeaderContains("MsgType"))
	assert.True(t, s.TrailerContains("CheckSum"))

	m, ok := s.MessageByMsgType("V")
	require.True(t, ok)
	require.Len(t, m.Items, 3)
	assert.Equal(t, ItemField, m.Items[0].Kind)
	assert.Equal(t, "MDReqID", m.Items[0].Name)
	assert.Equal(t, ItemGroup, m.Items[2].Kind)
	require.Len(t, m.Items[2].GroupItems, 2)
	assert.Equal(t, ItemComponent, m.Items[2].GroupItems[1].Kind)

	f, ok := s.FieldByNumber(35)
	require.True(t, ok)
	assert.Equal(t, "MARKET_DATA_REQUEST", f.Enum["V"])
}

func TestLoadReaderRejectsMalformedXML(t *testing.T) {
	_, err := LoadReader(strings.NewReader("<fix><header>"))
	require.Error(t, err)
}

func TestLoadReaderStatusHealthyOnSuccess(t *testing.T) {
	s, status := LoadReaderStatus("fix44", strings.NewReader(sampleDictionary))
	require.NotNil(t, s)
	assert.True(t, status.IsHealthy())
	assert.Equal(t, "fix44", status.Component)
}

func TestLoadReaderStatusUnhealthyOnFailure(t *testing.T) {
	s, status := LoadReaderStatus("fix44", strings.NewReader("<fix><header>"))
	assert.Nil(t, s)
	assert.True(t, status.IsUnhealthy())
	assert.Equal(t, "fix44", status.Component)
}

func TestLoadFileStatusUnhealthyOnMissingFile(t *testing.T) {
	s, status := LoadFileStatus("fix44", "/nonexistent/path/does-not-exist.xml")
	assert.Nil(t, s)
	assert.True(t, status.IsUnhealthy())
}
