package testutil

// The following are end-to-end scenario fixtures, wired against
// Schema() and Separator ('|').

// Scenario1Valid is a well-formed OrderCancelRequest: valid, no errors.
const Scenario1Valid = "8=FIX.4.4|9=147|35=F|34=3|49=TRADEBOTOE002|52=20180425-17:57:59.000|56=GEMINI|11=GHDzdNUUXaMMDZdfwe|38=1|41=z35u64KR1gen7f2SpB|54=2|55=BTCUSD|60=20180425-17:57:59|10=185|"

// Scenario2BodyLengthMismatch is Scenario1Valid with tag 9 changed from
// 147 to 200: invalid, BodyLengthMismatch{expected: 147, got: "200"}.
const Scenario2BodyLengthMismatch = "8=FIX.4.4|9=200|35=F|34=3|49=TRADEBOTOE002|52=20180425-17:57:59.000|56=GEMINI|11=GHDzdNUUXaMMDZdfwe|38=1|41=z35u64KR1gen7f2SpB|54=2|55=BTCUSD|60=20180425-17:57:59|10=185|"

// Scenario3ChecksumMismatch is Scenario1Valid with tag 10 changed from
// 185 to 000: invalid, ChecksumMismatch{expected: "185", got: "000"}.
const Scenario3ChecksumMismatch = "8=FIX.4.4|9=147|35=F|34=3|49=TRADEBOTOE002|52=20180425-17:57:59.000|56=GEMINI|11=GHDzdNUUXaMMDZdfwe|38=1|41=z35u64KR1gen7f2SpB|54=2|55=BTCUSD|60=20180425-17:57:59|10=000|"

// Scenario4SparseHeartbeat is a sparse but structurally valid
// Heartbeat: RequiredFields passes (Heartbeat has no required body
// items and the fixture schema only requires 8/9/35 in the header), so
// BodyLength and Checksum run. The declared 9=5 matches the computed
// body length ("35=0|"), and the placeholder 10=000 does not match the
// computed checksum 163, so the run fails with ChecksumMismatch.
const Scenario4SparseHeartbeat = "8=FIX.4.4|9=5|35=0|10=000|"

// Scenario5UnknownMsgType declares a MsgType absent from the
// dictionary: UnknownMsgType("ZZ"), with no RequiredMissing(BODY, ...)
// errors since body-required checking never runs for an unresolved
// MessageDef.
const Scenario5UnknownMsgType = "8=FIX.4.4|9=10|35=ZZ|10=000|"

// Scenario6MissingMarketDataFields declares a MarketDataRequest with
// none of its four required body fields present: RequiredMissing(BODY,
// "MDReqID"), RequiredMissing(BODY, "SubscriptionRequestType"),
// RequiredMissing(BODY, "MarketDepth"), RequiredMissing(BODY,
// "NoRelatedSym").
const Scenario6MissingMarketDataFields = "8=FIX.4.4|9=5|35=V|10=000|"
