package debateorg

import (
	"debateservice/lib/restyutil"
	"debateservice/lib/telemetry"
)

var tracer = telemetry.Tracer("debateservice.lib.scrapers.debateorg")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput dumps every HTTP exchange of clients created
// afterwards to out.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
