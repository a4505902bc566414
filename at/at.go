// Package at holds the ESP-AT wire vocabulary: the literal lines the firmware
// prints, the tags that prefix its reports, and the command verbs the host
// sends.
package at

const (
	// Terminal Control
	CRLF   = "\r\n"
	Prompt = ">"

	// Response Codes
	OK       = "OK"
	ERROR    = "ERROR"
	Fail     = "FAIL"
	SendOK   = "SEND OK"
	SendFail = "SEND FAIL"
	Ready    = "ready"
	// Busy is printed while the firmware is still processing the previous
	// command.
	Busy        = "busy p..."
	BusySending = "busy s..."

	// Active Message Reports
	WifiDisconnect = "WIFI DISCONNECT"
	WifiConnected  = "WIFI CONNECTED"
	WifiGotIP      = "WIFI GOT IP"
	Connect        = "CONNECT"
	Closed         = "CLOSED"
	ConnectFail    = "CONNECT FAIL"
	IPD            = "+IPD,"

	// Report Tags
	TagStationAddr = `+CIFSR:STAIP,"`
	TagSoftAPAddr  = `+CIFSR:APIP,"`
	TagAPIP        = `+CIPAP:ip:"`
	TagAPNetmask   = `+CIPAP:netmask:"`
	TagAPGateway   = `+CIPAP:gateway:"`
	TagSTAIP       = `+CIPSTA:ip:"`
	TagSTANetmask  = `+CIPSTA:netmask:"`
	TagSTAGateway  = `+CIPSTA:gateway:"`
	TagDomain      = "+CIPDOMAIN:"
	TagScanResult  = "+CWLAP:"
	TagJoinError   = "+CWJAP:"
	TagStatus      = "STATUS:"
	TagLinkStatus  = "+CIPSTATUS:"
	TagRecv        = "Recv "
)

// Command names, without the AT prefix.
const (
	CmdReset       = "+RST"
	CmdRestore     = "+RESTORE"
	CmdWifiMode    = "+CWMODE"
	CmdSoftAP      = "+CWSAP"
	CmdJoinAP      = "+CWJAP"
	CmdScanOptions = "+CWLAPOPT"
	CmdScan        = "+CWLAP"
	CmdAutoConnect = "+CWAUTOCONN"
	CmdLocalAddr   = "+CIFSR"
	CmdAPAddr      = "+CIPAP?"
	CmdSTAAddr     = "+CIPSTA?"
	CmdStatus      = "+CIPSTATUS"
	CmdMux         = "+CIPMUX"
	CmdServer      = "+CIPSERVER"
	CmdStart       = "+CIPSTART"
	CmdSend        = "+CIPSEND"
	CmdSendEx      = "+CIPSENDEX"
	CmdClose       = "+CIPCLOSE"
	CmdDomain      = "+CIPDOMAIN"
)

// SendExTerminator ends a CIPSENDEX payload before the declared length is
// reached.
const SendExTerminator = `\0`

type ResponseType int

const (
	TypeFinal  ResponseType = iota // OK, ERROR, SEND OK ...
	TypeURC                        // Active message reports
	TypeData                       // Intermediate command output (+CWLAP: ...)
	TypePrompt                     // CIPSEND input prompt
	TypeEcho                       // Command echo (ATE1)
)

func (t ResponseType) String() string {
	switch t {
	case TypeFinal:
		return "final"
	case TypeURC:
		return "urc"
	case TypeData:
		return "data"
	case TypePrompt:
		return "prompt"
	case TypeEcho:
		return "echo"
	}
	return "unknown"
}
