package esp

import "time"

// Command identifies the request the driver is waiting on. At most one is
// outstanding at a time.
type Command int

const (
	CmdNone Command = iota
	CmdReset
	CmdRecovery
	CmdSetMode
	CmdSetSoftAP
	CmdConnectAP
	CmdConfigScanAP
	CmdScanAP
	CmdAutoConn
	CmdGetIP
	CmdGetAPIP
	CmdGetSTAIP
	CmdGetNetStatus
	CmdSetMUX
	CmdTCPServerStart
	CmdTCPServerStop
	CmdTCPConnect
	CmdUDPConnect
	CmdSendBytes
	CmdSendString
	// CmdDoSend is the payload phase of a send, entered on the ">" prompt.
	CmdDoSend
	CmdCloseConnect
	CmdDomain

	numCommands
)

type timeoutClass int

const (
	timeoutNormal timeoutClass = iota
	timeoutReset
	timeoutScan
	timeoutConnectAP
)

// commandSpec describes what a command waits for.
type commandSpec struct {
	name    string
	timeout timeoutClass
	// okDone commands complete on a bare OK line.
	okDone bool
}

var commandSpecs = [numCommands]commandSpec{
	CmdNone:           {name: "none"},
	CmdReset:          {name: "reset", timeout: timeoutReset},
	CmdRecovery:       {name: "recovery", okDone: true},
	CmdSetMode:        {name: "set mode", okDone: true},
	CmdSetSoftAP:      {name: "set soft ap", okDone: true},
	CmdConnectAP:      {name: "connect ap", timeout: timeoutConnectAP, okDone: true},
	CmdConfigScanAP:   {name: "config scan ap", okDone: true},
	CmdScanAP:         {name: "scan ap", timeout: timeoutScan, okDone: true},
	CmdAutoConn:       {name: "auto connect", okDone: true},
	CmdGetIP:          {name: "get ip"},
	CmdGetAPIP:        {name: "get ap ip"},
	CmdGetSTAIP:       {name: "get station ip"},
	CmdGetNetStatus:   {name: "get net status"},
	CmdSetMUX:         {name: "set mux", okDone: true},
	CmdTCPServerStart: {name: "tcp server start", okDone: true},
	CmdTCPServerStop:  {name: "tcp server stop", okDone: true},
	CmdTCPConnect:     {name: "tcp connect", okDone: true},
	CmdUDPConnect:     {name: "udp connect", okDone: true},
	CmdSendBytes:      {name: "send bytes"},
	CmdSendString:     {name: "send string"},
	CmdDoSend:         {name: "do send"},
	CmdCloseConnect:   {name: "close connect", okDone: true},
	CmdDomain:         {name: "domain"},
}

func (c Command) String() string {
	if c < 0 || c >= numCommands {
		return "unknown"
	}
	return commandSpecs[c].name
}

func (c Command) deadline(t Timeouts) time.Duration {
	switch commandSpecs[c].timeout {
	case timeoutReset:
		return t.Reset
	case timeoutScan:
		return t.Scan
	case timeoutConnectAP:
		return t.ConnectAP
	default:
		return t.Normal
	}
}

// recognizer inspects the head of the receive ring.
type recognizer func(d *Driver) progress

type progress int

const (
	// noMatch: the head is not this recognizer's business.
	noMatch progress = iota
	// consumed: bytes were taken, dispatch starts over.
	consumed
	// needMore: a recognizer owns the head but the rest has not arrived.
	needMore
)

// commandRecognizers maps each command to the lines only it expects.
// Commands without an entry complete through the generic OK, ERROR and
// busy recognizers.
var commandRecognizers = [numCommands]recognizer{
	CmdReset:        (*Driver).recognizeReady,
	CmdConnectAP:    (*Driver).recognizeJoin,
	CmdScanAP:       (*Driver).recognizeScanResult,
	CmdGetIP:        (*Driver).recognizeLocalAddr,
	CmdGetAPIP:      (*Driver).recognizeAPAddr,
	CmdGetSTAIP:     (*Driver).recognizeSTAAddr,
	CmdGetNetStatus: (*Driver).recognizeStatus,
	CmdSendBytes:    (*Driver).recognizePrompt,
	CmdSendString:   (*Driver).recognizePrompt,
	CmdDoSend:       (*Driver).recognizeSendResult,
	CmdDomain:       (*Driver).recognizeDomain,
}

// report hands the result of c to the handler.
func (d *Driver) report(c Command, res Result) {
	h := d.handler
	switch c {
	case CmdReset:
		h.OnReset(res)
	case CmdRecovery:
		h.OnRecovery(res)
	case CmdSetMode:
		h.OnSetMode(res)
	case CmdSetSoftAP:
		h.OnSetSoftAP(res)
	case CmdConnectAP:
		h.OnConnectAP(res)
	case CmdConfigScanAP:
		h.OnConfigScanAP(res)
	case CmdScanAP:
		h.OnScanAP(res, res == ResultOK && d.scanFound)
	case CmdAutoConn:
		h.OnAutoConnAP(res)
	case CmdGetIP:
		if res != ResultOK {
			h.OnGetIP(res, 0, 0)
			return
		}
		h.OnGetIP(res, d.apIP, d.staIP)
	case CmdGetAPIP:
		if res != ResultOK {
			h.OnGetAPIP(res, 0, 0)
			return
		}
		h.OnGetAPIP(res, d.apIP, d.apMask)
	case CmdGetSTAIP:
		if res != ResultOK {
			h.OnGetSTAIP(res, 0, 0)
			return
		}
		h.OnGetSTAIP(res, d.staIP, d.staMask)
	case CmdGetNetStatus:
		if res != ResultOK {
			h.OnNetStatus(res, 0)
			return
		}
		h.OnNetStatus(res, d.netStatus)
	case CmdSetMUX:
		h.OnSetMUX(res)
	case CmdTCPServerStart, CmdTCPServerStop:
		h.OnTCPServer(res)
	case CmdTCPConnect:
		h.OnTCPConnect(res)
	case CmdUDPConnect:
		h.OnUDPConnect(res)
	case CmdSendBytes, CmdSendString, CmdDoSend:
		h.OnSend(res)
	case CmdCloseConnect:
		h.OnCloseConnect(res)
	case CmdDomain:
		if res != ResultOK {
			h.OnDomainResolution(res, 0)
			return
		}
		h.OnDomainResolution(res, d.resolved)
	}
}
