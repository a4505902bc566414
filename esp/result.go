package esp

import (
	"net/netip"

	"i4.energy/across/espwifi/at"
)

// Result is the outcome reported to a Handler when a command completes.
type Result int

const (
	ResultOK Result = iota
	ResultTimeout
	ResultBusy
	ResultConnectFailed
	ResultDomainFailed
	// ResultSendReady completes the firmware's result set. The driver
	// answers the ">" prompt itself and never reports it.
	ResultSendReady
	ResultSendError
	ResultSendFailed
	ResultUnknownError
)

var resultNames = [...]string{
	ResultOK:            "ok",
	ResultTimeout:       "timeout",
	ResultBusy:          "busy",
	ResultConnectFailed: "connect failed",
	ResultDomainFailed:  "domain failed",
	ResultSendReady:     "send ready",
	ResultSendError:     "send error",
	ResultSendFailed:    "send failed",
	ResultUnknownError:  "unknown error",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

// IPv4 is an address as the firmware reports it: the first octet in the most
// significant byte. The zero value means "no address".
type IPv4 uint32

func (ip IPv4) String() string {
	return string(at.AppendIPv4(nil, uint32(ip)))
}

func (ip IPv4) Addr() netip.Addr {
	return netip.AddrFrom4([4]byte{byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip)})
}

// IPv4FromAddr converts an IPv4 (or IPv4-mapped) address. Any other address
// yields zero.
func IPv4FromAddr(a netip.Addr) IPv4 {
	a = a.Unmap()
	if !a.Is4() {
		return 0
	}
	b := a.As4()
	return IPv4(b[0])<<24 | IPv4(b[1])<<16 | IPv4(b[2])<<8 | IPv4(b[3])
}
