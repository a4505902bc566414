package esp

import "i4.energy/across/espwifi/ring"

// Handler receives command completions and unsolicited reports.
//
// Callbacks run on the goroutine that calls Poll, after the driver has gone
// idle, so a callback may issue the next command right away. Callbacks must
// not call Poll or Loop.
type Handler interface {
	OnReset(res Result)
	OnRecovery(res Result)
	OnSetMode(res Result)
	OnSetSoftAP(res Result)
	OnConnectAP(res Result)
	OnConfigScanAP(res Result)
	// OnScanAP reports whether any access point was listed.
	OnScanAP(res Result, found bool)
	OnAutoConnAP(res Result)
	OnGetIP(res Result, ap, station IPv4)
	OnGetAPIP(res Result, ip, mask IPv4)
	OnGetSTAIP(res Result, ip, mask IPv4)
	OnNetStatus(res Result, status int)
	OnSetMUX(res Result)
	OnTCPServer(res Result)
	OnTCPConnect(res Result)
	OnUDPConnect(res Result)
	OnSend(res Result)
	OnCloseConnect(res Result)
	OnDomainResolution(res Result, ip IPv4)

	// OnDisconnectAP reports that the station lost its access point.
	OnDisconnectAP()
	// OnLinkState reports a link opening or closing.
	OnLinkState(link int, connected bool)
	// OnData delivers network data received on link. The view points into
	// the receive ring and is only valid during the call.
	OnData(link int, data ring.View)
}

// BaseHandler implements every Handler method as a no-op. Embed it to handle
// only the callbacks you care about.
type BaseHandler struct{}

func (BaseHandler) OnReset(Result) {}
func (BaseHandler) OnRecovery(Result) {}
func (BaseHandler) OnSetMode(Result) {}
func (BaseHandler) OnSetSoftAP(Result) {}
func (BaseHandler) OnConnectAP(Result) {}
func (BaseHandler) OnConfigScanAP(Result) {}
func (BaseHandler) OnScanAP(Result, bool) {}
func (BaseHandler) OnAutoConnAP(Result) {}
func (BaseHandler) OnGetIP(Result, IPv4, IPv4) {}
func (BaseHandler) OnGetAPIP(Result, IPv4, IPv4) {}
func (BaseHandler) OnGetSTAIP(Result, IPv4, IPv4) {}
func (BaseHandler) OnNetStatus(Result, int) {}
func (BaseHandler) OnSetMUX(Result) {}
func (BaseHandler) OnTCPServer(Result) {}
func (BaseHandler) OnTCPConnect(Result) {}
func (BaseHandler) OnUDPConnect(Result) {}
func (BaseHandler) OnSend(Result) {}
func (BaseHandler) OnCloseConnect(Result) {}
func (BaseHandler) OnDomainResolution(Result, IPv4) {}
func (BaseHandler) OnDisconnectAP() {}
func (BaseHandler) OnLinkState(int, bool) {}
func (BaseHandler) OnData(int, ring.View) {}

var _ Handler = BaseHandler{}
