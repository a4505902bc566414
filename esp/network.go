package esp

import (
	"fmt"

	"i4.energy/across/espwifi/at"
)

// maxDomainLen is the longest name DNS allows.
const maxDomainLen = 253

// UDPMode controls whether the remote end of a UDP link may change.
type UDPMode int

const (
	UDPFixedRemote  UDPMode = 0
	UDPRemoteOnce   UDPMode = 1
	UDPRemoteChange UDPMode = 2
)

// GetNetStatus queries the connection status (2: got IP, 3: connected,
// 4: disconnected, 5: not connected to an AP).
func (d *Driver) GetNetStatus() error {
	if err := d.begin(); err != nil {
		return err
	}
	d.netStatus = 0
	d.cmd.Start(at.CmdStatus)
	return d.issue(CmdGetNetStatus)
}

// SetMUX switches between single and multiple connection mode. The driver
// parses network data in the new mode only once the module has accepted it.
func (d *Driver) SetMUX(enable bool) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdMux).Bool(enable)
	if err := d.issue(CmdSetMUX); err != nil {
		return err
	}
	d.muxRequest = enable
	return nil
}

// StartTCPServer listens on port. The module must be in multiple
// connection mode.
func (d *Driver) StartTCPServer(port uint16) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdServer).Int(1).Int(int(port))
	return d.issue(CmdTCPServerStart)
}

func (d *Driver) StopTCPServer(port uint16) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdServer).Int(0).Int(int(port))
	return d.issue(CmdTCPServerStop)
}

// TCPConnect opens the single-mode TCP link.
func (d *Driver) TCPConnect(remote IPv4, port uint16) error {
	return d.tcpConnect(-1, remote, port)
}

// TCPConnectMUX opens TCP link id in multiple connection mode.
func (d *Driver) TCPConnectMUX(link int, remote IPv4, port uint16) error {
	if err := checkLink(link); err != nil {
		return err
	}
	return d.tcpConnect(link, remote, port)
}

func (d *Driver) tcpConnect(link int, remote IPv4, port uint16) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdStart)
	if link >= 0 {
		d.cmd.Int(link)
	}
	d.cmd.Str("TCP").IPv4(uint32(remote)).Int(int(port))
	return d.issue(CmdTCPConnect)
}

// UDPConnect opens the single-mode UDP link. localPort 0 lets the module
// choose.
func (d *Driver) UDPConnect(remote IPv4, port, localPort uint16, mode UDPMode) error {
	return d.udpConnect(-1, remote, port, localPort, mode)
}

// UDPConnectMUX opens UDP link id in multiple connection mode.
func (d *Driver) UDPConnectMUX(link int, remote IPv4, port, localPort uint16, mode UDPMode) error {
	if err := checkLink(link); err != nil {
		return err
	}
	return d.udpConnect(link, remote, port, localPort, mode)
}

func (d *Driver) udpConnect(link int, remote IPv4, port, localPort uint16, mode UDPMode) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdStart)
	if link >= 0 {
		d.cmd.Int(link)
	}
	d.cmd.Str("UDP").IPv4(uint32(remote)).Int(int(port))
	if localPort != 0 {
		d.cmd.Int(int(localPort)).Int(int(mode))
	}
	return d.issue(CmdUDPConnect)
}

// CloseConnect closes link. In single connection mode the link is ignored.
func (d *Driver) CloseConnect(link int) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdClose)
	if d.mux {
		if err := checkLink(link); err != nil {
			return err
		}
		d.cmd.Int(link)
	}
	return d.issue(CmdCloseConnect)
}

// DomainResolution looks up the IPv4 address of domain.
func (d *Driver) DomainResolution(domain string) error {
	if err := d.begin(); err != nil {
		return err
	}
	if domain == "" {
		return fmt.Errorf("empty domain")
	}
	if len(domain) > maxDomainLen {
		return fmt.Errorf("domain: %w", ErrFieldTooLong)
	}
	d.resolved = 0
	d.cmd.Start(at.CmdDomain).Str(domain)
	return d.issue(CmdDomain)
}

func checkLink(link int) error {
	if link < 0 || link > MaxLinkID {
		return fmt.Errorf("link %d: %w", link, ErrInvalidLinkID)
	}
	return nil
}
