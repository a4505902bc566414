package esp

import (
	"fmt"
	"strings"

	"i4.energy/across/espwifi/at"
)

// SendBytes sends p on the single-mode link. remote and port address a UDP
// peer when both are set, and are ignored otherwise.
//
// p is not copied: it must stay unchanged until the handler's OnSend.
// The driver issues AT+CIPSEND, writes p on the ">" prompt and reports
// SEND OK, SEND FAIL or ERROR through OnSend.
func (d *Driver) SendBytes(p []byte, remote IPv4, port uint16) error {
	return d.sendBytes(-1, p, remote, port)
}

// SendBytesMUX is SendBytes on link in multiple connection mode.
func (d *Driver) SendBytesMUX(link int, p []byte, remote IPv4, port uint16) error {
	if err := checkLink(link); err != nil {
		return err
	}
	return d.sendBytes(link, p, remote, port)
}

func (d *Driver) sendBytes(link int, p []byte, remote IPv4, port uint16) error {
	if err := d.begin(); err != nil {
		return err
	}
	if len(p) == 0 {
		return ErrEmptyPayload
	}
	if len(p) > SendMaxSize {
		return fmt.Errorf("%d bytes: %w", len(p), ErrPayloadTooLarge)
	}

	d.cmd.Start(at.CmdSend)
	if link >= 0 {
		d.cmd.Int(link)
	}
	d.cmd.Int(len(p))
	if remote != 0 && port != 0 {
		d.cmd.IPv4(uint32(remote)).Int(int(port))
	}
	if err := d.issue(CmdSendBytes); err != nil {
		return err
	}
	d.payload = p
	return nil
}

// SendString sends s on the single-mode link using AT+CIPSENDEX, which
// ends the payload at the "\0" terminator. The terminator is appended
// unless s already ends with it.
func (d *Driver) SendString(s string, remote IPv4, port uint16) error {
	return d.sendString(-1, s, remote, port)
}

// SendStringMUX is SendString on link in multiple connection mode.
func (d *Driver) SendStringMUX(link int, s string, remote IPv4, port uint16) error {
	if err := checkLink(link); err != nil {
		return err
	}
	return d.sendString(link, s, remote, port)
}

func (d *Driver) sendString(link int, s string, remote IPv4, port uint16) error {
	if err := d.begin(); err != nil {
		return err
	}
	if s == "" {
		return ErrEmptyPayload
	}
	terminate := !strings.HasSuffix(s, at.SendExTerminator)
	size := len(s)
	if terminate {
		size += len(at.SendExTerminator)
	}
	if size > SendMaxSize {
		return fmt.Errorf("%d bytes: %w", len(s), ErrPayloadTooLarge)
	}

	d.cmd.Start(at.CmdSendEx)
	if link >= 0 {
		d.cmd.Int(link)
	}
	d.cmd.Int(SendMaxSize)
	if remote != 0 && port != 0 {
		d.cmd.IPv4(uint32(remote)).Int(int(port))
	}
	if err := d.issue(CmdSendString); err != nil {
		return err
	}
	d.payloadText = s
	d.terminate = terminate
	return nil
}
