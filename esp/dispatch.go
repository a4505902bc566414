package esp

import (
	"context"
	"io"
	"log/slog"

	"i4.energy/across/espwifi/at"
)

// Complete lines matched at the head of the ring.
const (
	okLine         = at.OK + at.CRLF
	errorLine      = at.ERROR + at.CRLF
	failLine       = at.Fail + at.CRLF
	readyLine      = at.Ready + at.CRLF
	busyLine       = at.Busy + at.CRLF
	sendOKLine     = at.SendOK + at.CRLF
	sendFailLine   = at.SendFail + at.CRLF
	disconnectLine = at.WifiDisconnect + at.CRLF
	connectedLine  = at.WifiConnected + at.CRLF
	gotIPLine      = at.WifiGotIP + at.CRLF
	connectLine    = at.Connect + at.CRLF
	closedLine     = at.Closed + at.CRLF
)

// MaxLinkID is the highest link id in multi-connection mode.
const MaxLinkID = 4

// dispatch consumes as much of the ring as the recognizers can make sense
// of. It starts over from the highest priority after every consumption and
// stops when the head needs more bytes or the ring is empty.
func (d *Driver) dispatch() {
	for d.rx.Len() > 0 {
		switch d.step() {
		case consumed:
			continue
		case needMore:
			return
		}

		// Nothing recognized the head: drop one line, or the whole ring
		// if it is full and has no line ending.
		if i := d.rx.IndexCRLF(0); i >= 0 {
			if d.log.Enabled(context.Background(), slog.LevelDebug) {
				line := d.rx.Slice(0, i).String()
				d.log.Debug("skipping line", "line", line, "kind", at.Classify(line))
			}
			d.rx.Cut(i + len(at.CRLF))
			continue
		}
		if d.rx.Full() {
			d.log.Warn("receive buffer full without line ending, clearing", "bytes", d.rx.Len())
			d.rx.Clear()
			continue
		}
		return
	}
}

func (d *Driver) step() progress {
	if d.dataPending > 0 {
		return d.continueData()
	}

	if d.stripLineEndings() && d.rx.Len() == 0 {
		return consumed
	}

	if p := d.recognizeIPD(); p != noMatch {
		return p
	}
	if p := d.recognizeDisconnect(); p != noMatch {
		return p
	}
	if p := d.recognizeLinkState(); p != noMatch {
		return p
	}
	if r := commandRecognizers[d.outstanding]; r != nil {
		if p := r(d); p != noMatch {
			return p
		}
	}
	if d.outstanding != CmdDoSend {
		if p := d.recognizeBusy(); p != noMatch {
			return p
		}
	}
	if p := d.recognizeError(); p != noMatch {
		return p
	}
	return d.recognizeOK()
}

// stripLineEndings drops leading CR and LF bytes.
func (d *Driver) stripLineEndings() bool {
	n := 0
	for n < d.rx.Len() {
		if c := d.rx.At(n); c != '\r' && c != '\n' {
			break
		}
		n++
	}
	d.rx.Cut(n)
	return n > 0
}

// cutLine drops the head line if its CRLF has arrived.
func (d *Driver) cutLine() progress {
	i := d.rx.IndexCRLF(0)
	if i < 0 {
		if d.rx.Full() {
			d.rx.Clear()
			return consumed
		}
		return needMore
	}
	d.rx.Cut(i + len(at.CRLF))
	return consumed
}

func (d *Driver) recognizeDisconnect() progress {
	if !d.rx.Match(disconnectLine, 0) {
		return noMatch
	}
	d.rx.Cut(len(disconnectLine))
	d.log.Info("access point disconnected")
	d.handler.OnDisconnectAP()
	return consumed
}

// recognizeLinkState handles "CONNECT"/"CLOSED" and their "<id>," prefixed
// multi-connection forms.
func (d *Driver) recognizeLinkState() progress {
	link, off := 0, 0
	if d.rx.Len() > 2 && d.rx.At(1) == ',' {
		c := d.rx.At(0)
		if c < '0' || c > '0'+MaxLinkID {
			return noMatch
		}
		link, off = int(c-'0'), 2
	}

	var connected bool
	switch {
	case d.rx.Match(connectLine, off):
		connected = true
		d.rx.Cut(off + len(connectLine))
	case d.rx.Match(closedLine, off):
		d.rx.Cut(off + len(closedLine))
	default:
		return noMatch
	}
	d.log.Debug("link state", "link", link, "connected", connected)
	d.handler.OnLinkState(link, connected)
	return consumed
}

func (d *Driver) recognizeBusy() progress {
	if !d.rx.Match(busyLine, 0) {
		return noMatch
	}
	d.rx.Cut(len(busyLine))
	d.finish(ResultBusy)
	return consumed
}

func (d *Driver) recognizeError() progress {
	if !d.rx.Match(errorLine, 0) {
		return noMatch
	}
	d.rx.Cut(len(errorLine))
	d.finish(ResultUnknownError)
	return consumed
}

// recognizeOK completes commands that finish on a bare OK. An OK nobody
// waits for is dropped.
func (d *Driver) recognizeOK() progress {
	if !d.rx.Match(okLine, 0) {
		return noMatch
	}
	d.rx.Cut(len(okLine))
	if !commandSpecs[d.outstanding].okDone {
		return consumed
	}
	if d.outstanding == CmdSetMUX {
		d.mux = d.muxRequest
	}
	d.finish(ResultOK)
	return consumed
}

// recognizeReady waits for the boot banner to end with "ready". Everything
// before it is boot noise.
func (d *Driver) recognizeReady() progress {
	if d.rx.Match(readyLine, 0) {
		d.rx.Cut(len(readyLine))
		d.mux = false
		d.finish(ResultOK)
		return consumed
	}
	if i := d.rx.Index(readyLine); i > 0 {
		d.rx.Cut(i)
		return consumed
	}
	return noMatch
}

func (d *Driver) recognizeJoin() progress {
	switch {
	case d.rx.Match(connectedLine, 0):
		d.rx.Cut(len(connectedLine))
		return consumed
	case d.rx.Match(gotIPLine, 0):
		d.rx.Cut(len(gotIPLine))
		return consumed
	case d.rx.Match(at.TagJoinError, 0):
		return d.cutLine()
	case d.rx.Match(failLine, 0):
		d.rx.Cut(len(failLine))
		d.finish(ResultConnectFailed)
		return consumed
	case d.rx.Match(errorLine, 0):
		d.rx.Cut(len(errorLine))
		d.finish(ResultConnectFailed)
		return consumed
	}
	return noMatch
}

func (d *Driver) recognizeScanResult() progress {
	if !d.rx.Match(at.TagScanResult, 0) {
		return noMatch
	}
	p := d.cutLine()
	if p == consumed {
		d.scanFound = true
	}
	return p
}

func (d *Driver) recognizeStatus() progress {
	switch {
	case d.rx.Match(at.TagStatus, 0):
		eol := d.rx.IndexCRLF(0)
		if eol < 0 {
			return d.cutLine()
		}
		if v, ok := d.parseDecimal(len(at.TagStatus), eol, 2); ok {
			d.netStatus = v
		}
		d.rx.Cut(eol + len(at.CRLF))
		return consumed
	case d.rx.Match(at.TagLinkStatus, 0):
		return d.cutLine()
	case d.rx.Match(okLine, 0):
		d.rx.Cut(len(okLine))
		d.finish(ResultOK)
		return consumed
	}
	return noMatch
}

// recognizePrompt writes the pending payload once the module asks for it.
func (d *Driver) recognizePrompt() progress {
	if d.rx.At(0) != at.Prompt[0] {
		return noMatch
	}
	d.rx.Cut(len(at.Prompt))

	text := d.outstanding == CmdSendString
	d.outstanding = CmdDoSend
	d.sentAt = d.now()

	var err error
	if !text {
		_, err = d.transport.Write(d.payload)
	} else {
		_, err = io.WriteString(d.transport, d.payloadText)
		if err == nil && d.terminate {
			_, err = io.WriteString(d.transport, at.SendExTerminator)
		}
	}
	if err != nil {
		d.log.Error("write payload", "error", err)
		d.finish(ResultSendError)
	}
	return consumed
}

func (d *Driver) recognizeSendResult() progress {
	switch {
	case d.rx.Match(sendOKLine, 0):
		d.rx.Cut(len(sendOKLine))
		d.finish(ResultOK)
	case d.rx.Match(sendFailLine, 0):
		d.rx.Cut(len(sendFailLine))
		d.finish(ResultSendFailed)
	case d.rx.Match(errorLine, 0):
		d.rx.Cut(len(errorLine))
		d.finish(ResultSendError)
	default:
		return noMatch
	}
	return consumed
}

// parseDecimal reads an unsigned decimal of 1 to maxDigits digits spanning
// exactly [begin, end).
func (d *Driver) parseDecimal(begin, end, maxDigits int) (int, bool) {
	if end <= begin || end-begin > maxDigits {
		return 0, false
	}
	v := 0
	for i := begin; i < end; i++ {
		c := d.rx.At(i)
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
