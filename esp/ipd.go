package esp

import "i4.energy/across/espwifi/at"

const (
	// ipdMinHeader is the shortest complete header, "+IPD,N:".
	ipdMinHeader = 7
	// ipdMaxHeader bounds how far the header colon is searched for. The
	// longest legal header carries a link id, a five digit count and a
	// remote address and port.
	ipdMaxHeader = 43
	// ipdMaxDigits bounds the length field.
	ipdMaxDigits = 5
)

// recognizeIPD handles "+IPD,[<link>,]<len>[,<ip>,<port>]:<payload>". A
// payload that has not fully arrived is delivered in pieces: what is there
// now, the rest through continueData as it comes in.
func (d *Driver) recognizeIPD() progress {
	if !d.rx.Match(at.IPD, 0) {
		return noMatch
	}

	n := d.rx.Len()
	eol := d.rx.IndexCRLF(0)
	off := 0
	if d.mux {
		off = 2
	}
	if n < ipdMinHeader+off && eol < 0 {
		return needMore
	}

	colon := d.rx.IndexByte(':', ipdMinHeader-1+off, eol)
	if colon < 0 {
		if eol >= 0 || n > ipdMaxHeader {
			return d.malformedIPD(eol)
		}
		return needMore
	}

	link := 0
	if d.mux {
		c := d.rx.At(len(at.IPD))
		if c < '0' || c > '0'+MaxLinkID || d.rx.At(len(at.IPD)+1) != ',' {
			return d.malformedIPD(eol)
		}
		link = int(c - '0')
	}

	countAt := len(at.IPD) + off
	countEnd := d.rx.IndexByte(',', countAt, colon)
	if countEnd < 0 {
		countEnd = colon
	}
	count, ok := d.parseDecimal(countAt, countEnd, ipdMaxDigits)
	if !ok || count == 0 {
		return d.malformedIPD(eol)
	}

	payload := colon + 1
	if avail := n - payload; avail < count {
		if avail > 0 {
			d.handler.OnData(link, d.rx.Slice(payload, n))
		}
		d.rx.Clear()
		d.dataLink = link
		d.dataPending = count - avail
		return needMore
	}

	d.handler.OnData(link, d.rx.Slice(payload, payload+count))
	d.rx.Cut(payload + count)
	return consumed
}

// continueData delivers the next piece of a split payload.
func (d *Driver) continueData() progress {
	n := min(d.dataPending, d.rx.Len())
	d.handler.OnData(d.dataLink, d.rx.Slice(0, n))
	d.rx.Cut(n)
	d.dataPending -= n
	if d.dataPending > 0 {
		return needMore
	}
	return consumed
}

func (d *Driver) malformedIPD(eol int) progress {
	if eol >= 0 {
		d.log.Warn("malformed network data header, dropping line", "head", d.ipdHead())
		d.rx.Cut(eol + len(at.CRLF))
		return consumed
	}
	if d.rx.Full() {
		d.log.Warn("malformed network data header, clearing buffer", "head", d.ipdHead())
		d.rx.Clear()
		return consumed
	}
	return needMore
}

func (d *Driver) ipdHead() string {
	return d.rx.Slice(0, min(d.rx.Len(), ipdMaxHeader)).String()
}
