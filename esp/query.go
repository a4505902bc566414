package esp

import "i4.energy/across/espwifi/at"

const (
	// ipv4TextMax is the longest dotted quad, "255.255.255.255".
	ipv4TextMax = 15
	// addrLineSlack allows for the quotes around the address.
	addrLineSlack = 2
)

// recognizeLocalAddr collects the AT+CIFSR listing.
func (d *Driver) recognizeLocalAddr() progress {
	switch {
	case d.rx.Match(at.TagSoftAPAddr, 0):
		return d.addressLine(at.TagSoftAPAddr, &d.apIP)
	case d.rx.Match(at.TagStationAddr, 0):
		return d.addressLine(at.TagStationAddr, &d.staIP)
	}
	return d.queryDone()
}

// recognizeAPAddr collects the AT+CIPAP? listing.
func (d *Driver) recognizeAPAddr() progress {
	switch {
	case d.rx.Match(at.TagAPIP, 0):
		return d.addressLine(at.TagAPIP, &d.apIP)
	case d.rx.Match(at.TagAPNetmask, 0):
		return d.addressLine(at.TagAPNetmask, &d.apMask)
	case d.rx.Match(at.TagAPGateway, 0):
		return d.addressLine(at.TagAPGateway, nil)
	}
	return d.queryDone()
}

// recognizeSTAAddr collects the AT+CIPSTA? listing.
func (d *Driver) recognizeSTAAddr() progress {
	switch {
	case d.rx.Match(at.TagSTAIP, 0):
		return d.addressLine(at.TagSTAIP, &d.staIP)
	case d.rx.Match(at.TagSTANetmask, 0):
		return d.addressLine(at.TagSTANetmask, &d.staMask)
	case d.rx.Match(at.TagSTAGateway, 0):
		return d.addressLine(at.TagSTAGateway, nil)
	}
	return d.queryDone()
}

// recognizeDomain records the address line and completes on the OK that
// ends the reply. An OK without an address line is a failed lookup.
func (d *Driver) recognizeDomain() progress {
	switch {
	case d.rx.Match(at.TagDomain, 0):
		return d.addressLine(at.TagDomain, &d.resolved)
	case d.rx.Match(errorLine, 0):
		d.rx.Cut(len(errorLine))
		d.finish(ResultDomainFailed)
		return consumed
	case d.rx.Match(okLine, 0) && d.resolved == 0:
		d.rx.Cut(len(okLine))
		d.finish(ResultDomainFailed)
		return consumed
	}
	return d.queryDone()
}

func (d *Driver) queryDone() progress {
	if !d.rx.Match(okLine, 0) {
		return noMatch
	}
	d.rx.Cut(len(okLine))
	d.finish(ResultOK)
	return consumed
}

// addressLine parses "<tag><address>[\"]\r\n" into dst, or drops it when
// dst is nil. A line too long to hold an address, or one that does not
// parse, fails the outstanding command.
func (d *Driver) addressLine(tag string, dst *IPv4) progress {
	limit := len(tag) + ipv4TextMax + addrLineSlack
	eol := d.rx.IndexCRLF(0)
	if eol < 0 {
		if d.rx.Len() <= limit {
			return needMore
		}
		d.log.Warn("address line too long", "tag", tag)
		d.rx.Clear()
		d.finish(ResultUnknownError)
		return consumed
	}

	if eol > limit {
		d.log.Warn("address line too long", "tag", tag)
		d.rx.Cut(eol + len(at.CRLF))
		d.finish(ResultUnknownError)
		return consumed
	}

	if dst == nil {
		d.rx.Cut(eol + len(at.CRLF))
		return consumed
	}

	ip, ok := d.parseIPv4(len(tag), eol)
	if !ok {
		d.log.Warn("malformed address", "line", d.rx.Slice(0, eol).String())
		d.rx.Cut(eol + len(at.CRLF))
		d.finish(ResultUnknownError)
		return consumed
	}
	d.rx.Cut(eol + len(at.CRLF))
	*dst = ip
	return consumed
}

// parseIPv4 reads a dotted quad spanning exactly [begin, end), optionally
// wrapped in quotes.
func (d *Driver) parseIPv4(begin, end int) (IPv4, bool) {
	i := begin
	if i < end && d.rx.At(i) == '"' {
		i++
	}

	var addr IPv4
	for octet := 0; octet < 4; octet++ {
		if octet > 0 {
			if i >= end || d.rx.At(i) != '.' {
				return 0, false
			}
			i++
		}
		v, digits := 0, 0
		for i < end && digits < 3 {
			c := d.rx.At(i)
			if c < '0' || c > '9' {
				break
			}
			v = v*10 + int(c-'0')
			i++
			digits++
		}
		if digits == 0 || v > 255 {
			return 0, false
		}
		addr = addr<<8 | IPv4(v)
	}

	if i < end && d.rx.At(i) == '"' {
		i++
	}
	return addr, i == end
}
