package at

import (
	"bufio"
	"bytes"
	"strings"
)

// Splitter is used for tokenizing ESP-AT traffic. It uses the signature of
// bufio.SplitFunc so it can be directly used with bufio.Scanner.
//
// It splits the input by CRLF line endings and also recognizes the
// CIPSEND input prompt (">"), which the firmware prints without a line
// ending.
//
// The atEOF parameter indicates whether any more data will be available.
// When true, any remaining data is returned as the final token. This is how
// a raw CIPSEND payload written after a command line comes out.
func Splitter(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// 1. Match the send prompt
	if bytes.HasPrefix(data, []byte(Prompt)) {
		return len(Prompt), data[0:len(Prompt)], nil
	}

	// 2. Match standard line ending with CRLF
	if i := bytes.Index(data, []byte(CRLF)); i >= 0 {
		return i + len(CRLF), data[0:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ bufio.SplitFunc = Splitter

// Classify identifies the nature of a firmware output line, given without
// its CRLF.
func Classify(line string) ResponseType {
	if line == Prompt {
		return TypePrompt
	}

	// Direct matches for final results
	switch line {
	case OK, ERROR, Fail, SendOK, SendFail:
		return TypeFinal
	case Ready, WifiDisconnect, WifiConnected, WifiGotIP, Connect, Closed:
		return TypeURC
	}

	// Prefix matches
	switch {
	case strings.HasPrefix(line, Busy[:5]):
		return TypeFinal
	case strings.HasPrefix(line, IPD):
		return TypeURC
	case len(line) >= 3 && line[1] == ',' && (line[2:] == Connect || line[2:] == Closed):
		return TypeURC
	case strings.HasPrefix(line, "AT"):
		return TypeEcho
	default:
		return TypeData
	}
}
