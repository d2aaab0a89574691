package types

import "github.com/thediveo/enumflag/v2"

// OutputMode is the enum flag type for the --output flag.
type OutputMode enumflag.Flag

const (
	OutputModeTable OutputMode = iota
	OutputModeJson
	OutputModeYaml
)

// OutputModeIds maps enumeration values to their textual representations
// (value identifiers).
var OutputModeIds = map[OutputMode][]string{
	OutputModeTable: {"table"},
	OutputModeJson:  {"json"},
	OutputModeYaml:  {"yaml"},
}

// CompressionMode is the enum flag type for the --compression flag.
type CompressionMode enumflag.Flag

const (
	CompressionModeNone CompressionMode = iota
	CompressionModeGzip
	CompressionModeDeflate
)

var CompressionModeIds = map[CompressionMode][]string{
	CompressionModeNone:    {"none"},
	CompressionModeGzip:    {"gzip"},
	CompressionModeDeflate: {"deflate"},
}

func (c CompressionMode) String() string {
	return CompressionModeIds[c][0]
}
