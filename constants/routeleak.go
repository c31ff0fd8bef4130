package constants

const (
	RouteLeak = "routeleak"

	NotApplicable = "N/A"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
	FormatPlain = "plain"
)

// MediaTypeYANGJSON is the media type RESTCONF servers use for YANG-modeled JSON bodies.
const MediaTypeYANGJSON = "application/yang-data+json"

const (
	RESTCONFDataRoot       = "/restconf/data"
	RESTCONFOperationsRoot = "/restconf/operations"
)

// YANG modules the payloads and URLs are keyed with.
const (
	ModuleIETFInterfaces = "ietf-interfaces"
	ModuleIETFIP         = "ietf-ip"
	ModuleIANAIfType     = "iana-if-type"
	ModuleNative         = "Cisco-IOS-XE-native"
	ModuleBGP            = "Cisco-IOS-XE-bgp"
	ModuleOSPF           = "Cisco-IOS-XE-ospf"
	ModuleRouteMap       = "Cisco-IOS-XE-route-map"
	ModuleIA             = "cisco-ia"
)

// MinRESTCONFVersion is the oldest IOS-XE release shipping the RESTCONF agent.
const MinRESTCONFVersion = "16.6"

const (
	DefaultLoopbackMask = "255.255.255.255"
	DefaultScheme       = "https"
)
