package model

// VRF policy control enforcement direction.
const (
	VRFEnforcementDirectionIngress = "ingress"
	VRFEnforcementDirectionEgress  = "egress"
)

// VRF policy control enforcement preference.
const (
	VRFEnforcementPreferenceEnforced   = "enforced"
	VRFEnforcementPreferenceUnenforced = "unenforced"
)

// Bridge domain forwarding method for L2 multicast, broadcast, and link
// layer traffic.
const (
	BDMultiDestinationFloodingBD    = "bd-flood"
	BDMultiDestinationFloodingEncap = "encap-flood"
	BDMultiDestinationFloodingDrop  = "drop"
)

// Bridge domain forwarding method for unknown multicast traffic.
const (
	BDUnknownMulticastFlood    = "flood"
	BDUnknownMulticastOptFlood = "opt-flood"
)

// Bridge domain forwarding method for unknown unicast traffic.
const (
	BDUnknownUnicastFlood = "flood"
	BDUnknownUnicastProxy = "proxy"
)

// Endpoint group QoS class.
const (
	QoSClassUnspecified = "unspecified"
	QoSClassLevel1      = "level1"
	QoSClassLevel2      = "level2"
	QoSClassLevel3      = "level3"
)

// DefaultBDMACAddress is the fabric-wide default bridge domain MAC.
const DefaultBDMACAddress = "00:22:BD:F8:19:FF"

var (
	VRFEnforcementDirections  = []string{VRFEnforcementDirectionIngress, VRFEnforcementDirectionEgress}
	VRFEnforcementPreferences = []string{VRFEnforcementPreferenceEnforced, VRFEnforcementPreferenceUnenforced}
	BDMultiDestinationFloods  = []string{BDMultiDestinationFloodingBD, BDMultiDestinationFloodingEncap, BDMultiDestinationFloodingDrop}
	BDUnknownMulticasts       = []string{BDUnknownMulticastFlood, BDUnknownMulticastOptFlood}
	BDUnknownUnicasts         = []string{BDUnknownUnicastFlood, BDUnknownUnicastProxy}
	QoSClasses                = []string{QoSClassUnspecified, QoSClassLevel1, QoSClassLevel2, QoSClassLevel3}
)
