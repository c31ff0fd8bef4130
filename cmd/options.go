// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"time"

	clabconstants "github.com/srl-labs/routeleak/constants"
	"github.com/srl-labs/routeleak/netconf"
	"github.com/srl-labs/routeleak/restconf"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultWaitTimeout  = 60 * time.Second
	defaultPollInterval = 500 * time.Millisecond
	defaultSSHPort      = 22

	saveViaRESTCONF = "restconf"
	saveViaNETCONF  = "netconf"
)

var optionsInstance *Options //nolint:gochecknoglobals

// GetOptions returns the global options instance if it exists
// or creates a new one with default values for all options.
func GetOptions() *Options {
	if optionsInstance == nil {
		optionsInstance = NewOptions()
	}

	return optionsInstance
}

// NewOptions returns options with default values for all options.
func NewOptions() *Options {
	return &Options{
		Global: &GlobalOptions{
			Timeout:  defaultTimeout,
			LogLevel: "info",
			Format:   clabconstants.FormatPlain,
		},
		Device: &DeviceOptions{
			Scheme: clabconstants.DefaultScheme,
			// lab devices ship self-signed certificates
			Insecure: true,
		},
		Interface: &InterfaceOptions{
			Type: "ethernet",
		},
		VRF: &VRFOptions{},
		Assign: &AssignOptions{
			ID:           -1,
			LoopbackMask: clabconstants.DefaultLoopbackMask,
		},
		OSPF:     &OSPFOptions{},
		BGP:      &BGPOptions{},
		Leak:     &LeakOptions{},
		RouteMap: &RouteMapOptions{Action: "permit", Seq: 10},
		Initial: &InitialOptions{
			SSHPort: defaultSSHPort,
		},
		Save: &SaveOptions{
			Via:         saveViaRESTCONF,
			NetconfPort: netconf.DefaultPort,
		},
		Full: &FullOptions{
			PollInterval: defaultPollInterval,
			WaitTimeout:  defaultWaitTimeout,
		},
		Connection: &ConnectionOptions{
			MinVersion: clabconstants.MinRESTCONFVersion,
		},
	}
}

// Options groups the values of every command line flag.
type Options struct {
	Global     *GlobalOptions
	Device     *DeviceOptions
	Interface  *InterfaceOptions
	VRF        *VRFOptions
	Assign     *AssignOptions
	OSPF       *OSPFOptions
	BGP        *BGPOptions
	Leak       *LeakOptions
	RouteMap   *RouteMapOptions
	Initial    *InitialOptions
	Save       *SaveOptions
	Full       *FullOptions
	Connection *ConnectionOptions
}

type GlobalOptions struct {
	LogLevel   string
	DebugCount int
	// Timeout bounds every single request sent to the device.
	Timeout time.Duration
	Format  string
}

// DeviceOptions is the connection to the device. There are no default credentials.
type DeviceOptions struct {
	Address  string
	Port     int
	Username string
	Password string
	Scheme   string
	Insecure bool
}

func (o *DeviceOptions) toRESTCONFConfig(timeout time.Duration) restconf.Config {
	return restconf.Config{
		Address:            o.Address,
		Port:               o.Port,
		Username:           o.Username,
		Password:           o.Password,
		Scheme:             o.Scheme,
		Timeout:            timeout,
		InsecureSkipVerify: o.Insecure,
	}
}

// toNETCONFTarget returns the SSH target of the device, port 0 keeps the default
// port of the operation.
func (o *DeviceOptions) toNETCONFTarget(port int, timeout time.Duration) netconf.Target {
	return netconf.Target{
		Address:  o.Address,
		Username: o.Username,
		Password: o.Password,
		Port:     port,
		Timeout:  timeout,
	}
}

type InterfaceOptions struct {
	Name        string
	Type        string
	IP          string
	Mask        string
	Description string
	VRF         string
	Shutdown    bool
}

type VRFOptions struct {
	Name     string
	RD       string
	ImportRT string
	ExportRT string
}

// AssignOptions holds the flags of both assign-interface subcommands.
type AssignOptions struct {
	Name string
	// ID is the loopback number, negative when unset.
	ID           int
	VRF          string
	IP           string
	Mask         string
	LoopbackMask string
	Description  string
}

type OSPFOptions struct {
	PID      uint16
	VRF      string
	Network  string
	Wildcard string
	Area     uint32
}

type BGPOptions struct {
	ASN          uint32
	RouterID     string
	VRF          string
	Redistribute []string
	OSPFPID      uint16
}

type LeakOptions struct {
	VRF      string
	ImportRT []string
	ExportRT []string
	// RedistributeBGPInOSPF is the OSPF process BGP routes are redistributed into, 0 disables it.
	RedistributeBGPInOSPF uint16
	ASN                   uint32
}

type RouteMapOptions struct {
	Name            string
	Seq             uint16
	Action          string
	Description     string
	MatchPrefixList string
	SetRT           []string
}

type InitialOptions struct {
	Hostname string
	// Lines are sent over an SSH CLI session before the hostname is set.
	Lines   []string
	SSHPort int
}

type SaveOptions struct {
	Via         string
	NetconfPort int
}

type FullOptions struct {
	Plan       string
	VarsFile   string
	Demo       bool
	SaveConfig bool
	// DryRun prints the rendered plan instead of applying it.
	DryRun       bool
	PollInterval time.Duration
	WaitTimeout  time.Duration
}

type ConnectionOptions struct {
	CheckVersion bool
	MinVersion   string
}
