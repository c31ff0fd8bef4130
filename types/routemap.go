// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"fmt"

	claberrors "github.com/srl-labs/routeleak/errors"
)

type RouteMapAction string

const (
	RouteMapPermit RouteMapAction = "permit"
	RouteMapDeny   RouteMapAction = "deny"
)

// RouteMapEntry is a single sequence of a route-map.
type RouteMapEntry struct {
	Seq         uint16         `yaml:"seq"`
	Action      RouteMapAction `yaml:"action"`
	Description string         `yaml:"description,omitempty"`
	// MatchPrefixList names the IP prefix-list the entry matches on.
	MatchPrefixList string `yaml:"match-prefix-list,omitempty"`
	// SetRT lists the route targets attached as extended communities.
	SetRT []string `yaml:"set-rt,omitempty"`
}

// RouteMapConfig is a route-map used to filter or tag leaked routes.
type RouteMapConfig struct {
	Name    string          `yaml:"name"`
	Entries []RouteMapEntry `yaml:"entries"`
}

func (c RouteMapConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: route-map name is required", claberrors.ErrIncorrectInput)
	}

	if len(c.Entries) == 0 {
		return fmt.Errorf("%w: route-map %s has no entries", claberrors.ErrIncorrectInput, c.Name)
	}

	seen := map[uint16]struct{}{}
	for _, e := range c.Entries {
		if e.Action != RouteMapPermit && e.Action != RouteMapDeny {
			return fmt.Errorf("%w: route-map %s seq %d: action must be permit or deny",
				claberrors.ErrIncorrectInput, c.Name, e.Seq)
		}

		if _, ok := seen[e.Seq]; ok {
			return fmt.Errorf("%w: route-map %s: duplicate seq %d", claberrors.ErrIncorrectInput, c.Name, e.Seq)
		}

		seen[e.Seq] = struct{}{}

		for _, rt := range e.SetRT {
			if err := ValidateExtCommunity(rt); err != nil {
				return fmt.Errorf("%w: route-map %s seq %d: %v", claberrors.ErrIncorrectInput, c.Name, e.Seq, err)
			}
		}
	}

	return nil
}

// Serialize renders the route-map with its sequences in the given order.
func (c RouteMapConfig) Serialize() Document {
	seqs := make([]any, 0, len(c.Entries))

	for _, e := range c.Entries {
		entry := map[string]any{
			"seq_no":    e.Seq,
			"operation": string(e.Action),
		}

		if e.Description != "" {
			entry["description"] = e.Description
		}

		if e.MatchPrefixList != "" {
			entry["match"] = map[string]any{
				"ip": map[string]any{
					"address": map[string]any{
						"prefix-list": []any{e.MatchPrefixList},
					},
				},
			}
		}

		if len(e.SetRT) > 0 {
			rts := make([]any, 0, len(e.SetRT))
			for _, rt := range e.SetRT {
				rts = append(rts, rt)
			}

			entry["set"] = map[string]any{
				"extcommunity": map[string]any{
					"rt": map[string]any{"asn-nn": rts},
				},
			}
		}

		seqs = append(seqs, entry)
	}

	return Document{
		rootRouteMap: []any{
			map[string]any{
				"name":         c.Name,
				keyRouteMapSeq: seqs,
			},
		},
	}
}

// Hostname is the device host name set during the initial configuration.
type Hostname string

func (h Hostname) Serialize() Document {
	return Document{rootHostname: string(h)}
}
