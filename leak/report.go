// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package leak

import (
	"fmt"
	"time"
)

// Phase names a step of the full configuration sequence.
type Phase string

const (
	PhaseInitialConfig    Phase = "initial-config"
	PhaseCreateVRFs       Phase = "create-vrfs"
	PhaseWaitVRFs         Phase = "wait-vrfs"
	PhasePatchVRFs        Phase = "patch-vrfs"
	PhaseRouteMaps        Phase = "route-maps"
	PhaseAssignInterfaces Phase = "assign-interfaces"
	PhaseConfigureOSPF    Phase = "configure-ospf"
	PhaseConfigureBGP     Phase = "configure-bgp"
	PhaseSaveConfig       Phase = "save-config"
)

// Phases lists the phases in execution order.
var Phases = []Phase{
	PhaseInitialConfig,
	PhaseCreateVRFs,
	PhaseWaitVRFs,
	PhasePatchVRFs,
	PhaseRouteMaps,
	PhaseAssignInterfaces,
	PhaseConfigureOSPF,
	PhaseConfigureBGP,
	PhaseSaveConfig,
}

// PhaseState is the outcome of a phase.
type PhaseState string

const (
	StateApplied PhaseState = "applied"
	// StateSkipped marks a phase with nothing to apply.
	StateSkipped PhaseState = "skipped"
	StateFailed  PhaseState = "failed"
	// StateNotRun marks the phases after a failed one.
	StateNotRun PhaseState = "not-run"
)

// StepResult is a single request issued within a phase.
type StepResult struct {
	Target     string        `json:"target"`
	StatusCode int           `json:"status_code"`
	Elapsed    time.Duration `json:"elapsed"`
}

type PhaseReport struct {
	Phase Phase        `json:"phase"`
	State PhaseState   `json:"state"`
	Steps []StepResult `json:"steps,omitempty"`
	Error string       `json:"error,omitempty"`
}

// Report is the outcome of a full configuration run.
type Report struct {
	RunID    string        `json:"run_id"`
	Device   string        `json:"device,omitempty"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Phases   []PhaseReport `json:"phases"`
}

// Applied returns the phases that completed.
func (r *Report) Applied() []Phase {
	var ps []Phase

	for _, p := range r.Phases {
		if p.State == StateApplied {
			ps = append(ps, p.Phase)
		}
	}

	return ps
}

// Failed returns the report of the failed phase, nil when the run succeeded.
func (r *Report) Failed() *PhaseReport {
	for i := range r.Phases {
		if r.Phases[i].State == StateFailed {
			return &r.Phases[i]
		}
	}

	return nil
}

// PhaseError is returned when a phase could not be applied. Status is the HTTP status
// of the rejected request, 0 when the request never got a response.
type PhaseError struct {
	Phase  Phase
	Target string
	Status int
	Err    error
}

func (e *PhaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("phase %s failed on %s: %v", e.Phase, e.Target, e.Err)
	}

	return fmt.Sprintf("phase %s failed on %s: status %d", e.Phase, e.Target, e.Status)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
