// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package leak applies a route leaking plan to a device as an ordered sequence of phases.
package leak

//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=../mocks/mockleak/configurator.go -package=mockleak

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/types"
)

// Configurator is the set of device operations the sequence is built from.
// *restconf.Client implements it.
type Configurator interface {
	SetHostname(ctx context.Context, name string) (*restconf.Result, error)
	CreateVRF(ctx context.Context, cfg types.VrfConfig) (*restconf.Result, error)
	WaitForResource(ctx context.Context, rt restconf.RequestType, p restconf.Params) (*restconf.Result, error)
	PatchVRF(ctx context.Context, cfg types.VrfConfig) (*restconf.Result, error)
	ConfigureRouteMap(ctx context.Context, cfg types.RouteMapConfig) (*restconf.Result, error)
	UpdateInterface(ctx context.Context, cfg types.InterfaceConfig) (*restconf.Result, error)
	ConfigureOSPF(ctx context.Context, cfg types.OSPFConfig) (*restconf.Result, error)
	ConfigureBGP(ctx context.Context, cfg types.BGPConfig) (*restconf.Result, error)
	SaveConfig(ctx context.Context) (*restconf.Result, error)
}

var _ Configurator = (*restconf.Client)(nil)

var errNoResult = errors.New("no result")

// Runner executes the phases of a plan against a device.
type Runner struct {
	dev    Configurator
	runID  string
	device string
}

type RunnerOption func(*Runner)

// WithRunID sets the identifier logged with every phase and stored in the report.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) {
		r.runID = id
	}
}

// WithDevice sets the device address recorded in the report.
func WithDevice(addr string) RunnerOption {
	return func(r *Runner) {
		r.device = addr
	}
}

func NewRunner(dev Configurator, opts ...RunnerOption) *Runner {
	r := &Runner{dev: dev}

	for _, o := range opts {
		o(r)
	}

	if r.runID == "" {
		s, _ := uuid.New().MarshalText() // .MarshalText() always return a nil error
		r.runID = string(s)
	}

	return r
}

type step struct {
	target string
	apply  func(ctx context.Context) (*restconf.Result, error)
	// accepted lists non 2xx statuses that still count as applied.
	accepted []int
}

// Run applies the plan phase by phase. A phase starts only when every step of the
// previous phases got a 2xx answer. The first failed step stops the sequence,
// the remaining phases are reported as not run and nothing is rolled back.
// The report is returned in every case, the error is a *PhaseError.
func (r *Runner) Run(ctx context.Context, plan *Plan) (*Report, error) {
	rep := &Report{
		RunID:   r.runID,
		Device:  r.device,
		Started: time.Now(),
	}

	var failed error

	for _, ph := range Phases {
		pr := PhaseReport{Phase: ph}

		if failed != nil {
			pr.State = StateNotRun
			rep.Phases = append(rep.Phases, pr)

			continue
		}

		steps := r.steps(ph, plan)
		if len(steps) == 0 {
			log.Debug("nothing to apply", "phase", ph, "run", r.runID)

			pr.State = StateSkipped
			rep.Phases = append(rep.Phases, pr)

			continue
		}

		log.Info("applying phase", "phase", ph, "steps", len(steps))

		pr.State = StateApplied

		for _, s := range steps {
			start := time.Now()

			var (
				res *restconf.Result
				err error
			)

			if err = ctx.Err(); err == nil {
				res, err = s.apply(ctx)
			}

			sr := StepResult{Target: s.target, Elapsed: time.Since(start)}
			if res != nil {
				sr.StatusCode = res.StatusCode
			}

			pr.Steps = append(pr.Steps, sr)

			if perr := checkStep(ph, s, res, err); perr != nil {
				log.Error("phase failed", "phase", ph, "target", s.target, "status", perr.Status,
					"run", r.runID, "err", perr.Err)

				pr.State = StateFailed
				pr.Error = perr.Error()
				failed = perr

				break
			}

			log.Debug("step applied", "phase", ph, "target", s.target, "status", sr.StatusCode,
				"elapsed", sr.Elapsed)
		}

		rep.Phases = append(rep.Phases, pr)
	}

	rep.Duration = time.Since(rep.Started)

	return rep, failed
}

func checkStep(ph Phase, s step, res *restconf.Result, err error) *PhaseError {
	status := 0
	if res != nil {
		status = res.StatusCode
	}

	if err != nil {
		return &PhaseError{Phase: ph, Target: s.target, Status: status, Err: err}
	}

	if res == nil {
		return &PhaseError{Phase: ph, Target: s.target, Err: errNoResult}
	}

	if res.Success() {
		return nil
	}

	for _, a := range s.accepted {
		if status == a {
			log.Debug("status accepted", "phase", ph, "target", s.target, "status", status)

			return nil
		}
	}

	return &PhaseError{Phase: ph, Target: s.target, Status: status}
}

// steps expands a phase into the requests it issues for the plan.
func (r *Runner) steps(ph Phase, plan *Plan) []step {
	var steps []step

	switch ph {
	case PhaseInitialConfig:
		if plan.Hostname != "" {
			steps = append(steps, step{
				target: "hostname " + plan.Hostname,
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.SetHostname(ctx, plan.Hostname)
				},
			})
		}
	case PhaseCreateVRFs:
		for _, v := range plan.VRFs {
			steps = append(steps, step{
				target: "vrf " + v.Name,
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.CreateVRF(ctx, v)
				},
				// the definition exists already, the patch phase brings it in line
				accepted: []int{http.StatusConflict},
			})
		}
	case PhaseWaitVRFs:
		for _, v := range plan.VRFs {
			steps = append(steps, step{
				target: "vrf " + v.Name,
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.WaitForResource(ctx, restconf.RequestVRFByName, restconf.Params{VRF: v.Name})
				},
			})
		}
	case PhasePatchVRFs:
		for _, v := range plan.VRFs {
			if !v.HasAttributes() {
				continue
			}

			steps = append(steps, step{
				target: "vrf " + v.Name,
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.PatchVRF(ctx, v)
				},
			})
		}
	case PhaseRouteMaps:
		for _, rm := range plan.RouteMaps {
			steps = append(steps, step{
				target: "route-map " + rm.Name,
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.ConfigureRouteMap(ctx, rm)
				},
			})
		}
	case PhaseAssignInterfaces:
		for _, i := range plan.Interfaces {
			steps = append(steps, step{
				target: "interface " + i.Name,
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.UpdateInterface(ctx, i)
				},
			})
		}
	case PhaseConfigureOSPF:
		for _, o := range plan.OSPF {
			steps = append(steps, step{
				target: fmt.Sprintf("ospf %d", o.ProcessID),
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.ConfigureOSPF(ctx, o)
				},
			})
		}
	case PhaseConfigureBGP:
		for _, b := range plan.BGP {
			target := fmt.Sprintf("bgp %d", b.ASN)
			if b.VRF != "" {
				target += " vrf " + b.VRF
			}

			steps = append(steps, step{
				target: target,
				apply: func(ctx context.Context) (*restconf.Result, error) {
					return r.dev.ConfigureBGP(ctx, b)
				},
			})
		}
	case PhaseSaveConfig:
		if plan.SaveConfig {
			steps = append(steps, step{
				target: "running-config",
				apply:  r.dev.SaveConfig,
			})
		}
	default:
		panic(fmt.Sprintf("unhandled phase %q", ph))
	}

	return steps
}
