package rover

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/rockerbogie/internal/dag"
	"github.com/leapstack-labs/rockerbogie/internal/params"
	"github.com/leapstack-labs/rockerbogie/internal/record"
)

// Result holds everything one derivation produces.
type Result struct {
	Width WidthCheck

	FrontRocker       Linkage
	FrontRockerOffset float64
	RearRocker        Linkage
	MiddleBogie       Linkage
	RearBogie         Linkage

	UpperHousing PivotHousing
	LowerHousing PivotHousing

	UpperSpacer Spacer
	LowerSpacer Spacer

	UpperShaft         Shaft
	UpperMinBoltLength float64
	LowerShaft         Shaft
	LowerMinBoltLength float64

	FrontSteeringMount SteeringMount
	RearSteeringMount  SteeringMount
	MiddleWheelMount   WheelMount

	Warnings []Warning

	order []Component
}

// step derives one component from the parameters and earlier results.
type step struct {
	component Component
	deps      []Component
	run       func(p Parameters, r *Result)
}

// evaluation is the fixed derivation sequence.
var evaluation = []step{
	{FrontRockerLinkage, nil, func(p Parameters, r *Result) {
		r.FrontRocker, r.FrontRockerOffset = FrontRocker(p)
	}},
	{RearRockerLinkage, nil, func(p Parameters, r *Result) {
		r.RearRocker = RearRocker(p)
	}},
	{MiddleBogieLinkage, nil, func(p Parameters, r *Result) {
		r.MiddleBogie = MiddleBogie(p)
	}},
	{RearBogieLinkage, nil, func(p Parameters, r *Result) {
		r.RearBogie = RearBogie(p)
	}},
	{UpperPivotHousing, []Component{FrontRockerLinkage, RearRockerLinkage}, func(p Parameters, r *Result) {
		r.UpperHousing = BuildPivotHousing(p, Upper, r.FrontRocker.Angle, r.RearRocker.Angle)
	}},
	{LowerPivotHousing, []Component{MiddleBogieLinkage, RearBogieLinkage}, func(p Parameters, r *Result) {
		r.LowerHousing = BuildPivotHousing(p, Lower, r.MiddleBogie.Angle, r.RearBogie.Angle)
	}},
	{UpperSpacer, []Component{UpperPivotHousing}, func(p Parameters, r *Result) {
		r.UpperSpacer = BuildSpacer(p, Upper, r.UpperHousing)
	}},
	{LowerSpacer, []Component{LowerPivotHousing}, func(p Parameters, r *Result) {
		r.LowerSpacer = BuildSpacer(p, Lower, r.LowerHousing)
	}},
	{UpperShaft, []Component{UpperSpacer}, func(p Parameters, r *Result) {
		r.UpperShaft, r.UpperMinBoltLength = BuildUpperShaft(p, r.UpperSpacer.Thickness)
	}},
	{LowerShaft, []Component{UpperSpacer, LowerSpacer}, func(p Parameters, r *Result) {
		r.LowerShaft, r.LowerMinBoltLength = BuildLowerShaft(p, r.UpperSpacer.Thickness, r.LowerSpacer.Thickness)
	}},
	{FrontSteeringMount, []Component{FrontRockerLinkage, UpperPivotHousing}, func(p Parameters, r *Result) {
		r.FrontSteeringMount = BuildSteeringMount(p, Front, r.FrontRockerOffset, r.FrontRocker.Angle, r.UpperHousing)
	}},
	{RearSteeringMount, []Component{LowerPivotHousing}, func(p Parameters, r *Result) {
		r.RearSteeringMount = BuildSteeringMount(p, Rear, 0, 0, r.LowerHousing)
	}},
	{MiddleWheelMount, []Component{LowerPivotHousing}, func(p Parameters, r *Result) {
		r.MiddleWheelMount = BuildMiddleWheelMount(p, r.LowerHousing)
	}},
}

// buildGraph builds the dependency graph of steps and checks that steps are
// listed in an order that respects it.
func buildGraph(steps []step) (*dag.Graph, error) {
	g := dag.NewGraph()
	order := make([]string, 0, len(steps))
	for _, s := range steps {
		g.AddNode(string(s.component), s)
		order = append(order, string(s.component))
	}
	for _, s := range steps {
		for _, dep := range s.deps {
			if err := g.AddEdge(string(dep), string(s.component)); err != nil {
				return nil, fmt.Errorf("component %s: %w", s.component, err)
			}
		}
	}
	if _, err := g.TopologicalSort(); err != nil {
		return nil, fmt.Errorf("invalid component graph: %w", err)
	}
	if err := g.CheckOrder(order); err != nil {
		return nil, fmt.Errorf("invalid evaluation order: %w", err)
	}
	return g, nil
}

// ComponentGraph returns the dependency graph of derived components.
func ComponentGraph() (*dag.Graph, error) {
	return buildGraph(evaluation)
}

// Components returns the derived components in evaluation order.
func Components() []Component {
	out := make([]Component, len(evaluation))
	for i, s := range evaluation {
		out[i] = s.component
	}
	return out
}

// Deriver runs the fixed derivation sequence.
type Deriver struct {
	logger *slog.Logger
	steps  []step
}

// NewDeriver creates a Deriver. A nil logger discards output.
func NewDeriver(logger *slog.Logger) (*Deriver, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if _, err := buildGraph(evaluation); err != nil {
		return nil, err
	}
	return &Deriver{logger: logger, steps: evaluation}, nil
}

// Derive validates the rover width, then derives every component exactly
// once in dependency order. A failed width check is recorded on the result
// and does not stop derivation.
func (d *Deriver) Derive(p Parameters) *Result {
	r := &Result{Width: ValidateRoverWidth(p)}
	if !r.Width.Passed {
		d.logger.Warn("rover width check failed",
			"required_clearance", r.Width.RequiredClearance,
			"target", r.Width.Target)
	}

	for _, s := range d.steps {
		s.run(p, r)
		r.order = append(r.order, s.component)

		rec, _ := r.Record(s.component)
		warnings := CheckFeasibility(s.component, rec)
		for _, w := range warnings {
			d.logger.Warn("infeasible geometry", "component", w.Component, "field", w.Field, "value", w.Value, "reason", w.Reason)
		}
		r.Warnings = append(r.Warnings, warnings...)
		d.logger.Debug("derived component", "component", s.component, "fields", len(rec.Fields))
	}

	d.logger.Debug("derivation complete",
		"components", len(r.order),
		"warnings", len(r.Warnings),
		"upper_min_bolt_length", r.UpperMinBoltLength,
		"lower_min_bolt_length", r.LowerMinBoltLength)
	return r
}

// Record returns the artifact record for component c.
func (r *Result) Record(c Component) (*record.Record, bool) {
	switch c {
	case FrontRockerLinkage:
		return r.FrontRocker.Record(), true
	case RearRockerLinkage:
		return r.RearRocker.Record(), true
	case MiddleBogieLinkage:
		return r.MiddleBogie.Record(), true
	case RearBogieLinkage:
		return r.RearBogie.Record(), true
	case UpperPivotHousing:
		return r.UpperHousing.Record(), true
	case LowerPivotHousing:
		return r.LowerHousing.Record(), true
	case UpperSpacer:
		return r.UpperSpacer.Record(), true
	case LowerSpacer:
		return r.LowerSpacer.Record(), true
	case UpperShaft:
		return r.UpperShaft.Record(), true
	case LowerShaft:
		return r.LowerShaft.Record(), true
	case FrontSteeringMount:
		return r.FrontSteeringMount.Record(), true
	case RearSteeringMount:
		return r.RearSteeringMount.Record(), true
	case MiddleWheelMount:
		return r.MiddleWheelMount.Record(), true
	}
	return nil, false
}

// Records returns every derived record in evaluation order.
func (r *Result) Records() []*record.Record {
	out := make([]*record.Record, 0, len(r.order))
	for _, c := range r.order {
		if rec, ok := r.Record(c); ok {
			out = append(out, rec)
		}
	}
	return out
}

// WarningsFor returns the feasibility warnings raised for component c.
func (r *Result) WarningsFor(c Component) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Component == c {
			out = append(out, w)
		}
	}
	return out
}

// Feasible reports whether no component raised a feasibility warning.
func (r *Result) Feasible() bool {
	return len(r.Warnings) == 0
}

// PersistReport lists what Persist wrote and what it held back. Removed names
// the skipped components whose artifact from an earlier run was deleted.
type PersistReport struct {
	Written []Component `json:"written"`
	Skipped []Component `json:"skipped,omitempty"`
	Removed []Component `json:"removed,omitempty"`
}

// Persist forwards every record to sink in evaluation order. Components with
// feasibility warnings are skipped unless allowInfeasible is set, and any
// earlier artifact for a skipped component is removed from the sink. The
// first sink error aborts; records already written stay written.
func (d *Deriver) Persist(ctx context.Context, r *Result, sink record.Sink, allowInfeasible bool) (PersistReport, error) {
	var report PersistReport
	for _, c := range r.order {
		if !allowInfeasible && len(r.WarningsFor(c)) > 0 {
			d.logger.Warn("skipping infeasible component", "component", c)
			report.Skipped = append(report.Skipped, c)
			removed, err := sink.RemoveRecord(ctx, string(c))
			if err != nil {
				return report, fmt.Errorf("failed to clear stale %s: %w", c, err)
			}
			if removed {
				d.logger.Info("removed stale artifact", "component", c)
				report.Removed = append(report.Removed, c)
			}
			continue
		}
		rec, _ := r.Record(c)
		if err := sink.WriteRecord(ctx, rec); err != nil {
			return report, fmt.Errorf("failed to persist %s: %w", c, err)
		}
		report.Written = append(report.Written, c)
	}
	return report, nil
}

// RunOptions configures Run.
type RunOptions struct {
	AllowInfeasible bool
	Logger          *slog.Logger
}

// Run binds the parameter table, derives every component and persists the
// records. A missing parameter aborts before anything is written.
func Run(ctx context.Context, t *params.Table, sink record.Sink, opts RunOptions) (*Result, PersistReport, error) {
	p, err := FromTable(t)
	if err != nil {
		return nil, PersistReport{}, err
	}
	d, err := NewDeriver(opts.Logger)
	if err != nil {
		return nil, PersistReport{}, err
	}
	res := d.Derive(p)
	report, err := d.Persist(ctx, res, sink, opts.AllowInfeasible)
	if err != nil {
		return res, report, err
	}
	return res, report, nil
}
