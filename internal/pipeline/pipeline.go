// Package pipeline wires material, specimen, loading and tracing into one
// deterministic analysis run.
package pipeline

import (
	"fmt"

	"github.com/alexiusacademia/strainlife/internal/config"
	"github.com/alexiusacademia/strainlife/internal/cyclic"
	"github.com/alexiusacademia/strainlife/internal/hysteresis"
	"github.com/alexiusacademia/strainlife/internal/loading"
	"github.com/alexiusacademia/strainlife/internal/material"
	"github.com/alexiusacademia/strainlife/internal/neuber"
	"github.com/alexiusacademia/strainlife/internal/specimen"
	"go.uber.org/zap"
)

// Pipeline runs the analysis for one configuration
type Pipeline struct {
	logger   *zap.Logger
	cfg      *config.Config
	material material.Model
	curve    cyclic.Curve
	solver   *neuber.Solver // nil for smooth specimens
	tracer   *hysteresis.Tracer
}

// New validates the configuration and resolves the material
func New(logger *zap.Logger, cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := cfg.MaterialTable()
	if err != nil {
		return nil, err
	}
	m, err := table.Lookup(cfg.Material)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		logger:   logger,
		cfg:      cfg,
		material: m,
		curve:    cyclic.New(m),
	}

	if cfg.Specimen.IsNotched() {
		p.solver = neuber.New(p.curve, cfg.Specimen.Kt)
		p.solver.Tolerance = cfg.Solver.Tolerance
		p.solver.MaxIterations = cfg.Solver.MaxIterations
		p.solver.InitialStep = cfg.Solver.InitialStep
	}

	p.tracer = hysteresis.NewTracer(logger, p.curve)
	p.tracer.Pairing = cfg.Tracer.Pairing

	return p, nil
}

// Material returns the resolved material
func (p *Pipeline) Material() material.Model {
	return p.material
}

// Specimen returns the specimen configuration
func (p *Pipeline) Specimen() specimen.Config {
	return p.cfg.Specimen
}

// Curve samples the specimen curve from zero to the ultimate strength.
// For a notched specimen the second slice is the Neuber curve (strain, kt·S);
// for a smooth specimen it is nil.
func (p *Pipeline) Curve() (skeleton, notch []cyclic.Point, err error) {
	limit := p.material.UltimateStrength

	if p.solver == nil {
		return p.curve.Sweep(limit), nil, nil
	}

	samples, err := p.solver.Sweep(limit)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: neuber curve: %w", err)
	}
	skeleton = make([]cyclic.Point, len(samples))
	notch = make([]cyclic.Point, len(samples))
	for i, s := range samples {
		skeleton[i] = cyclic.Point{Strain: s.Strain, Stress: s.Local}
		notch[i] = cyclic.Point{Strain: s.Strain, Stress: s.Nominal * p.solver.Kt}
	}
	return skeleton, notch, nil
}

// Levels builds the nominal reversal history and the local levels to trace.
// Local equals nominal for smooth specimens.
func (p *Pipeline) Levels() (nominal, local loading.Sequence, err error) {
	nominal, err = loading.Build(p.cfg.Loading)
	if err != nil {
		return nil, nil, err
	}

	if p.solver == nil {
		return nominal, nominal, nil
	}

	local, err = nominal.Map(p.solver.LocalStress)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: local stress: %w", err)
	}
	p.logger.Debug("notch levels", zap.Float64s("nominal", nominal), zap.Float64s("local", local))
	return nominal, local, nil
}

// Hysteresis traces the local levels
func (p *Pipeline) Hysteresis(local loading.Sequence) (*hysteresis.Result, error) {
	return p.tracer.Trace(local)
}

// Result is the complete output of one run
type Result struct {
	Material material.Model
	Specimen specimen.Config

	Skeleton []cyclic.Point // cyclic Ramberg-Osgood curve
	Notch    []cyclic.Point // Neuber curve, notched specimens only

	Nominal loading.Sequence // applied history
	Local   loading.Sequence // traced history

	Path   []hysteresis.PathPoint
	Cycles []hysteresis.Cycle
}

// Run executes every stage
func (p *Pipeline) Run() (*Result, error) {
	p.logger.Info("starting analysis",
		zap.String("material", p.material.Name),
		zap.String("geometry", string(p.cfg.Specimen.Geometry)),
		zap.Float64("kt", p.cfg.Specimen.Kt),
		zap.String("loading", string(p.cfg.Loading.Type)))

	skeleton, notch, err := p.Curve()
	if err != nil {
		return nil, err
	}

	nominal, local, err := p.Levels()
	if err != nil {
		return nil, err
	}

	trace, err := p.Hysteresis(local)
	if err != nil {
		return nil, err
	}

	p.logger.Info("analysis complete",
		zap.Int("reversals", len(nominal)),
		zap.Int("path_points", len(trace.Path)),
		zap.Int("cycles", len(trace.Cycles)))

	return &Result{
		Material: p.material,
		Specimen: p.cfg.Specimen,
		Skeleton: skeleton,
		Notch:    notch,
		Nominal:  nominal,
		Local:    local,
		Path:     trace.Path,
		Cycles:   trace.Cycles,
	}, nil
}
