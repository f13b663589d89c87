// Package studymesh provides a high-level façade over the orchestrator,
// routing policy and the six study agents, enabling quick construction of a
// study-plan service. Most applications interact with this package by:
//  1. Creating a StudyMesh via New() (optionally overriding config, agents,
//     policy or logger)
//  2. Calling CreateStudyPlan with a student request
//  3. Inspecting the returned Result (plan, outcome summary, audit log)
//
// The façade delegates execution to orchestrator.Orchestrator while keeping
// setup ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply real agent backends and a
// structured logger.
package studymesh

import (
	"context"

	"github.com/studymesh/studymesh/agent"
	"github.com/studymesh/studymesh/config"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/orchestrator"
	"github.com/studymesh/studymesh/routing"
)

// Options configures the StudyMesh instance.
type Options struct {
	// Config supplies orchestrator tuning and quiz sizing. Defaults to
	// config.Default().
	Config config.Config

	// Agents to register. Defaults to the six stub-backed study agents.
	Agents []core.Agent

	// Policy decides routing order. Defaults to the dependency-graph policy.
	Policy orchestrator.Policy

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// StudyMesh is the high-level façade aggregating the orchestrator and its
// agent roster.
type StudyMesh struct {
	opts Options
	orch *orchestrator.Orchestrator
}

// New creates a StudyMesh with optional overrides. Any unset option is
// initialized with a sensible in-process default.
func New(optFns ...func(o *Options)) *StudyMesh {
	opts := Options{
		Config: config.Default(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Agents == nil {
		opts.Agents = DefaultAgents(opts.Config)
	}
	if opts.Policy == nil {
		opts.Policy = routing.NewPolicy()
	}

	oc := opts.Config.Orchestrator
	orch := orchestrator.New(opts.Agents, opts.Policy, func(o *orchestrator.Options) {
		o.InvokeTimeout = oc.InvokeTimeout.Std()
		o.MaxRetries = oc.MaxRetries
		o.BackoffBase = oc.BackoffBase.Std()
		o.BackoffFactor = oc.BackoffFactor
		o.Jitter = oc.Jitter
		o.StepCeilingFactor = oc.StepCeilingFactor
		o.Logger = opts.Logger
	})

	return &StudyMesh{opts: opts, orch: orch}
}

// DefaultAgents builds the six study agents over their deterministic stub
// backends.
func DefaultAgents(cfg config.Config) []core.Agent {
	questions := cfg.Assessment.NumQuestions
	if questions <= 0 {
		questions = config.Default().Assessment.NumQuestions
	}

	return []core.Agent{
		agent.NewPersonalizationAgent(agent.NewStaticPreferenceStore()),
		agent.NewLearningAgent(agent.NewStaticResourceIndex()),
		agent.NewWellnessAgent(agent.NewStaticEmotionSensor()),
		agent.NewAssessmentAgent(agent.NewTemplateQuizGenerator(), questions),
		agent.NewScheduleAgent(agent.NewStaticAvailability()),
		agent.NewMotivationAgent(agent.NewCatalogMessageSource()),
	}
}

// CreateStudyPlan executes one orchestration run for the request.
func (m *StudyMesh) CreateStudyPlan(ctx context.Context, req core.Request) (*orchestrator.Result, error) {
	return m.orch.CreateStudyPlan(ctx, req)
}

// Cancel aborts a running run by ID.
func (m *StudyMesh) Cancel(runID string) error { return m.orch.Cancel(runID) }

// AgentStatus reports last known per-agent health.
func (m *StudyMesh) AgentStatus() map[core.AgentName]orchestrator.Health {
	return m.orch.AgentStatus()
}
