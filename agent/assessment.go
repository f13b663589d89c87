package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/studymesh/studymesh/core"
)

// defaultQuestionCount is used when the agent is constructed without an
// explicit count.
const defaultQuestionCount = 3

// QuizGenerator produces practice questions for a topic. Real
// implementations call a question-generation service; the template generator
// derives questions from resource titles.
type QuizGenerator interface {
	Generate(ctx context.Context, topic string, resources []core.Resource, n int) ([]core.Question, error)
}

// TemplateQuizGenerator is the deterministic stub generator. Each question
// asks about a concept lifted from a resource title, with the concept hidden
// among fixed distractors.
type TemplateQuizGenerator struct{}

// NewTemplateQuizGenerator creates the stub generator.
func NewTemplateQuizGenerator() *TemplateQuizGenerator { return &TemplateQuizGenerator{} }

// Generate implements QuizGenerator.
func (TemplateQuizGenerator) Generate(_ context.Context, topic string, resources []core.Resource, n int) ([]core.Question, error) {
	questions := make([]core.Question, 0, n)
	for i := 0; i < n; i++ {
		concept := topic
		if len(resources) > 0 {
			concept = conceptFromTitle(resources[i%len(resources)].Title, topic)
		}
		questions = append(questions, core.Question{
			Question: fmt.Sprintf("Which statement best describes %s?", concept),
			Options: []string{
				"A data storage format",
				"A network protocol",
				fmt.Sprintf("A core concept of %s", topic),
				"A hardware component",
			},
			CorrectIndex: 2,
		})
	}
	return questions, nil
}

// conceptFromTitle strips the catalog phrasing off a resource title to get at
// the concept it teaches.
func conceptFromTitle(title, fallback string) string {
	c := title
	for _, p := range []string{"Complete ", "Learn "} {
		c = strings.TrimPrefix(c, p)
	}
	for _, s := range []string{" Tutorial", " Full Course", " - Complete Guide"} {
		c = strings.TrimSuffix(c, s)
	}
	if c == "" {
		return fallback
	}
	return c
}

// AssessmentAgent generates a practice quiz from the learning resources. It
// requires the learning contribution.
type AssessmentAgent struct {
	generator QuizGenerator
	questions int
}

// NewAssessmentAgent creates the agent around a quiz generator. A
// non-positive questionCount falls back to the default.
func NewAssessmentAgent(generator QuizGenerator, questionCount int) *AssessmentAgent {
	if questionCount <= 0 {
		questionCount = defaultQuestionCount
	}
	return &AssessmentAgent{generator: generator, questions: questionCount}
}

// Name implements core.Agent.
func (a *AssessmentAgent) Name() core.AgentName { return core.AgentAssessment }

// Invoke implements core.Agent.
func (a *AssessmentAgent) Invoke(ctx context.Context, snap *core.Snapshot) (core.Contribution, error) {
	contrib, ok := snap.Contribution(core.AgentLearning)
	if !ok {
		return nil, core.NewInvalidInput(a.Name(), "learning resources missing from context")
	}
	resources := contrib.(core.LearningResources).Resources

	questions, err := a.generator.Generate(ctx, snap.Request().Topic(), resources, a.questions)
	if err != nil {
		return nil, core.NewUnavailable(a.Name(), err)
	}

	return core.AssessmentQuestions{Questions: questions}, nil
}
