package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/studymesh/studymesh/core"
)

// ResourceIndex finds study materials for a topic. Implementations may call
// a search backend; the static stub synthesizes well-known catalog entries.
type ResourceIndex interface {
	Search(ctx context.Context, topic string, style core.LearningStyle) ([]core.Resource, error)
}

// StaticResourceIndex is the deterministic stub index. It emits one tutorial,
// one video and one book reference per topic, ordered by what the learning
// style favors: visual and auditory students see video material first,
// reading/writing students see written tutorials first.
type StaticResourceIndex struct{}

// NewStaticResourceIndex creates the stub index.
func NewStaticResourceIndex() *StaticResourceIndex { return &StaticResourceIndex{} }

// Search implements ResourceIndex.
func (StaticResourceIndex) Search(_ context.Context, topic string, style core.LearningStyle) ([]core.Resource, error) {
	slug := strings.ReplaceAll(strings.ToLower(topic), " ", "-")
	title := titleCase(topic)

	tutorial := core.Resource{
		Title:  fmt.Sprintf("Complete %s Tutorial", title),
		Source: "GeeksforGeeks",
		URL:    fmt.Sprintf("https://www.geeksforgeeks.org/%s-tutorial/", slug),
	}
	video := core.Resource{
		Title:  fmt.Sprintf("%s Full Course", title),
		Source: "YouTube",
		URL:    fmt.Sprintf("https://www.youtube.com/results?search_query=%s+full+course", slug),
	}
	book := core.Resource{
		Title:  fmt.Sprintf("Learn %s - Complete Guide", title),
		Source: "Google Books",
		URL:    fmt.Sprintf("https://books.google.com/books?q=%s", slug),
	}

	switch style {
	case core.StyleVisual, core.StyleAuditory:
		return []core.Resource{video, tutorial, book}, nil
	default:
		return []core.Resource{tutorial, video, book}, nil
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// LearningAgent looks up study resources for the request topic, ordered by
// the personalized learning style. It requires the personalization profile.
type LearningAgent struct {
	index ResourceIndex
}

// NewLearningAgent creates the agent around a resource index.
func NewLearningAgent(index ResourceIndex) *LearningAgent {
	return &LearningAgent{index: index}
}

// Name implements core.Agent.
func (a *LearningAgent) Name() core.AgentName { return core.AgentLearning }

// Invoke implements core.Agent.
func (a *LearningAgent) Invoke(ctx context.Context, snap *core.Snapshot) (core.Contribution, error) {
	contrib, ok := snap.Contribution(core.AgentPersonalization)
	if !ok {
		return nil, core.NewInvalidInput(a.Name(), "personalization profile missing from context")
	}
	profile := contrib.(core.PersonalizationProfile)

	resources, err := a.index.Search(ctx, snap.Request().Topic(), profile.LearningStyle)
	if err != nil {
		return nil, core.NewUnavailable(a.Name(), err)
	}

	return core.LearningResources{Resources: resources}, nil
}
