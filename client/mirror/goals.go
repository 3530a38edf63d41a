package mirror

import (
	"context"
	"strings"

	"github.com/strideapp/stride/client"
)

func sanitizeGoalInput(in *client.GoalInput) {
	in.Title = escape(in.Title)
	in.Description = escape(in.Description)
	in.TimeFrame = escape(in.TimeFrame)
	in.Progress = clampProgress(in.Progress)
}

func sanitizeGoalPatch(patch *client.GoalPatch) {
	if patch.Title != nil {
		escaped := escape(*patch.Title)
		patch.Title = &escaped
	}
	if patch.Description != nil {
		escaped := escape(*patch.Description)
		patch.Description = &escaped
	}
	if patch.TimeFrame != nil {
		escaped := escape(*patch.TimeFrame)
		patch.TimeFrame = &escaped
	}
	if patch.Progress != nil {
		clamped := clampProgress(*patch.Progress)
		patch.Progress = &clamped
	}
}

func unescapeGoal(g *client.Goal) {
	g.Title = unescape(g.Title)
	g.Description = unescape(g.Description)
	g.TimeFrame = unescape(g.TimeFrame)
}

func goalID(g *client.Goal) string { return g.ID }

// clampProgress bounds progress to the conceptual 0-100 range before it
// ever leaves the client.
func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func (m *Mirror) Goals(ctx context.Context, s *client.Session) ([]client.Goal, error) {
	return listKind(m, s, KindGoals,
		func() ([]client.Goal, error) { return m.remote.ListGoals(ctx, s) },
		unescapeGoal)
}

func (m *Mirror) Goal(ctx context.Context, s *client.Session, id string) (*client.Goal, error) {
	return getKind(m, s, KindGoals, id,
		func() ([]client.Goal, error) { return m.Goals(ctx, s) },
		goalID, unescapeGoal)
}

func (m *Mirror) CreateGoal(ctx context.Context, s *client.Session, in client.GoalInput) (*client.Goal, error) {
	sanitizeGoalInput(&in)
	if strings.TrimSpace(in.Title) == "" {
		return nil, &client.ValidationError{Fields: map[string]string{"title": "is required"}}
	}

	return createKind(m, s, KindGoals, "create goal",
		func() (*client.Goal, error) { return m.remote.CreateGoal(ctx, s, in) },
		unescapeGoal)
}

func (m *Mirror) UpdateGoal(ctx context.Context, s *client.Session, patch client.GoalPatch) (*client.Goal, error) {
	sanitizeGoalPatch(&patch)

	return updateKind(m, s, KindGoals, "update goal", patch.ID,
		func() (*client.Goal, error) { return m.remote.UpdateGoal(ctx, s, patch) },
		goalID, unescapeGoal)
}

func (m *Mirror) DeleteGoal(ctx context.Context, s *client.Session, id string) error {
	return deleteKind[client.Goal](m, s, KindGoals, "delete goal", id,
		func() error { return m.remote.DeleteGoal(ctx, s, id) },
		goalID)
}
