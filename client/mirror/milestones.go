package mirror

import (
	"context"
	"strings"

	"github.com/strideapp/stride/client"
)

func sanitizeMilestoneInput(in *client.MilestoneInput) {
	in.Title = escape(in.Title)
	in.Description = escape(in.Description)
}

func sanitizeMilestonePatch(patch *client.MilestonePatch) {
	if patch.Title != nil {
		escaped := escape(*patch.Title)
		patch.Title = &escaped
	}
	if patch.Description != nil {
		escaped := escape(*patch.Description)
		patch.Description = &escaped
	}
}

func unescapeMilestone(ms *client.Milestone) {
	ms.Title = unescape(ms.Title)
	ms.Description = unescape(ms.Description)
}

func milestoneID(ms *client.Milestone) string { return ms.ID }

// Milestones lists the session's milestones, optionally scoped to a
// goal. Both scopes share one cache entry; the filtered fetch simply
// overwrites it with the narrower result on success.
func (m *Mirror) Milestones(ctx context.Context, s *client.Session, goalID string) ([]client.Milestone, error) {
	return listKind(m, s, KindMilestones,
		func() ([]client.Milestone, error) { return m.remote.ListMilestones(ctx, s, goalID) },
		unescapeMilestone)
}

func (m *Mirror) Milestone(ctx context.Context, s *client.Session, id string) (*client.Milestone, error) {
	return getKind(m, s, KindMilestones, id,
		func() ([]client.Milestone, error) { return m.Milestones(ctx, s, "") },
		milestoneID, unescapeMilestone)
}

func (m *Mirror) CreateMilestone(ctx context.Context, s *client.Session, in client.MilestoneInput) (*client.Milestone, error) {
	sanitizeMilestoneInput(&in)

	fields := map[string]string{}
	if strings.TrimSpace(in.GoalID) == "" {
		fields["goalId"] = "is required"
	}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "is required"
	}
	if in.Date == nil {
		fields["date"] = "is required"
	}
	if len(fields) > 0 {
		return nil, &client.ValidationError{Fields: fields}
	}

	return createKind(m, s, KindMilestones, "create milestone",
		func() (*client.Milestone, error) { return m.remote.CreateMilestone(ctx, s, in) },
		unescapeMilestone)
}

func (m *Mirror) UpdateMilestone(ctx context.Context, s *client.Session, patch client.MilestonePatch) (*client.Milestone, error) {
	sanitizeMilestonePatch(&patch)

	return updateKind(m, s, KindMilestones, "update milestone", patch.ID,
		func() (*client.Milestone, error) { return m.remote.UpdateMilestone(ctx, s, patch) },
		milestoneID, unescapeMilestone)
}

func (m *Mirror) DeleteMilestone(ctx context.Context, s *client.Session, id string) error {
	return deleteKind[client.Milestone](m, s, KindMilestones, "delete milestone", id,
		func() error { return m.remote.DeleteMilestone(ctx, s, id) },
		milestoneID)
}
