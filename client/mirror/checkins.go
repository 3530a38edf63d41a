package mirror

import (
	"context"
	"slices"

	"github.com/strideapp/stride/client"
)

var (
	checkInMoods    = []string{"great", "good", "okay", "bad", "terrible"}
	checkInEnergies = []string{"high", "medium", "low"}
)

// sanitizeCheckInInput normalizes the three list fields (a nil list
// becomes empty, see client.AsList for string coercion) and escapes all
// free text.
func sanitizeCheckInInput(in *client.CheckInInput) {
	in.Accomplishments = escapeList(client.AsList(in.Accomplishments))
	in.Challenges = escapeList(client.AsList(in.Challenges))
	in.Goals = escapeList(client.AsList(in.Goals))
	in.Notes = escape(in.Notes)
}

func sanitizeCheckInPatch(patch *client.CheckInPatch) {
	if patch.Accomplishments != nil {
		escaped := escapeList(client.AsList(*patch.Accomplishments))
		patch.Accomplishments = &escaped
	}
	if patch.Challenges != nil {
		escaped := escapeList(client.AsList(*patch.Challenges))
		patch.Challenges = &escaped
	}
	if patch.Goals != nil {
		escaped := escapeList(client.AsList(*patch.Goals))
		patch.Goals = &escaped
	}
	if patch.Notes != nil {
		escaped := escape(*patch.Notes)
		patch.Notes = &escaped
	}
}

func unescapeCheckIn(ci *client.CheckIn) {
	ci.Accomplishments = unescapeList(ci.Accomplishments)
	ci.Challenges = unescapeList(ci.Challenges)
	ci.Goals = unescapeList(ci.Goals)
	ci.Notes = unescape(ci.Notes)
}

func checkInID(ci *client.CheckIn) string { return ci.ID }

func (m *Mirror) CheckIns(ctx context.Context, s *client.Session) ([]client.CheckIn, error) {
	return listKind(m, s, KindCheckIns,
		func() ([]client.CheckIn, error) { return m.remote.ListCheckIns(ctx, s) },
		unescapeCheckIn)
}

func (m *Mirror) CheckIn(ctx context.Context, s *client.Session, id string) (*client.CheckIn, error) {
	return getKind(m, s, KindCheckIns, id,
		func() ([]client.CheckIn, error) { return m.CheckIns(ctx, s) },
		checkInID, unescapeCheckIn)
}

func (m *Mirror) CreateCheckIn(ctx context.Context, s *client.Session, in client.CheckInInput) (*client.CheckIn, error) {
	sanitizeCheckInInput(&in)

	fields := map[string]string{}
	if in.Date == nil {
		fields["date"] = "is required"
	}
	if !slices.Contains(checkInMoods, in.Mood) {
		fields["mood"] = "must be one of: great, good, okay, bad, terrible"
	}
	if !slices.Contains(checkInEnergies, in.Energy) {
		fields["energy"] = "must be one of: high, medium, low"
	}
	if len(fields) > 0 {
		return nil, &client.ValidationError{Fields: fields}
	}

	return createKind(m, s, KindCheckIns, "create check-in",
		func() (*client.CheckIn, error) { return m.remote.CreateCheckIn(ctx, s, in) },
		unescapeCheckIn)
}

func (m *Mirror) UpdateCheckIn(ctx context.Context, s *client.Session, patch client.CheckInPatch) (*client.CheckIn, error) {
	sanitizeCheckInPatch(&patch)

	fields := map[string]string{}
	if patch.Mood != nil && !slices.Contains(checkInMoods, *patch.Mood) {
		fields["mood"] = "must be one of: great, good, okay, bad, terrible"
	}
	if patch.Energy != nil && !slices.Contains(checkInEnergies, *patch.Energy) {
		fields["energy"] = "must be one of: high, medium, low"
	}
	if len(fields) > 0 {
		return nil, &client.ValidationError{Fields: fields}
	}

	return updateKind(m, s, KindCheckIns, "update check-in", patch.ID,
		func() (*client.CheckIn, error) { return m.remote.UpdateCheckIn(ctx, s, patch) },
		checkInID, unescapeCheckIn)
}

func (m *Mirror) DeleteCheckIn(ctx context.Context, s *client.Session, id string) error {
	return deleteKind[client.CheckIn](m, s, KindCheckIns, "delete check-in", id,
		func() error { return m.remote.DeleteCheckIn(ctx, s, id) },
		checkInID)
}
