package mirror

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/strideapp/stride/client"
)

// fakeRemote is an in-memory Remote. Setting fail makes every call
// return that error, standing in for an unreachable server.
type fakeRemote struct {
	fail error

	goals    []client.Goal
	todos    []client.Todo
	checkins []client.CheckIn
	nextID   int
}

func (f *fakeRemote) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeRemote) ListGoals(ctx context.Context, s *client.Session) ([]client.Goal, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]client.Goal{}, f.goals...), nil
}

func (f *fakeRemote) CreateGoal(ctx context.Context, s *client.Session, in client.GoalInput) (*client.Goal, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	g := client.Goal{
		ID:          f.id(),
		UserID:      s.UserID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		TimeFrame:   in.TimeFrame,
		Status:      in.Status,
		Progress:    in.Progress,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if g.Status == "" {
		g.Status = "not-started"
	}
	f.goals = append(f.goals, g)
	return &g, nil
}

func (f *fakeRemote) UpdateGoal(ctx context.Context, s *client.Session, patch client.GoalPatch) (*client.Goal, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.goals {
		if f.goals[i].ID == patch.ID {
			if patch.Title != nil {
				f.goals[i].Title = *patch.Title
			}
			if patch.Status != nil {
				f.goals[i].Status = *patch.Status
			}
			if patch.Progress != nil {
				f.goals[i].Progress = *patch.Progress
			}
			f.goals[i].UpdatedAt = time.Now()
			g := f.goals[i]
			return &g, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeRemote) DeleteGoal(ctx context.Context, s *client.Session, id string) error {
	if f.fail != nil {
		return f.fail
	}
	for i := range f.goals {
		if f.goals[i].ID == id {
			f.goals = append(f.goals[:i], f.goals[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

func (f *fakeRemote) ListMilestones(ctx context.Context, s *client.Session, goalID string) ([]client.Milestone, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return []client.Milestone{}, nil
}

func (f *fakeRemote) CreateMilestone(ctx context.Context, s *client.Session, in client.MilestoneInput) (*client.Milestone, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &client.Milestone{ID: f.id(), GoalID: in.GoalID, Title: in.Title}, nil
}

func (f *fakeRemote) UpdateMilestone(ctx context.Context, s *client.Session, patch client.MilestonePatch) (*client.Milestone, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &client.Milestone{ID: patch.ID}, nil
}

func (f *fakeRemote) DeleteMilestone(ctx context.Context, s *client.Session, id string) error {
	return f.fail
}

func (f *fakeRemote) ListNotes(ctx context.Context, s *client.Session) ([]client.Note, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return []client.Note{}, nil
}

func (f *fakeRemote) CreateNote(ctx context.Context, s *client.Session, in client.NoteInput) (*client.Note, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &client.Note{ID: f.id(), Title: in.Title, Content: in.Content}, nil
}

func (f *fakeRemote) UpdateNote(ctx context.Context, s *client.Session, patch client.NotePatch) (*client.Note, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &client.Note{ID: patch.ID}, nil
}

func (f *fakeRemote) DeleteNote(ctx context.Context, s *client.Session, id string) error {
	return f.fail
}

func (f *fakeRemote) ListTodos(ctx context.Context, s *client.Session, completed *bool) ([]client.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := []client.Todo{}
	for _, t := range f.todos {
		if completed != nil && t.Completed != *completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRemote) CreateTodo(ctx context.Context, s *client.Session, in client.TodoInput) (*client.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	t := client.Todo{
		ID:        f.id(),
		UserID:    s.UserID,
		Title:     in.Title,
		Priority:  in.Priority,
		Completed: in.Completed,
		UpdatedAt: time.Now(),
	}
	f.todos = append(f.todos, t)
	return &t, nil
}

func (f *fakeRemote) UpdateTodo(ctx context.Context, s *client.Session, patch client.TodoPatch) (*client.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.todos {
		if f.todos[i].ID == patch.ID {
			if patch.Completed != nil {
				f.todos[i].Completed = *patch.Completed
			}
			f.todos[i].UpdatedAt = time.Now()
			t := f.todos[i]
			return &t, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeRemote) DeleteTodo(ctx context.Context, s *client.Session, id string) error {
	if f.fail != nil {
		return f.fail
	}
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

func (f *fakeRemote) ListCheckIns(ctx context.Context, s *client.Session) ([]client.CheckIn, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]client.CheckIn{}, f.checkins...), nil
}

func (f *fakeRemote) CreateCheckIn(ctx context.Context, s *client.Session, in client.CheckInInput) (*client.CheckIn, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	ci := client.CheckIn{
		ID:              f.id(),
		UserID:          s.UserID,
		Mood:            in.Mood,
		Energy:          in.Energy,
		Accomplishments: in.Accomplishments,
		Challenges:      in.Challenges,
		Goals:           in.Goals,
		Notes:           in.Notes,
	}
	if in.Date != nil {
		ci.Date = *in.Date
	}
	f.checkins = append(f.checkins, ci)
	return &ci, nil
}

func (f *fakeRemote) UpdateCheckIn(ctx context.Context, s *client.Session, patch client.CheckInPatch) (*client.CheckIn, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &client.CheckIn{ID: patch.ID}, nil
}

func (f *fakeRemote) DeleteCheckIn(ctx context.Context, s *client.Session, id string) error {
	return f.fail
}

func newTestMirror(t *testing.T) (*Mirror, *fakeRemote) {
	t.Helper()

	store, _ := tempStore(t)
	remote := &fakeRemote{}
	return New(remote, store), remote
}

var testSession = &client.Session{UserID: "u1", Email: "u@example.com"}

func TestCreateGoalEscapesAndUnescapes(t *testing.T) {
	m, remote := newTestMirror(t)
	ctx := context.Background()

	title := `<b>"Bold"</b> & brave`
	goal, err := m.CreateGoal(ctx, testSession, client.GoalInput{Title: title, Category: "health"})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	// The caller gets their text back verbatim.
	if goal.Title != title {
		t.Errorf("returned title = %q", goal.Title)
	}
	// The remote only ever saw the escaped form.
	if remote.goals[0].Title == title {
		t.Error("raw markup reached the remote")
	}
	if remote.goals[0].Title != "&lt;b&gt;&#34;Bold&#34;&lt;/b&gt; &amp; brave" {
		t.Errorf("stored title = %q", remote.goals[0].Title)
	}

	// Listing round-trips back to the original.
	goals, err := m.Goals(ctx, testSession)
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != title {
		t.Errorf("listed title = %q", goals[0].Title)
	}
}

func TestGoalsFallBackToCacheOnRemoteFailure(t *testing.T) {
	m, remote := newTestMirror(t)
	ctx := context.Background()

	if _, err := m.CreateGoal(ctx, testSession, client.GoalInput{Title: "cached", Category: "career"}); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := m.Goals(ctx, testSession); err != nil {
		t.Fatalf("warm list: %v", err)
	}

	remote.fail = errors.New("connection refused")

	goals, err := m.Goals(ctx, testSession)
	if err != nil {
		t.Fatalf("Goals with dead remote: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "cached" {
		t.Errorf("cache fallback returned %v", goals)
	}

	got, err := m.Goal(ctx, testSession, goals[0].ID)
	if err != nil {
		t.Fatalf("Goal with dead remote: %v", err)
	}
	if got.Title != "cached" {
		t.Errorf("got %q", got.Title)
	}
}

func TestListWithoutSessionIsEmpty(t *testing.T) {
	m, remote := newTestMirror(t)
	remote.fail = errors.New("must not be called")

	goals, err := m.Goals(context.Background(), nil)
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("got %v", goals)
	}
}

func TestCreateFailureRaisesStorageError(t *testing.T) {
	m, remote := newTestMirror(t)
	ctx := context.Background()

	if _, err := m.CreateGoal(ctx, testSession, client.GoalInput{Title: "kept", Category: "health"}); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	remote.fail = errors.New("boom")
	_, err := m.CreateGoal(ctx, testSession, client.GoalInput{Title: "lost", Category: "health"})
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *StorageError", err)
	}

	// The failed write never reached the cache.
	remote.fail = errors.New("still down")
	goals, err := m.Goals(ctx, testSession)
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "kept" {
		t.Errorf("cache = %v", goals)
	}
}

func TestWritePassesThroughTypedErrors(t *testing.T) {
	m, _ := newTestMirror(t)
	ctx := context.Background()

	// Local validation, remote untouched.
	_, err := m.CreateGoal(ctx, testSession, client.GoalInput{Title: "", Category: "health"})
	var verr *client.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("empty title: err = %v, want *client.ValidationError", err)
	}

	// Remote not-found stays ErrNotFound, not StorageError.
	title := "x"
	_, err = m.UpdateGoal(ctx, testSession, client.GoalPatch{ID: "ghost", Title: &title})
	if !errors.Is(err, client.ErrNotFound) {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}

	// No session on a write is an error, unlike reads.
	_, err = m.CreateGoal(ctx, nil, client.GoalInput{Title: "t", Category: "health"})
	if !errors.Is(err, client.ErrNoSession) {
		t.Errorf("nil session: err = %v, want ErrNoSession", err)
	}
}

func TestProgressClamped(t *testing.T) {
	m, remote := newTestMirror(t)
	ctx := context.Background()

	goal, err := m.CreateGoal(ctx, testSession, client.GoalInput{
		Title: "over", Category: "health", Progress: 150,
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if goal.Progress != 100 {
		t.Errorf("progress = %d, want clamped to 100", goal.Progress)
	}

	under := -5
	updated, err := m.UpdateGoal(ctx, testSession, client.GoalPatch{ID: goal.ID, Progress: &under})
	if err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}
	if updated.Progress != 0 {
		t.Errorf("progress = %d, want clamped to 0", updated.Progress)
	}
	if remote.goals[0].Progress != 0 {
		t.Errorf("remote progress = %d", remote.goals[0].Progress)
	}
}

func TestToggleTodo(t *testing.T) {
	m, _ := newTestMirror(t)
	ctx := context.Background()

	todo, err := m.CreateTodo(ctx, testSession, client.TodoInput{Title: "flip", Priority: "medium"})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	toggled, err := m.ToggleTodo(ctx, testSession, todo.ID)
	if err != nil {
		t.Fatalf("ToggleTodo: %v", err)
	}
	if !toggled.Completed {
		t.Error("todo not completed after toggle")
	}

	_, err = m.ToggleTodo(ctx, testSession, "ghost")
	var verr *client.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("unknown id: err = %v, want *client.ValidationError", err)
	}
}

func TestUserSwitchDropsCachedEntries(t *testing.T) {
	m, remote := newTestMirror(t)
	ctx := context.Background()

	alice := &client.Session{UserID: "alice"}
	if _, err := m.CreateGoal(ctx, alice, client.GoalInput{Title: "hers", Category: "health"}); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	// Bob lists while the remote is down: he must not see Alice's
	// cache, only an empty result.
	remote.fail = errors.New("down")
	bob := &client.Session{UserID: "bob"}
	goals, err := m.Goals(ctx, bob)
	if err != nil {
		t.Fatalf("Goals as bob: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("bob sees %v", goals)
	}
}

func TestCheckInListsEscapeRoundTrip(t *testing.T) {
	m, remote := newTestMirror(t)
	ctx := context.Background()

	date := time.Now()
	ci, err := m.CreateCheckIn(ctx, testSession, client.CheckInInput{
		Date:            &date,
		Mood:            "good",
		Energy:          "high",
		Accomplishments: client.List{`shipped <feature>`},
	})
	if err != nil {
		t.Fatalf("CreateCheckIn: %v", err)
	}
	if ci.Accomplishments[0] != `shipped <feature>` {
		t.Errorf("returned accomplishment = %q", ci.Accomplishments[0])
	}
	if remote.checkins[0].Accomplishments[0] != "shipped &lt;feature&gt;" {
		t.Errorf("stored accomplishment = %q", remote.checkins[0].Accomplishments[0])
	}
	// Absent lists come back empty, not nil.
	if ci.Challenges == nil || ci.Goals == nil {
		t.Error("nil lists survived create")
	}
}

func TestCheckInValidation(t *testing.T) {
	m, _ := newTestMirror(t)

	_, err := m.CreateCheckIn(context.Background(), testSession, client.CheckInInput{Mood: "meh", Energy: "max"})
	var verr *client.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *client.ValidationError", err)
	}
	for _, f := range []string{"date", "mood", "energy"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("missing field %q in %v", f, verr.Fields)
		}
	}
}
