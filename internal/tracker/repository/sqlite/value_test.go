package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	repo "pacekeeper/internal/tracker/repository"
	"pacekeeper/internal/tracker/repository/sqlite"
	"pacekeeper/pkg/log"
)

func newRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "pace.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop())
}

func TestGetValue_MissingKey(t *testing.T) {
	r := newRepo(t)
	got, err := r.GetValue(context.Background(), "nope")
	if err != nil || got != "" {
		t.Errorf("GetValue(missing) = %q, %v; want empty, nil", got, err)
	}
}

func TestSetValues_Upsert(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	if err := r.SetValues(ctx, repo.SetValuesOptions{Values: map[string]string{
		repo.KeyGoals:         `[]`,
		repo.KeyCurrentGoalID: "goal_default",
	}}); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	if err := r.SetValues(ctx, repo.SetValuesOptions{Values: map[string]string{
		repo.KeyGoals: `[{"id":"a"}]`,
	}}); err != nil {
		t.Fatalf("SetValues overwrite: %v", err)
	}

	got, err := r.GetValue(ctx, repo.KeyGoals)
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if got != `[{"id":"a"}]` {
		t.Errorf("GetValue = %q", got)
	}
	if id, _ := r.GetValue(ctx, repo.KeyCurrentGoalID); id != "goal_default" {
		t.Errorf("untouched key changed: %q", id)
	}
}

func TestListKeys_PrefixIsLiteral(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	if err := r.SetValues(ctx, repo.SetValuesOptions{Values: map[string]string{
		"writerDashboard_goals": "[]",
		"writerDashboardXgoals": "[]",
		"other":                 "1",
	}}); err != nil {
		t.Fatalf("SetValues: %v", err)
	}

	got, err := r.ListKeys(ctx, repo.ListKeysOptions{Prefix: repo.KeyPrefix})
	if err != nil {
		t.Fatalf("ListKeys: %v", err)
	}
	if diff := cmp.Diff([]string{"writerDashboard_goals"}, got); diff != "" {
		t.Errorf("ListKeys (-want +got):\n%s", diff)
	}

	all, _ := r.ListKeys(ctx, repo.ListKeysOptions{})
	if len(all) != 3 {
		t.Errorf("ListKeys() = %v, want 3 keys", all)
	}
}
