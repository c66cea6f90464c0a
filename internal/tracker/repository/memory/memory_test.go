package memory_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	repo "pacekeeper/internal/tracker/repository"
	"pacekeeper/internal/tracker/repository/memory"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := memory.NewWithValues(map[string]string{"b": "2"})

	if err := r.SetValues(ctx, repo.SetValuesOptions{Values: map[string]string{"a": "1"}}); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	if v, _ := r.GetValue(ctx, "a"); v != "1" {
		t.Errorf("GetValue(a) = %q", v)
	}
	if v, _ := r.GetValue(ctx, "missing"); v != "" {
		t.Errorf("GetValue(missing) = %q", v)
	}
	keys, _ := r.ListKeys(ctx, repo.ListKeysOptions{})
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("ListKeys (-want +got):\n%s", diff)
	}
}
