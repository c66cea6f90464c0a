package sqlite

import (
	"strings"

	repo "pacekeeper/internal/tracker/repository"
)

// buildListKeysQuery builds the SELECT for ListKeys. Prefix matching uses substr
// so '_' and '%' in keys stay literal.
func (r *implRepository) buildListKeysQuery(opt repo.ListKeysOptions) (string, []any) {
	var parts []string
	var args []any

	parts = append(parts, "SELECT key FROM kv_values")
	if opt.Prefix != "" {
		parts = append(parts, "WHERE substr(key, 1, ?) = ?")
		args = append(args, len([]rune(opt.Prefix)), opt.Prefix)
	}
	parts = append(parts, "ORDER BY key")

	return strings.Join(parts, " "), args
}
