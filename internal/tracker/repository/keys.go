package repository

// Storage keys. The names match the browser storage the data was first kept in,
// so an exported dump can be imported as is.
const (
	KeyGoals         = "writerDashboard_goals"
	KeyCurrentGoalID = "writerDashboard_current_goal_id"
	KeySessions      = "writerDashboard_sessions_by_goal"

	KeyLegacyGoal            = "writerDashboard_goal"
	KeyLegacySessions        = "writerDashboard_sessions"
	KeyLegacyProjectGoal     = "writerDashboard_project"
	KeyLegacyProjectSessions = "writerDashboard_sessions_proj_001"

	KeyPrefix = "writerDashboard_"
)
