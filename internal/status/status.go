package status

import (
	"fmt"
	"math"

	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// Level is the coarse health of a goal.
type Level string

const (
	OnTrack Level = "on-track"
	Warning Level = "warning"
	Behind  Level = "behind"
)

var labels = map[Level]string{
	OnTrack: "En ruta",
	Warning: "Un pequeño empujón",
	Behind:  "Vamos a rescatar esta meta",
}

const (
	paceEtaText      = "A tu ritmo"
	completedEtaText = "Meta cumplida 🎉"
	deadlineEtaText  = "Terminas aprox el %s"
)

// Thresholds are the tunable knobs of the classifier.
type Thresholds struct {
	// OnTrackSlack and WarningSlack are percentage points below the expected progress.
	OnTrackSlack float64
	WarningSlack float64
	// WarningGapFactor and BehindGapFactor multiply the expected gap between sessions.
	WarningGapFactor float64
	BehindGapFactor  float64
}

// DefaultThresholds are 5 and 15 points for deadlines, 1x and 2x the gap for pace goals.
var DefaultThresholds = Thresholds{
	OnTrackSlack:     5,
	WarningSlack:     15,
	WarningGapFactor: 1,
	BehindGapFactor:  2,
}

// Result is what the dashboard renders for a goal's health.
type Result struct {
	Status     Level  `json:"status"`
	Label      string `json:"label"`
	ColorClass string `json:"colorClass"`
	EtaText    string `json:"etaText"`
}

// Classifier turns progress into a status.
type Classifier struct {
	th Thresholds
}

// New returns a Classifier. Zero fields in th fall back to DefaultThresholds.
func New(th Thresholds) Classifier {
	if th.OnTrackSlack == 0 {
		th.OnTrackSlack = DefaultThresholds.OnTrackSlack
	}
	if th.WarningSlack == 0 {
		th.WarningSlack = DefaultThresholds.WarningSlack
	}
	if th.WarningGapFactor == 0 {
		th.WarningGapFactor = DefaultThresholds.WarningGapFactor
	}
	if th.BehindGapFactor == 0 {
		th.BehindGapFactor = DefaultThresholds.BehindGapFactor
	}
	return Classifier{th: th}
}

// Classify uses the deadline when the goal has one, otherwise the time since the newest session.
// sessions must be newest first.
func (c Classifier) Classify(g model.Goal, progress metrics.Progress, today datemath.Date, sessions []model.Session) Result {
	var res Result
	if g.HasDeadline() {
		res = c.byDeadline(g, progress, today)
	} else {
		res = c.byPace(g, today, sessions)
	}
	res.Label = labels[res.Status]
	res.ColorClass = "status-" + string(res.Status)
	return res
}

// Classify runs the default classifier.
func Classify(g model.Goal, progress metrics.Progress, today datemath.Date, sessions []model.Session) Result {
	return New(DefaultThresholds).Classify(g, progress, today, sessions)
}

func (c Classifier) byDeadline(g model.Goal, progress metrics.Progress, today datemath.Date) Result {
	start := g.StartDate
	if start.IsZero() {
		start = today
	}
	totalDays := max(1, datemath.DaysBetween(start, g.DeadlineDate))
	elapsed := min(totalDays, max(0, datemath.DaysBetween(start, today)))
	expected := float64(elapsed) / float64(totalDays) * 100
	actual := float64(progress.Percent)

	res := Result{Status: Behind}
	switch {
	case actual >= expected-c.th.OnTrackSlack:
		res.Status = OnTrack
	case actual >= expected-c.th.WarningSlack:
		res.Status = Warning
	}

	if progress.Percent >= 100 {
		res.EtaText = completedEtaText
	} else {
		res.EtaText = fmt.Sprintf(deadlineEtaText, datemath.FormatShort(g.DeadlineDate))
	}
	return res
}

func (c Classifier) byPace(g model.Goal, today datemath.Date, sessions []model.Session) Result {
	res := Result{Status: OnTrack, EtaText: paceEtaText}
	if len(sessions) == 0 {
		res.Status = Warning
		return res
	}

	planned := max(1, len(g.Plan.DaysPerWeek))
	gap := float64(max(1, int(math.Floor(7/float64(planned)))))
	since := float64(datemath.DaysBetween(sessions[0].Date, today))

	switch {
	case since > gap*c.th.BehindGapFactor:
		res.Status = Behind
	case since > gap*c.th.WarningGapFactor:
		res.Status = Warning
	}
	return res
}
