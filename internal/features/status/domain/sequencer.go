package domain

// Stages is the package lifecycle in order.
var Stages = []PackageStatus{
	PackagePending,
	PackagePreAnnounced,
	PackageReceivedInChina,
	PackageMeasured,
	PackageCategorized,
	PackageShelvedChina,
	PackageBatched,
	PackageDeparted,
	PackageInTransit,
	PackageAtCustoms,
	PackageCustomsCleared,
	PackageArrivedMN,
	PackageShelvedMN,
	PackageReadyForPickup,
	PackageDelivered,
}

// DefaultMilestones is the subset of Stages shown on tracking timelines.
var DefaultMilestones = []PackageStatus{
	PackagePending,
	PackageReceivedInChina,
	PackageBatched,
	PackageDeparted,
	PackageArrivedMN,
	PackageDelivered,
}

var stageIndex = func() map[PackageStatus]int {
	m := make(map[PackageStatus]int, len(Stages))
	for i, s := range Stages {
		m[s] = i
	}
	return m
}()

// StageIndex returns the position of s in Stages, or -1 if s is not a stage.
func StageIndex(s PackageStatus) int {
	if i, ok := stageIndex[s]; ok {
		return i
	}
	return -1
}

// MilestoneState is how a milestone is drawn on a timeline.
type MilestoneState string

const (
	MilestoneCompleted MilestoneState = "completed"
	MilestoneCurrent   MilestoneState = "current"
	MilestoneUpcoming  MilestoneState = "upcoming"
)

// Milestone is one rendered point of a timeline.
type Milestone struct {
	Status PackageStatus  `json:"status"`
	Badge  Badge          `json:"badge"`
	State  MilestoneState `json:"state"`
}

// Timeline projects current onto milestones. A milestone at or before
// current is completed; the first milestone after it is current; the rest
// are upcoming. If current is not a stage, nothing is completed or current.
func Timeline(current PackageStatus, milestones []PackageStatus) []Milestone {
	ci := StageIndex(current)
	out := make([]Milestone, len(milestones))
	currentAssigned := false

	for i, m := range milestones {
		mi := StageIndex(m)
		state := MilestoneUpcoming

		switch {
		case ci < 0 || mi < 0:
		case mi <= ci:
			state = MilestoneCompleted
		case !currentAssigned:
			state = MilestoneCurrent
			currentAssigned = true
		}

		out[i] = Milestone{Status: m, Badge: m.Badge(), State: state}
	}

	return out
}

// Progress summarises a timeline for list rows.
type Progress struct {
	Badge     Badge       `json:"badge"`
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
	Timeline  []Milestone `json:"timeline"`
}

// Track builds the badge and default timeline for a package status.
func Track(current PackageStatus) Progress {
	tl := Timeline(current, DefaultMilestones)
	done := 0
	for _, m := range tl {
		if m.State == MilestoneCompleted {
			done++
		}
	}
	return Progress{Badge: current.Badge(), Completed: done, Total: len(tl), Timeline: tl}
}
