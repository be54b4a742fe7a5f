package candidate

// Status is the candidate lifecycle state as stored by the HR bot API.
type Status string

const (
	StatusNew               Status = "new"
	StatusInterview         Status = "interview"
	StatusAdaptation        Status = "adaptation"
	StatusInterviewFailed   Status = "interview_failed"
	StatusAdaptationSuccess Status = "adaptation_success"
	StatusAdaptationFailed  Status = "adaptation_failed"

	// StatusUnknown stands in for any value the server sends outside the enum.
	StatusUnknown Status = "unknown"
)

// ParseStatus maps raw server values onto the enum; anything else is unknown.
func ParseStatus(raw string) Status {
	s := Status(raw)
	if s.Known() {
		return s
	}
	return StatusUnknown
}

func (s Status) Known() bool {
	switch s {
	case StatusNew, StatusInterview, StatusAdaptation,
		StatusInterviewFailed, StatusAdaptationSuccess, StatusAdaptationFailed:
		return true
	}
	return false
}

// ActionID identifies a button the operator can press for a candidate.
type ActionID string

const (
	ActionInviteInterview  ActionID = "invite_interview"
	ActionInviteAdaptation ActionID = "invite_adaptation"
	ActionFailInterview    ActionID = "fail_interview"
	ActionPassAdaptation   ActionID = "pass_adaptation"
	ActionFailAdaptation   ActionID = "fail_adaptation"
	ActionDelete           ActionID = "delete"
)

type Kind string

const (
	KindTransition Kind = "transition"
	KindDelete     Kind = "delete"
)

// Action binds a legal move to its label key and, for transitions, the next status.
type Action struct {
	ID     ActionID `json:"id"`
	Label  string   `json:"label"`
	Kind   Kind     `json:"kind"`
	Target Status   `json:"target,omitempty"`
}

var (
	inviteInterview  = Action{ID: ActionInviteInterview, Label: "inviteInterviewBtn", Kind: KindTransition, Target: StatusInterview}
	inviteAdaptation = Action{ID: ActionInviteAdaptation, Label: "inviteAdaptationBtn", Kind: KindTransition, Target: StatusAdaptation}
	failInterview    = Action{ID: ActionFailInterview, Label: "interviewFailedBtn", Kind: KindTransition, Target: StatusInterviewFailed}
	passAdaptation   = Action{ID: ActionPassAdaptation, Label: "adaptationSuccessBtn", Kind: KindTransition, Target: StatusAdaptationSuccess}
	failAdaptation   = Action{ID: ActionFailAdaptation, Label: "adaptationFailedBtn", Kind: KindTransition, Target: StatusAdaptationFailed}
	deleteCandidate  = Action{ID: ActionDelete, Label: "delete", Kind: KindDelete}
)

// Two sequential gates (interview, adaptation), each with pass/fail.
// Failures stay on record and can be deleted; adaptation_success is display only.
var transitions = map[Status][]Action{
	StatusNew:              {inviteInterview},
	StatusInterview:        {inviteAdaptation, failInterview},
	StatusAdaptation:       {passAdaptation, failAdaptation},
	StatusInterviewFailed:  {deleteCandidate},
	StatusAdaptationFailed: {deleteCandidate},
}

var badges = map[Status]string{
	StatusInterviewFailed:   "interviewFailedLabel",
	StatusAdaptationSuccess: "adaptationPassedLabel",
	StatusAdaptationFailed:  "adaptationFailedLabel",
	StatusUnknown:           "unknownStatus",
}

// Actions returns the legal actions for status in display order. Unknown
// statuses get none.
func Actions(s Status) []Action {
	acts := transitions[ParseStatus(string(s))]
	out := make([]Action, len(acts))
	copy(out, acts)
	return out
}

// Allowed looks up id among the actions legal for s.
func Allowed(s Status, id ActionID) (Action, bool) {
	for _, a := range transitions[ParseStatus(string(s))] {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Badge returns the label key shown for terminal and unknown statuses, or ""
// when the status is represented by its buttons alone.
func Badge(s Status) string {
	return badges[ParseStatus(string(s))]
}

// IsTarget reports whether some row of the table transitions into s.
func IsTarget(s Status) bool {
	for _, acts := range transitions {
		for _, a := range acts {
			if a.Kind == KindTransition && a.Target == s {
				return true
			}
		}
	}
	return false
}
