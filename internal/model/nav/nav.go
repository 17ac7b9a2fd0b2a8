package nav

// ScreenID identifies one screen of the mobile client. The back-navigation
// rules are defined over this closed set; anything else falls back to root.
type ScreenID string

const (
	ScreenChat       ScreenID = "chat"
	ScreenResources  ScreenID = "resources"
	ScreenBooking    ScreenID = "booking"
	ScreenForum      ScreenID = "forum"
	ScreenMood       ScreenID = "mood"
	ScreenChallenges ScreenID = "challenges"

	ScreenStudentHome    ScreenID = "student-home"
	ScreenCounsellorHome ScreenID = "counsellor-home"
	ScreenRoot           ScreenID = "root"

	ScreenScreeningTools     ScreenID = "screening-tools"
	ScreenCounsellorSchedule ScreenID = "counsellor-schedule"
	ScreenCounsellorMessages ScreenID = "counsellor-messages"
	ScreenCounsellorProgress ScreenID = "counsellor-progress"
	ScreenCounsellorGroups   ScreenID = "counsellor-groups"
	ScreenAdminDashboard     ScreenID = "admin-dashboard"
)

// Role is the login selection made on the welcome screen. It is written once
// per app session and only read afterwards.
type Role string

const (
	RoleStudent    Role = "student"
	RoleCounsellor Role = "counsellor"
	RoleAdmin      Role = "admin"
)

// ActionKind discriminates the result of a back request.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionExit     ActionKind = "exit"
)

// Action tells the client what to do after a back request: move to another
// screen or leave the app.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Target ScreenID   `json:"target,omitempty"`
}

// NavigateTo builds a navigation action towards the given screen.
func NavigateTo(target ScreenID) Action {
	return Action{Kind: ActionNavigate, Target: target}
}

// ExitApp builds the terminal action returned from the root screen.
func ExitApp() Action {
	return Action{Kind: ActionExit}
}
