package nav

import navmodel "github.com/campuscare/maya/backend/internal/model/nav"

// leafScreens are the content screens that always route back to a
// role-scoped home screen, never to another leaf.
var leafScreens = map[navmodel.ScreenID]struct{}{
	navmodel.ScreenChat:       {},
	navmodel.ScreenResources:  {},
	navmodel.ScreenBooking:    {},
	navmodel.ScreenForum:      {},
	navmodel.ScreenMood:       {},
	navmodel.ScreenChallenges: {},
}

// ResolveBack computes the single next destination for a back request. It is
// a pure function of the current screen and the stored role; rules apply in
// strict order, first match wins:
//
//  1. leaf screen: counsellors go to counsellor-home, every other role value
//     (student, admin, unset) goes to student-home. The check is a strict
//     allow-list on the counsellor literal so an ambiguous or missing role
//     can never land in the counsellor context.
//  2. either home screen: back to root.
//  3. root: exit the app.
//  4. anything unrecognised: back to root as the safe default.
func ResolveBack(current navmodel.ScreenID, role navmodel.Role) navmodel.Action {
	if _, leaf := leafScreens[current]; leaf {
		if role == navmodel.RoleCounsellor {
			return navmodel.NavigateTo(navmodel.ScreenCounsellorHome)
		}
		return navmodel.NavigateTo(navmodel.ScreenStudentHome)
	}

	switch current {
	case navmodel.ScreenStudentHome, navmodel.ScreenCounsellorHome:
		return navmodel.NavigateTo(navmodel.ScreenRoot)
	case navmodel.ScreenRoot:
		return navmodel.ExitApp()
	}

	return navmodel.NavigateTo(navmodel.ScreenRoot)
}
