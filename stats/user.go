package stats

import "github.com/diewo77/go-invoices-client/models"

// UserTally mirrors the user-management cards: counts per role.
type UserTally struct {
	Total    int
	Admins   int
	Managers int
	Regular  int
}

// TallyUsers counts users by role. Unknown roles count toward Total only.
func TallyUsers(users []models.UserWithStats) UserTally {
	tally := TallyByStatus(users, func(u models.UserWithStats) string {
		return string(u.Role)
	}, string(models.RoleAdmin), string(models.RoleManager), string(models.RoleUser))
	return UserTally{
		Total:    tally.Total,
		Admins:   tally.Count(string(models.RoleAdmin)),
		Managers: tally.Count(string(models.RoleManager)),
		Regular:  tally.Count(string(models.RoleUser)),
	}
}

// FilterUsers applies the search box and role dropdown of the user
// management view: the query matches email or name, the role is exact or
// StatusAll.
func FilterUsers(users []models.UserWithStats, query, role string) []models.UserWithStats {
	return Filter(users, query, role, func(u models.UserWithStats) []string {
		return []string{u.Email, u.Name}
	}, func(u models.UserWithStats) string { return string(u.Role) })
}
