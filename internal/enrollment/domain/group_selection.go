package domain

import "fmt"

// SelectGroup picks the group a new subscriber joins: among groups with a
// free seat, the one with the fewest members, ties going to the smallest id.
// The result depends only on the snapshot, not on its order.
func SelectGroup(courseID int, groups []GroupLoad) (GroupLoad, error) {
	var (
		selected GroupLoad
		found    bool
	)

	for _, group := range groups {
		if !group.HasFreeSeat() {
			continue
		}

		if !found || isLessLoaded(group, selected) {
			selected = group
			found = true
		}
	}

	if !found {
		return GroupLoad{}, &NoGroupAvailableError{Msg: fmt.Sprintf("course %d has no group with a free seat", courseID)}
	}

	return selected, nil
}

func isLessLoaded(a, b GroupLoad) bool {
	if a.MemberCount != b.MemberCount {
		return a.MemberCount < b.MemberCount
	}

	return a.ID < b.ID
}
