// Package scope computes which users' data a viewer is authorized to see,
// from the organizational hierarchy encoded in each user's role and
// geographic attributes.
package scope

import "github.com/estiakahmed98/islami-dawa-production-sub001/models"

// Resolve returns the set of emails the viewer may see data for.
//
// A centraladmin sees everyone. Any other viewer sees the transitive closure
// of the reports-to relation rooted at themselves: a user belongs to the
// scope when their nearest ancestor (per parentEmail's fallback chain)
// is already in it. The result always contains the viewer's own email, even
// when the viewer is absent from all (the scope then collapses to just the
// viewer). The traversal is bounded by len(all)+1 rounds so an anomalous
// user list with mutually-referencing rows cannot loop forever.
func Resolve(all []models.User, viewer models.User) map[string]struct{} {
	visited := map[string]struct{}{viewer.Email: {}}

	if viewer.Role == models.RoleCentralAdmin {
		for _, u := range all {
			visited[u.Email] = struct{}{}
		}
		return visited
	}

	for round := 0; round <= len(all); round++ {
		grew := false
		for _, u := range all {
			if _, ok := visited[u.Email]; ok {
				continue
			}
			parent := parentEmail(all, u)
			if parent == "" {
				continue
			}
			if _, ok := visited[parent]; ok {
				visited[u.Email] = struct{}{}
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	return visited
}

// Emails returns the resolved scope as a slice, in the order the users
// appear in all. The viewer's email leads if it is not in the list.
func Emails(all []models.User, viewer models.User) []string {
	set := Resolve(all, viewer)
	out := make([]string, 0, len(set))
	seen := false
	for _, u := range all {
		if _, ok := set[u.Email]; ok {
			out = append(out, u.Email)
			if u.Email == viewer.Email {
				seen = true
			}
		}
	}
	if !seen {
		out = append([]string{viewer.Email}, out...)
	}
	return out
}

// parentEmail finds u's immediate superior. Each role matches the next role
// up sharing the corresponding geographic attribute, falling back one level
// at a time until the centraladmin. Ties (several candidates at the same
// level) go to the first match in slice order. Roles outside the hierarchy
// have no parent.
func parentEmail(all []models.User, u models.User) string {
	switch u.Role {
	case models.RoleDivisionAdmin:
		return firstEmail(all, byRole(models.RoleCentralAdmin))
	case models.RoleDistrictAdmin:
		return firstEmail(all,
			byRoleGeo(models.RoleDivisionAdmin, func(c models.User) string { return c.Division }, u.Division),
			byRole(models.RoleCentralAdmin),
		)
	case models.RoleUpozilaAdmin:
		return firstEmail(all,
			byRoleGeo(models.RoleDistrictAdmin, func(c models.User) string { return c.District }, u.District),
			byRoleGeo(models.RoleDivisionAdmin, func(c models.User) string { return c.Division }, u.Division),
			byRole(models.RoleCentralAdmin),
		)
	case models.RoleUnionAdmin:
		return firstEmail(all,
			byRoleGeo(models.RoleUpozilaAdmin, func(c models.User) string { return c.Upazila }, u.Upazila),
			byRoleGeo(models.RoleDistrictAdmin, func(c models.User) string { return c.District }, u.District),
			byRoleGeo(models.RoleDivisionAdmin, func(c models.User) string { return c.Division }, u.Division),
			byRole(models.RoleCentralAdmin),
		)
	case models.RoleDaye:
		return firstEmail(all,
			byRoleGeo(models.RoleUnionAdmin, func(c models.User) string { return c.Union }, u.Union),
			byRoleGeo(models.RoleUpozilaAdmin, func(c models.User) string { return c.Upazila }, u.Upazila),
			byRoleGeo(models.RoleDistrictAdmin, func(c models.User) string { return c.District }, u.District),
			byRoleGeo(models.RoleDivisionAdmin, func(c models.User) string { return c.Division }, u.Division),
			byRole(models.RoleCentralAdmin),
		)
	}
	return ""
}

type match func(models.User) bool

func byRole(role string) match {
	return func(c models.User) bool { return c.Role == role }
}

func byRoleGeo(role string, geo func(models.User) string, want string) match {
	return func(c models.User) bool { return c.Role == role && want != "" && geo(c) == want }
}

func firstEmail(all []models.User, chain ...match) string {
	for _, m := range chain {
		for _, c := range all {
			if m(c) {
				return c.Email
			}
		}
	}
	return ""
}
