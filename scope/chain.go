package scope

import "github.com/estiakahmed98/islami-dawa-production-sub001/models"

// AncestorChain walks u's reports-to relation upward and returns the emails
// of u's superiors, nearest first. Used to route notifications about a
// worker's submissions to the admins responsible for them. The walk is
// bounded and cycle-checked, so a geography anomaly where two users resolve
// to each other terminates instead of looping.
func AncestorChain(all []models.User, u models.User) []string {
	var chain []string
	seen := map[string]struct{}{u.Email: {}}
	cur := u
	for range all {
		parent := parentEmail(all, cur)
		if parent == "" {
			break
		}
		if _, ok := seen[parent]; ok {
			break
		}
		chain = append(chain, parent)
		seen[parent] = struct{}{}
		next, ok := byEmail(all, parent)
		if !ok {
			break
		}
		cur = next
	}
	return chain
}

func byEmail(all []models.User, email string) (models.User, bool) {
	for _, c := range all {
		if c.Email == email {
			return c, true
		}
	}
	return models.User{}, false
}
