package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
)

func u(email, role string, geo ...string) models.User {
	user := models.User{Email: email, Role: role}
	if len(geo) > 0 {
		user.Division = geo[0]
	}
	if len(geo) > 1 {
		user.District = geo[1]
	}
	if len(geo) > 2 {
		user.Upazila = geo[2]
	}
	if len(geo) > 3 {
		user.Union = geo[3]
	}
	return user
}

func directory() []models.User {
	return []models.User{
		u("central@idi.org", models.RoleCentralAdmin),
		u("dhaka@idi.org", models.RoleDivisionAdmin, "Dhaka"),
		u("chattogram@idi.org", models.RoleDivisionAdmin, "Chattogram"),
		u("gazipur@idi.org", models.RoleDistrictAdmin, "Dhaka", "Gazipur"),
		u("comilla@idi.org", models.RoleDistrictAdmin, "Chattogram", "Comilla"),
		u("sreepur@idi.org", models.RoleUpozilaAdmin, "Dhaka", "Gazipur", "Sreepur"),
		u("barmi@idi.org", models.RoleUnionAdmin, "Dhaka", "Gazipur", "Sreepur", "Barmi"),
		u("daye1@idi.org", models.RoleDaye, "Dhaka", "Gazipur", "Sreepur", "Barmi"),
		u("daye2@idi.org", models.RoleDaye, "Chattogram", "Comilla"),
	}
}

func TestCentralAdminSeesEveryone(t *testing.T) {
	all := directory()
	got := Resolve(all, all[0])

	require.Len(t, got, len(all))
	for _, usr := range all {
		assert.Contains(t, got, usr.Email)
	}
}

func TestDivisionAdminSeesOwnSubtreeOnly(t *testing.T) {
	all := directory()
	got := Resolve(all, all[1]) // dhaka division

	assert.Equal(t, map[string]struct{}{
		"dhaka@idi.org":   {},
		"gazipur@idi.org": {},
		"sreepur@idi.org": {},
		"barmi@idi.org":   {},
		"daye1@idi.org":   {},
	}, got)
	assert.NotContains(t, got, "comilla@idi.org")
	assert.NotContains(t, got, "daye2@idi.org")
	assert.NotContains(t, got, "central@idi.org")
}

func TestDayeFallsBackPastMissingLevels(t *testing.T) {
	// No union or upozila admin exists for daye2, so they attach to the
	// Comilla district admin directly.
	all := directory()
	got := Resolve(all, all[4]) // comilla district admin

	assert.Contains(t, got, "daye2@idi.org")
	assert.NotContains(t, got, "daye1@idi.org")
}

func TestScopeIsReflexive(t *testing.T) {
	for _, viewer := range directory() {
		got := Resolve(directory(), viewer)
		assert.Contains(t, got, viewer.Email, "viewer %s must see itself", viewer.Email)
	}
}

func TestScopeIsIdempotent(t *testing.T) {
	all := directory()
	viewer := all[1]
	first := Resolve(all, viewer)
	second := Resolve(all, viewer)
	assert.Equal(t, first, second)
}

func TestUnknownViewerCollapsesToSelf(t *testing.T) {
	got := Resolve(directory(), u("stranger@idi.org", models.RoleDivisionAdmin, "Sylhet"))
	assert.Equal(t, map[string]struct{}{"stranger@idi.org": {}}, got)
}

func TestDayeViewerSeesOnlySelf(t *testing.T) {
	all := directory()
	got := Resolve(all, all[7])
	assert.Equal(t, map[string]struct{}{"daye1@idi.org": {}}, got)
}

func TestUnknownRoleHasNoParent(t *testing.T) {
	all := append(directory(), u("guest@idi.org", "observer"))
	got := Resolve(all, all[0]) // centraladmin still sees everyone
	assert.Contains(t, got, "guest@idi.org")

	got = Resolve(all, all[1]) // but no one inherits the guest
	assert.NotContains(t, got, "guest@idi.org")
}

func TestTieBreakFirstInSliceOrder(t *testing.T) {
	all := []models.User{
		u("central@idi.org", models.RoleCentralAdmin),
		u("first@idi.org", models.RoleDistrictAdmin, "Dhaka", "Gazipur"),
		u("second@idi.org", models.RoleDistrictAdmin, "Dhaka", "Gazipur"),
		u("daye@idi.org", models.RoleDaye, "Dhaka", "Gazipur"),
	}
	chain := AncestorChain(all, all[3])
	require.NotEmpty(t, chain)
	assert.Equal(t, "first@idi.org", chain[0])
}

func TestResolveTerminatesOnGeographyAnomaly(t *testing.T) {
	// Two rows that resolve to each other through identical geography must
	// not loop the traversal.
	all := []models.User{
		u("a@idi.org", models.RoleUpozilaAdmin, "Dhaka", "Gazipur", "Sreepur"),
		u("b@idi.org", models.RoleUnionAdmin, "Dhaka", "Gazipur", "Sreepur", "Barmi"),
	}
	got := Resolve(all, all[0])
	assert.Contains(t, got, "a@idi.org")
	assert.Contains(t, got, "b@idi.org")
}

func TestAncestorChainFallsBackToCentralAdmin(t *testing.T) {
	all := []models.User{
		u("central@idi.org", models.RoleCentralAdmin),
		u("lone@idi.org", models.RoleDaye, "Sylhet", "Moulvibazar"),
	}
	// No union, upozila, district or division admin matches, so the chain
	// terminates at the central admin alone.
	assert.Equal(t, []string{"central@idi.org"}, AncestorChain(all, all[1]))
}

func TestAncestorChainEmptyWithoutCentralAdmin(t *testing.T) {
	all := []models.User{u("lone@idi.org", models.RoleDaye)}
	assert.Empty(t, AncestorChain(all, all[0]))
}

func TestAncestorChainFullDepth(t *testing.T) {
	all := directory()
	chain := AncestorChain(all, all[7]) // daye1
	assert.Equal(t, []string{
		"barmi@idi.org", "sreepur@idi.org", "gazipur@idi.org", "dhaka@idi.org", "central@idi.org",
	}, chain)
}

func TestEmailsKeepsDirectoryOrderAndViewer(t *testing.T) {
	all := directory()
	emails := Emails(all, all[1])
	assert.Equal(t, []string{
		"dhaka@idi.org", "gazipur@idi.org", "sreepur@idi.org", "barmi@idi.org", "daye1@idi.org",
	}, emails)

	stranger := u("stranger@idi.org", models.RoleDaye)
	assert.Equal(t, []string{"stranger@idi.org"}, Emails(all, stranger))
}
