package sitesettings

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/testutil"
)

func newApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	db := testutil.NewDB(t, New().Models()...)
	deps, _ := testutil.NewDeps(t, db)
	return testutil.NewModuleApp(t, deps, New()), NewService(db)
}

func getPublic(t *testing.T, app *fiber.App) SiteSettings {
	t.Helper()
	status, raw := testutil.Do(t, app, "GET", "/api/settings", nil, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	var s SiteSettings
	testutil.Data(t, raw, &s)
	return s
}

func TestDefaultsWhenRowMissing(t *testing.T) {
	app, _ := newApp(t)
	s := getPublic(t, app)
	assert.Equal(t, SingletonID, s.ID)
	assert.True(t, s.ShowPortfolioInHeader)
	assert.True(t, s.ShowTeamInAbout)
}

func TestToggleOnePersists(t *testing.T) {
	app, _ := newApp(t)

	status, raw := testutil.Do(t, app, "PUT", "/api/admin/settings",
		map[string]bool{"show_careers_in_header": false}, testutil.AdminHeaders)
	require.Equal(t, fiber.StatusOK, status, string(raw))

	s := getPublic(t, app)
	assert.False(t, s.ShowCareersInHeader)
	assert.True(t, s.ShowPortfolioInHeader, "untouched toggles keep their value")

	status, _ = testutil.Do(t, app, "PUT", "/api/admin/settings",
		map[string]bool{"show_careers_in_header": true, "show_team_in_about": false}, testutil.AdminHeaders)
	require.Equal(t, fiber.StatusOK, status)

	s = getPublic(t, app)
	assert.True(t, s.ShowCareersInHeader)
	assert.False(t, s.ShowTeamInAbout)
}

func TestSeedKeepsExistingRow(t *testing.T) {
	_, svc := newApp(t)
	off := false
	_, err := svc.Update(UpdateRequest{ShowPortfolioInServices: &off})
	require.NoError(t, err)

	s, err := svc.Seed()
	require.NoError(t, err)
	assert.False(t, s.ShowPortfolioInServices)
}

func TestOnlyAdminsWriteSettings(t *testing.T) {
	db := testutil.NewDB(t, New().Models()...)
	deps, _ := testutil.NewDeps(t, db)
	app := testutil.NewModuleApp(t, deps, New())
	editor := map[string]string{"Authorization": "Bearer " + testutil.Token(t, deps.Config, "editor")}

	status, _ := testutil.Do(t, app, "GET", "/api/admin/settings", nil, editor)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = testutil.Do(t, app, "PUT", "/api/admin/settings", map[string]bool{"show_team_in_about": false}, editor)
	assert.Equal(t, fiber.StatusForbidden, status)
}
