package portfolio

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/testutil"
)

type PortfolioSuite struct {
	suite.Suite
	db  *gorm.DB
	app *fiber.App
}

func TestPortfolioSuite(t *testing.T) {
	suite.Run(t, new(PortfolioSuite))
}

func (s *PortfolioSuite) SetupTest() {
	s.db = testutil.NewDB(s.T(), New().Models()...)
	deps, _ := testutil.NewDeps(s.T(), s.db)
	s.app = testutil.NewModuleApp(s.T(), deps, New())
}

func (s *PortfolioSuite) admin(method, path string, body interface{}) (int, []byte) {
	return testutil.Do(s.T(), s.app, method, path, body, testutil.AdminHeaders)
}

func (s *PortfolioSuite) createProject(slug, status string) Project {
	code, raw := s.admin("POST", "/api/admin/projects", map[string]interface{}{
		"slug": slug, "title": "Project " + slug, "status": status,
		"tags": []string{"erp"}, "highlights": []string{"-30% costs"},
	})
	s.Require().Equal(fiber.StatusOK, code, string(raw))
	var p Project
	testutil.Data(s.T(), raw, &p)
	return p
}

func (s *PortfolioSuite) addMedia(projectID uuid.UUID, body map[string]interface{}) ProjectMedia {
	code, raw := s.admin("POST", "/api/admin/projects/"+projectID.String()+"/media", body)
	s.Require().Equal(fiber.StatusOK, code, string(raw))
	var m ProjectMedia
	testutil.Data(s.T(), raw, &m)
	return m
}

func (s *PortfolioSuite) primaryCount(projectID uuid.UUID) int64 {
	var n int64
	s.Require().NoError(s.db.Model(&ProjectMedia{}).
		Where("project_id = ? AND is_primary = ?", projectID, true).Count(&n).Error)
	return n
}

func (s *PortfolioSuite) TestCreateProject() {
	code, raw := s.admin("POST", "/api/admin/projects", map[string]interface{}{"title": "No slug"})
	s.Equal(fiber.StatusBadRequest, code)
	s.NotEmpty(testutil.ErrorMessage(s.T(), raw))

	code, raw = s.admin("POST", "/api/admin/projects", map[string]interface{}{"slug": "erp", "title": "ERP"})
	s.Require().Equal(fiber.StatusOK, code, string(raw))
	var p Project
	testutil.Data(s.T(), raw, &p)
	s.Equal(StatusDraft, p.Status)
	s.NotEqual(uuid.Nil, p.ID)
}

func (s *PortfolioSuite) TestUpdateIgnoresBlankStatus() {
	p := s.createProject("blank-status", StatusPublic)

	code, raw := s.admin("PUT", "/api/admin/projects/"+p.ID.String(), map[string]interface{}{"status": "  ", "title": "Renamed"})
	s.Require().Equal(fiber.StatusOK, code, string(raw))
	var got Project
	testutil.Data(s.T(), raw, &got)
	s.Equal(StatusPublic, got.Status)
	s.Equal("Renamed", got.Title)
}

func (s *PortfolioSuite) TestPublicListingHidesDraftAndHidden() {
	live := s.createProject("live", StatusPublic)
	s.createProject("draft", StatusDraft)
	s.createProject("hidden", StatusHidden)
	s.addMedia(live.ID, map[string]interface{}{"type": "image", "url": "https://cdn/a.jpg"})

	code, raw := testutil.Do(s.T(), s.app, "GET", "/api/projects", nil, nil)
	s.Require().Equal(fiber.StatusOK, code)
	var projects []Project
	testutil.Data(s.T(), raw, &projects)
	s.Require().Len(projects, 1)
	s.Equal("live", projects[0].Slug)
	s.Len(projects[0].Media, 1)
	s.Equal([]string{"erp"}, []string(projects[0].Tags))

	code, _ = testutil.Do(s.T(), s.app, "GET", "/api/projects/hidden", nil, nil)
	s.Equal(fiber.StatusNotFound, code)
}

func (s *PortfolioSuite) TestMediaValidation() {
	p := s.createProject("erp", StatusDraft)
	path := "/api/admin/projects/" + p.ID.String() + "/media"

	code, _ := s.admin("POST", path, map[string]interface{}{"url": "https://x"})
	s.Equal(fiber.StatusBadRequest, code)
	code, _ = s.admin("POST", path, map[string]interface{}{"type": "gif", "url": "https://x"})
	s.Equal(fiber.StatusBadRequest, code)
	code, _ = s.admin("POST", "/api/admin/projects/"+uuid.NewString()+"/media",
		map[string]interface{}{"type": "image", "url": "https://x"})
	s.Equal(fiber.StatusNotFound, code)
}

func (s *PortfolioSuite) TestSetPrimaryLeavesExactlyOne() {
	p := s.createProject("erp", StatusPublic)
	a := s.addMedia(p.ID, map[string]interface{}{"type": "image", "url": "https://cdn/a.jpg"})
	b := s.addMedia(p.ID, map[string]interface{}{"type": "video", "url": "https://cdn/b.mp4"})
	c := s.addMedia(p.ID, map[string]interface{}{"type": "pdf", "url": "https://cdn/c.pdf"})
	s.Equal([]int{0, 1, 2}, []int{a.SortOrder, b.SortOrder, c.SortOrder})

	// Rows written outside the API may already carry several primaries.
	s.Require().NoError(s.db.Model(&ProjectMedia{}).Where("project_id = ?", p.ID).Update("is_primary", true).Error)
	s.Equal(int64(3), s.primaryCount(p.ID))

	code, raw := s.admin("PUT", "/api/admin/projects/"+p.ID.String()+"/media/"+b.ID.String()+"/primary", nil)
	s.Require().Equal(fiber.StatusOK, code, string(raw))
	s.Equal(int64(1), s.primaryCount(p.ID))

	var media []ProjectMedia
	testutil.Data(s.T(), raw, &media)
	for _, m := range media {
		s.Equal(m.ID == b.ID, m.IsPrimary, m.URL)
	}

	// Creating a new primary item moves the flag.
	d := s.addMedia(p.ID, map[string]interface{}{"type": "link", "url": "https://demo", "is_primary": true})
	s.Equal(int64(1), s.primaryCount(p.ID))
	s.True(d.IsPrimary)

	code, _ = s.admin("PUT", "/api/admin/projects/"+p.ID.String()+"/media/"+uuid.NewString()+"/primary", nil)
	s.Equal(fiber.StatusNotFound, code)
	s.Equal(int64(1), s.primaryCount(p.ID))
}

func (s *PortfolioSuite) TestReorder() {
	p := s.createProject("erp", StatusDraft)
	a := s.addMedia(p.ID, map[string]interface{}{"type": "image", "url": "https://cdn/a.jpg"})
	b := s.addMedia(p.ID, map[string]interface{}{"type": "image", "url": "https://cdn/b.jpg"})
	c := s.addMedia(p.ID, map[string]interface{}{"type": "image", "url": "https://cdn/c.jpg"})

	code, raw := s.admin("PUT", "/api/admin/projects/"+p.ID.String()+"/media/order",
		map[string]interface{}{"ids": []uuid.UUID{c.ID, a.ID, b.ID}})
	s.Require().Equal(fiber.StatusOK, code, string(raw))

	var media []ProjectMedia
	testutil.Data(s.T(), raw, &media)
	s.Require().Len(media, 3)
	s.Equal([]uuid.UUID{c.ID, a.ID, b.ID}, []uuid.UUID{media[0].ID, media[1].ID, media[2].ID})

	code, _ = s.admin("PUT", "/api/admin/projects/"+p.ID.String()+"/media/order",
		map[string]interface{}{"ids": []uuid.UUID{a.ID, uuid.New()}})
	s.Equal(fiber.StatusNotFound, code)

	// A failed reorder is rolled back.
	code, raw = s.admin("GET", "/api/admin/projects/"+p.ID.String()+"/media", nil)
	s.Require().Equal(fiber.StatusOK, code)
	testutil.Data(s.T(), raw, &media)
	s.Equal(c.ID, media[0].ID)
}

func (s *PortfolioSuite) TestUpdateAndDeleteMedia() {
	p := s.createProject("erp", StatusDraft)
	a := s.addMedia(p.ID, map[string]interface{}{"type": "image", "url": "https://cdn/a.jpg"})
	path := "/api/admin/projects/" + p.ID.String() + "/media/" + a.ID.String()

	code, raw := s.admin("PUT", path, map[string]interface{}{"caption": "Dashboard"})
	s.Require().Equal(fiber.StatusOK, code, string(raw))
	var m ProjectMedia
	testutil.Data(s.T(), raw, &m)
	s.Equal("Dashboard", m.Caption)
	s.Equal("https://cdn/a.jpg", m.URL)

	code, _ = s.admin("DELETE", path, nil)
	s.Equal(fiber.StatusOK, code)
	code, _ = s.admin("DELETE", path, nil)
	s.Equal(fiber.StatusNotFound, code)
}

func (s *PortfolioSuite) TestDeleteProjectRemovesMedia() {
	p := s.createProject("erp", StatusPublic)
	keep := s.createProject("other", StatusPublic)
	s.addMedia(p.ID, map[string]interface{}{"type": "image", "url": "https://cdn/a.jpg"})
	s.addMedia(keep.ID, map[string]interface{}{"type": "image", "url": "https://cdn/b.jpg"})

	code, _ := s.admin("DELETE", "/api/admin/projects/"+p.ID.String(), nil)
	s.Require().Equal(fiber.StatusOK, code)

	code, raw := s.admin("GET", "/api/admin/projects", nil)
	s.Require().Equal(fiber.StatusOK, code)
	var projects []Project
	testutil.Data(s.T(), raw, &projects)
	s.Require().Len(projects, 1)
	s.Equal("other", projects[0].Slug)

	var remaining int64
	s.Require().NoError(s.db.Model(&ProjectMedia{}).Count(&remaining).Error)
	s.Equal(int64(1), remaining)

	code, _ = s.admin("DELETE", "/api/admin/projects/"+p.ID.String(), nil)
	s.Equal(fiber.StatusNotFound, code)
}

func TestEditorCanWriteViewerCannot(t *testing.T) {
	db := testutil.NewDB(t, New().Models()...)
	deps, _ := testutil.NewDeps(t, db)
	app := testutil.NewModuleApp(t, deps, New())

	viewer := map[string]string{"Authorization": "Bearer " + testutil.Token(t, deps.Config, "viewer")}
	editor := map[string]string{"Authorization": "Bearer " + testutil.Token(t, deps.Config, "editor")}
	body := map[string]interface{}{"slug": "erp", "title": "ERP"}

	code, _ := testutil.Do(t, app, "POST", "/api/admin/projects", body, viewer)
	assert.Equal(t, fiber.StatusForbidden, code)
	code, _ = testutil.Do(t, app, "GET", "/api/admin/projects", nil, viewer)
	assert.Equal(t, fiber.StatusOK, code)
	code, raw := testutil.Do(t, app, "POST", "/api/admin/projects", body, editor)
	require.Equal(t, fiber.StatusOK, code, string(raw))
}
