package leads

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/events"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/testutil"
)

func newApp(t *testing.T) (*fiber.App, *gorm.DB, *testutil.Publisher) {
	t.Helper()
	db := testutil.NewDB(t, New().Models()...)
	deps, pub := testutil.NewDeps(t, db)
	return testutil.NewModuleApp(t, deps, New()), db, pub
}

func validContact() map[string]string {
	return map[string]string{
		"nombre":   "Ana Pérez",
		"email":    "ana@example.com",
		"asunto":   "Cotización",
		"mensaje":  "Necesitamos un ERP",
		"servicio": "consultoria",
	}
}

func submit(t *testing.T, app *fiber.App) ContactResponse {
	t.Helper()
	status, raw := testutil.Do(t, app, "POST", "/api/contact", validContact(), nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	var resp ContactResponse
	testutil.Data(t, raw, &resp)
	return resp
}

func TestContactValidation(t *testing.T) {
	app, _, pub := newApp(t)

	for _, field := range []string{"nombre", "email", "asunto", "mensaje"} {
		body := validContact()
		body[field] = "   "
		status, raw := testutil.Do(t, app, "POST", "/api/contact", body, nil)
		assert.Equal(t, fiber.StatusBadRequest, status, field)
		assert.Equal(t, ErrMissingContactFields.Error(), testutil.ErrorMessage(t, raw))
	}

	for _, email := range []string{"ana", "ana@example", "ana @example.com", "@example.com"} {
		body := validContact()
		body["email"] = email
		status, raw := testutil.Do(t, app, "POST", "/api/contact", body, nil)
		assert.Equal(t, fiber.StatusBadRequest, status, email)
		assert.Equal(t, ErrInvalidEmail.Error(), testutil.ErrorMessage(t, raw))
	}

	// telefono, empresa and servicio are optional.
	status, _ := testutil.Do(t, app, "POST", "/api/contact", map[string]string{
		"nombre": "Ana", "email": "ana@example.com", "asunto": "Hola", "mensaje": "Hola",
	}, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, pub.Events(), 1)
}

func TestContactStoredAsPendingLead(t *testing.T) {
	app, _, pub := newApp(t)
	resp := submit(t, app)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	status, raw := testutil.Do(t, app, "GET", "/api/admin/contacts/"+resp.ID.String(), nil, testutil.AdminHeaders)
	require.Equal(t, fiber.StatusOK, status)
	var lead ContactSubmission
	testutil.Data(t, raw, &lead)
	assert.Equal(t, StatusPending, lead.Status)
	assert.Equal(t, "Ana Pérez", lead.Nombre)
	assert.Equal(t, "contact-form", lead.Source)
	assert.Empty(t, lead.ErrorMessage)

	published := pub.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.TypeLeadCreated, published[0].Type)
	assert.Equal(t, resp.ID.String(), published[0].Key)
}

func TestContactPublishFailureMarksLead(t *testing.T) {
	app, db, pub := newApp(t)
	pub.Err = errors.New("broker unreachable")

	resp := submit(t, app)

	var lead ContactSubmission
	require.NoError(t, db.First(&lead, "id = ?", resp.ID).Error)
	assert.Equal(t, StatusError, lead.Status)
	assert.Contains(t, lead.ErrorMessage, "broker unreachable")

	var details map[string]interface{}
	require.NoError(t, json.Unmarshal(lead.ErrorDetails, &details))
	assert.Equal(t, events.TypeLeadCreated, details["event"])
	assert.Equal(t, "broker unreachable", details["error"])
}

func TestContactWithUnreachableKafkaMarksLead(t *testing.T) {
	db := testutil.NewDB(t, New().Models()...)
	deps, _ := testutil.NewDeps(t, db)
	kafka, err := events.NewKafkaPublisher([]string{"127.0.0.1:1"}, "site-events", 300*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(kafka.Close)
	deps.Events = kafka
	app := testutil.NewModuleApp(t, deps, New())

	start := time.Now()
	resp := submit(t, app)
	assert.Less(t, time.Since(start), 5*time.Second)

	var lead ContactSubmission
	require.NoError(t, db.First(&lead, "id = ?", resp.ID).Error)
	assert.Equal(t, StatusError, lead.Status)
	assert.Contains(t, lead.ErrorMessage, "delivery failed")
}

func TestUnknownStatusRoundTripsAndBucketsAsPorContactar(t *testing.T) {
	app, _, pub := newApp(t)
	resp := submit(t, app)
	path := "/api/admin/contacts/" + resp.ID.String()

	status, raw := testutil.Do(t, app, "PATCH", path+"/status", StatusRequest{Status: "Esperando presupuesto"}, testutil.AdminHeaders)
	require.Equal(t, fiber.StatusOK, status, string(raw))

	_, raw = testutil.Do(t, app, "GET", path, nil, testutil.AdminHeaders)
	var lead ContactSubmission
	testutil.Data(t, raw, &lead)
	assert.Equal(t, "Esperando presupuesto", lead.Status)

	_, raw = testutil.Do(t, app, "GET", "/api/admin/contacts/board", nil, testutil.AdminHeaders)
	var board []Column
	testutil.Data(t, raw, &board)
	require.Len(t, board, len(Buckets))
	assert.Equal(t, BucketPorContactar, board[0].Key)
	require.Len(t, board[0].Leads, 1)
	assert.Equal(t, resp.ID, board[0].Leads[0].ID)

	published := pub.Events()
	require.Len(t, published, 2)
	assert.Equal(t, events.TypeLeadStatusChanged, published[1].Type)

	status, _ = testutil.Do(t, app, "PATCH", path+"/status", StatusRequest{Status: " "}, testutil.AdminHeaders)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMoveOnBoard(t *testing.T) {
	app, _, _ := newApp(t)
	resp := submit(t, app)
	path := "/api/admin/contacts/" + resp.ID.String() + "/bucket"

	status, raw := testutil.Do(t, app, "PATCH", path, MoveRequest{Bucket: BucketCalificado}, testutil.AdminHeaders)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	var lead ContactSubmission
	testutil.Data(t, raw, &lead)
	assert.Equal(t, "calificado", lead.Status)

	status, _ = testutil.Do(t, app, "PATCH", path, MoveRequest{Bucket: "archivo"}, testutil.AdminHeaders)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestListFilterAndDelete(t *testing.T) {
	app, _, _ := newApp(t)
	first := submit(t, app)
	second := submit(t, app)
	testutil.Do(t, app, "PATCH", "/api/admin/contacts/"+second.ID.String()+"/status", StatusRequest{Status: "cerrado"}, testutil.AdminHeaders)

	_, raw := testutil.Do(t, app, "GET", "/api/admin/contacts?status=cerrado", nil, testutil.AdminHeaders)
	var leads []ContactSubmission
	testutil.Data(t, raw, &leads)
	require.Len(t, leads, 1)
	assert.Equal(t, second.ID, leads[0].ID)

	status, _ := testutil.Do(t, app, "DELETE", "/api/admin/contacts/"+first.ID.String(), nil, testutil.AdminHeaders)
	require.Equal(t, fiber.StatusOK, status)

	_, raw = testutil.Do(t, app, "GET", "/api/admin/contacts", nil, testutil.AdminHeaders)
	testutil.Data(t, raw, &leads)
	require.Len(t, leads, 1)
	assert.Equal(t, second.ID, leads[0].ID)

	status, _ = testutil.Do(t, app, "GET", "/api/admin/contacts/"+first.ID.String(), nil, testutil.AdminHeaders)
	assert.Equal(t, fiber.StatusNotFound, status)
}
