package classes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/camphub/camphub/internal/app/features/classes"
	"github.com/camphub/camphub/internal/domain/models"
	"github.com/camphub/camphub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeStore is an in-memory classes.Store.
type fakeStore struct {
	byID map[primitive.ObjectID]models.Class
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[primitive.ObjectID]models.Class)}
}

func (f *fakeStore) Insert(_ context.Context, c models.Class) (primitive.ObjectID, error) {
	c.ID = primitive.NewObjectID()
	f.byID[c.ID] = c
	return c.ID, nil
}

func (f *fakeStore) ListByInstructor(_ context.Context, email string) ([]models.Class, error) {
	var out []models.Class
	for _, c := range f.byID {
		if c.InstructorEmail == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]models.Class, error) {
	var out []models.Class
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) ListApproved(_ context.Context) ([]models.Class, error) {
	var out []models.Class
	for _, c := range f.byID {
		if c.Status == models.StatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) SetStatus(_ context.Context, id primitive.ObjectID, status models.ClassStatus) (int64, int64, error) {
	return f.set(id, func(c *models.Class) { c.Status = status })
}

func (f *fakeStore) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) (int64, int64, error) {
	return f.set(id, func(c *models.Class) { c.Feedback = feedback })
}

func (f *fakeStore) SetAvailableSeats(_ context.Context, id primitive.ObjectID, seats int) (int64, int64, error) {
	return f.set(id, func(c *models.Class) { c.AvailableSeats = seats })
}

func (f *fakeStore) SetEnrolled(_ context.Context, id primitive.ObjectID, enrolled int) (int64, int64, error) {
	return f.set(id, func(c *models.Class) { c.Enrolled = enrolled })
}

func (f *fakeStore) set(id primitive.ObjectID, mutate func(*models.Class)) (int64, int64, error) {
	c, ok := f.byID[id]
	if !ok {
		return 0, 0, nil
	}
	mutate(&c)
	f.byID[id] = c
	return 1, 1, nil
}

func TestHandleCreate_ForcesPendingStatus(t *testing.T) {
	store := newFakeStore()
	handler := classes.NewHandler(store, zap.NewNop())

	req := testutil.JSONRequest(t, "POST", "/classes", map[string]any{
		"name":            "Watercolor Basics",
		"instructorEmail": "painter@example.com",
		"price":           49.99,
		"availableSeats":  12,
		"status":          "approved", // must be ignored
	})
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if len(store.byID) != 1 {
		t.Fatalf("stored classes: got %d, want 1", len(store.byID))
	}
	for _, c := range store.byID {
		if c.Status != models.StatusPending {
			t.Errorf("status: got %q, want %q", c.Status, models.StatusPending)
		}
	}
}

func TestApprovedListAfterStatusPatch(t *testing.T) {
	store := newFakeStore()
	handler := classes.NewHandler(store, zap.NewNop())

	id, err := store.Insert(context.Background(), models.Class{
		Name:            "Pottery",
		InstructorEmail: "potter@example.com",
		Status:          models.StatusPending,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Not approved yet: catalog is empty.
	rec := httptest.NewRecorder()
	handler.HandleListApproved(rec, httptest.NewRequest("GET", "/classes/approved", nil))
	var approved []models.Class
	testutil.DecodeJSON(t, rec, &approved)
	if len(approved) != 0 {
		t.Fatalf("approved before patch: got %d classes, want 0", len(approved))
	}

	// Approve it.
	req := testutil.JSONRequest(t, "PATCH", "/classes/"+id.Hex(), map[string]string{"setStatus": "approved"})
	req = testutil.WithChiURLParam(req, "id", id.Hex())
	rec = httptest.NewRecorder()
	handler.HandleSetStatus(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status: got %d, want %d", rec.Code, http.StatusOK)
	}

	// Now it appears in the catalog.
	rec = httptest.NewRecorder()
	handler.HandleListApproved(rec, httptest.NewRequest("GET", "/classes/approved", nil))
	testutil.DecodeJSON(t, rec, &approved)
	if len(approved) != 1 || approved[0].Name != "Pottery" {
		t.Fatalf("approved after patch: got %+v", approved)
	}

	// The owner listing includes it regardless of status.
	rec = httptest.NewRecorder()
	handler.HandleListByInstructor(rec, httptest.NewRequest("GET", "/classes?email=potter@example.com", nil))
	var owned []models.Class
	testutil.DecodeJSON(t, rec, &owned)
	if len(owned) != 1 {
		t.Fatalf("owner listing: got %d classes, want 1", len(owned))
	}
}

func TestHandleSetFeedback(t *testing.T) {
	store := newFakeStore()
	handler := classes.NewHandler(store, zap.NewNop())

	id, _ := store.Insert(context.Background(), models.Class{Name: "Chess", InstructorEmail: "coach@example.com"})

	req := testutil.JSONRequest(t, "PATCH", "/classes/"+id.Hex()+"/feedback", map[string]string{"feedbackText": "needs a syllabus"})
	req = testutil.WithChiURLParam(req, "id", id.Hex())
	rec := httptest.NewRecorder()
	handler.HandleSetFeedback(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if got := store.byID[id].Feedback; got != "needs a syllabus" {
		t.Errorf("feedback: got %q", got)
	}
}

func TestHandleSetSeats_UnknownIDPassesThrough(t *testing.T) {
	handler := classes.NewHandler(newFakeStore(), zap.NewNop())

	id := primitive.NewObjectID()
	req := testutil.JSONRequest(t, "PATCH", "/classes/"+id.Hex()+"/seats", map[string]int{"newSeats": 9})
	req = testutil.WithChiURLParam(req, "id", id.Hex())
	rec := httptest.NewRecorder()
	handler.HandleSetSeats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Matched int64 `json:"matchedCount"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Matched != 0 {
		t.Errorf("matchedCount: got %d, want 0", resp.Matched)
	}
}

func TestHandleSetStatus_InvalidID(t *testing.T) {
	handler := classes.NewHandler(newFakeStore(), zap.NewNop())

	req := testutil.JSONRequest(t, "PATCH", "/classes/zzz", map[string]string{"setStatus": "approved"})
	req = testutil.WithChiURLParam(req, "id", "zzz")
	rec := httptest.NewRecorder()
	handler.HandleSetStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleListByInstructor_MissingEmail(t *testing.T) {
	handler := classes.NewHandler(newFakeStore(), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.HandleListByInstructor(rec, httptest.NewRequest("GET", "/classes", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
