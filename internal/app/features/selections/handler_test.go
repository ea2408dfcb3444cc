package selections_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/camphub/camphub/internal/app/features/selections"
	selectionstore "github.com/camphub/camphub/internal/app/store/selections"
	"github.com/camphub/camphub/internal/domain/models"
	"github.com/camphub/camphub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeStore is an in-memory selections.Store enforcing the same
// (email, classId) uniqueness the real store gets from its index.
type fakeStore struct {
	byID map[primitive.ObjectID]models.SelectedClass
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[primitive.ObjectID]models.SelectedClass)}
}

func (f *fakeStore) Insert(_ context.Context, sel models.SelectedClass) (primitive.ObjectID, error) {
	for _, existing := range f.byID {
		if existing.Email == sel.Email && existing.ClassID == sel.ClassID {
			return primitive.NilObjectID, selectionstore.ErrAlreadyExists
		}
	}
	sel.ID = primitive.NewObjectID()
	f.byID[sel.ID] = sel
	return sel.ID, nil
}

func (f *fakeStore) ListByEmail(_ context.Context, email string) ([]models.SelectedClass, error) {
	var out []models.SelectedClass
	for _, sel := range f.byID {
		if sel.Email == email {
			out = append(out, sel)
		}
	}
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

func (f *fakeStore) SetSeatsByClass(_ context.Context, classID string, seats int) (int64, int64, error) {
	var matched int64
	for id, sel := range f.byID {
		if sel.ClassID == classID {
			sel.AvailableSeats = seats
			f.byID[id] = sel
			matched++
		}
	}
	return matched, matched, nil
}

func selectionBody(email, classID string) map[string]any {
	return map[string]any{
		"email":          email,
		"classId":        classID,
		"className":      "Archery",
		"availableSeats": 10,
	}
}

func TestHandleCreate_ThenDuplicate(t *testing.T) {
	store := newFakeStore()
	handler := selections.NewHandler(store, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, testutil.JSONRequest(t, "POST", "/selectedClasses", selectionBody("kid@example.com", "abc123")))
	if rec.Code != http.StatusOK {
		t.Fatalf("first create status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var first struct {
		Result string `json:"result"`
	}
	testutil.DecodeJSON(t, rec, &first)
	if first.Result != "created" {
		t.Fatalf("first result: got %q", first.Result)
	}

	rec = httptest.NewRecorder()
	handler.HandleCreate(rec, testutil.JSONRequest(t, "POST", "/selectedClasses", selectionBody("kid@example.com", "abc123")))
	var second struct {
		Result string `json:"result"`
	}
	testutil.DecodeJSON(t, rec, &second)
	if second.Result != "already_exists" {
		t.Errorf("second result: got %q, want %q", second.Result, "already_exists")
	}

	if len(store.byID) != 1 {
		t.Errorf("stored selections: got %d, want 1", len(store.byID))
	}
}

func TestHandleCreate_SameClassDifferentStudents(t *testing.T) {
	store := newFakeStore()
	handler := selections.NewHandler(store, zap.NewNop())

	for _, email := range []string{"a@example.com", "b@example.com"} {
		rec := httptest.NewRecorder()
		handler.HandleCreate(rec, testutil.JSONRequest(t, "POST", "/selectedClasses", selectionBody(email, "abc123")))
		if rec.Code != http.StatusOK {
			t.Fatalf("create for %s: got %d", email, rec.Code)
		}
	}
	if len(store.byID) != 2 {
		t.Errorf("stored selections: got %d, want 2", len(store.byID))
	}
}

func TestHandleDelete_RemovesExactlyOne(t *testing.T) {
	store := newFakeStore()
	handler := selections.NewHandler(store, zap.NewNop())

	keep, err := store.Insert(context.Background(), models.SelectedClass{Email: "kid@example.com", ClassID: "class-a"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	doomed, err := store.Insert(context.Background(), models.SelectedClass{Email: "kid@example.com", ClassID: "class-b"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/selectedClasses/"+doomed.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", doomed.Hex())
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Deleted int64 `json:"deletedCount"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Deleted != 1 {
		t.Errorf("deletedCount: got %d, want 1", resp.Deleted)
	}
	if _, ok := store.byID[keep]; !ok {
		t.Error("unrelated selection was deleted")
	}
	if _, ok := store.byID[doomed]; ok {
		t.Error("target selection still present")
	}
}

func TestHandleDelete_InvalidID(t *testing.T) {
	handler := selections.NewHandler(newFakeStore(), zap.NewNop())

	req := httptest.NewRequest("DELETE", "/selectedClasses/badid", nil)
	req = testutil.WithChiURLParam(req, "id", "badid")
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSetSeatsByClass(t *testing.T) {
	store := newFakeStore()
	handler := selections.NewHandler(store, zap.NewNop())

	_, _ = store.Insert(context.Background(), models.SelectedClass{Email: "a@example.com", ClassID: "class-a", AvailableSeats: 10})
	_, _ = store.Insert(context.Background(), models.SelectedClass{Email: "b@example.com", ClassID: "class-a", AvailableSeats: 10})
	other, _ := store.Insert(context.Background(), models.SelectedClass{Email: "c@example.com", ClassID: "class-b", AvailableSeats: 10})

	req := testutil.JSONRequest(t, "PATCH", "/selectedClasses/by-class/class-a/seats", map[string]int{"newSeats": 9})
	req = testutil.WithChiURLParam(req, "classId", "class-a")
	rec := httptest.NewRecorder()
	handler.HandleSetSeatsByClass(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Matched int64 `json:"matchedCount"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Matched != 2 {
		t.Errorf("matchedCount: got %d, want 2", resp.Matched)
	}
	if store.byID[other].AvailableSeats != 10 {
		t.Error("selection for a different class was modified")
	}
}
