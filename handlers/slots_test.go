package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"turfadmin/models"
	"turfadmin/services/slots"
	"turfadmin/utils"

	"github.com/gin-gonic/gin"
)

type fakeSlotService struct {
	day    *models.DaySchedule
	bulk   *models.BulkBlockResult
	err    error
	gotReq models.BlockRequest
}

func (f *fakeSlotService) DaySchedule(ctx context.Context, sess *utils.AdminSession, sport, date string) (*models.DaySchedule, error) {
	return f.day, f.err
}

func (f *fakeSlotService) Bookings(ctx context.Context, sess *utils.AdminSession, sport, date string) ([]models.Booking, error) {
	return nil, f.err
}

func (f *fakeSlotService) BlockSlot(ctx context.Context, sess *utils.AdminSession, sport string, req models.BlockRequest) (*models.DaySchedule, error) {
	f.gotReq = req
	return f.day, f.err
}

func (f *fakeSlotService) UnblockSlot(ctx context.Context, sess *utils.AdminSession, sport, blockID, date string) (*models.DaySchedule, error) {
	return f.day, f.err
}

func (f *fakeSlotService) BlockDates(ctx context.Context, sess *utils.AdminSession, sport string, req models.BulkBlockRequest) (*models.BulkBlockResult, error) {
	return f.bulk, f.err
}

func newSlotRouter(svc slots.SlotService, withSession bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if withSession {
		r.Use(func(c *gin.Context) {
			c.Set("session", &utils.AdminSession{SessionID: "s1", Username: "admin", BackendToken: "tok"})
		})
	}
	h := NewSlotHandler(svc)
	r.GET("/api/:sport/schedule", h.ScheduleHandler)
	r.POST("/api/:sport/blocks", h.BlockHandler)
	r.POST("/api/:sport/blocks/bulk", h.BulkBlockHandler)
	return r
}

func TestScheduleHandlerReturnsDay(t *testing.T) {
	svc := &fakeSlotService{day: &models.DaySchedule{Sport: "cricket", Date: "2024-07-04"}}
	r := newSlotRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cricket/schedule?date=2024-07-04", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var day models.DaySchedule
	if err := json.Unmarshal(w.Body.Bytes(), &day); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if day.Date != "2024-07-04" {
		t.Errorf("date = %q, want 2024-07-04", day.Date)
	}
}

func TestScheduleHandlerWithoutSession(t *testing.T) {
	svc := &fakeSlotService{day: &models.DaySchedule{}}
	r := newSlotRouter(svc, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cricket/schedule", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestScheduleHandlerValidationError(t *testing.T) {
	svc := &fakeSlotService{err: slots.NewValidationError("invalid date")}
	r := newSlotRouter(svc, true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cricket/schedule?date=bogus", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
}

func TestBlockHandlerPassesPayload(t *testing.T) {
	svc := &fakeSlotService{day: &models.DaySchedule{}}
	r := newSlotRouter(svc, true)

	body := `{"date":"2024-07-04","start_time":"14:00","end_time":"15:00","reason":"Maintenance"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pickleball/blocks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	if svc.gotReq.StartTime != "14:00" || svc.gotReq.Reason != "Maintenance" {
		t.Errorf("service got %+v", svc.gotReq)
	}
}

func TestBulkBlockHandlerPartialFailure(t *testing.T) {
	svc := &fakeSlotService{bulk: &models.BulkBlockResult{
		Succeeded: false,
		Dates: []models.DateBlockOutcome{
			{Date: "2024-07-04", Succeeded: true},
			{Date: "2024-07-05", Succeeded: false, FailedHours: 3},
		},
	}}
	r := newSlotRouter(svc, true)

	body := `{"dates":["2024-07-04","2024-07-05"],"reason":"Tournament"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cricket/blocks/bulk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMultiStatus {
		t.Fatalf("status = %d, want 207 (body %s)", w.Code, w.Body.String())
	}
	var result models.BulkBlockResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(result.Dates) != 2 || result.Succeeded {
		t.Errorf("result = %+v", result)
	}
}
