package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"busbooking/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

func newTestRouter(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())

	h := NewHandler(db)
	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/buses", h.CreateBus)
	api.GET("/buses", h.GetBuses)
	api.GET("/buses/choices", h.GetBusChoices)
	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings", h.GetBookings)
	api.GET("/bookings/:id/e-ticket", h.GetETicketPDF)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(nil)
	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status: %d", w.Code)
	}
}

func TestCreateBusCreated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO buses").
		WithArgs("Express1", "CityA", "CityB", 40).
		WillReturnResult(sqlmock.NewResult(1, 1))

	r := newTestRouter(db)
	w := doJSON(t, r, http.MethodPost, "/api/buses",
		`{"name":"Express1","origin":"CityA","destination":"CityB","capacity":40}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}

	var bus struct {
		ID       int64 `json:"id"`
		Capacity int   `json:"capacity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bus); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if bus.ID != 1 || bus.Capacity != 40 {
		t.Fatalf("unexpected bus response: %s", w.Body.String())
	}
}

func TestCreateBusTruncatesFractionalCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO buses").
		WithArgs("Express1", "CityA", "CityB", 40).
		WillReturnResult(sqlmock.NewResult(1, 1))

	r := newTestRouter(db)
	w := doJSON(t, r, http.MethodPost, "/api/buses",
		`{"name":"Express1","origin":"CityA","destination":"CityB","capacity":40.7}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBusDuplicateNameIs409(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO buses").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	r := newTestRouter(db)
	w := doJSON(t, r, http.MethodPost, "/api/buses",
		`{"name":"Express1","origin":"CityA","destination":"CityB","capacity":40}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "duplicate_name") {
		t.Fatalf("expected duplicate_name code: %s", w.Body.String())
	}
}

func TestCreateBusMissingFieldIs400(t *testing.T) {
	r := newTestRouter(nil)
	w := doJSON(t, r, http.MethodPost, "/api/buses",
		`{"name":"","origin":"CityA","destination":"CityB","capacity":40}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingStatusMapping(t *testing.T) {
	busCols := []string{"id", "bus_name", "from_city", "to_city", "total_seats"}

	t.Run("unknown bus is 404", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock init error: %v", err)
		}
		defer db.Close()

		mock.ExpectQuery("FROM buses WHERE bus_name").
			WithArgs("Nonexistent").
			WillReturnRows(sqlmock.NewRows(busCols))

		r := newTestRouter(db)
		w := doJSON(t, r, http.MethodPost, "/api/bookings",
			`{"passengerName":"Carol","busName":"Nonexistent","travelDate":"2024-05-01","seatNumber":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status %d body %s", w.Code, w.Body.String())
		}
	})

	t.Run("seat out of range is 400", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock init error: %v", err)
		}
		defer db.Close()

		mock.ExpectQuery("FROM buses WHERE bus_name").
			WithArgs("Express1").
			WillReturnRows(sqlmock.NewRows(busCols).AddRow(7, "Express1", "CityA", "CityB", 40))

		r := newTestRouter(db)
		w := doJSON(t, r, http.MethodPost, "/api/bookings",
			`{"passengerName":"Bob","busName":"Express1","travelDate":"2024-05-01","seatNumber":41}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d body %s", w.Code, w.Body.String())
		}
	})

	t.Run("seat taken is 409", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock init error: %v", err)
		}
		defer db.Close()

		mock.ExpectQuery("FROM buses WHERE bus_name").
			WithArgs("Express1").
			WillReturnRows(sqlmock.NewRows(busCols).AddRow(7, "Express1", "CityA", "CityB", 40))
		mock.ExpectExec("INSERT INTO tickets").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		r := newTestRouter(db)
		w := doJSON(t, r, http.MethodPost, "/api/bookings",
			`{"passengerName":"Bob","busName":"Express1","travelDate":"2024-05-01","seatNumber":5}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("status %d body %s", w.Code, w.Body.String())
		}
	})

	t.Run("fractional seat is 400", func(t *testing.T) {
		r := newTestRouter(nil)
		w := doJSON(t, r, http.MethodPost, "/api/bookings",
			`{"passengerName":"Bob","busName":"Express1","travelDate":"2024-05-01","seatNumber":5.5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d body %s", w.Code, w.Body.String())
		}
	})
}

func TestGetBookingsShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "passenger_name", "bus_name", "from_city", "to_city", "travel_date", "seat_number"}
	mock.ExpectQuery("ORDER BY t.travel_date, b.bus_name, t.seat_number").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Alice", "Express1", "CityA", "CityB", "2024-05-01", 5))

	r := newTestRouter(db)
	w := doJSON(t, r, http.MethodGet, "/api/bookings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Bookings []struct {
			TicketID   int64  `json:"ticketId"`
			BusName    string `json:"busName"`
			SeatNumber int    `json:"seatNumber"`
		} `json:"bookings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if len(resp.Bookings) != 1 || resp.Bookings[0].BusName != "Express1" || resp.Bookings[0].SeatNumber != 5 {
		t.Fatalf("unexpected bookings response: %s", w.Body.String())
	}
}

func TestGetETicketPDF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "passenger_name", "bus_name", "from_city", "to_city", "travel_date", "seat_number"}
	mock.ExpectQuery("WHERE t.id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(3, "Alice", "Express1", "CityA", "CityB", "2024-05-01", 5))

	r := newTestRouter(db)
	w := doJSON(t, r, http.MethodGet, "/api/bookings/3/e-ticket", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type: %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("body is not a PDF")
	}

	t.Run("bad id is 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/bookings/abc/e-ticket", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d", w.Code)
		}
	})
}
