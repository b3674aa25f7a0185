package handler_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	service_mocks "github.com/Astemirdum/library-circulation/circulation/internal/handler/mocks"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

type recordingStats struct {
	mu     sync.Mutex
	events []kafka.EventStats
}

func (s *recordingStats) Log(ev kafka.EventStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

var borrowDate = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

func newRequest(method, target, body, userID, role string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set("Content-Type", "application/json")
	if userID != "" {
		r.Header.Set(auth.XUserIDHeader, userID)
	}
	if role != "" {
		r.Header.Set(auth.XUserRoleHeader, role)
	}
	return r
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	tests := []struct {
		name         string
		body         string
		role         string
		mockBehavior mockBehavior
		response     response
		published    int
	}{
		{
			name: "ok",
			body: `{"copyId":5,"personId":2}`,
			role: "LIBRARIAN",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Borrow(gomock.Any(), int64(5), int64(2), int64(1)).
					Return(model.BorrowRecord{ID: 11, BookCopyID: 5, PersonID: 2, IssuedByUserID: 1, BorrowDate: borrowDate}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":11,"bookCopyId":5,"personId":2,"issuedByUserId":1,"acceptedByUserId":null,"borrowDate":"2024-05-06T10:00:00Z","returnDate":null}`,
			},
			published: 1,
		},
		{
			name: "err. already on loan",
			body: `{"copyId":7,"personId":2}`,
			role: "LIBRARIAN",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Borrow(gomock.Any(), int64(7), int64(2), int64(1)).
					Return(model.BorrowRecord{}, errs.ErrAlreadyOnLoan)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"this copy is already checked out"}`,
			},
		},
		{
			name: "err. invalid reference",
			body: `{"copyId":999,"personId":2}`,
			role: "ADMIN",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Borrow(gomock.Any(), int64(999), int64(2), int64(1)).
					Return(model.BorrowRecord{}, errs.ErrUnknownReference)
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"selected person/copy no longer exists"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"copyId":5,"personId":2}`,
			role: "LIBRARIAN",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Borrow(gomock.Any(), int64(5), int64(2), int64(1)).
					Return(model.BorrowRecord{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"internal error"}`,
			},
		},
		{
			name:         "err. person required",
			body:         `{"copyId":5}`,
			role:         "LIBRARIAN",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. readers cannot issue",
			body:         `{"copyId":5,"personId":2}`,
			role:         "READER",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"staff only"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			stats := &recordingStats{}
			h := handler.New(svc, stats, zap.NewNop())
			e := h.NewRouter()

			tt.mockBehavior(svc)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, newRequest(http.MethodPost, "/api/v1/borrow-records", tt.body, "1", tt.role))

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			require.Len(t, stats.events, tt.published)
			if tt.published > 0 {
				require.Equal(t, kafka.EventBorrowed, stats.events[0].Kind)
				require.Equal(t, int64(11), stats.events[0].RecordID)
				require.Equal(t, borrowDate, stats.events[0].Timestamp)
			}
		})
	}
}

func TestHandler_ReturnCopy(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCirculationService)

	returnDate := borrowDate.Add(48 * time.Hour)
	accepter := int64(3)

	tests := []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			target: "/api/v1/borrow-records/11/return",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().ReturnCopy(gomock.Any(), int64(11), accepter).
					Return(model.BorrowRecord{ID: 11, BookCopyID: 5, PersonID: 2, IssuedByUserID: 1, AcceptedByUserID: &accepter, BorrowDate: borrowDate, ReturnDate: &returnDate}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":11,"bookCopyId":5,"personId":2,"issuedByUserId":1,"acceptedByUserId":3,"borrowDate":"2024-05-06T10:00:00Z","returnDate":"2024-05-08T10:00:00Z"}`,
		},
		{
			name:   "err. already returned",
			target: "/api/v1/borrow-records/11/return",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().ReturnCopy(gomock.Any(), int64(11), accepter).Return(model.BorrowRecord{}, errs.ErrAlreadyReturned)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"this copy is not currently checked out"}`,
		},
		{
			name:   "err. not found",
			target: "/api/v1/borrow-records/404/return",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().ReturnCopy(gomock.Any(), int64(404), accepter).Return(model.BorrowRecord{}, errs.ErrRecordNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"borrow record not found"}`,
		},
		{
			name:         "err. bad id",
			target:       "/api/v1/borrow-records/abc/return",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"recordId is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			stats := &recordingStats{}
			e := handler.New(svc, stats, zap.NewNop()).NewRouter()

			tt.mockBehavior(svc)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, newRequest(http.MethodPost, tt.target, "", "3", "LIBRARIAN"))

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			if tt.expectedCode == http.StatusOK {
				require.Len(t, stats.events, 1)
				require.Equal(t, kafka.EventReturned, stats.events[0].Kind)
				require.Equal(t, returnDate, stats.events[0].Timestamp)
			} else {
				require.Empty(t, stats.events)
			}
		})
	}
}

func TestHandler_ListBorrowRecords(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCirculationService)

	tests := []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:  "ok",
			query: "?personId=2&open=true&search=iva&page=1&size=10",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ListBorrowRecords(gomock.Any(), model.BorrowRecordFilter{PersonID: 2, OpenOnly: true, Search: "iva"}, 1, 10).
					Return(model.ListBorrowRecords{
						Paging: model.Paging{Page: 1, PageSize: 10, TotalElements: 1},
						Items: []model.BorrowRecordView{{
							BorrowRecord: model.BorrowRecord{ID: 11, BookCopyID: 5, PersonID: 2, IssuedByUserID: 1, BorrowDate: borrowDate},
							FirstName:    "Ivan",
							LastName:     "Petrov",
							CopyInfo:     "inv-0005",
						}},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"id":11,"bookCopyId":5,"personId":2,"issuedByUserId":1,"acceptedByUserId":null,"borrowDate":"2024-05-06T10:00:00Z","returnDate":null,"firstName":"Ivan","lastName":"Petrov","copyInfo":"inv-0005"}]}`,
		},
		{
			name:         "err. open is invalid",
			query:        "?open=maybe",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"open is invalid"}`,
		},
		{
			name:  "err. page out of range",
			query: "?page=9223372036854775807&size=100",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ListBorrowRecords(gomock.Any(), model.BorrowRecordFilter{}, math.MaxInt64, 100).
					Return(model.ListBorrowRecords{}, errs.ErrPageOutOfRange)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"page is out of range"}`,
		},
		{
			name:         "err. page is invalid",
			query:        "?page=x",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"page is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			e := handler.New(svc, nil, zap.NewNop()).NewRouter()

			tt.mockBehavior(svc)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/borrow-records"+tt.query, "", "1", "READER"))

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CopyAvailability(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, nil, zap.NewNop()).NewRouter()

	svc.EXPECT().CopyAvailability(gomock.Any(), int64(5)).
		Return(model.Availability{BookCopyID: 5, Available: true, Status: model.StatusAvailable}, nil)
	svc.EXPECT().CopyAvailability(gomock.Any(), int64(6)).
		Return(model.Availability{}, errs.ErrCopyNotFound)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/copies/5/availability", "", "1", "READER"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"bookCopyId":5,"available":true,"status":"AVAILABLE"}`, strings.Trim(w.Body.String(), "\n"))

	w = httptest.NewRecorder()
	e.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/copies/6/availability", "", "1", "READER"))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"book copy not found"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ListCopies(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, nil, zap.NewNop()).NewRouter()

	svc.EXPECT().ListCopies(gomock.Any(), int64(3), true, 0, 0).
		Return(model.ListCopies{
			Paging: model.Paging{TotalElements: 1},
			Items:  []model.BookCopy{{ID: 5, BookID: 3, CopyInfo: "inv-0005", Available: true, Status: model.StatusAvailable}},
		}, nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/books/3/copies?available=true", "", "1", "READER"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"page":0,"pageSize":0,"totalElements":1,"items":[{"id":5,"bookId":3,"copyInfo":"inv-0005","available":true,"status":"AVAILABLE"}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ListOverdue(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, nil, zap.NewNop()).NewRouter()

	cutoff := borrowDate.Add(-30 * 24 * time.Hour)
	svc.EXPECT().ListOverdue(gomock.Any()).Return(model.OverdueReport{Cutoff: cutoff, Items: []model.BorrowRecordView{}}, nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/reports/overdue", "", "1", "ADMIN"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"cutoff":"2024-04-06T10:00:00Z","items":[]}`, strings.Trim(w.Body.String(), "\n"))

	w = httptest.NewRecorder()
	e.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/reports/overdue", "", "1", "READER"))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Unauthenticated(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, nil, zap.NewNop()).NewRouter()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/copies/5/availability", "", "", ""))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, newRequest(http.MethodGet, "/manage/health", "", "", ""))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
