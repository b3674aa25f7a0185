package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	_ "github.com/Astemirdum/library-circulation/swagger"
)

type Handler struct {
	circulationSvc CirculationService
	stats          StatsLog
	log            *zap.Logger
}

func New(circulationSvc CirculationService, stats StatsLog, log *zap.Logger) *Handler {
	if stats == nil {
		stats = NopStatsLog{}
	}
	return &Handler{
		circulationSvc: circulationSvc,
		stats:          stats,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.POST("/borrow-records", h.Borrow, md.RequireStaff)
	api.POST("/borrow-records/:recordId/return", h.ReturnCopy, md.RequireStaff)
	api.GET("/borrow-records", h.ListBorrowRecords)
	api.GET("/borrow-records/:recordId", h.GetBorrowRecord)

	api.GET("/copies/:copyId/availability", h.CopyAvailability)
	api.GET("/copies/:copyId/open-record", h.GetOpenRecord)
	api.GET("/books/:bookId/copies", h.ListCopies)

	api.GET("/reports/overdue", h.ListOverdue, md.RequireStaff)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Borrow godoc
// @Summary  Lend a copy to a person
// @Tags     borrow-records
// @Accept   json
// @Produce  json
// @Param    request body model.BorrowRequest true "copy and borrower"
// @Success  201 {object} model.BorrowRecord
// @Failure  409 {object} echo.HTTPError "copy already on loan"
// @Failure  422 {object} echo.HTTPError "unknown copy or person"
// @Router   /api/v1/borrow-records [post]
func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	issuerID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	rec, err := h.circulationSvc.Borrow(ctx, req.BookCopyID, req.PersonID, issuerID)
	if err != nil {
		return httpError(err)
	}
	h.publish(kafka.EventBorrowed, rec, issuerID)

	return c.JSON(http.StatusCreated, rec)
}

// ReturnCopy godoc
// @Summary  Accept a copy back
// @Tags     borrow-records
// @Produce  json
// @Param    recordId path int true "borrow record id"
// @Success  200 {object} model.BorrowRecord
// @Failure  404 {object} echo.HTTPError "no such record"
// @Failure  409 {object} echo.HTTPError "already returned"
// @Router   /api/v1/borrow-records/{recordId}/return [post]
func (h *Handler) ReturnCopy(c echo.Context) error {
	recordID, err := idParam(c, "recordId")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	accepterID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	rec, err := h.circulationSvc.ReturnCopy(ctx, recordID, accepterID)
	if err != nil {
		return httpError(err)
	}
	h.publish(kafka.EventReturned, rec, accepterID)

	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) GetBorrowRecord(c echo.Context) error {
	recordID, err := idParam(c, "recordId")
	if err != nil {
		return err
	}
	rec, err := h.circulationSvc.GetBorrowRecord(c.Request().Context(), recordID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

// ListBorrowRecords godoc
// @Summary  Search borrow records
// @Tags     borrow-records
// @Produce  json
// @Param    personId query int    false "borrower"
// @Param    copyId   query int    false "copy"
// @Param    open     query bool   false "only records not yet returned"
// @Param    search   query string false "borrower name fragment"
// @Param    page     query int    false "page, from 1"
// @Param    size     query int    false "page size"
// @Success  200 {object} model.ListBorrowRecords
// @Router   /api/v1/borrow-records [get]
func (h *Handler) ListBorrowRecords(c echo.Context) error {
	var (
		filter model.BorrowRecordFilter
		err    error
	)
	if filter.PersonID, err = int64Query(c, "personId"); err != nil {
		return err
	}
	if filter.BookCopyID, err = int64Query(c, "copyId"); err != nil {
		return err
	}
	if openParam := c.QueryParam("open"); openParam != "" {
		if filter.OpenOnly, err = strconv.ParseBool(openParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("open is invalid"))
		}
	}
	filter.Search = c.QueryParam("search")
	page, size, err := paging(c)
	if err != nil {
		return err
	}

	records, err := h.circulationSvc.ListBorrowRecords(c.Request().Context(), filter, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// CopyAvailability godoc
// @Summary  Whether a copy can be lent right now
// @Tags     copies
// @Produce  json
// @Param    copyId path int true "copy id"
// @Success  200 {object} model.Availability
// @Failure  404 {object} echo.HTTPError
// @Router   /api/v1/copies/{copyId}/availability [get]
func (h *Handler) CopyAvailability(c echo.Context) error {
	copyID, err := idParam(c, "copyId")
	if err != nil {
		return err
	}
	availability, err := h.circulationSvc.CopyAvailability(c.Request().Context(), copyID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, availability)
}

func (h *Handler) GetOpenRecord(c echo.Context) error {
	copyID, err := idParam(c, "copyId")
	if err != nil {
		return err
	}
	rec, err := h.circulationSvc.GetOpenRecord(c.Request().Context(), copyID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) ListCopies(c echo.Context) error {
	bookID, err := idParam(c, "bookId")
	if err != nil {
		return err
	}
	var onlyAvailable bool
	if availableParam := c.QueryParam("available"); availableParam != "" {
		if onlyAvailable, err = strconv.ParseBool(availableParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("available is invalid"))
		}
	}
	page, size, err := paging(c)
	if err != nil {
		return err
	}

	copies, err := h.circulationSvc.ListCopies(c.Request().Context(), bookID, onlyAvailable, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) ListOverdue(c echo.Context) error {
	report, err := h.circulationSvc.ListOverdue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// publish is best effort; the transition is already committed.
func (h *Handler) publish(kind kafka.EventKind, rec model.BorrowRecord, userID int64) {
	if err := h.stats.Log(newEvent(kind, rec, userID)); err != nil {
		h.log.Warn("stats.Log", zap.String("kind", string(kind)), zap.Int64("record_id", rec.ID), zap.Error(err))
	}
}

// httpError maps domain kinds onto status codes. Anything else is opaque to the caller.
func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}
}

func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("%s is invalid", name))
	}
	return id, nil
}

func int64Query(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("%s is invalid", name))
	}
	return v, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil || page < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	return page, size, nil
}
