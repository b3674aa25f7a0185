package service

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

const defaultPageSizeLimit = 100

// Service is the only writer of borrow records. Every transition is a single statement;
// concurrent borrows of one copy are decided by the open-record unique index, not by locks here.
type Service struct {
	log  *zap.Logger
	repo repository.Repository
	cfg  config.Circulation
	now  func() time.Time
}

func NewService(repo repository.Repository, log *zap.Logger, cfg config.Circulation) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Borrow moves an AVAILABLE copy to ON_LOAN by opening a record issued by issuerID.
//
// Fails with errs.ErrAlreadyOnLoan when the copy already has an open record, including one
// committed by a concurrent request, and with errs.ErrUnknownReference when the copy, person
// or issuer does not exist.
func (s *Service) Borrow(ctx context.Context, copyID, personID, issuerID int64) (model.BorrowRecord, error) {
	if copyID <= 0 || personID <= 0 || issuerID <= 0 {
		return model.BorrowRecord{}, errs.ErrUnknownReference
	}

	if s.cfg.PreCheck {
		available, err := s.repo.CopyAvailable(ctx, copyID)
		switch {
		case errors.Is(err, errs.ErrCopyNotFound):
			return model.BorrowRecord{}, errs.ErrUnknownReference
		case err != nil:
			return model.BorrowRecord{}, s.unexpected("Borrow.CopyAvailable", err, zap.Int64("copy_id", copyID))
		case !available:
			return model.BorrowRecord{}, errs.ErrAlreadyOnLoan
		}
	}

	rec, err := s.repo.CreateBorrowRecord(ctx, copyID, personID, issuerID)
	if err != nil {
		if errs.IsDomain(err) {
			s.log.Debug("borrow rejected",
				zap.Int64("copy_id", copyID), zap.Int64("person_id", personID), zap.Error(err))
			return model.BorrowRecord{}, err
		}
		return model.BorrowRecord{}, s.unexpected("Borrow", err,
			zap.Int64("copy_id", copyID), zap.Int64("person_id", personID), zap.Int64("issuer_id", issuerID))
	}

	s.log.Info("copy borrowed",
		zap.Int64("record_id", rec.ID), zap.Int64("copy_id", copyID), zap.Int64("person_id", personID))
	return rec, nil
}

// ReturnCopy closes an open record. A record that was already returned is never touched again:
// the second caller gets errs.ErrAlreadyReturned, an unknown record errs.ErrRecordNotFound.
func (s *Service) ReturnCopy(ctx context.Context, recordID, accepterID int64) (model.BorrowRecord, error) {
	if recordID <= 0 {
		return model.BorrowRecord{}, errs.ErrRecordNotFound
	}
	if accepterID <= 0 {
		return model.BorrowRecord{}, errs.ErrUnknownReference
	}

	rec, err := s.repo.CloseBorrowRecord(ctx, recordID, accepterID)
	switch {
	case err == nil:
		s.log.Info("copy returned", zap.Int64("record_id", rec.ID), zap.Int64("copy_id", rec.BookCopyID))
		return rec, nil
	case errors.Is(err, errs.ErrNotFound):
		exists, exErr := s.repo.BorrowRecordExists(ctx, recordID)
		if exErr != nil {
			return model.BorrowRecord{}, s.unexpected("ReturnCopy.BorrowRecordExists", exErr, zap.Int64("record_id", recordID))
		}
		if exists {
			return model.BorrowRecord{}, errs.ErrAlreadyReturned
		}
		return model.BorrowRecord{}, errs.ErrRecordNotFound
	case errs.IsDomain(err):
		return model.BorrowRecord{}, err
	default:
		return model.BorrowRecord{}, s.unexpected("ReturnCopy", err,
			zap.Int64("record_id", recordID), zap.Int64("accepter_id", accepterID))
	}
}

func (s *Service) GetBorrowRecord(ctx context.Context, recordID int64) (model.BorrowRecord, error) {
	return s.repo.GetBorrowRecord(ctx, recordID)
}

func (s *Service) GetOpenRecord(ctx context.Context, copyID int64) (model.BorrowRecord, error) {
	return s.repo.GetOpenRecord(ctx, copyID)
}

func (s *Service) CopyAvailability(ctx context.Context, copyID int64) (model.Availability, error) {
	available, err := s.repo.CopyAvailable(ctx, copyID)
	if err != nil {
		return model.Availability{}, err
	}
	return model.Availability{
		BookCopyID: copyID,
		Available:  available,
		Status:     model.StatusOf(available),
	}, nil
}

func (s *Service) ListCopies(ctx context.Context, bookID int64, onlyAvailable bool, page, size int) (model.ListCopies, error) {
	page, size, err := s.paging(page, size)
	if err != nil {
		return model.ListCopies{}, err
	}
	return s.repo.ListCopies(ctx, bookID, onlyAvailable, page, size)
}

func (s *Service) ListBorrowRecords(ctx context.Context, filter model.BorrowRecordFilter, page, size int) (model.ListBorrowRecords, error) {
	page, size, err := s.paging(page, size)
	if err != nil {
		return model.ListBorrowRecords{}, err
	}
	return s.repo.ListBorrowRecords(ctx, filter, page, size)
}

// ListOverdue lists open records borrowed longer than the configured OverdueAfter ago.
func (s *Service) ListOverdue(ctx context.Context) (model.OverdueReport, error) {
	cutoff := s.now().Add(-s.cfg.OverdueAfter)
	items, err := s.repo.ListOverdue(ctx, cutoff)
	if err != nil {
		return model.OverdueReport{}, err
	}
	if items == nil {
		items = []model.BorrowRecordView{}
	}
	return model.OverdueReport{Cutoff: cutoff, Items: items}, nil
}

// paging defaults a missing page to 1 and a missing or oversized size to the configured limit,
// so every list query is bounded. Pages whose offset does not fit in int64 are rejected.
func (s *Service) paging(page, size int) (int, int, error) {
	limit := s.cfg.PageSizeLimit
	if limit <= 0 {
		limit = defaultPageSizeLimit
	}
	if size <= 0 || size > limit {
		size = limit
	}
	if page <= 0 {
		page = 1
	}
	if int64(page-1) > math.MaxInt64/int64(size) {
		return 0, 0, errs.ErrPageOutOfRange
	}
	return page, size, nil
}

func (s *Service) unexpected(op string, err error, fields ...zap.Field) error {
	s.log.Error(op, append(fields, zap.Error(err))...)
	return errors.Wrap(err, op)
}
