package handler

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	Borrow(ctx context.Context, copyID, personID, issuerID int64) (model.BorrowRecord, error)
	ReturnCopy(ctx context.Context, recordID, accepterID int64) (model.BorrowRecord, error)
	GetBorrowRecord(ctx context.Context, recordID int64) (model.BorrowRecord, error)
	GetOpenRecord(ctx context.Context, copyID int64) (model.BorrowRecord, error)
	CopyAvailability(ctx context.Context, copyID int64) (model.Availability, error)
	ListCopies(ctx context.Context, bookID int64, onlyAvailable bool, page, size int) (model.ListCopies, error)
	ListBorrowRecords(ctx context.Context, filter model.BorrowRecordFilter, page, size int) (model.ListBorrowRecords, error)
	ListOverdue(ctx context.Context) (model.OverdueReport, error)
}

var _ CirculationService = (*service.Service)(nil)
