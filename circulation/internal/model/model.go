package model

import (
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type CopyStatus string

const (
	StatusAvailable CopyStatus = "AVAILABLE"
	StatusOnLoan    CopyStatus = "ON_LOAN"
)

func StatusOf(available bool) CopyStatus {
	if available {
		return StatusAvailable
	}
	return StatusOnLoan
}

type BookCopy struct {
	ID        int64      `json:"id" db:"id"`
	BookID    int64      `json:"bookId" db:"book_id"`
	CopyInfo  string     `json:"copyInfo" db:"copy_info"`
	Available bool       `json:"available" db:"available"`
	Status    CopyStatus `json:"status" db:"-"`
}

type ListCopies struct {
	Paging `json:",inline"`
	Items  []BookCopy `json:"items"`
}

type Person struct {
	ID         int64  `json:"id" db:"id"`
	FirstName  string `json:"firstName" db:"first_name"`
	LastName   string `json:"lastName" db:"last_name"`
	MiddleName string `json:"middleName,omitempty" db:"middle_name"`
}

// BorrowRecord is one loan episode. ReturnDate and AcceptedByUserID stay nil while it is open.
type BorrowRecord struct {
	ID               int64      `json:"id" db:"id"`
	BookCopyID       int64      `json:"bookCopyId" db:"book_copy_id"`
	PersonID         int64      `json:"personId" db:"person_id"`
	IssuedByUserID   int64      `json:"issuedByUserId" db:"issued_by_user_id"`
	AcceptedByUserID *int64     `json:"acceptedByUserId" db:"accepted_by_user_id"`
	BorrowDate       time.Time  `json:"borrowDate" db:"borrow_date"`
	ReturnDate       *time.Time `json:"returnDate" db:"return_date"`
}

func (r BorrowRecord) IsOpen() bool {
	return r.ReturnDate == nil
}

// BorrowRecordView is a record joined with the borrower and copy for listings.
type BorrowRecordView struct {
	BorrowRecord `json:",inline"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	CopyInfo     string `json:"copyInfo" db:"copy_info"`
}

type ListBorrowRecords struct {
	Paging `json:",inline"`
	Items  []BorrowRecordView `json:"items"`
}

type BorrowRecordFilter struct {
	PersonID   int64
	BookCopyID int64
	OpenOnly   bool
	// Search matches borrower first or last name, case-insensitive.
	Search string
}

type Availability struct {
	BookCopyID int64      `json:"bookCopyId"`
	Available  bool       `json:"available"`
	Status     CopyStatus `json:"status"`
}

type OverdueReport struct {
	Cutoff time.Time          `json:"cutoff"`
	Items  []BorrowRecordView `json:"items"`
}

type BorrowRequest struct {
	BookCopyID int64 `json:"copyId" validate:"required,gt=0"`
	PersonID   int64 `json:"personId" validate:"required,gt=0"`
}
