package errs

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Kinds. Every domain error below wraps exactly one of them.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidArgument  = errors.New("invalid argument")
)

var (
	ErrAlreadyOnLoan    = kind(ErrConflict, "this copy is already checked out")
	ErrAlreadyReturned  = kind(ErrConflict, "this copy is not currently checked out")
	ErrUnknownReference = kind(ErrInvalidReference, "selected person/copy no longer exists")
	ErrRecordNotFound   = kind(ErrNotFound, "borrow record not found")
	ErrCopyNotFound     = kind(ErrNotFound, "book copy not found")
	ErrNoOpenRecord     = kind(ErrNotFound, "copy has no open borrow record")
	ErrPageOutOfRange   = kind(ErrInvalidArgument, "page is out of range")
)

type kindError struct {
	kind error
	msg  string
}

func kind(k error, msg string) error {
	return &kindError{kind: k, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// OpenCopyConstraint is the partial unique index allowing one open borrow record per copy.
const OpenCopyConstraint = "borrow_record_open_copy_uidx"

// FromStorage translates driver errors into domain kinds:
// unique violations become conflicts (ErrAlreadyOnLoan for OpenCopyConstraint), foreign key violations ErrUnknownReference
// and missing rows ErrNotFound. Other errors are returned unchanged.
func FromStorage(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == OpenCopyConstraint {
			return ErrAlreadyOnLoan
		}
		return ErrConflict
	case pgerrcode.ForeignKeyViolation:
		return ErrUnknownReference
	}
	return err
}

// IsDomain reports whether err belongs to one of the domain kinds.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrInvalidReference) || errors.Is(err, ErrInvalidArgument)
}
