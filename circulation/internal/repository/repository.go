package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBorrowRecord(ctx context.Context, copyID, personID, issuerID int64) (model.BorrowRecord, error)
	CloseBorrowRecord(ctx context.Context, recordID, accepterID int64) (model.BorrowRecord, error)
	BorrowRecordExists(ctx context.Context, recordID int64) (bool, error)
	GetBorrowRecord(ctx context.Context, recordID int64) (model.BorrowRecord, error)
	GetOpenRecord(ctx context.Context, copyID int64) (model.BorrowRecord, error)
	CopyAvailable(ctx context.Context, copyID int64) (bool, error)
	ListCopies(ctx context.Context, bookID int64, onlyAvailable bool, page, size int) (model.ListCopies, error)
	ListBorrowRecords(ctx context.Context, filter model.BorrowRecordFilter, page, size int) (model.ListBorrowRecords, error)
	ListOverdue(ctx context.Context, cutoff time.Time) ([]model.BorrowRecordView, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	borrowRecordTableName = `borrow_record`
	bookCopyTableName     = `book_copy`
	personTableName       = `person`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var recordColumns = []string{
	"br.id", "br.book_copy_id", "br.person_id", "br.issued_by_user_id",
	"br.accepted_by_user_id", "br.borrow_date", "br.return_date",
}

const returningRecord = "returning id, book_copy_id, person_id, issued_by_user_id, accepted_by_user_id, borrow_date, return_date"

// openRecordExists is correlated to book_copy aliased as bc.
const openRecordExists = `exists (select 1 from borrow_record br where br.book_copy_id = bc.id and br.return_date is null)`

// CreateBorrowRecord inserts an open record stamped with the database clock. The partial unique
// index on open records makes the insert itself the availability check.
func (r *repository) CreateBorrowRecord(ctx context.Context, copyID, personID, issuerID int64) (model.BorrowRecord, error) {
	query, args, err := qb.Insert(borrowRecordTableName).
		Columns("book_copy_id", "person_id", "issued_by_user_id").
		Values(copyID, personID, issuerID).
		Suffix(returningRecord).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BorrowRecord{}, r.storageErr("CreateBorrowRecord", err)
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BorrowRecord])
	if err != nil {
		return model.BorrowRecord{}, r.storageErr("CreateBorrowRecord", err)
	}
	return rec, nil
}

// CloseBorrowRecord stamps the return only while the record is still open; a record that is
// missing or already returned yields errs.ErrNotFound and is left untouched.
func (r *repository) CloseBorrowRecord(ctx context.Context, recordID, accepterID int64) (model.BorrowRecord, error) {
	query, args, err := qb.Update(borrowRecordTableName).
		Set("return_date", sq.Expr("now()")).
		Set("accepted_by_user_id", accepterID).
		Where(sq.Eq{"id": recordID, "return_date": nil}).
		Suffix(returningRecord).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BorrowRecord{}, r.storageErr("CloseBorrowRecord", err)
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BorrowRecord])
	if err != nil {
		return model.BorrowRecord{}, r.storageErr("CloseBorrowRecord", err)
	}
	return rec, nil
}

func (r *repository) BorrowRecordExists(ctx context.Context, recordID int64) (bool, error) {
	query, args, err := qb.Select("1").
		From(borrowRecordTableName).
		Where(sq.Eq{"id": recordID}).
		Prefix("select exists (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "BorrowRecordExists")
	}
	return exists, nil
}

func (r *repository) GetBorrowRecord(ctx context.Context, recordID int64) (model.BorrowRecord, error) {
	return r.getRecord(ctx, "GetBorrowRecord", sq.Eq{"br.id": recordID}, errs.ErrRecordNotFound)
}

func (r *repository) GetOpenRecord(ctx context.Context, copyID int64) (model.BorrowRecord, error) {
	return r.getRecord(ctx, "GetOpenRecord", sq.Eq{"br.book_copy_id": copyID, "br.return_date": nil}, errs.ErrNoOpenRecord)
}

func (r *repository) getRecord(ctx context.Context, op string, where sq.Sqlizer, notFound error) (model.BorrowRecord, error) {
	query, args, err := qb.Select(recordColumns...).
		From(borrowRecordTableName + " br").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BorrowRecord{}, errors.Wrap(err, op)
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BorrowRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BorrowRecord{}, notFound
		}
		return model.BorrowRecord{}, errors.Wrap(err, op)
	}
	return rec, nil
}

// CopyAvailable reports whether the copy has no open record. Reads are read-committed and may
// trail a concurrent transition.
func (r *repository) CopyAvailable(ctx context.Context, copyID int64) (bool, error) {
	query, args, err := qb.Select("not " + openRecordExists).
		From(bookCopyTableName + " bc").
		Where(sq.Eq{"bc.id": copyID}).
		ToSql()
	if err != nil {
		return false, err
	}
	var available bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, errs.ErrCopyNotFound
		}
		return false, errors.Wrap(err, "CopyAvailable")
	}
	return available, nil
}

func (r *repository) ListCopies(ctx context.Context, bookID int64, onlyAvailable bool, page, size int) (model.ListCopies, error) {
	where := sq.And{sq.Eq{"bc.book_id": bookID}}
	if onlyAvailable {
		where = append(where, sq.Expr("not "+openRecordExists))
	}

	total, err := r.count(ctx, qb.Select("count(*)").From(bookCopyTableName+" bc").Where(where))
	if err != nil {
		return model.ListCopies{}, errors.Wrap(err, "ListCopies count")
	}

	q := paginate(qb.Select("bc.id", "bc.book_id", "bc.copy_info", "not "+openRecordExists+" as available").
		From(bookCopyTableName+" bc").
		Where(where).
		OrderBy("bc.id"), page, size)
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListCopies{}, err
	}
	r.log.Debug("ListCopies", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListCopies{}, errors.Wrap(err, "ListCopies")
	}
	copies, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BookCopy])
	if err != nil {
		return model.ListCopies{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	for i := range copies {
		copies[i].Status = model.StatusOf(copies[i].Available)
	}

	return model.ListCopies{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: copies,
	}, nil
}

func (r *repository) ListBorrowRecords(ctx context.Context, filter model.BorrowRecordFilter, page, size int) (model.ListBorrowRecords, error) {
	where := recordFilter(filter)

	total, err := r.count(ctx, joinedRecords(qb.Select("count(*)")).Where(where))
	if err != nil {
		return model.ListBorrowRecords{}, errors.Wrap(err, "ListBorrowRecords count")
	}

	q := paginate(joinedRecords(qb.Select(viewColumns()...)).
		Where(where).
		OrderBy("br.borrow_date desc", "br.id desc"), page, size)
	items, err := r.selectViews(ctx, "ListBorrowRecords", q)
	if err != nil {
		return model.ListBorrowRecords{}, err
	}

	return model.ListBorrowRecords{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (r *repository) ListOverdue(ctx context.Context, cutoff time.Time) ([]model.BorrowRecordView, error) {
	q := joinedRecords(qb.Select(viewColumns()...)).
		Where(sq.Eq{"br.return_date": nil}).
		Where(sq.Lt{"br.borrow_date": cutoff}).
		OrderBy("br.borrow_date", "br.id")
	return r.selectViews(ctx, "ListOverdue", q)
}

func (r *repository) selectViews(ctx context.Context, op string, q sq.SelectBuilder) ([]model.BorrowRecordView, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug(op, zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BorrowRecordView])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// storageErr translates constraint violations into domain errors and logs everything else.
func (r *repository) storageErr(op string, err error) error {
	translated := errs.FromStorage(err)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		r.log.Debug(op, zap.String("code", pgErr.Code), zap.String("constraint", pgErr.ConstraintName))
	}
	if errs.IsDomain(translated) {
		return translated
	}
	return errors.Wrap(err, op)
}

func joinedRecords(b sq.SelectBuilder) sq.SelectBuilder {
	return b.From(borrowRecordTableName + " br").
		Join(fmt.Sprintf("%s p on p.id = br.person_id", personTableName)).
		Join(fmt.Sprintf("%s bc on bc.id = br.book_copy_id", bookCopyTableName))
}

func viewColumns() []string {
	cols := make([]string, 0, len(recordColumns)+3)
	cols = append(cols, recordColumns...)
	return append(cols, "p.first_name", "p.last_name", "bc.copy_info")
}

// likeEscaper quotes LIKE metacharacters with the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func recordFilter(f model.BorrowRecordFilter) sq.And {
	where := sq.And{}
	if f.PersonID != 0 {
		where = append(where, sq.Eq{"br.person_id": f.PersonID})
	}
	if f.BookCopyID != 0 {
		where = append(where, sq.Eq{"br.book_copy_id": f.BookCopyID})
	}
	if f.OpenOnly {
		where = append(where, sq.Eq{"br.return_date": nil})
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"p.first_name": pattern},
			sq.ILike{"p.last_name": pattern},
		})
	}
	return where
}

// paginate expects page >= 1 and size >= 1 as normalized by the service. Anything smaller falls
// back to the first page of one row rather than an unbounded scan.
func paginate(q sq.SelectBuilder, page, size int) sq.SelectBuilder {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}
	return q.Limit(uint64(size)).Offset(uint64(page-1) * uint64(size))
}
