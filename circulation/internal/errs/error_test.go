package errs_test

import (
	"fmt"
	"testing"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFromStorage(t *testing.T) {
	t.Parallel()
	internal := errors.New("connection reset")
	tests := []struct {
		name     string
		err      error
		expected error
		kind     error
	}{
		{
			name:     "nil",
			err:      nil,
			expected: nil,
		},
		{
			name:     "open copy unique violation",
			err:      &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: errs.OpenCopyConstraint},
			expected: errs.ErrAlreadyOnLoan,
			kind:     errs.ErrConflict,
		},
		{
			name:     "wrapped unique violation",
			err:      fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: errs.OpenCopyConstraint}),
			expected: errs.ErrAlreadyOnLoan,
			kind:     errs.ErrConflict,
		},
		{
			name:     "other unique violation",
			err:      &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "app_user_username_key"},
			expected: errs.ErrConflict,
			kind:     errs.ErrConflict,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "borrow_record_person_id_fkey"},
			expected: errs.ErrUnknownReference,
			kind:     errs.ErrInvalidReference,
		},
		{
			name:     "no rows",
			err:      pgx.ErrNoRows,
			expected: errs.ErrNotFound,
			kind:     errs.ErrNotFound,
		},
		{
			name:     "other pg error passes through",
			err:      &pgconn.PgError{Code: pgerrcode.SerializationFailure},
			expected: nil,
		},
		{
			name:     "plain error passes through",
			err:      internal,
			expected: internal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := errs.FromStorage(tt.err)
			if tt.err == nil {
				require.NoError(t, got)
				return
			}
			if tt.expected == nil {
				require.Equal(t, tt.err, got)
				require.False(t, errs.IsDomain(got))
				return
			}
			require.ErrorIs(t, got, tt.expected)
			if tt.kind != nil {
				require.ErrorIs(t, got, tt.kind)
				require.True(t, errs.IsDomain(got))
			}
		})
	}
}

func TestKinds(t *testing.T) {
	require.ErrorIs(t, errs.ErrAlreadyReturned, errs.ErrConflict)
	require.NotErrorIs(t, errs.ErrAlreadyReturned, errs.ErrNotFound)
	require.ErrorIs(t, errs.ErrRecordNotFound, errs.ErrNotFound)
	require.Equal(t, "this copy is already checked out", errs.ErrAlreadyOnLoan.Error())
	require.Equal(t, "selected person/copy no longer exists", errs.ErrUnknownReference.Error())
	require.ErrorIs(t, errs.ErrPageOutOfRange, errs.ErrInvalidArgument)
	require.True(t, errs.IsDomain(errs.ErrPageOutOfRange))
}
