package auth

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
)

const (
	XUserIDHeader   = "X-User-Id"
	XUserRoleHeader = "X-User-Role"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleReader    Role = "READER"
)

// Caller is the staff member on whose behalf a request runs.
type Caller struct {
	UserID int64
	Role   Role
}

type callerKey struct{}

var (
	ErrNoCaller  = errors.New("no caller in context")
	ErrBadUserID = errors.New("user id is invalid")
	ErrBadRole   = errors.New("user role is invalid")
)

func SetAuthContext(ctx context.Context, userID int64, role Role) context.Context {
	return context.WithValue(ctx, callerKey{}, Caller{UserID: userID, Role: role})
}

func GetCaller(ctx context.Context) (Caller, error) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	if !ok {
		return Caller{}, ErrNoCaller
	}
	return c, nil
}

func GetUserID(ctx context.Context) (int64, error) {
	c, err := GetCaller(ctx)
	if err != nil {
		return 0, err
	}
	return c.UserID, nil
}

func IsAdmin(ctx context.Context) bool {
	c, err := GetCaller(ctx)
	return err == nil && c.Role == RoleAdmin
}

// IsStaff reports whether the caller may issue and accept loans.
func IsStaff(ctx context.Context) bool {
	c, err := GetCaller(ctx)
	return err == nil && (c.Role == RoleAdmin || c.Role == RoleLibrarian)
}

func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadUserID
	}
	return id, nil
}

func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleAdmin, RoleLibrarian, RoleReader:
		return r, nil
	default:
		return "", ErrBadRole
	}
}
