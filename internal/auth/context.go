package auth

import (
	"context"
	"strconv"

	"helloteam.app/api/internal/model"
)

// OptionalID is a workspace id that may be absent. The zero value is absent.
type OptionalID struct {
	value int64
	set   bool
}

func SomeID(v int64) OptionalID {
	return OptionalID{value: v, set: true}
}

// NoID is the absent value.
var NoID = OptionalID{}

func OptionalFromPtr(v *int64) OptionalID {
	if v == nil {
		return NoID
	}
	return SomeID(*v)
}

func (o OptionalID) Get() (int64, bool) {
	return o.value, o.set
}

func (o OptionalID) IsSet() bool {
	return o.set
}

// Ptr returns nil when absent. The pointer does not alias o.
func (o OptionalID) Ptr() *int64 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

func (o OptionalID) String() string {
	if !o.set {
		return "none"
	}
	return strconv.FormatInt(o.value, 10)
}

// Principal is what a verified access token asserts. It is comparable, so two
// resolutions of the same token can be checked with ==.
type Principal struct {
	UserID      int64
	WorkspaceID OptionalID
}

// RequestContext is handed explicitly to every tenant-aware operation for the
// lifetime of one request.
type RequestContext struct {
	User        *model.User
	WorkspaceID OptionalID
}

func (rc RequestContext) UserID() int64 {
	if rc.User == nil {
		return 0
	}
	return rc.User.ID
}

type contextKey struct{}

func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

func FromContext(ctx context.Context) (RequestContext, bool) {
	rc, ok := ctx.Value(contextKey{}).(RequestContext)
	return rc, ok && rc.User != nil
}
