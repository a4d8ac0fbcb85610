// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
	"github.com/atriumhq/atrium_backend/internal/repo/predicate"
)

// InquiryReplyDelete is the builder for deleting a InquiryReply entity.
type InquiryReplyDelete struct {
	config
	hooks    []Hook
	mutation *InquiryReplyMutation
}

// Where appends a list predicates to the InquiryReplyDelete builder.
func (_d *InquiryReplyDelete) Where(ps ...predicate.InquiryReply) *InquiryReplyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InquiryReplyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InquiryReplyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InquiryReplyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(inquiryreply.Table, sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InquiryReplyDeleteOne is the builder for deleting a single InquiryReply entity.
type InquiryReplyDeleteOne struct {
	_d *InquiryReplyDelete
}

// Where appends a list predicates to the InquiryReplyDelete builder.
func (_d *InquiryReplyDeleteOne) Where(ps ...predicate.InquiryReply) *InquiryReplyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InquiryReplyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{inquiryreply.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InquiryReplyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
