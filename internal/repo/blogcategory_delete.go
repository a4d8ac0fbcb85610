// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium_backend/internal/repo/blogcategory"
	"github.com/atriumhq/atrium_backend/internal/repo/predicate"
)

// BlogCategoryDelete is the builder for deleting a BlogCategory entity.
type BlogCategoryDelete struct {
	config
	hooks    []Hook
	mutation *BlogCategoryMutation
}

// Where appends a list predicates to the BlogCategoryDelete builder.
func (_d *BlogCategoryDelete) Where(ps ...predicate.BlogCategory) *BlogCategoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlogCategoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlogCategoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlogCategoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blogcategory.Table, sqlgraph.NewFieldSpec(blogcategory.FieldID, field.TypeUUID))
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

// BlogCategoryDeleteOne is the builder for deleting a single BlogCategory entity.
type BlogCategoryDeleteOne struct {
	_d *BlogCategoryDelete
}

// Where appends a list predicates to the BlogCategoryDelete builder.
func (_d *BlogCategoryDeleteOne) Where(ps ...predicate.BlogCategory) *BlogCategoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlogCategoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blogcategory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlogCategoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
