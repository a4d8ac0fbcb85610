// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
	"github.com/atriumhq/atrium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// InquiryReplyUpdate is the builder for updating InquiryReply entities.
type InquiryReplyUpdate struct {
	config
	hooks    []Hook
	mutation *InquiryReplyMutation
}

// Where appends a list predicates to the InquiryReplyUpdate builder.
func (_u *InquiryReplyUpdate) Where(ps ...predicate.InquiryReply) *InquiryReplyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInquiryID sets the "inquiry_id" field.
func (_u *InquiryReplyUpdate) SetInquiryID(v uuid.UUID) *InquiryReplyUpdate {
	_u.mutation.SetInquiryID(v)
	return _u
}

// SetNillableInquiryID sets the "inquiry_id" field if the given value is not nil.
func (_u *InquiryReplyUpdate) SetNillableInquiryID(v *uuid.UUID) *InquiryReplyUpdate {
	if v != nil {
		_u.SetInquiryID(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InquiryReplyUpdate) SetMessage(v string) *InquiryReplyUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InquiryReplyUpdate) SetNillableMessage(v *string) *InquiryReplyUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *InquiryReplyUpdate) SetMessageID(v string) *InquiryReplyUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *InquiryReplyUpdate) SetNillableMessageID(v *string) *InquiryReplyUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *InquiryReplyUpdate) ClearMessageID() *InquiryReplyUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetSentBy sets the "sent_by" field.
func (_u *InquiryReplyUpdate) SetSentBy(v string) *InquiryReplyUpdate {
	_u.mutation.SetSentBy(v)
	return _u
}

// SetNillableSentBy sets the "sent_by" field if the given value is not nil.
func (_u *InquiryReplyUpdate) SetNillableSentBy(v *string) *InquiryReplyUpdate {
	if v != nil {
		_u.SetSentBy(*v)
	}
	return _u
}

// SetInquiry sets the "inquiry" edge to the Inquiry entity.
func (_u *InquiryReplyUpdate) SetInquiry(v *Inquiry) *InquiryReplyUpdate {
	return _u.SetInquiryID(v.ID)
}

// Mutation returns the InquiryReplyMutation object of the builder.
func (_u *InquiryReplyUpdate) Mutation() *InquiryReplyMutation {
	return _u.mutation
}

// ClearInquiry clears the "inquiry" edge to the Inquiry entity.
func (_u *InquiryReplyUpdate) ClearInquiry() *InquiryReplyUpdate {
	_u.mutation.ClearInquiry()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InquiryReplyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InquiryReplyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InquiryReplyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InquiryReplyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InquiryReplyUpdate) check() error {
	if v, ok := _u.mutation.MessageID(); ok {
		if err := inquiryreply.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`repo: validator failed for field "InquiryReply.message_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SentBy(); ok {
		if err := inquiryreply.SentByValidator(v); err != nil {
			return &ValidationError{Name: "sent_by", err: fmt.Errorf(`repo: validator failed for field "InquiryReply.sent_by": %w`, err)}
		}
	}
	if _u.mutation.InquiryCleared() && len(_u.mutation.InquiryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InquiryReply.inquiry"`)
	}
	return nil
}

func (_u *InquiryReplyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inquiryreply.Table, inquiryreply.Columns, sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(inquiryreply.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(inquiryreply.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(inquiryreply.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SentBy(); ok {
		_spec.SetField(inquiryreply.FieldSentBy, field.TypeString, value)
	}
	if _u.mutation.InquiryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inquiryreply.InquiryTable,
			Columns: []string{inquiryreply.InquiryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InquiryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inquiryreply.InquiryTable,
			Columns: []string{inquiryreply.InquiryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inquiryreply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InquiryReplyUpdateOne is the builder for updating a single InquiryReply entity.
type InquiryReplyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InquiryReplyMutation
}

// SetInquiryID sets the "inquiry_id" field.
func (_u *InquiryReplyUpdateOne) SetInquiryID(v uuid.UUID) *InquiryReplyUpdateOne {
	_u.mutation.SetInquiryID(v)
	return _u
}

// SetNillableInquiryID sets the "inquiry_id" field if the given value is not nil.
func (_u *InquiryReplyUpdateOne) SetNillableInquiryID(v *uuid.UUID) *InquiryReplyUpdateOne {
	if v != nil {
		_u.SetInquiryID(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InquiryReplyUpdateOne) SetMessage(v string) *InquiryReplyUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InquiryReplyUpdateOne) SetNillableMessage(v *string) *InquiryReplyUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *InquiryReplyUpdateOne) SetMessageID(v string) *InquiryReplyUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *InquiryReplyUpdateOne) SetNillableMessageID(v *string) *InquiryReplyUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *InquiryReplyUpdateOne) ClearMessageID() *InquiryReplyUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetSentBy sets the "sent_by" field.
func (_u *InquiryReplyUpdateOne) SetSentBy(v string) *InquiryReplyUpdateOne {
	_u.mutation.SetSentBy(v)
	return _u
}

// SetNillableSentBy sets the "sent_by" field if the given value is not nil.
func (_u *InquiryReplyUpdateOne) SetNillableSentBy(v *string) *InquiryReplyUpdateOne {
	if v != nil {
		_u.SetSentBy(*v)
	}
	return _u
}

// SetInquiry sets the "inquiry" edge to the Inquiry entity.
func (_u *InquiryReplyUpdateOne) SetInquiry(v *Inquiry) *InquiryReplyUpdateOne {
	return _u.SetInquiryID(v.ID)
}

// Mutation returns the InquiryReplyMutation object of the builder.
func (_u *InquiryReplyUpdateOne) Mutation() *InquiryReplyMutation {
	return _u.mutation
}

// ClearInquiry clears the "inquiry" edge to the Inquiry entity.
func (_u *InquiryReplyUpdateOne) ClearInquiry() *InquiryReplyUpdateOne {
	_u.mutation.ClearInquiry()
	return _u
}

// Where appends a list predicates to the InquiryReplyUpdate builder.
func (_u *InquiryReplyUpdateOne) Where(ps ...predicate.InquiryReply) *InquiryReplyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InquiryReplyUpdateOne) Select(field string, fields ...string) *InquiryReplyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InquiryReply entity.
func (_u *InquiryReplyUpdateOne) Save(ctx context.Context) (*InquiryReply, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InquiryReplyUpdateOne) SaveX(ctx context.Context) *InquiryReply {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InquiryReplyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InquiryReplyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InquiryReplyUpdateOne) check() error {
	if v, ok := _u.mutation.MessageID(); ok {
		if err := inquiryreply.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`repo: validator failed for field "InquiryReply.message_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SentBy(); ok {
		if err := inquiryreply.SentByValidator(v); err != nil {
			return &ValidationError{Name: "sent_by", err: fmt.Errorf(`repo: validator failed for field "InquiryReply.sent_by": %w`, err)}
		}
	}
	if _u.mutation.InquiryCleared() && len(_u.mutation.InquiryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InquiryReply.inquiry"`)
	}
	return nil
}

func (_u *InquiryReplyUpdateOne) sqlSave(ctx context.Context) (_node *InquiryReply, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inquiryreply.Table, inquiryreply.Columns, sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InquiryReply.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inquiryreply.FieldID)
		for _, f := range fields {
			if !inquiryreply.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != inquiryreply.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(inquiryreply.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(inquiryreply.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(inquiryreply.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SentBy(); ok {
		_spec.SetField(inquiryreply.FieldSentBy, field.TypeString, value)
	}
	if _u.mutation.InquiryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inquiryreply.InquiryTable,
			Columns: []string{inquiryreply.InquiryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InquiryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inquiryreply.InquiryTable,
			Columns: []string{inquiryreply.InquiryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InquiryReply{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inquiryreply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
