// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
	"github.com/atriumhq/atrium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// InquiryUpdate is the builder for updating Inquiry entities.
type InquiryUpdate struct {
	config
	hooks    []Hook
	mutation *InquiryMutation
}

// Where appends a list predicates to the InquiryUpdate builder.
func (_u *InquiryUpdate) Where(ps ...predicate.Inquiry) *InquiryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InquiryUpdate) SetUpdatedAt(v time.Time) *InquiryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *InquiryUpdate) SetEmail(v string) *InquiryUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableEmail(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *InquiryUpdate) SetSubject(v string) *InquiryUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableSubject(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InquiryUpdate) SetMessage(v string) *InquiryUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableMessage(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InquiryUpdate) SetStatus(v inquiry.Status) *InquiryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableStatus(v *inquiry.Status) *InquiryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *InquiryUpdate) SetMessageID(v string) *InquiryUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableMessageID(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *InquiryUpdate) ClearMessageID() *InquiryUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// AddReplyIDs adds the "replies" edge to the InquiryReply entity by IDs.
func (_u *InquiryUpdate) AddReplyIDs(ids ...uuid.UUID) *InquiryUpdate {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the InquiryReply entity.
func (_u *InquiryUpdate) AddReplies(v ...*InquiryReply) *InquiryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the InquiryMutation object of the builder.
func (_u *InquiryUpdate) Mutation() *InquiryMutation {
	return _u.mutation
}

// ClearReplies clears all "replies" edges to the InquiryReply entity.
func (_u *InquiryUpdate) ClearReplies() *InquiryUpdate {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to InquiryReply entities by IDs.
func (_u *InquiryUpdate) RemoveReplyIDs(ids ...uuid.UUID) *InquiryUpdate {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to InquiryReply entities.
func (_u *InquiryUpdate) RemoveReplies(v ...*InquiryReply) *InquiryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InquiryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InquiryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InquiryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InquiryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InquiryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inquiry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InquiryUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := inquiry.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Inquiry.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := inquiry.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Inquiry.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := inquiry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Inquiry.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageID(); ok {
		if err := inquiry.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`repo: validator failed for field "Inquiry.message_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InquiryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inquiry.Table, inquiry.Columns, sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inquiry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(inquiry.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(inquiry.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(inquiry.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inquiry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(inquiry.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(inquiry.FieldMessageID, field.TypeString)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inquiry.RepliesTable,
			Columns: []string{inquiry.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inquiry.RepliesTable,
			Columns: []string{inquiry.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inquiry.RepliesTable,
			Columns: []string{inquiry.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inquiry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InquiryUpdateOne is the builder for updating a single Inquiry entity.
type InquiryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InquiryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InquiryUpdateOne) SetUpdatedAt(v time.Time) *InquiryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *InquiryUpdateOne) SetEmail(v string) *InquiryUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableEmail(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *InquiryUpdateOne) SetSubject(v string) *InquiryUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableSubject(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InquiryUpdateOne) SetMessage(v string) *InquiryUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableMessage(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InquiryUpdateOne) SetStatus(v inquiry.Status) *InquiryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableStatus(v *inquiry.Status) *InquiryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *InquiryUpdateOne) SetMessageID(v string) *InquiryUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableMessageID(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *InquiryUpdateOne) ClearMessageID() *InquiryUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// AddReplyIDs adds the "replies" edge to the InquiryReply entity by IDs.
func (_u *InquiryUpdateOne) AddReplyIDs(ids ...uuid.UUID) *InquiryUpdateOne {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the InquiryReply entity.
func (_u *InquiryUpdateOne) AddReplies(v ...*InquiryReply) *InquiryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the InquiryMutation object of the builder.
func (_u *InquiryUpdateOne) Mutation() *InquiryMutation {
	return _u.mutation
}

// ClearReplies clears all "replies" edges to the InquiryReply entity.
func (_u *InquiryUpdateOne) ClearReplies() *InquiryUpdateOne {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to InquiryReply entities by IDs.
func (_u *InquiryUpdateOne) RemoveReplyIDs(ids ...uuid.UUID) *InquiryUpdateOne {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to InquiryReply entities.
func (_u *InquiryUpdateOne) RemoveReplies(v ...*InquiryReply) *InquiryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Where appends a list predicates to the InquiryUpdate builder.
func (_u *InquiryUpdateOne) Where(ps ...predicate.Inquiry) *InquiryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InquiryUpdateOne) Select(field string, fields ...string) *InquiryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Inquiry entity.
func (_u *InquiryUpdateOne) Save(ctx context.Context) (*Inquiry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InquiryUpdateOne) SaveX(ctx context.Context) *Inquiry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InquiryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InquiryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InquiryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inquiry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InquiryUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := inquiry.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Inquiry.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := inquiry.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Inquiry.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := inquiry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Inquiry.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageID(); ok {
		if err := inquiry.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`repo: validator failed for field "Inquiry.message_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InquiryUpdateOne) sqlSave(ctx context.Context) (_node *Inquiry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inquiry.Table, inquiry.Columns, sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Inquiry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inquiry.FieldID)
		for _, f := range fields {
			if !inquiry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != inquiry.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inquiry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(inquiry.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(inquiry.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(inquiry.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inquiry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(inquiry.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(inquiry.FieldMessageID, field.TypeString)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inquiry.RepliesTable,
			Columns: []string{inquiry.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inquiry.RepliesTable,
			Columns: []string{inquiry.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inquiry.RepliesTable,
			Columns: []string{inquiry.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Inquiry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inquiry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
