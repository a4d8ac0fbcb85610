// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
	"github.com/google/uuid"
)

// InquiryCreate is the builder for creating a Inquiry entity.
type InquiryCreate struct {
	config
	mutation *InquiryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InquiryCreate) SetCreatedAt(v time.Time) *InquiryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableCreatedAt(v *time.Time) *InquiryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InquiryCreate) SetUpdatedAt(v time.Time) *InquiryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableUpdatedAt(v *time.Time) *InquiryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *InquiryCreate) SetEmail(v string) *InquiryCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *InquiryCreate) SetSubject(v string) *InquiryCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *InquiryCreate) SetMessage(v string) *InquiryCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InquiryCreate) SetStatus(v inquiry.Status) *InquiryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableStatus(v *inquiry.Status) *InquiryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *InquiryCreate) SetMessageID(v string) *InquiryCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableMessageID(v *string) *InquiryCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InquiryCreate) SetID(v uuid.UUID) *InquiryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableID(v *uuid.UUID) *InquiryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddReplyIDs adds the "replies" edge to the InquiryReply entity by IDs.
func (_c *InquiryCreate) AddReplyIDs(ids ...uuid.UUID) *InquiryCreate {
	_c.mutation.AddReplyIDs(ids...)
	return _c
}

// AddReplies adds the "replies" edges to the InquiryReply entity.
func (_c *InquiryCreate) AddReplies(v ...*InquiryReply) *InquiryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReplyIDs(ids...)
}

// Mutation returns the InquiryMutation object of the builder.
func (_c *InquiryCreate) Mutation() *InquiryMutation {
	return _c.mutation
}

// Save creates the Inquiry in the database.
func (_c *InquiryCreate) Save(ctx context.Context) (*Inquiry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InquiryCreate) SaveX(ctx context.Context) *Inquiry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InquiryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InquiryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InquiryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inquiry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := inquiry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := inquiry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inquiry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InquiryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Inquiry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Inquiry.updated_at"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Inquiry.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := inquiry.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Inquiry.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`repo: missing required field "Inquiry.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := inquiry.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Inquiry.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`repo: missing required field "Inquiry.message"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Inquiry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := inquiry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Inquiry.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := inquiry.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`repo: validator failed for field "Inquiry.message_id": %w`, err)}
		}
	}
	return nil
}

func (_c *InquiryCreate) sqlSave(ctx context.Context) (*Inquiry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InquiryCreate) createSpec() (*Inquiry, *sqlgraph.CreateSpec) {
	var (
		_node = &Inquiry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inquiry.Table, sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inquiry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(inquiry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(inquiry.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(inquiry.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(inquiry.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(inquiry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(inquiry.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if nodes := _c.mutation.RepliesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InquiryCreateBulk is the builder for creating many Inquiry entities in bulk.
type InquiryCreateBulk struct {
	config
	err      error
	builders []*InquiryCreate
}

// Save creates the Inquiry entities in the database.
func (_c *InquiryCreateBulk) Save(ctx context.Context) ([]*Inquiry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Inquiry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InquiryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InquiryCreateBulk) SaveX(ctx context.Context) []*Inquiry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InquiryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InquiryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
