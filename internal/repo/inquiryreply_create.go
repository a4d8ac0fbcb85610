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

// InquiryReplyCreate is the builder for creating a InquiryReply entity.
type InquiryReplyCreate struct {
	config
	mutation *InquiryReplyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InquiryReplyCreate) SetCreatedAt(v time.Time) *InquiryReplyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InquiryReplyCreate) SetNillableCreatedAt(v *time.Time) *InquiryReplyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInquiryID sets the "inquiry_id" field.
func (_c *InquiryReplyCreate) SetInquiryID(v uuid.UUID) *InquiryReplyCreate {
	_c.mutation.SetInquiryID(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *InquiryReplyCreate) SetMessage(v string) *InquiryReplyCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *InquiryReplyCreate) SetMessageID(v string) *InquiryReplyCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *InquiryReplyCreate) SetNillableMessageID(v *string) *InquiryReplyCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetSentBy sets the "sent_by" field.
func (_c *InquiryReplyCreate) SetSentBy(v string) *InquiryReplyCreate {
	_c.mutation.SetSentBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InquiryReplyCreate) SetID(v uuid.UUID) *InquiryReplyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InquiryReplyCreate) SetNillableID(v *uuid.UUID) *InquiryReplyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInquiry sets the "inquiry" edge to the Inquiry entity.
func (_c *InquiryReplyCreate) SetInquiry(v *Inquiry) *InquiryReplyCreate {
	return _c.SetInquiryID(v.ID)
}

// Mutation returns the InquiryReplyMutation object of the builder.
func (_c *InquiryReplyCreate) Mutation() *InquiryReplyMutation {
	return _c.mutation
}

// Save creates the InquiryReply in the database.
func (_c *InquiryReplyCreate) Save(ctx context.Context) (*InquiryReply, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InquiryReplyCreate) SaveX(ctx context.Context) *InquiryReply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InquiryReplyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InquiryReplyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InquiryReplyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inquiryreply.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inquiryreply.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InquiryReplyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InquiryReply.created_at"`)}
	}
	if _, ok := _c.mutation.InquiryID(); !ok {
		return &ValidationError{Name: "inquiry_id", err: errors.New(`repo: missing required field "InquiryReply.inquiry_id"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`repo: missing required field "InquiryReply.message"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := inquiryreply.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`repo: validator failed for field "InquiryReply.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentBy(); !ok {
		return &ValidationError{Name: "sent_by", err: errors.New(`repo: missing required field "InquiryReply.sent_by"`)}
	}
	if v, ok := _c.mutation.SentBy(); ok {
		if err := inquiryreply.SentByValidator(v); err != nil {
			return &ValidationError{Name: "sent_by", err: fmt.Errorf(`repo: validator failed for field "InquiryReply.sent_by": %w`, err)}
		}
	}
	if len(_c.mutation.InquiryIDs()) == 0 {
		return &ValidationError{Name: "inquiry", err: errors.New(`repo: missing required edge "InquiryReply.inquiry"`)}
	}
	return nil
}

func (_c *InquiryReplyCreate) sqlSave(ctx context.Context) (*InquiryReply, error) {
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

func (_c *InquiryReplyCreate) createSpec() (*InquiryReply, *sqlgraph.CreateSpec) {
	var (
		_node = &InquiryReply{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inquiryreply.Table, sqlgraph.NewFieldSpec(inquiryreply.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inquiryreply.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(inquiryreply.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(inquiryreply.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.SentBy(); ok {
		_spec.SetField(inquiryreply.FieldSentBy, field.TypeString, value)
		_node.SentBy = value
	}
	if nodes := _c.mutation.InquiryIDs(); len(nodes) > 0 {
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
		_node.InquiryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InquiryReplyCreateBulk is the builder for creating many InquiryReply entities in bulk.
type InquiryReplyCreateBulk struct {
	config
	err      error
	builders []*InquiryReplyCreate
}

// Save creates the InquiryReply entities in the database.
func (_c *InquiryReplyCreateBulk) Save(ctx context.Context) ([]*InquiryReply, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InquiryReply, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InquiryReplyMutation)
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
func (_c *InquiryReplyCreateBulk) SaveX(ctx context.Context) []*InquiryReply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InquiryReplyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InquiryReplyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
