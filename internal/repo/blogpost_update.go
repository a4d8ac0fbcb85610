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
	"github.com/atriumhq/atrium_backend/internal/repo/blogcategory"
	"github.com/atriumhq/atrium_backend/internal/repo/blogpost"
	"github.com/atriumhq/atrium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// BlogPostUpdate is the builder for updating BlogPost entities.
type BlogPostUpdate struct {
	config
	hooks    []Hook
	mutation *BlogPostMutation
}

// Where appends a list predicates to the BlogPostUpdate builder.
func (_u *BlogPostUpdate) Where(ps ...predicate.BlogPost) *BlogPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPostUpdate) SetUpdatedAt(v time.Time) *BlogPostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BlogPostUpdate) SetTitle(v string) *BlogPostUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableTitle(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BlogPostUpdate) SetSlug(v string) *BlogPostUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableSlug(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *BlogPostUpdate) SetContent(v string) *BlogPostUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableContent(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetBannerURL sets the "banner_url" field.
func (_u *BlogPostUpdate) SetBannerURL(v string) *BlogPostUpdate {
	_u.mutation.SetBannerURL(v)
	return _u
}

// SetNillableBannerURL sets the "banner_url" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableBannerURL(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetBannerURL(*v)
	}
	return _u
}

// ClearBannerURL clears the value of the "banner_url" field.
func (_u *BlogPostUpdate) ClearBannerURL() *BlogPostUpdate {
	_u.mutation.ClearBannerURL()
	return _u
}

// SetOgImageURL sets the "og_image_url" field.
func (_u *BlogPostUpdate) SetOgImageURL(v string) *BlogPostUpdate {
	_u.mutation.SetOgImageURL(v)
	return _u
}

// SetNillableOgImageURL sets the "og_image_url" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableOgImageURL(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetOgImageURL(*v)
	}
	return _u
}

// ClearOgImageURL clears the value of the "og_image_url" field.
func (_u *BlogPostUpdate) ClearOgImageURL() *BlogPostUpdate {
	_u.mutation.ClearOgImageURL()
	return _u
}

// SetExcerpt sets the "excerpt" field.
func (_u *BlogPostUpdate) SetExcerpt(v string) *BlogPostUpdate {
	_u.mutation.SetExcerpt(v)
	return _u
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableExcerpt(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetExcerpt(*v)
	}
	return _u
}

// ClearExcerpt clears the value of the "excerpt" field.
func (_u *BlogPostUpdate) ClearExcerpt() *BlogPostUpdate {
	_u.mutation.ClearExcerpt()
	return _u
}

// SetMetaTitle sets the "meta_title" field.
func (_u *BlogPostUpdate) SetMetaTitle(v string) *BlogPostUpdate {
	_u.mutation.SetMetaTitle(v)
	return _u
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableMetaTitle(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetMetaTitle(*v)
	}
	return _u
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (_u *BlogPostUpdate) ClearMetaTitle() *BlogPostUpdate {
	_u.mutation.ClearMetaTitle()
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *BlogPostUpdate) SetMetaDescription(v string) *BlogPostUpdate {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableMetaDescription(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlogPostUpdate) SetStatus(v blogpost.Status) *BlogPostUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableStatus(v *blogpost.Status) *BlogPostUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *BlogPostUpdate) SetAuthor(v string) *BlogPostUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableAuthor(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *BlogPostUpdate) SetCategoryID(v uuid.UUID) *BlogPostUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableCategoryID(v *uuid.UUID) *BlogPostUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *BlogPostUpdate) SetPublishedAt(v time.Time) *BlogPostUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillablePublishedAt(v *time.Time) *BlogPostUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *BlogPostUpdate) ClearPublishedAt() *BlogPostUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetCategory sets the "category" edge to the BlogCategory entity.
func (_u *BlogPostUpdate) SetCategory(v *BlogCategory) *BlogPostUpdate {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the BlogPostMutation object of the builder.
func (_u *BlogPostUpdate) Mutation() *BlogPostMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the BlogCategory entity.
func (_u *BlogPostUpdate) ClearCategory() *BlogPostUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlogPostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlogPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPostUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := blogpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "BlogPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := blogpost.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "BlogPost.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := blogpost.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "BlogPost.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Excerpt(); ok {
		if err := blogpost.ExcerptValidator(v); err != nil {
			return &ValidationError{Name: "excerpt", err: fmt.Errorf(`repo: validator failed for field "BlogPost.excerpt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitle(); ok {
		if err := blogpost.MetaTitleValidator(v); err != nil {
			return &ValidationError{Name: "meta_title", err: fmt.Errorf(`repo: validator failed for field "BlogPost.meta_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaDescription(); ok {
		if err := blogpost.MetaDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "meta_description", err: fmt.Errorf(`repo: validator failed for field "BlogPost.meta_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := blogpost.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "BlogPost.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := blogpost.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`repo: validator failed for field "BlogPost.author": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogPost.category"`)
	}
	return nil
}

func (_u *BlogPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpost.Table, blogpost.Columns, sqlgraph.NewFieldSpec(blogpost.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpost.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(blogpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(blogpost.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(blogpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.BannerURL(); ok {
		_spec.SetField(blogpost.FieldBannerURL, field.TypeString, value)
	}
	if _u.mutation.BannerURLCleared() {
		_spec.ClearField(blogpost.FieldBannerURL, field.TypeString)
	}
	if value, ok := _u.mutation.OgImageURL(); ok {
		_spec.SetField(blogpost.FieldOgImageURL, field.TypeString, value)
	}
	if _u.mutation.OgImageURLCleared() {
		_spec.ClearField(blogpost.FieldOgImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Excerpt(); ok {
		_spec.SetField(blogpost.FieldExcerpt, field.TypeString, value)
	}
	if _u.mutation.ExcerptCleared() {
		_spec.ClearField(blogpost.FieldExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitle(); ok {
		_spec.SetField(blogpost.FieldMetaTitle, field.TypeString, value)
	}
	if _u.mutation.MetaTitleCleared() {
		_spec.ClearField(blogpost.FieldMetaTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(blogpost.FieldMetaDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blogpost.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(blogpost.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(blogpost.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(blogpost.FieldPublishedAt, field.TypeTime)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blogpost.CategoryTable,
			Columns: []string{blogpost.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogcategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blogpost.CategoryTable,
			Columns: []string{blogpost.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogcategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlogPostUpdateOne is the builder for updating a single BlogPost entity.
type BlogPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlogPostMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPostUpdateOne) SetUpdatedAt(v time.Time) *BlogPostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BlogPostUpdateOne) SetTitle(v string) *BlogPostUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableTitle(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BlogPostUpdateOne) SetSlug(v string) *BlogPostUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableSlug(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *BlogPostUpdateOne) SetContent(v string) *BlogPostUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableContent(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetBannerURL sets the "banner_url" field.
func (_u *BlogPostUpdateOne) SetBannerURL(v string) *BlogPostUpdateOne {
	_u.mutation.SetBannerURL(v)
	return _u
}

// SetNillableBannerURL sets the "banner_url" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableBannerURL(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetBannerURL(*v)
	}
	return _u
}

// ClearBannerURL clears the value of the "banner_url" field.
func (_u *BlogPostUpdateOne) ClearBannerURL() *BlogPostUpdateOne {
	_u.mutation.ClearBannerURL()
	return _u
}

// SetOgImageURL sets the "og_image_url" field.
func (_u *BlogPostUpdateOne) SetOgImageURL(v string) *BlogPostUpdateOne {
	_u.mutation.SetOgImageURL(v)
	return _u
}

// SetNillableOgImageURL sets the "og_image_url" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableOgImageURL(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetOgImageURL(*v)
	}
	return _u
}

// ClearOgImageURL clears the value of the "og_image_url" field.
func (_u *BlogPostUpdateOne) ClearOgImageURL() *BlogPostUpdateOne {
	_u.mutation.ClearOgImageURL()
	return _u
}

// SetExcerpt sets the "excerpt" field.
func (_u *BlogPostUpdateOne) SetExcerpt(v string) *BlogPostUpdateOne {
	_u.mutation.SetExcerpt(v)
	return _u
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableExcerpt(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetExcerpt(*v)
	}
	return _u
}

// ClearExcerpt clears the value of the "excerpt" field.
func (_u *BlogPostUpdateOne) ClearExcerpt() *BlogPostUpdateOne {
	_u.mutation.ClearExcerpt()
	return _u
}

// SetMetaTitle sets the "meta_title" field.
func (_u *BlogPostUpdateOne) SetMetaTitle(v string) *BlogPostUpdateOne {
	_u.mutation.SetMetaTitle(v)
	return _u
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableMetaTitle(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetMetaTitle(*v)
	}
	return _u
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (_u *BlogPostUpdateOne) ClearMetaTitle() *BlogPostUpdateOne {
	_u.mutation.ClearMetaTitle()
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *BlogPostUpdateOne) SetMetaDescription(v string) *BlogPostUpdateOne {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableMetaDescription(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlogPostUpdateOne) SetStatus(v blogpost.Status) *BlogPostUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableStatus(v *blogpost.Status) *BlogPostUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *BlogPostUpdateOne) SetAuthor(v string) *BlogPostUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableAuthor(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *BlogPostUpdateOne) SetCategoryID(v uuid.UUID) *BlogPostUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableCategoryID(v *uuid.UUID) *BlogPostUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *BlogPostUpdateOne) SetPublishedAt(v time.Time) *BlogPostUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillablePublishedAt(v *time.Time) *BlogPostUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *BlogPostUpdateOne) ClearPublishedAt() *BlogPostUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetCategory sets the "category" edge to the BlogCategory entity.
func (_u *BlogPostUpdateOne) SetCategory(v *BlogCategory) *BlogPostUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the BlogPostMutation object of the builder.
func (_u *BlogPostUpdateOne) Mutation() *BlogPostMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the BlogCategory entity.
func (_u *BlogPostUpdateOne) ClearCategory() *BlogPostUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// Where appends a list predicates to the BlogPostUpdate builder.
func (_u *BlogPostUpdateOne) Where(ps ...predicate.BlogPost) *BlogPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlogPostUpdateOne) Select(field string, fields ...string) *BlogPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlogPost entity.
func (_u *BlogPostUpdateOne) Save(ctx context.Context) (*BlogPost, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPostUpdateOne) SaveX(ctx context.Context) *BlogPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlogPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPostUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := blogpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "BlogPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := blogpost.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "BlogPost.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := blogpost.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "BlogPost.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Excerpt(); ok {
		if err := blogpost.ExcerptValidator(v); err != nil {
			return &ValidationError{Name: "excerpt", err: fmt.Errorf(`repo: validator failed for field "BlogPost.excerpt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitle(); ok {
		if err := blogpost.MetaTitleValidator(v); err != nil {
			return &ValidationError{Name: "meta_title", err: fmt.Errorf(`repo: validator failed for field "BlogPost.meta_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaDescription(); ok {
		if err := blogpost.MetaDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "meta_description", err: fmt.Errorf(`repo: validator failed for field "BlogPost.meta_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := blogpost.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "BlogPost.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := blogpost.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`repo: validator failed for field "BlogPost.author": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogPost.category"`)
	}
	return nil
}

func (_u *BlogPostUpdateOne) sqlSave(ctx context.Context) (_node *BlogPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpost.Table, blogpost.Columns, sqlgraph.NewFieldSpec(blogpost.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BlogPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogpost.FieldID)
		for _, f := range fields {
			if !blogpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blogpost.FieldID {
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
		_spec.SetField(blogpost.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(blogpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(blogpost.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(blogpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.BannerURL(); ok {
		_spec.SetField(blogpost.FieldBannerURL, field.TypeString, value)
	}
	if _u.mutation.BannerURLCleared() {
		_spec.ClearField(blogpost.FieldBannerURL, field.TypeString)
	}
	if value, ok := _u.mutation.OgImageURL(); ok {
		_spec.SetField(blogpost.FieldOgImageURL, field.TypeString, value)
	}
	if _u.mutation.OgImageURLCleared() {
		_spec.ClearField(blogpost.FieldOgImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Excerpt(); ok {
		_spec.SetField(blogpost.FieldExcerpt, field.TypeString, value)
	}
	if _u.mutation.ExcerptCleared() {
		_spec.ClearField(blogpost.FieldExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitle(); ok {
		_spec.SetField(blogpost.FieldMetaTitle, field.TypeString, value)
	}
	if _u.mutation.MetaTitleCleared() {
		_spec.ClearField(blogpost.FieldMetaTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(blogpost.FieldMetaDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blogpost.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(blogpost.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(blogpost.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(blogpost.FieldPublishedAt, field.TypeTime)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blogpost.CategoryTable,
			Columns: []string{blogpost.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogcategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blogpost.CategoryTable,
			Columns: []string{blogpost.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogcategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlogPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
