// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/atriumhq/atrium_backend/internal/repo/blogcategory"
	"github.com/atriumhq/atrium_backend/internal/repo/blogpost"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
	"github.com/atriumhq/atrium_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blogcategoryMixin := schema.BlogCategory{}.Mixin()
	blogcategoryMixinFields0 := blogcategoryMixin[0].Fields()
	_ = blogcategoryMixinFields0
	blogcategoryMixinFields1 := blogcategoryMixin[1].Fields()
	_ = blogcategoryMixinFields1
	blogcategoryFields := schema.BlogCategory{}.Fields()
	_ = blogcategoryFields
	// blogcategoryDescCreatedAt is the schema descriptor for created_at field.
	blogcategoryDescCreatedAt := blogcategoryMixinFields1[0].Descriptor()
	// blogcategory.DefaultCreatedAt holds the default value on creation for the created_at field.
	blogcategory.DefaultCreatedAt = blogcategoryDescCreatedAt.Default.(func() time.Time)
	// blogcategoryDescUpdatedAt is the schema descriptor for updated_at field.
	blogcategoryDescUpdatedAt := blogcategoryMixinFields1[1].Descriptor()
	// blogcategory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blogcategory.DefaultUpdatedAt = blogcategoryDescUpdatedAt.Default.(func() time.Time)
	// blogcategory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blogcategory.UpdateDefaultUpdatedAt = blogcategoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blogcategoryDescName is the schema descriptor for name field.
	blogcategoryDescName := blogcategoryFields[0].Descriptor()
	// blogcategory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	blogcategory.NameValidator = blogcategoryDescName.Validators[0].(func(string) error)
	// blogcategoryDescSlug is the schema descriptor for slug field.
	blogcategoryDescSlug := blogcategoryFields[1].Descriptor()
	// blogcategory.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	blogcategory.SlugValidator = blogcategoryDescSlug.Validators[0].(func(string) error)
	// blogcategoryDescSortOrder is the schema descriptor for sort_order field.
	blogcategoryDescSortOrder := blogcategoryFields[2].Descriptor()
	// blogcategory.DefaultSortOrder holds the default value on creation for the sort_order field.
	blogcategory.DefaultSortOrder = blogcategoryDescSortOrder.Default.(int)
	// blogcategoryDescID is the schema descriptor for id field.
	blogcategoryDescID := blogcategoryMixinFields0[0].Descriptor()
	// blogcategory.DefaultID holds the default value on creation for the id field.
	blogcategory.DefaultID = blogcategoryDescID.Default.(func() uuid.UUID)
	blogpostMixin := schema.BlogPost{}.Mixin()
	blogpostMixinFields0 := blogpostMixin[0].Fields()
	_ = blogpostMixinFields0
	blogpostMixinFields1 := blogpostMixin[1].Fields()
	_ = blogpostMixinFields1
	blogpostFields := schema.BlogPost{}.Fields()
	_ = blogpostFields
	// blogpostDescCreatedAt is the schema descriptor for created_at field.
	blogpostDescCreatedAt := blogpostMixinFields1[0].Descriptor()
	// blogpost.DefaultCreatedAt holds the default value on creation for the created_at field.
	blogpost.DefaultCreatedAt = blogpostDescCreatedAt.Default.(func() time.Time)
	// blogpostDescUpdatedAt is the schema descriptor for updated_at field.
	blogpostDescUpdatedAt := blogpostMixinFields1[1].Descriptor()
	// blogpost.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blogpost.DefaultUpdatedAt = blogpostDescUpdatedAt.Default.(func() time.Time)
	// blogpost.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blogpost.UpdateDefaultUpdatedAt = blogpostDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blogpostDescTitle is the schema descriptor for title field.
	blogpostDescTitle := blogpostFields[0].Descriptor()
	// blogpost.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	blogpost.TitleValidator = func() func(string) error {
		validators := blogpostDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// blogpostDescSlug is the schema descriptor for slug field.
	blogpostDescSlug := blogpostFields[1].Descriptor()
	// blogpost.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	blogpost.SlugValidator = blogpostDescSlug.Validators[0].(func(string) error)
	// blogpostDescContent is the schema descriptor for content field.
	blogpostDescContent := blogpostFields[2].Descriptor()
	// blogpost.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	blogpost.ContentValidator = blogpostDescContent.Validators[0].(func(string) error)
	// blogpostDescExcerpt is the schema descriptor for excerpt field.
	blogpostDescExcerpt := blogpostFields[5].Descriptor()
	// blogpost.ExcerptValidator is a validator for the "excerpt" field. It is called by the builders before save.
	blogpost.ExcerptValidator = blogpostDescExcerpt.Validators[0].(func(string) error)
	// blogpostDescMetaTitle is the schema descriptor for meta_title field.
	blogpostDescMetaTitle := blogpostFields[6].Descriptor()
	// blogpost.MetaTitleValidator is a validator for the "meta_title" field. It is called by the builders before save.
	blogpost.MetaTitleValidator = blogpostDescMetaTitle.Validators[0].(func(string) error)
	// blogpostDescMetaDescription is the schema descriptor for meta_description field.
	blogpostDescMetaDescription := blogpostFields[7].Descriptor()
	// blogpost.MetaDescriptionValidator is a validator for the "meta_description" field. It is called by the builders before save.
	blogpost.MetaDescriptionValidator = blogpostDescMetaDescription.Validators[0].(func(string) error)
	// blogpostDescAuthor is the schema descriptor for author field.
	blogpostDescAuthor := blogpostFields[9].Descriptor()
	// blogpost.AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	blogpost.AuthorValidator = blogpostDescAuthor.Validators[0].(func(string) error)
	// blogpostDescID is the schema descriptor for id field.
	blogpostDescID := blogpostMixinFields0[0].Descriptor()
	// blogpost.DefaultID holds the default value on creation for the id field.
	blogpost.DefaultID = blogpostDescID.Default.(func() uuid.UUID)
	inquiryMixin := schema.Inquiry{}.Mixin()
	inquiryMixinFields0 := inquiryMixin[0].Fields()
	_ = inquiryMixinFields0
	inquiryMixinFields1 := inquiryMixin[1].Fields()
	_ = inquiryMixinFields1
	inquiryFields := schema.Inquiry{}.Fields()
	_ = inquiryFields
	// inquiryDescCreatedAt is the schema descriptor for created_at field.
	inquiryDescCreatedAt := inquiryMixinFields1[0].Descriptor()
	// inquiry.DefaultCreatedAt holds the default value on creation for the created_at field.
	inquiry.DefaultCreatedAt = inquiryDescCreatedAt.Default.(func() time.Time)
	// inquiryDescUpdatedAt is the schema descriptor for updated_at field.
	inquiryDescUpdatedAt := inquiryMixinFields1[1].Descriptor()
	// inquiry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inquiry.DefaultUpdatedAt = inquiryDescUpdatedAt.Default.(func() time.Time)
	// inquiry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inquiry.UpdateDefaultUpdatedAt = inquiryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inquiryDescEmail is the schema descriptor for email field.
	inquiryDescEmail := inquiryFields[0].Descriptor()
	// inquiry.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	inquiry.EmailValidator = inquiryDescEmail.Validators[0].(func(string) error)
	// inquiryDescSubject is the schema descriptor for subject field.
	inquiryDescSubject := inquiryFields[1].Descriptor()
	// inquiry.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	inquiry.SubjectValidator = inquiryDescSubject.Validators[0].(func(string) error)
	// inquiryDescMessageID is the schema descriptor for message_id field.
	inquiryDescMessageID := inquiryFields[4].Descriptor()
	// inquiry.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	inquiry.MessageIDValidator = inquiryDescMessageID.Validators[0].(func(string) error)
	// inquiryDescID is the schema descriptor for id field.
	inquiryDescID := inquiryMixinFields0[0].Descriptor()
	// inquiry.DefaultID holds the default value on creation for the id field.
	inquiry.DefaultID = inquiryDescID.Default.(func() uuid.UUID)
	inquiryreplyMixin := schema.InquiryReply{}.Mixin()
	inquiryreplyMixinFields0 := inquiryreplyMixin[0].Fields()
	_ = inquiryreplyMixinFields0
	inquiryreplyMixinFields1 := inquiryreplyMixin[1].Fields()
	_ = inquiryreplyMixinFields1
	inquiryreplyFields := schema.InquiryReply{}.Fields()
	_ = inquiryreplyFields
	// inquiryreplyDescCreatedAt is the schema descriptor for created_at field.
	inquiryreplyDescCreatedAt := inquiryreplyMixinFields1[0].Descriptor()
	// inquiryreply.DefaultCreatedAt holds the default value on creation for the created_at field.
	inquiryreply.DefaultCreatedAt = inquiryreplyDescCreatedAt.Default.(func() time.Time)
	// inquiryreplyDescMessageID is the schema descriptor for message_id field.
	inquiryreplyDescMessageID := inquiryreplyFields[2].Descriptor()
	// inquiryreply.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	inquiryreply.MessageIDValidator = inquiryreplyDescMessageID.Validators[0].(func(string) error)
	// inquiryreplyDescSentBy is the schema descriptor for sent_by field.
	inquiryreplyDescSentBy := inquiryreplyFields[3].Descriptor()
	// inquiryreply.SentByValidator is a validator for the "sent_by" field. It is called by the builders before save.
	inquiryreply.SentByValidator = inquiryreplyDescSentBy.Validators[0].(func(string) error)
	// inquiryreplyDescID is the schema descriptor for id field.
	inquiryreplyDescID := inquiryreplyMixinFields0[0].Descriptor()
	// inquiryreply.DefaultID holds the default value on creation for the id field.
	inquiryreply.DefaultID = inquiryreplyDescID.Default.(func() uuid.UUID)
}
