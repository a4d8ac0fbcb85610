// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlogCategoriesColumns holds the columns for the "blog_categories" table.
	BlogCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
	}
	// BlogCategoriesTable holds the schema information for the "blog_categories" table.
	BlogCategoriesTable = &schema.Table{
		Name:       "blog_categories",
		Columns:    BlogCategoriesColumns,
		PrimaryKey: []*schema.Column{BlogCategoriesColumns[0]},
	}
	// BlogPostsColumns holds the columns for the "blog_posts" table.
	BlogPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "banner_url", Type: field.TypeString, Nullable: true},
		{Name: "og_image_url", Type: field.TypeString, Nullable: true},
		{Name: "excerpt", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "meta_title", Type: field.TypeString, Nullable: true, Size: 60},
		{Name: "meta_description", Type: field.TypeString, Size: 160},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
		{Name: "author", Type: field.TypeString, Size: 255},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// BlogPostsTable holds the schema information for the "blog_posts" table.
	BlogPostsTable = &schema.Table{
		Name:       "blog_posts",
		Columns:    BlogPostsColumns,
		PrimaryKey: []*schema.Column{BlogPostsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blog_posts_blog_categories_posts",
				Columns:    []*schema.Column{BlogPostsColumns[14]},
				RefColumns: []*schema.Column{BlogCategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blogpost_status_published_at",
				Unique:  false,
				Columns: []*schema.Column{BlogPostsColumns[11], BlogPostsColumns[13]},
			},
		},
	}
	// InquiriesColumns holds the columns for the "inquiries" table.
	InquiriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "subject", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"unread", "read", "archived"}, Default: "unread"},
		{Name: "message_id", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// InquiriesTable holds the schema information for the "inquiries" table.
	InquiriesTable = &schema.Table{
		Name:       "inquiries",
		Columns:    InquiriesColumns,
		PrimaryKey: []*schema.Column{InquiriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inquiry_status",
				Unique:  false,
				Columns: []*schema.Column{InquiriesColumns[6]},
			},
		},
	}
	// InquiryRepliesColumns holds the columns for the "inquiry_replies" table.
	InquiryRepliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "message_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "sent_by", Type: field.TypeString, Size: 255},
		{Name: "inquiry_id", Type: field.TypeUUID},
	}
	// InquiryRepliesTable holds the schema information for the "inquiry_replies" table.
	InquiryRepliesTable = &schema.Table{
		Name:       "inquiry_replies",
		Columns:    InquiryRepliesColumns,
		PrimaryKey: []*schema.Column{InquiryRepliesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inquiry_replies_inquiries_replies",
				Columns:    []*schema.Column{InquiryRepliesColumns[5]},
				RefColumns: []*schema.Column{InquiriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inquiryreply_inquiry_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InquiryRepliesColumns[5], InquiryRepliesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlogCategoriesTable,
		BlogPostsTable,
		InquiriesTable,
		InquiryRepliesTable,
	}
)

func init() {
	BlogPostsTable.ForeignKeys[0].RefTable = BlogCategoriesTable
	InquiryRepliesTable.ForeignKeys[0].RefTable = InquiriesTable
}
