// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BlogCategory is the predicate function for blogcategory builders.
type BlogCategory func(*sql.Selector)

// BlogPost is the predicate function for blogpost builders.
type BlogPost func(*sql.Selector)

// Inquiry is the predicate function for inquiry builders.
type Inquiry func(*sql.Selector)

// InquiryReply is the predicate function for inquiryreply builders.
type InquiryReply func(*sql.Selector)
