package blog

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrEmptyContent     = errors.New("content must not be empty")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("slug already in use")
	ErrInvalidSlug      = errors.New("slug may only contain lowercase letters, digits and hyphens")
	ErrReservedSlug     = errors.New("slug is reserved")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryInUse    = errors.New("category still has posts")
	ErrInvalidStatus    = errors.New("invalid post status")
)
