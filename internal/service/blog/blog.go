package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/atriumhq/atrium_backend/internal/repo"
	entcategory "github.com/atriumhq/atrium_backend/internal/repo/blogcategory"
	entpost "github.com/atriumhq/atrium_backend/internal/repo/blogpost"
)

const (
	defaultPageSize = 50
	maxPageSize     = 50
)

type CreatePostInput struct {
	Title           string
	Slug            string
	Content         string
	Excerpt         *string
	BannerURL       *string
	OgImageURL      *string
	MetaTitle       *string
	MetaDescription string
	Status          string
	Author          string
	CategoryID      uuid.UUID
}

// UpdatePostInput carries a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	Title           *string
	Slug            *string
	Content         *string
	Excerpt         *string
	BannerURL       *string
	OgImageURL      *string
	MetaTitle       *string
	MetaDescription *string
	Status          *string
	CategoryID      *uuid.UUID
}

type CategoryInput struct {
	Name      string
	Slug      string
	SortOrder int
}

// CategorySummary is a category with its published-post count, for the
// public category index.
type CategorySummary struct {
	*repo.BlogCategory
	PostCount int `json:"postCount"`
}

type Service interface {
	// Public surface: published posts only.
	ListPublished(ctx context.Context, categorySlug string, limit int) ([]*repo.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*repo.BlogPost, error)
	PublishedCategories(ctx context.Context) ([]CategorySummary, error)

	// Admin surface.
	ListPosts(ctx context.Context) ([]*repo.BlogPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*repo.BlogPost, error)
	CreatePost(ctx context.Context, in CreatePostInput) (*repo.BlogPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, in UpdatePostInput) (*repo.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*repo.BlogCategory, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*repo.BlogCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (*repo.BlogCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type blogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &blogService{db: db}
}

// ---------------------------------------------------------------------------
// Public
// ---------------------------------------------------------------------------

func (s *blogService) ListPublished(ctx context.Context, categorySlug string, limit int) ([]*repo.BlogPost, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}

	q := s.db.BlogPost.Query().
		Where(entpost.StatusEQ(entpost.StatusPublished)).
		WithCategory().
		Order(entpost.ByPublishedAt(sql.OrderDesc())).
		Limit(limit)

	if categorySlug != "" {
		q = q.Where(entpost.HasCategoryWith(entcategory.Slug(categorySlug)))
	}

	posts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*repo.BlogPost, error) {
	post, err := s.db.BlogPost.Query().
		Where(
			entpost.Slug(slug),
			entpost.StatusEQ(entpost.StatusPublished),
		).
		WithCategory().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get published post: %w", err)
	}
	return post, nil
}

func (s *blogService) PublishedCategories(ctx context.Context) ([]CategorySummary, error) {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		CategoryID uuid.UUID `json:"category_id"`
		Count      int       `json:"count"`
	}
	err = s.db.BlogPost.Query().
		Where(entpost.StatusEQ(entpost.StatusPublished)).
		GroupBy(entpost.FieldCategoryID).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count published posts: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}

	out := make([]CategorySummary, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategorySummary{BlogCategory: cat, PostCount: counts[cat.ID]})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Admin posts
// ---------------------------------------------------------------------------

func (s *blogService) ListPosts(ctx context.Context) ([]*repo.BlogPost, error) {
	posts, err := s.db.BlogPost.Query().
		WithCategory().
		Order(entpost.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) GetPost(ctx context.Context, id uuid.UUID) (*repo.BlogPost, error) {
	post, err := s.db.BlogPost.Query().
		Where(entpost.ID(id)).
		WithCategory().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// validatePostBody rejects blank titles and bodies before anything
// touches the database.
func validatePostBody(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// chooseExcerpt prefers a staff-written excerpt over the generated one.
func chooseExcerpt(supplied *string, content string) string {
	if supplied != nil {
		if v := strings.TrimSpace(*supplied); v != "" {
			return v
		}
	}
	return Excerpt(content)
}

func (s *blogService) CreatePost(ctx context.Context, in CreatePostInput) (*repo.BlogPost, error) {
	if err := validatePostBody(in.Title, in.Content); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	status := entpost.Status(in.Status)
	if in.Status == "" {
		status = entpost.StatusDraft
	}
	if err := entpost.StatusValidator(status); err != nil {
		return nil, ErrInvalidStatus
	}

	taken, err := s.db.BlogPost.Query().Where(entpost.Slug(slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	if err := s.categoryExists(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	content := SanitizeHTML(in.Content)

	c := s.db.BlogPost.Create().
		SetTitle(in.Title).
		SetSlug(slug).
		SetContent(content).
		SetExcerpt(chooseExcerpt(in.Excerpt, content)).
		SetMetaDescription(in.MetaDescription).
		SetStatus(status).
		SetAuthor(in.Author).
		SetCategoryID(in.CategoryID).
		SetNillableBannerURL(in.BannerURL).
		SetNillableOgImageURL(in.OgImageURL).
		SetNillableMetaTitle(in.MetaTitle)
	if status == entpost.StatusPublished {
		c = c.SetPublishedAt(time.Now())
	}

	post, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id uuid.UUID, in UpdatePostInput) (*repo.BlogPost, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) == "" {
		return nil, ErrEmptyContent
	}

	cur, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.BlogPost.UpdateOneID(id)

	if in.Title != nil {
		u = u.SetTitle(*in.Title)
	}
	if in.Slug != nil && *in.Slug != cur.Slug {
		if err := ValidateSlug(*in.Slug); err != nil {
			return nil, err
		}
		taken, err := s.db.BlogPost.Query().
			Where(entpost.Slug(*in.Slug), entpost.IDNEQ(id)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}
		u = u.SetSlug(*in.Slug)
	}
	if in.Content != nil {
		content := SanitizeHTML(*in.Content)
		u = u.SetContent(content).SetExcerpt(chooseExcerpt(in.Excerpt, content))
	} else if in.Excerpt != nil && strings.TrimSpace(*in.Excerpt) != "" {
		u = u.SetExcerpt(strings.TrimSpace(*in.Excerpt))
	}
	if in.BannerURL != nil {
		u = u.SetBannerURL(*in.BannerURL)
	}
	if in.OgImageURL != nil {
		u = u.SetOgImageURL(*in.OgImageURL)
	}
	if in.MetaTitle != nil {
		u = u.SetMetaTitle(*in.MetaTitle)
	}
	if in.MetaDescription != nil {
		u = u.SetMetaDescription(*in.MetaDescription)
	}
	if in.CategoryID != nil {
		if err := s.categoryExists(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		u = u.SetCategoryID(*in.CategoryID)
	}
	if in.Status != nil {
		status := entpost.Status(*in.Status)
		if err := entpost.StatusValidator(status); err != nil {
			return nil, ErrInvalidStatus
		}
		u = u.SetStatus(status)
		// The publish timestamp is set on the first transition only, so
		// unpublishing and re-publishing keeps the original date.
		if status == entpost.StatusPublished && cur.PublishedAt == nil {
			u = u.SetPublishedAt(time.Now())
		}
	}

	post, err := u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

func (s *blogService) DeletePost(ctx context.Context, id uuid.UUID) error {
	err := s.db.BlogPost.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Admin categories
// ---------------------------------------------------------------------------

func (s *blogService) ListCategories(ctx context.Context) ([]*repo.BlogCategory, error) {
	cats, err := s.db.BlogCategory.Query().
		Order(
			entcategory.BySortOrder(sql.OrderAsc()),
			entcategory.ByName(sql.OrderAsc()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *blogService) CreateCategory(ctx context.Context, in CategoryInput) (*repo.BlogCategory, error) {
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(in.Name)
	}
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	exists, err := s.db.BlogCategory.Query().
		Where(entcategory.Or(
			entcategory.Name(in.Name),
			entcategory.Slug(slug),
		)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if exists {
		return nil, ErrCategoryExists
	}

	cat, err := s.db.BlogCategory.Create().
		SetName(in.Name).
		SetSlug(slug).
		SetSortOrder(in.SortOrder).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (s *blogService) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (*repo.BlogCategory, error) {
	if err := ValidateSlug(in.Slug); err != nil {
		return nil, err
	}

	taken, err := s.db.BlogCategory.Query().
		Where(
			entcategory.Or(
				entcategory.Name(in.Name),
				entcategory.Slug(in.Slug),
			),
			entcategory.IDNEQ(id),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if taken {
		return nil, ErrCategoryExists
	}

	cat, err := s.db.BlogCategory.UpdateOneID(id).
		SetName(in.Name).
		SetSlug(in.Slug).
		SetSortOrder(in.SortOrder).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return cat, nil
}

// DeleteCategory refuses while posts still reference the category; posts
// must be moved or deleted first.
func (s *blogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	inUse, err := s.db.BlogPost.Query().
		Where(entpost.CategoryID(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check category posts: %w", err)
	}
	if inUse {
		return ErrCategoryInUse
	}

	err = s.db.BlogCategory.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *blogService) categoryExists(ctx context.Context, id uuid.UUID) error {
	exists, err := s.db.BlogCategory.Query().
		Where(entcategory.ID(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return ErrCategoryNotFound
	}
	return nil
}
