package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func strptr(s string) *string { return &s }

func TestCreatePostRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name    string
		in      CreatePostInput
		wantErr error
	}{
		{"empty title", CreatePostInput{Title: "", Content: "body"}, ErrEmptyTitle},
		{"whitespace title", CreatePostInput{Title: "   ", Content: "body"}, ErrEmptyTitle},
		{"empty content", CreatePostInput{Title: "Hello", Content: ""}, ErrEmptyContent},
		{"whitespace content", CreatePostInput{Title: "Hello", Content: " \n\t"}, ErrEmptyContent},
	}

	// A nil client proves the rejection happens before any query runs.
	svc := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreatePost() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdatePostRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name    string
		in      UpdatePostInput
		wantErr error
	}{
		{"empty title", UpdatePostInput{Title: strptr("")}, ErrEmptyTitle},
		{"whitespace title", UpdatePostInput{Title: strptr("  ")}, ErrEmptyTitle},
		{"empty content", UpdatePostInput{Content: strptr("")}, ErrEmptyContent},
		{"whitespace content", UpdatePostInput{Content: strptr("\n")}, ErrEmptyContent},
	}

	svc := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdatePost(context.Background(), uuid.New(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdatePost() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChooseExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		supplied *string
		content  string
		want     string
	}{
		{"staff excerpt wins", strptr("Hand-written teaser."), "<p>Long body text</p>", "Hand-written teaser."},
		{"blank excerpt falls back", strptr("   "), "<p>Body</p>", "Body"},
		{"nil excerpt falls back", nil, "<p>Body</p>", "Body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseExcerpt(tt.supplied, tt.content); got != tt.want {
				t.Errorf("chooseExcerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}
