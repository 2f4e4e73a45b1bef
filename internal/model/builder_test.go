package model_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/defaults"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/schema"
)

func blogSchema(t *testing.T) *schema.Schema {
	t.Helper()
	return schema.MustNew("blog_post", []*schema.Field{
		{Name: "title", Kind: schema.KindString, Placeholder: "Enter a title", Description: "Shown on the cover"},
		{Name: "genre", Kind: schema.KindChoice, Members: []string{"fiction", "nonfiction"}},
		{Name: "author", Kind: schema.KindObject, Fields: schema.MustNew("author", []*schema.Field{
			{Name: "name", Kind: schema.KindString},
			{Name: "email", Kind: schema.KindString, Optional: true},
		})},
		{Name: "tags", Kind: schema.KindList, Item: &schema.Field{Kind: schema.KindString}},
		{Name: "chapters", Kind: schema.KindList, Item: &schema.Field{
			Kind: schema.KindObject,
			Fields: schema.MustNew("chapter", []*schema.Field{
				{Name: "heading", Kind: schema.KindString},
				{Name: "published", Kind: schema.KindBoolean},
			}),
		}},
	})
}

func TestBuildProjectsSchema(t *testing.T) {
	builder := model.NewBuilder()

	got, err := builder.Build(blogSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.FormModel{
		Name:      "blog_post",
		Title:     "Blog Post",
		Separator: "_",
		Fields: []model.Field{
			{
				Name: "title", Kind: schema.KindString,
				InputName: "title", Path: "title", Label: "Title",
				Placeholder: "Enter a title", Description: "Shown on the cover",
			},
			{
				Name: "genre", Kind: schema.KindChoice,
				InputName: "genre", Path: "genre", Label: "Genre",
				Members: []string{"fiction", "nonfiction"},
			},
			{
				Name: "author", Kind: schema.KindObject,
				InputName: "author", Path: "author", Label: "Author",
				Nested: []model.Field{
					{Name: "name", Kind: schema.KindString, InputName: "author_name", Path: "author.name", Label: "Name"},
					{Name: "email", Kind: schema.KindString, Optional: true, InputName: "author_email", Path: "author.email", Label: "Email"},
				},
			},
			{
				Name: "tags", Kind: schema.KindList,
				InputName: "tags", Path: "tags", Label: "Tags",
				Item: &model.Field{Kind: schema.KindString, Path: "tags"},
			},
			{
				Name: "chapters", Kind: schema.KindList,
				InputName: "chapters", Path: "chapters", Label: "Chapters",
				Item: &model.Field{
					Kind: schema.KindObject, Path: "chapters",
					Nested: []model.Field{
						{Name: "heading", Kind: schema.KindString, InputName: "heading", Path: "chapters.heading", Label: "Heading"},
						{Name: "published", Kind: schema.KindBoolean, InputName: "published", Path: "chapters.published", Label: "Published"},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

// Prototype children carry slot-relative input names, joined onto a minted
// slot key at render time, while their dotted paths stay absolute so error
// maps and exclusion rules can address them.
func TestBuildListPrototypeKeysAreRelative(t *testing.T) {
	builder := model.NewBuilder(model.WithPrefix("f1_"))

	got, err := builder.Build(blogSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chapters := got.Fields[4]
	if chapters.InputName != "f1_chapters" {
		t.Fatalf("chapters InputName = %q", chapters.InputName)
	}
	heading := chapters.Item.Nested[0]
	if heading.InputName != "heading" {
		t.Fatalf("prototype InputName = %q, want relative name", heading.InputName)
	}
	if heading.Path != "chapters.heading" {
		t.Fatalf("prototype Path = %q, want absolute dotted path", heading.Path)
	}

	// A renderer mints the slot key and joins the relative child name.
	slot := got.Key(chapters.InputName, "new_0")
	if key := got.Key(slot, heading.InputName); key != "f1_chapters_new_0_heading" {
		t.Fatalf("joined key = %q", key)
	}
}

func TestBuildAppliesPrefix(t *testing.T) {
	builder := model.NewBuilder(model.WithPrefix("billing_"))

	got, err := builder.Build(blogSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Prefix != "billing_" {
		t.Fatalf("Prefix = %q", got.Prefix)
	}
	if got.Fields[0].InputName != "billing_title" {
		t.Fatalf("title InputName = %q", got.Fields[0].InputName)
	}
	if got.Fields[2].Nested[0].InputName != "billing_author_name" {
		t.Fatalf("nested InputName = %q", got.Fields[2].Nested[0].InputName)
	}
}

func TestBuildCustomSeparator(t *testing.T) {
	builder := model.NewBuilder(model.WithSeparator("."))

	got, err := builder.Build(blogSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Separator != "." {
		t.Fatalf("Separator = %q", got.Separator)
	}
	if got.Fields[2].Nested[1].InputName != "author.email" {
		t.Fatalf("nested InputName = %q", got.Fields[2].Nested[1].InputName)
	}
	if key := got.Key("tags", "0"); key != "tags.0" {
		t.Fatalf("Key = %q", key)
	}
}

func TestBuildExcludesPaths(t *testing.T) {
	builder := model.NewBuilder(model.WithExcluded("author.email", "chapters.published", "genre"))

	got, err := builder.Build(blogSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := make([]string, 0, len(got.Fields))
	for _, field := range got.Fields {
		names = append(names, field.Name)
	}
	if diff := cmp.Diff([]string{"title", "author", "tags", "chapters"}, names); diff != "" {
		t.Fatalf("top-level fields mismatch (-want +got):\n%s", diff)
	}

	author := got.Fields[1]
	if len(author.Nested) != 1 || author.Nested[0].Name != "name" {
		t.Fatalf("author fields = %+v, want only name", author.Nested)
	}

	// Index-free exclusion reaches into list item prototypes too.
	chapters := got.Fields[3]
	if len(chapters.Item.Nested) != 1 || chapters.Item.Nested[0].Name != "heading" {
		t.Fatalf("chapter prototype fields = %+v, want only heading", chapters.Item.Nested)
	}
}

func TestBuildDisplayDefaults(t *testing.T) {
	gen := defaults.New(defaults.WithClock(func() time.Time {
		return time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	}))
	builder := model.NewBuilder(model.WithGenerator(gen))

	s := schema.MustNew("account", []*schema.Field{
		{Name: "name", Kind: schema.KindString},
		{Name: "nickname", Kind: schema.KindString, Optional: true},
		{Name: "rating", Kind: schema.KindInteger},
		{Name: "joined", Kind: schema.KindDate},
		{Name: "alarm", Kind: schema.KindTime},
		{Name: "plan", Kind: schema.KindChoice, Members: []string{"free", "pro"}},
		{Name: "active", Kind: schema.KindBoolean},
		{Name: "motto", Kind: schema.KindString, Default: "carpe diem", HasDefault: true},
	})

	got, err := builder.Build(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDefaults := []any{"", nil, "0", "2024-03-01", "00:00:00", "free", false, "carpe diem"}
	for i, field := range got.Fields {
		if diff := cmp.Diff(wantDefaults[i], field.Default); diff != "" {
			t.Fatalf("default for %s mismatch (-want +got):\n%s", field.Name, diff)
		}
	}
}

func TestBuildLabelOverride(t *testing.T) {
	builder := model.NewBuilder()

	s := schema.MustNew("account", []*schema.Field{
		{Name: "tos", Kind: schema.KindBoolean, Label: "I accept the terms"},
	})
	got, err := builder.Build(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fields[0].Label != "I accept the terms" {
		t.Fatalf("Label = %q", got.Fields[0].Label)
	}
}

func TestBuildCustomLabeler(t *testing.T) {
	builder := model.NewBuilder(model.WithLabeler(func(name string) string {
		return "» " + name
	}))

	got, err := builder.Build(blogSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "» blog_post" {
		t.Fatalf("Title = %q", got.Title)
	}
	if got.Fields[0].Label != "» title" {
		t.Fatalf("Label = %q", got.Fields[0].Label)
	}
}

func TestBuildNilSchema(t *testing.T) {
	builder := model.NewBuilder()
	if _, err := builder.Build(nil); err == nil {
		t.Fatal("expected an error for a nil schema")
	}
}

func TestFormModelKeySkipsEmptySegments(t *testing.T) {
	form := model.FormModel{Separator: "_"}
	if got := form.Key("", "tags", "", "0"); got != "tags_0" {
		t.Fatalf("Key = %q", got)
	}
	if got := form.Key(); got != "" {
		t.Fatalf("Key = %q, want empty", got)
	}
}
