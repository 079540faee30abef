package store_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/store"
	"github.com/nhle/kids-todo/tests/testutil"
)

func TestLoadMissingBlobReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	g := store.NewGateway(testutil.NewTestStore(t))

	data := g.Load(ctx)

	if len(data.Templates) == 0 {
		t.Fatalf("default templates missing")
	}
	if len(data.Skills) != len(model.SkillTypes) {
		t.Fatalf("got %d skills, want %d", len(data.Skills), len(model.SkillTypes))
	}
	for id, s := range data.Skills {
		if s.Level != 1 || s.Points != 0 || s.MaxPoints != model.SkillInitialThreshold {
			t.Fatalf("%s = %+v, want level 1, 0/%d", id, s, model.SkillInitialThreshold)
		}
	}
	if len(data.DailyTasks) != 0 {
		t.Fatalf("default daily tasks not empty")
	}
}

func TestLoadCorruptBlobReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	if err := s.Set(ctx, "app-data", "{not json"); err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}

	data := store.NewGateway(s).Load(ctx)
	if len(data.Templates) == 0 || len(data.Skills) == 0 {
		t.Fatalf("corrupt blob did not fall back to defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	g := store.NewGateway(testutil.NewTestStore(t))

	createdAt := time.Date(2026, 3, 2, 7, 45, 0, 0, time.UTC)
	want := &model.AppData{
		Templates: []model.TemplateTask{
			{ID: "1", Text: "おんどく", Emoji: "📖"},
			{ID: "2", Text: "drill"},
		},
		DailyTasks: map[string][]model.Task{
			"2026-03-02": {
				{ID: "t1", Text: "おんどく", Emoji: "📖", Completed: true, CreatedAt: createdAt},
				{ID: "t2", Text: "challenge", Completed: false, CreatedAt: createdAt, IsChallenge: true},
			},
		},
		Skills: model.DefaultSkills(),
	}
	s := want.Skills[model.SkillPersistence]
	s.Level = 3
	s.Points = 4
	s.MaxPoints = 20
	want.Skills[model.SkillPersistence] = s

	g.Save(ctx, want)
	got := g.Load(ctx)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveOverwritesPriorBlob(t *testing.T) {
	ctx := context.Background()
	g := store.NewGateway(testutil.NewTestStore(t))

	first := model.DefaultAppData()
	g.Save(ctx, first)

	second := model.DefaultAppData()
	second.Templates = []model.TemplateTask{{ID: "only", Text: "one"}}
	g.Save(ctx, second)

	got := g.Load(ctx)
	if len(got.Templates) != 1 || got.Templates[0].ID != "only" {
		t.Fatalf("last write did not win: %+v", got.Templates)
	}
}

func TestRewardMarkerIsIndependentOfBlob(t *testing.T) {
	ctx := context.Background()
	g := store.NewGateway(testutil.NewTestStore(t))

	if got := g.LastRewardDate(ctx); got != "" {
		t.Fatalf("fresh marker = %q, want empty", got)
	}

	g.SetLastRewardDate(ctx, "2026-03-02")
	if got := g.LastRewardDate(ctx); got != "2026-03-02" {
		t.Fatalf("marker = %q, want 2026-03-02", got)
	}

	// Rewriting the main blob must not clear the marker.
	g.Save(ctx, model.DefaultAppData())
	if got := g.LastRewardDate(ctx); got != "2026-03-02" {
		t.Fatalf("marker lost after blob save: %q", got)
	}
}

func TestKVGetSet(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	if _, ok, err := s.Get(ctx, "nope"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v, want absent without error", ok, err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || got != "v2" {
		t.Fatalf("get = (%q, %v, %v), want (v2, true, nil)", got, ok, err)
	}
}
