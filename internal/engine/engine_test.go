package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

func TestAnalyzeEmptyContent(t *testing.T) {
	t.Parallel()

	e := New(config.NewConfig())
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty string", content: ""},
		{name: "whitespace only", content: "   \n\t  "},
		{name: "markup only", content: "<div><span></span></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := e.Analyze(context.Background(), tt.content)
			if !errors.Is(err, ErrEmptyContent) {
				t.Errorf("expected ErrEmptyContent, got %v", err)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	e := New(config.NewConfig())

	t.Run("one report entry per sentence", func(t *testing.T) {
		t.Parallel()
		content := "First sentence here. Second sentence here. Third sentence here."
		result, err := e.Analyze(context.Background(), content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := len(result.Report.PerSentence); got != 3 {
			t.Errorf("expected 3 sentence entries, got %d", got)
		}
		if got := result.Report.Global.SentenceCount; got != 3 {
			t.Errorf("expected sentence count 3, got %d", got)
		}
	})

	t.Run("flagged sentence is annotated with its top tag", func(t *testing.T) {
		t.Parallel()
		result, err := e.Analyze(context.Background(), "A calm opening line. Buy now!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(result.Annotated, "<spam_words>Buy now!</spam_words>") {
			t.Errorf("expected spam annotation, got %q", result.Annotated)
		}
		if strings.Contains(result.Annotated, "<cta>") {
			t.Errorf("only the top-priority tag may be inserted, got %q", result.Annotated)
		}
	})

	t.Run("report keeps all tags even though annotation picks one", func(t *testing.T) {
		t.Parallel()
		result, err := e.Analyze(context.Background(), "Buy now and click here.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entry := result.Report.PerSentence[0]
		if len(entry.Tags) < 2 {
			t.Fatalf("expected spam_words and cta in tags, got %v", entry.Tags)
		}
		if _, ok := entry.Reasons[model.TagSpamWords]; !ok {
			t.Errorf("expected spam_words reasons, got %v", entry.Reasons)
		}
	})

	t.Run("clean sentence has empty tags and nil reasons", func(t *testing.T) {
		t.Parallel()
		result, err := e.Analyze(context.Background(), "We published the spring issue.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entry := result.Report.PerSentence[0]
		if len(entry.Tags) != 0 {
			t.Errorf("expected no tags, got %v", entry.Tags)
		}
		if entry.Reasons != nil {
			t.Errorf("expected nil reasons, got %v", entry.Reasons)
		}
		if result.Report.FlaggedSentences() != 0 {
			t.Errorf("expected zero flagged sentences")
		}
	})

	t.Run("disabled annotation returns content unchanged", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Annotate = false
		noAnnotate := New(cfg)

		content := "A calm opening line. Buy now!"
		result, err := noAnnotate.Analyze(context.Background(), content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Annotated != content {
			t.Errorf("expected unchanged content, got %q", result.Annotated)
		}
		if result.Report.FlaggedSentences() == 0 {
			t.Error("report must still carry findings when annotation is off")
		}
	})

	t.Run("markup is stripped before analysis", func(t *testing.T) {
		t.Parallel()
		result, err := e.Analyze(context.Background(), "<p>We published the spring issue.</p>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := result.Report.PerSentence[0].Sentence; got != "We published the spring issue." {
			t.Errorf("expected stripped sentence, got %q", got)
		}
	})

	t.Run("annotation wraps the original markup", func(t *testing.T) {
		t.Parallel()
		result, err := e.Analyze(context.Background(), "<p>Buy now before the deal ends!</p>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "<p><spam_words>Buy now before the deal ends!</spam_words></p>"
		if result.Annotated != want {
			t.Errorf("expected %q, got %q", want, result.Annotated)
		}
	})

	t.Run("document metrics are populated", func(t *testing.T) {
		t.Parallel()
		content := "Read it at https://example.com/post today. We liked it a lot."
		result, err := e.Analyze(context.Background(), content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		global := result.Report.Global
		if global.LinkCount != 1 {
			t.Errorf("expected 1 link, got %d", global.LinkCount)
		}
		if global.WordCount == 0 {
			t.Error("expected non-zero word count")
		}
		if global.Readability.Threshold != config.DefaultReadabilityThreshold {
			t.Errorf("expected readability threshold carried into report, got %v",
				global.Readability.Threshold)
		}
	})

	t.Run("readability is computed over the original content", func(t *testing.T) {
		t.Parallel()
		content := `<div class="newsletter-body"><p>Cats nap.</p></div>`
		result, err := e.Analyze(context.Background(), content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The stripped text "Cats nap." alone clamps to grade zero; the
		// original markup's tokens push the grade above it.
		if got := result.Report.Global.Readability.FleschKincaidGrade; got <= 0 {
			t.Errorf("expected positive grade over original content, got %v", got)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.Analyze(ctx, "Some perfectly ordinary text.")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
