package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompareCmd(t *testing.T) {
	t.Parallel()

	t.Run("reports tag movement between drafts", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		before := writeDraft(t, dir, "v1.txt", "Buy now! We might see results.")
		after := writeDraft(t, dir, "v2.txt", "Order your copy today before Friday.")

		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"compare", before, after})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Comparing "+before+" -> "+after) {
			t.Errorf("expected comparison header, got:\n%s", out)
		}
		if !strings.Contains(out, "Flagged sentences:") {
			t.Errorf("expected flagged delta, got:\n%s", out)
		}
		if !strings.Contains(out, "spam_words") {
			t.Errorf("expected tag counts, got:\n%s", out)
		}
	})

	t.Run("clean drafts report no movement", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		before := writeDraft(t, dir, "v1.txt", "We published the spring issue.")
		after := writeDraft(t, dir, "v2.txt", "We published the summer issue.")

		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"compare", before, after})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "No flagged sentences in either draft.") {
			t.Errorf("expected no-movement message, got:\n%s", buf.String())
		}
	})

	t.Run("requires exactly two files", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"compare", "only-one.txt"})
		if err := cmd.Execute(); err == nil {
			t.Error("expected argument count error")
		}
	})
}
