package view_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/msomdec/enterprise/internal/view"
)

func TestReportFragment_Escapes(t *testing.T) {
	var buf bytes.Buffer
	if err := view.ReportFragment("Name: <R&D>,\n").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, `<pre id="report">`) {
		t.Fatalf("expected report element, got %q", got)
	}
	if strings.Contains(got, "<R&D>") || !strings.Contains(got, "&lt;R&amp;D&gt;") {
		t.Fatalf("expected escaped text, got %q", got)
	}
}

func TestHomePage(t *testing.T) {
	var buf bytes.Buffer
	if err := view.HomePage(view.ReportKinds).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>Enterprise Management System</title>",
		`<pre id="report"`,
		"/ui/report/departments",
		"/ui/report/employees",
		">All employees</button>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected home page to contain %q, got:\n%s", want, got)
		}
	}
}

func TestHomePage_NoKinds(t *testing.T) {
	var buf bytes.Buffer
	if err := view.HomePage(nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "<button") {
		t.Fatal("expected no report buttons")
	}
}

func TestLayout_EscapesTitle(t *testing.T) {
	var buf bytes.Buffer
	if err := view.Layout("<R&D>").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<title>&lt;R&amp;D&gt;</title>") {
		t.Fatalf("expected escaped title, got %q", buf.String())
	}
}
