// Package view holds the templ components served by the handler package.
// Edit the .templ files and run `templ generate`; the _templ.go files are
// generated.
package view

// ReportID is the element id datastar patches with ReportFragment.
const ReportID = "report"

// DefaultReport is the report the home page loads first.
const DefaultReport = "departments"

// ReportKind is one report offered on the home page.
type ReportKind struct {
	Slug  string
	Label string
}

// ReportKinds lists the reports in menu order.
var ReportKinds = []ReportKind{
	{Slug: "departments", Label: "Departments / employees"},
	{Slug: "employees", Label: "All employees"},
}

// reportAction is the datastar expression that streams a report into the
// report panel.
func reportAction(slug string) string {
	return "@get('/ui/report/" + slug + "')"
}
