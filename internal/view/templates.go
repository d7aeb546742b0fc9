package view

import (
	"embed"
	"fmt"
	"html/template"

	"weather-dashboard/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	DashboardTemplate = "dashboard.html"
	ChartTemplate     = "chart.html"
)

// DashboardPage is the data bound to DashboardTemplate
type DashboardPage struct {
	Snapshot
	Theme    types.Theme
	ChartURL string
}

// ChartPage is the data bound to ChartTemplate
type ChartPage struct {
	City     string
	Theme    types.Theme
	ImageURL string
	Error    string
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"px":    func(v float64) string { return fmt.Sprintf("%.0fpx", v) },
		"stack": func(i int) string { return fmt.Sprintf("%dpx", 20+i*60) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
