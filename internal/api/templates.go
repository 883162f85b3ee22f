package api

import (
	"fmt"
	"html/template"
	"math"
	"path/filepath"
)

// LoadTemplates parses the dashboard templates from dir.
func LoadTemplates(dir string) (*template.Template, error) {
	funcs := template.FuncMap{
		// pct formats a fraction as an integer percentage: 0.92 -> "92%".
		"pct": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v*100)
		},
		// pct1 formats a fraction as a one-decimal percentage: 0.8 -> "80.0%".
		"pct1": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
		// roundi renders a float as its nearest integer, for ratings.
		"roundi": func(v float64) int {
			return int(math.Round(v))
		},
	}

	t := template.New("base").Funcs(funcs)

	patterns := []string{
		filepath.Join(dir, "layouts/*.html"),
		filepath.Join(dir, "pages/*.html"),
	}
	for _, p := range patterns {
		if matches, _ := filepath.Glob(p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseGlob(p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
