package router

import (
	"html/template"
	"time"
)

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int {
		return a + b
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}
