package api

import (
	_ "embed"
	"html/template"
)

//go:embed templates/index.html
var indexPage string

var pageTemplate = template.Must(template.New("index.html").Parse(indexPage))
