package navigation

import (
	"html/template"
	"io"
)

var shell = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} | LexGate</title>
</head>
<body data-route="{{.Route}}"{{with .Tool}} data-tool="{{.}}"{{end}}>
<nav>
{{- range .Menu}}
<section><h2>{{.Name}}</h2><ul>
{{- range .Items}}
<li><a href="{{.Route}}">{{.Label}}</a>{{if .Children}}<ul>{{range .Children}}<li><a href="{{.Route}}">{{.Label}}</a></li>{{end}}</ul>{{end}}</li>
{{- end}}
</ul></section>
{{- end}}
</nav>
<main id="app"><h1>{{.Title}}</h1></main>
</body>
</html>
`))

type shellData struct {
	Title string
	Route string
	Tool  string
	Menu  []Group
}

// RenderShell writes the page skeleton the client app mounts into. Login and
// signup get no menu.
func RenderShell(w io.Writer, page Item, withMenu bool) error {
	data := shellData{Title: page.Label, Route: page.Route, Tool: page.Tool}
	if withMenu {
		data.Menu = Menu()
	}
	return shell.Execute(w, data)
}
