package ansisenor

import (
	"bytes"
	"html/template"
)

var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body {
            background-color: {{.Background}};
            color: {{.Foreground}};
            font-family: 'Consolas', 'Courier New', monospace;
            padding: 20px;
            margin: 0;
        }
        pre {
            white-space: pre-wrap;
            word-wrap: break-word;
        }
    </style>
</head>
<body>
    <pre>{{.Body}}</pre>
</body>
</html>
`))

// Document renders captured ANSI output into a complete, self-contained
// HTML page. The title is typically the command line that produced the
// output.
func Document(title string, input []byte, theme Theme) ([]byte, error) {
	var buf bytes.Buffer
	err := documentTmpl.Execute(&buf, struct {
		Title      string
		Background template.CSS
		Foreground template.CSS
		Body       template.HTML
	}{
		Title:      title,
		Background: template.CSS(theme.Background()),
		Foreground: template.CSS(theme.Foreground()),
		Body:       template.HTML(Render(input, theme)),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
