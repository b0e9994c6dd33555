package views

import (
	"embed"
	"heartcare-web/services/facts"
	"heartcare-web/structs"
	"html/template"
	"io/fs"
)

//go:embed index.tmpl static
var files embed.FS

const IndexName = "index.tmpl"

// IndexData 頁面渲染所需資料
type IndexData struct {
	State structs.PageState
	Facts []facts.Fact
}

func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, IndexName))
}

func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
