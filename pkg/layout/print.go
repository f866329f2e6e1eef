package layout

import (
	"fmt"
	"html/template"
	"io"
)

// The print view serves the same rendered document to the browser print
// dialog. The page style pins the header (or a blank reserve in the
// without-letterhead variant) to the top of every printed sheet and hides
// interactive controls, mirroring the screen layout otherwise.
const printPageStyle = `
@page { size: auto; margin: 0mm; }
@media print {
  body { margin: 1mm; padding: 50mm 1mm 1mm 1mm; min-height: 100vh; }
  .print-hide { display: none; }
  .print-header { position: fixed; top: 0; left: 0; right: 0; background-color: white; z-index: 1000; }
}
`

var printTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"widthPct": func(f float64) template.CSS {
		return template.CSS(fmt.Sprintf("%g%%", f*100))
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.Style}}
body { font-family: sans-serif; font-size: 12px; }
h1 { text-align: center; font-size: 15px; text-decoration: underline; }
table.items { width: 100%; border-collapse: collapse; table-layout: fixed; }
table.items td, table.items th { border: 1px solid black; padding: 4px; word-break: break-word; }
.meta { display: flex; justify-content: space-between; padding: 8px; }
.parties { display: flex; justify-content: space-between; margin-bottom: 16px; }
.party.right { text-align: right; }
.terms { margin: 12px 0 0 2%; width: 98%; }
.term { display: flex; }
.term .label { width: 25%; }
.term .sep { width: 4px; }
.heading { border-bottom: 1px solid black; font-weight: 600; width: fit-content; margin: 12px 0 8px 2%; }
.closing { margin: 16px 0 0 2%; width: 98%; }
.signs { display: flex; justify-content: space-between; margin-top: 40px; }
.sign-box { border-top: 2px solid black; width: 18rem; text-align: center; }
.without-header-reserve { margin-top: 130px; }
</style>
</head>
<body>
<div class="print-header">
{{- if .Doc.Variant.Letterhead}}
<img src="{{.Doc.LetterheadURL}}" alt="logo" style="width:100%;max-height:120px;object-fit:contain;">
<h1>{{.Doc.Title}}</h1>
<div class="meta"><p><b>Cont No.:</b> {{.Doc.Ref}}</p><p><b>DATE:</b> {{.Doc.Date}}</p></div>
{{- else}}
<div class="without-header-reserve">
<h1>{{.Doc.Title}}</h1>
<div class="meta"><p><b>Cont No.:</b> {{.Doc.Ref}}</p><p><b>DATE:</b> {{.Doc.Date}}</p></div>
</div>
{{- end}}
</div>
<div class="parties">
{{- range .Doc.Parties}}
<div class="party{{if .AlignRight}} right{{end}}">
<h2>{{.Label}} {{.Name}}</h2>
{{- range .Address}}
<p>{{.}}</p>
{{- end}}
</div>
{{- end}}
</div>
<table class="items">
<thead>
<tr>
{{- range .Doc.Items.Columns}}
<th style="width:{{widthPct .Width}}">{{.Title}}</th>
{{- end}}
</tr>
</thead>
<tbody>
{{- range .Doc.Items.Rows}}
<tr>
{{- range .}}
<td>{{.}}</td>
{{- end}}
</tr>
{{- end}}
{{- if .Doc.Items.ShowTotal}}
<tr><td colspan="{{.TotalSpan}}" style="text-align:right"><b>{{.Doc.Items.TotalLabel}}</b></td><td><b>{{.Doc.Items.Total}}</b></td></tr>
{{- end}}
</tbody>
</table>
{{- if .Doc.Items.TotalInWords}}
<p class="terms"><b>{{.Doc.Items.TotalInWords}}</b></p>
{{- end}}
{{- range .Doc.Terms}}
{{- if .Heading}}
<div class="heading">{{.Heading}}</div>
{{- end}}
<div class="terms">
{{- range .Lines}}
<div class="term"><span class="label">{{.Label}}</span><span class="sep">:</span><p>{{.Value}}</p></div>
{{- end}}
</div>
{{- end}}
{{- range .Doc.Notes}}
<div class="heading">{{.}}</div>
{{- end}}
<div class="closing">
<p>{{.Doc.Closing.Thanks}}</p>
<div class="signs">
<div class="sign-box">
<p>{{.Doc.Closing.SellerLine}}</p>
<p>{{.Doc.Closing.SignName}}</p>
{{- if and .Doc.Variant.Signature .Doc.SignatureURL}}
<img src="{{.Doc.SignatureURL}}" alt="sign" style="width:120px;height:auto;">
{{- end}}
{{- if .Doc.Closing.SignNo}}
<p>HP : {{.Doc.Closing.SignNo}}</p>
{{- end}}
</div>
<div class="sign-box">
<p>{{.Doc.Closing.BuyerLine}}</p>
<p>{{.Doc.Closing.AcceptedLine}}</p>
<p>{{.Doc.Closing.AcceptedDate}}</p>
</div>
</div>
</div>
</body>
</html>
`))

// RenderHTML writes the print view of doc to w.
func RenderHTML(w io.Writer, doc *Document) error {
	data := struct {
		Doc       *Document
		Title     string
		Style     template.CSS
		TotalSpan int
	}{
		Doc:       doc,
		Title:     doc.Title,
		Style:     template.CSS(printPageStyle),
		TotalSpan: len(doc.Items.Columns) - 1,
	}
	if err := printTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("layout: render print view: %w", err)
	}
	return nil
}
