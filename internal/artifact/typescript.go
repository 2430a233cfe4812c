package artifact

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
	"time"
)

//go:embed crimezones.ts.tmpl
var tsSource string

var tsTemplate = template.Must(template.New("crimezones.ts").Funcs(template.FuncMap{
	"str":     tsString,
	"num":     tsNumber,
	"list":    tsList,
	"upper":   func(v any) string { return strings.ToUpper(fmt.Sprint(v)) },
	"date":    func(t time.Time) string { return t.Format("02/01/2006") },
	"comment": func(s string) string { return strings.ReplaceAll(s, "*/", "* /") },
}).Parse(tsSource))

type tsData struct {
	Artifact
	Groups []Group
}

func renderTS(w io.Writer, a Artifact) error {
	data := tsData{Artifact: a, Groups: GroupByZone(a.Zones)}
	if err := tsTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render typescript: %w", err)
	}
	return nil
}

// tsString quotes a value as a double-quoted string literal valid in TypeScript
func tsString(v any) string {
	return strconv.Quote(fmt.Sprint(v))
}

// tsNumber prints the shortest representation, like JavaScript does: -3.119, not -3.1190
func tsNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func tsList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}
