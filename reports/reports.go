package reports

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/foomo/maglayout/vo"
	"github.com/gorilla/mux"
)

type resultFilter func(res vo.Result) bool
type reporter func(status vo.Status, w io.Writer, filter resultFilter)

var reporters = map[string]reporter{
	"summary":     reportSummary,
	"results":     reportResults,
	"list":        reportList,
	"highscore":   reportHighscore,
	"skipped":     reportSkipped,
	"validations": reportValidations,
	"keywords":    reportKeywords,
	"dump":        reportDump,
}

func GetReportHandlerMenuHTML(basePath string) string {
	return `
	<p>maglayout report handler menu</p>
	<ul>
		<li><a href="` + basePath + `/summary">summary of categories, labels and element counts</a></li>
		<li><a href="` + basePath + `/results">all plain results as yaml (this can be a very long doc)</a></li>
		<li><a href="` + basePath + `/list">list of all yielded examples</a></li>
		<li><a href="` + basePath + `/html">results as html table</a></li>
		<li><a href="` + basePath + `/highscore">highscore - results sorted by build duration</a></li>
		<li><a href="` + basePath + `/skipped">skipped - malformed annotation files</a></li>
		<li><a href="` + basePath + `/validations">validations - unknown labels and categories</a></li>
		<li><a href="` + basePath + `/keywords">keywords by frequency</a></li>
		<li><a href="` + basePath + `/dump">dump of the complete status</a></li>
	</ul>
	<p>query parameters</p>
	<table>
		<tr>
			<td>url paramter</td>
			<td>function</td>
			<td>examples</td>
		</tr>
		<tr>
			<td>category</td>
			<td>filter results by category</td>
			<td>?category=fashion</td>
		</tr>
		<tr>
			<td>label</td>
			<td>only pages with at least one element of that label</td>
			<td>?label=headline</td>
		</tr>
	</table>
	`
}

// NewRouter mounts all reports below basePath, statusFunc returns the status
// to report on or nil, if there is none yet
func NewRouter(basePath string, statusFunc func() *vo.Status, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}
	r := mux.NewRouter()
	r.HandleFunc(basePath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, GetReportHandlerMenuHTML(basePath))
	})
	r.HandleFunc(basePath+"/html", func(w http.ResponseWriter, r *http.Request) {
		status := statusFunc()
		if status == nil {
			http.Error(w, "no complete walk yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if errRender := RenderHTML(w, *status, getFilter(r)); errRender != nil {
			logger.Error("could not render html report", "error", errRender)
		}
	})
	r.HandleFunc(basePath+"/{report}", func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["report"]
		rep, ok := reporters[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		logger.Info("handling report", "report", name)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		report(rep, w, getFilter(r), statusFunc())
	})
	return r
}

func getFilter(r *http.Request) resultFilter {
	filters := []resultFilter{}
	if category := r.URL.Query().Get("category"); category != "" {
		filters = append(filters, func(res vo.Result) bool {
			return res.Category == category
		})
	}
	if label := r.URL.Query().Get("label"); label != "" {
		filters = append(filters, func(res vo.Result) bool {
			return res.Labels[label] > 0
		})
	}
	if len(filters) == 0 {
		return nil
	}
	return func(res vo.Result) bool {
		for _, f := range filters {
			if !f(res) {
				return false
			}
		}
		return true
	}
}

// Report writes the named report for a status
func Report(name string, status vo.Status, w io.Writer) error {
	rep, ok := reporters[name]
	if !ok {
		return fmt.Errorf("unknown report %q", name)
	}
	rep(status, w, nil)
	return nil
}

func report(r reporter, w io.Writer, filter resultFilter, status *vo.Status) {
	_, println, _ := printers(w)
	if status == nil {
		println("STATUS is nil, there was no complete walk yet")
		return
	}
	println("STATUS", status.LayoutDir)
	println("=============================================================================")
	if !status.Complete() {
		println("walk aborted:", status.Error)
	}
	r(*status, w, filter)
}

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}

func filtered(results []vo.Result, filter resultFilter) []vo.Result {
	if filter == nil {
		return results
	}
	matching := []vo.Result{}
	for _, res := range results {
		if filter(res) {
			matching = append(matching, res)
		}
	}
	return matching
}

type counts map[string]int

func (c counts) sortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// byFrequency keys with the highest count first, ties in alphabetical order
func (c counts) byFrequency() []string {
	keys := c.sortedKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return c[keys[i]] > c[keys[j]]
	})
	return keys
}

func reportList(status vo.Status, w io.Writer, filter resultFilter) {
	printh, println, _ := printers(w)
	results := filtered(status.Results, filter)
	printh("results", len(results))
	for _, r := range results {
		println(r.Index, r.Category, r.Filename, r.File)
	}
}

func reportSkipped(status vo.Status, w io.Writer, filter resultFilter) {
	printh, println, _ := printers(w)
	printh("skipped", len(status.Skipped))
	for _, s := range status.Skipped {
		println(s.Position, s.File)
		println("	", s.Reason)
	}
}

func reportKeywords(status vo.Status, w io.Writer, filter resultFilter) {
	printh, println, _ := printers(w)
	printh("keywords")
	keywords := counts{}
	for _, r := range filtered(status.Results, filter) {
		for _, k := range r.Keywords {
			keywords[strings.ToLower(k)]++
		}
	}
	for i, k := range keywords.byFrequency() {
		if i > 99 {
			println("	...")
			break
		}
		println(keywords[k], k)
	}
}
