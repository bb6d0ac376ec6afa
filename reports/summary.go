package reports

import (
	"io"
	"math"

	"github.com/foomo/maglayout/vo"
)

func reportSummary(status vo.Status, w io.Writer, filter resultFilter) {
	printh, _, _ := printers(w)
	printh("summary")
	ReportSummaryBody(status, w, filter)
}

func ReportSummaryBody(status vo.Status, w io.Writer, filter resultFilter) {
	printh, println, _ := printers(w)
	results := filtered(status.Results, filter)
	println("files:", status.Files, "results:", len(results), "skipped:", len(status.Skipped), "duration:", status.Duration)

	categories := counts{}
	labels := counts{}
	images := 0
	for _, r := range results {
		categories[r.Category]++
		for label, n := range r.Labels {
			labels[label] += n
		}
		images += len(r.Images)
	}
	println("images:", images)

	printh("categories")
	for _, c := range categories.sortedKeys() {
		println(categories[c], "	", c)
	}
	printh("labels")
	for _, l := range labels.sortedKeys() {
		println(labels[l], "	", l)
	}
	printh("element buckets")
	bucketListStatus(w, results)
}

func bucketListStatus(w io.Writer, results []vo.Result) {
	_, println, _ := printers(w)
	for _, bucket := range vo.GetBucketList() {
		bucketI := 0
		for _, r := range results {
			if bucket.Contains(r.Elements) {
				bucketI++
			}
		}
		percent := 0.0
		if len(results) > 0 {
			percent = math.Round(float64(bucketI) / float64(len(results)) * 100)
		}
		println(bucketI, "	", percent, "%	", bucket.Name)
	}
}
