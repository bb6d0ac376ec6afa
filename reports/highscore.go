package reports

import (
	"io"
	"sort"
	"time"

	"github.com/foomo/maglayout/vo"
)

type score struct {
	File     string
	Elements int
	Duration time.Duration
}

type scores []score

func (s scores) Len() int           { return len(s) }
func (s scores) Less(i, j int) bool { return s[i].Duration > s[j].Duration }
func (s scores) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// slowest builds first
func reportHighscore(status vo.Status, w io.Writer, filter resultFilter) {
	printh, println, _ := printers(w)
	printh("high score")
	results := filtered(status.Results, filter)
	scores := make(scores, len(results))
	for i, r := range results {
		scores[i] = score{
			Duration: r.Duration,
			Elements: r.Elements,
			File:     r.File,
		}
	}
	sort.Stable(scores)
	for i, s := range scores {
		println(i, s.Elements, s.File, s.Duration)
	}
}
