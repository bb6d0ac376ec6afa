package vo

import "time"

// Result summary of one yielded annotation, images are referenced by path
type Result struct {
	Index    int            `yaml:"index"`
	File     string         `yaml:"file"`
	Filename string         `yaml:"filename"`
	Category string         `yaml:"category"`
	Size     LayoutSize     `yaml:"size"`
	Elements int            `yaml:"elements"`
	Labels   map[string]int `yaml:"labels"`
	Keywords []string       `yaml:"keywords,flow"`
	Images   []string       `yaml:"images"`
	Duration time.Duration  `yaml:"duration"`
}

// NewResult summarizes an example
func NewResult(ex Example, duration time.Duration) Result {
	la := ex.Annotation
	labels := map[string]int{}
	for _, el := range la.Elements {
		labels[el.Label]++
	}
	images := make([]string, len(la.Images))
	for i, img := range la.Images {
		images[i] = img.Path
	}
	return Result{
		Index:    ex.Index,
		File:     ex.File,
		Filename: la.Filename,
		Category: la.Category,
		Size:     la.Size,
		Elements: len(la.Elements),
		Labels:   labels,
		Keywords: la.Keywords,
		Images:   images,
		Duration: duration,
	}
}

// Skip an annotation file, that was left out of a walk
type Skip struct {
	File     string `yaml:"file"`
	Position int    `yaml:"position"`
	Reason   string `yaml:"reason"`
}

type Status struct {
	LayoutDir   string        `yaml:"layoutDir"`
	ImageDir    string        `yaml:"imageDir"`
	Files       int           `yaml:"files"`
	Results     []Result      `yaml:"results"`
	Skipped     []Skip        `yaml:"skipped"`
	Validations Validations   `yaml:"validations"`
	Started     time.Time     `yaml:"started"`
	Duration    time.Duration `yaml:"duration"`
	// Error fatal error, that ended the walk early
	Error string `yaml:"error,omitempty"`
}

// Complete true, if the walk was not aborted
func (s Status) Complete() bool {
	return s.Error == ""
}
