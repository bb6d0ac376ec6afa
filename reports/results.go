package reports

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/foomo/maglayout/vo"
	"gopkg.in/yaml.v3"
)

func reportResults(status vo.Status, w io.Writer, filter resultFilter) {
	printh, println, _ := printers(w)
	results := filtered(status.Results, filter)
	printh("results", len(results))
	for _, res := range results {
		yamlBytes, errYaml := yaml.Marshal(res)
		if errYaml != nil {
			println("could not print", res.File, errYaml)
		} else {
			println(string(yamlBytes))
		}
	}
}

// WriteAnnotation writes one yielded example as a yaml document
func WriteAnnotation(w io.Writer, ex vo.Example) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	errEncode := encoder.Encode(struct {
		Index      int                 `yaml:"index"`
		File       string              `yaml:"file"`
		Annotation vo.LayoutAnnotation `yaml:"annotation"`
	}{
		Index:      ex.Index,
		File:       ex.File,
		Annotation: ex.Annotation,
	})
	if errEncode != nil {
		return errEncode
	}
	return encoder.Close()
}

func reportDump(status vo.Status, w io.Writer, filter resultFilter) {
	status.Results = filtered(status.Results, filter)
	spew.Fdump(w, status)
}
