package maglayout

import (
	"fmt"
	"io"

	"github.com/foomo/maglayout/reports"
	"github.com/foomo/maglayout/vo"
)

func line(writer io.Writer) {
	fmt.Fprintln(writer, "------------------------------------------------------------------------")
}

func headline(writer io.Writer, v ...interface{}) {
	line(writer)
	v = append([]interface{}{"~"}, v...)
	fmt.Fprintln(writer, v...)
	line(writer)
}

// PrintStatus prints a summary of a walk with its skipped files
func PrintStatus(writer io.Writer, status vo.Status) {
	headline(writer,
		"Status: ", status.LayoutDir,
		" files: ", status.Files,
		", results: ", len(status.Results),
		", skipped: ", len(status.Skipped),
		", duration: ", status.Duration,
	)

	reports.ReportSummaryBody(status, writer, nil)

	if len(status.Skipped) > 0 {
		headline(writer, "skipped malformed annotations")
		for _, s := range status.Skipped {
			fmt.Fprintln(writer, s.File, s.Reason)
		}
	}
	if warnings := status.Validations.Count(vo.ValidationLevelWarning); warnings > 0 {
		headline(writer, "warnings", warnings)
		for _, v := range status.Validations {
			if v.Level == vo.ValidationLevelWarning {
				fmt.Fprintln(writer, v.Group, v.Message)
			}
		}
	}
	if !status.Complete() {
		headline(writer, "walk aborted")
		fmt.Fprintln(writer, status.Error)
	}
}
