package reports

import (
	"io"

	"github.com/foomo/maglayout/vo"
)

func reportValidations(status vo.Status, w io.Writer, filter resultFilter) {
	printh, println, _ := printers(w)
	printh("validations",
		vo.ValidationLevelWarning, status.Validations.Count(vo.ValidationLevelWarning),
		vo.ValidationLevelInfo, status.Validations.Count(vo.ValidationLevelInfo),
	)
	lastGroup := ""
	for _, v := range status.Validations {
		if v.Group != lastGroup {
			println(v.Group)
			lastGroup = v.Group
		}
		println("	", v.Level, v.Message)
	}
}
