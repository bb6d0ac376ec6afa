package vo

type ValidationLevel string

const (
	ValidationLevelError   ValidationLevel = "error"
	ValidationLevelWarning ValidationLevel = "warning"
	ValidationLevelInfo    ValidationLevel = "info"
)

type Validation struct {
	Level   ValidationLevel `yaml:"level"`
	Message string          `yaml:"message"`
	Group   string          `yaml:"group"`
}

type Validations []Validation

func (v *Validations) add(level ValidationLevel, msg string, group string) {
	*v = append(*v, Validation{Level: level, Group: group, Message: msg})
}

func (v *Validations) Error(group, msg string) {
	v.add(ValidationLevelError, msg, group)
}

func (v *Validations) Warning(group, msg string) {
	v.add(ValidationLevelWarning, msg, group)
}

func (v *Validations) Info(group, msg string) {
	v.add(ValidationLevelInfo, msg, group)
}

func (v *Validations) Group(group string) (err func(msg string), warning func(msg string), info func(msg string)) {
	err = func(msg string) { v.Error(group, msg) }
	warning = func(msg string) { v.Warning(group, msg) }
	info = func(msg string) { v.Info(group, msg) }
	return
}

// Count number of validations with the given level
func (v Validations) Count(level ValidationLevel) int {
	n := 0
	for _, validation := range v {
		if validation.Level == level {
			n++
		}
	}
	return n
}

// ValidateAnnotation checks an annotation against the closed label and
// category sets, group is usually the annotation file
func ValidateAnnotation(group string, la LayoutAnnotation) Validations {
	vs := Validations{}
	_, warning, info := vs.Group(group)
	if !IsKnownCategory(la.Category) {
		warning("unknown category: " + la.Category)
	}
	for _, el := range la.Elements {
		if !IsKnownLabel(el.Label) {
			warning("unknown element label: " + el.Label)
		}
	}
	if len(la.Elements) == 0 {
		info("page has no layout elements")
	}
	if len(la.Images) == 0 {
		info("no images found for " + la.Filename)
	}
	return vs
}
