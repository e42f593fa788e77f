package diag

import "snoot/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Padding:  DefaultPadding,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewInfo creates an informational diagnostic without a code.
func NewInfo(primary source.Span, msg string) Diagnostic {
	return New(SevInfo, UnknownCode, primary, msg)
}

func (d Diagnostic) WithSeverity(sev Severity) Diagnostic {
	d.Severity = sev
	return d
}

// WithCustom switches the diagnostic to SevCustom labelled by tag.
func (d Diagnostic) WithCustom(tag string) Diagnostic {
	d.Severity = SevCustom
	d.Tag = tag
	return d
}

func (d Diagnostic) WithAnnotation(sp source.Span, msg string) Diagnostic {
	d.Annotations = append(d.Annotations, Annotation{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithPadding(n int) Diagnostic {
	d.Padding = max(n, 0)
	return d
}

func (d Diagnostic) WithMinGap(n int) Diagnostic {
	d.MinGap = max(n, 0)
	return d
}

func (d Diagnostic) WithFile(name string) Diagnostic {
	d.File = name
	return d
}
