package tui

type toastKind int

const (
	toastNone toastKind = iota
	toastLoading
	toastSuccess
	toastFailure
)

// toast is the one-line status notice shown in the status bar
type toast struct {
	kind toastKind
	text string
}

func newToast(kind toastKind, text string) toast {
	return toast{kind: kind, text: text}
}

func (t toast) view() string {
	switch t.kind {
	case toastLoading:
		return styleLoading.Render(t.text)
	case toastSuccess:
		return styleSuccess.Render(t.text)
	case toastFailure:
		return styleError.Render(t.text)
	}
	return ""
}
