package types

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient notification for the browser to show once.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Title string      `json:"title"`
	Text  string      `json:"text,omitempty"`
}

func SuccessNotice(title, text string) *Notice {
	return &Notice{Level: NoticeSuccess, Title: title, Text: text}
}

func ErrorNotice(text string) *Notice {
	return &Notice{Level: NoticeError, Title: "Erreur", Text: text}
}
