package mailer

// Шаблоны писем
const (
	TemplateBooking                 = "booking"
	TemplateCancellation            = "cancellation"
	TemplateWaitingListConfirmation = "waiting-list-confirmation"
	TemplateWaitingListInvite       = "waiting-list-invite"
)

// Ключи тем писем
const (
	SubjectBooking     = "mail-booking-subject"
	SubjectCancel      = "mail-cancel-subject"
	SubjectWaitingList = "waiting-list"
)

// Message письмо до перевода и рендеринга
type Message struct {
	To          string
	Lang        string
	SubjectKey  string
	SubjectArgs map[string]string
	Template    string
	Data        map[string]string
}

// Envelope готовое к отправке письмо
type Envelope struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Lang    string `json:"lang"`
}

// templateData данные, доступные в шаблоне
type templateData struct {
	Lang string
	Data map[string]string
}
