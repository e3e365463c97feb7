package cancel_slots

// Request запрос администратора на отмену слотов
type Request struct {
	SlotIDs []int64
	// Explanations текст для писем по языку бронирования, пустой текст = письмо не отправляется
	Explanations map[string]string
}

// FailedMail письмо об отмене, которое не удалось отправить
type FailedMail struct {
	BookingID int64
	Email     string
}

// Response итог отмены
type Response struct {
	DeletedSlots      int64
	CancelledBookings int
	MailsSent         int
	FailedMails       []FailedMail
	// NotifiedDateTypes типы, лист ожидания которых был оповещен
	NotifiedDateTypes []string
}
