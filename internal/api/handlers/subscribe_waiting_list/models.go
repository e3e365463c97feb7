package subscribe_waiting_list

// SubscribeRequest HTTP request model
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeResponse HTTP response model
// Токен отписки приходит только в письме
type SubscribeResponse struct {
	DateType string `json:"dateType"`
	Email    string `json:"email"`
	Created  bool   `json:"created"`
	MailSent bool   `json:"mailSent"`
	Message  string `json:"message"`
	Key      string `json:"key"`
}
