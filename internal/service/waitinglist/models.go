package waitinglist

import "github.com/m04kA/SMC-RehearsalBooking/internal/domain"

// SubscribeResult результат подписки
type SubscribeResult struct {
	Entry *domain.WaitingListEntry
	// Created false, если адрес уже был в листе ожидания
	Created bool
	// MailSent false, если письмо с подтверждением не ушло
	MailSent bool
}

// Subscription запись листа ожидания вместе с типом для страницы отписки
type Subscription struct {
	Entry    *domain.WaitingListEntry
	DateType *domain.DateType
}

// NotifyResult итог рассылки приглашений
type NotifyResult struct {
	Sent   int
	Failed int
}
