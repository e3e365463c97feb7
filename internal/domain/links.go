package domain

import (
	"net/url"
	"strings"
)

// BookingDeleteLink public self-cancel page of a booking
func BookingDeleteLink(webAddress, token string) string {
	return joinLink(webAddress, "booking", "delete", token)
}

// UnsubscribeLink public unsubscribe page of a waiting list entry
func UnsubscribeLink(webAddress, token string) string {
	return joinLink(webAddress, "waiting-list", "unsubscribe", token)
}

// DateOverviewLink public list of available dates of a date type
func DateOverviewLink(webAddress, dateType string) string {
	return joinLink(webAddress, "dates", dateType)
}

func joinLink(webAddress string, parts ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(webAddress, "/"))
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}
