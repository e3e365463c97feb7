package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

const dayKeyFormat = "2006-01-02"

// CanBypassDeadline проверяет, снимает ли запись листа ожидания абсолютный дедлайн типа.
// Запись должна относиться к тому же типу и быть создана строго до дедлайна
func CanBypassDeadline(dateType *domain.DateType, entry *domain.WaitingListEntry) bool {
	if entry == nil || !dateType.HasDeadline() {
		return false
	}
	return entry.DateType == dateType.Value && entry.EnteredBefore(*dateType.ApplicationDeadline)
}

// FilterAvailable отбирает слоты, видимые зрителю в момент now.
// На вход подаются только свободные слоты одного типа, входной срез не изменяется
func FilterAvailable(
	slots []*domain.Slot,
	dateType *domain.DateType,
	entry *domain.WaitingListEntry,
	rules domain.BookingRules,
	now time.Time,
) []*domain.Slot {
	// 1. Абсолютный дедлайн
	if dateType.DeadlinePassed(now) && !CanBypassDeadline(dateType, entry) {
		return []*domain.Slot{}
	}

	loc := rules.Loc()
	sorted := SortSlots(slots)

	var earliestDay time.Time
	if rules.HasDaysDeadline() {
		earliestDay = startOfDay(now.In(loc)).AddDate(0, 0, rules.DaysDeadline)
	}

	result := make([]*domain.Slot, 0, len(sorted))
	perDay := make(map[string]int)
	for _, s := range sorted {
		day := startOfDay(s.From.In(loc))

		// 2. Скользящий дедлайн в днях, иначе только будущие слоты
		if rules.HasDaysDeadline() {
			if day.Before(earliestDay) {
				continue
			}
		} else if s.From.Before(now) {
			continue
		}

		// 3. Лимит слотов на календарный день
		if rules.HasDayCap() {
			key := day.Format(dayKeyFormat)
			if perDay[key] >= rules.DatesPerDay {
				continue
			}
			perDay[key]++
		}

		result = append(result, s)
	}

	return result
}

// SortSlots возвращает копию, упорядоченную по началу, типу и номеру комнаты
func SortSlots(slots []*domain.Slot) []*domain.Slot {
	sorted := make([]*domain.Slot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.From.Equal(b.From) {
			return a.From.Before(b.From)
		}
		if a.DateType != b.DateType {
			return a.DateType < b.DateType
		}
		return a.RoomNumber < b.RoomNumber
	})
	return sorted
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
