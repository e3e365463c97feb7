package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var berlin = time.FixedZone("CEST", 2*60*60)

func at(day, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, berlin)
	if err != nil {
		panic(err)
	}
	return t
}

func slotAt(id int64, from time.Time, room string) *domain.Slot {
	return &domain.Slot{
		ID:         id,
		From:       from,
		To:         from.Add(20 * time.Minute),
		RoomNumber: room,
		DateType:   domain.DateTypeChoir,
	}
}

func ids(slots []*domain.Slot) []int64 {
	out := make([]int64, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterAvailable_FutureOnly(t *testing.T) {
	now := at("2024-05-01", "10:00")
	slots := []*domain.Slot{
		slotAt(1, now.Add(-time.Minute), "1"),
		slotAt(2, now, "1"),
		slotAt(3, now.Add(time.Hour), "1"),
	}
	dateType := &domain.DateType{Value: domain.DateTypeChoir}

	got := FilterAvailable(slots, dateType, nil, domain.BookingRules{Location: berlin}, now)

	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestFilterAvailable_DaysDeadline(t *testing.T) {
	now := at("2024-05-01", "23:30")
	slots := []*domain.Slot{
		slotAt(1, at("2024-05-02", "08:00"), "1"),
		slotAt(2, at("2024-05-02", "23:59"), "1"),
		slotAt(3, at("2024-05-03", "00:10"), "1"),
		slotAt(4, at("2024-05-10", "12:00"), "1"),
	}
	dateType := &domain.DateType{Value: domain.DateTypeChoir}
	rules := domain.BookingRules{DaysDeadline: 2, Location: berlin}

	got := FilterAvailable(slots, dateType, nil, rules, now)

	assert.Equal(t, []int64{3, 4}, ids(got))
}

func TestFilterAvailable_DaysDeadlineUsesConfiguredZone(t *testing.T) {
	// 2024-05-01 23:30 in Berlin is still 2024-05-01 21:30 UTC
	now := at("2024-05-01", "23:30").UTC()
	slots := []*domain.Slot{
		slotAt(1, at("2024-05-02", "01:00").UTC(), "1"),
	}
	dateType := &domain.DateType{Value: domain.DateTypeChoir}

	got := FilterAvailable(slots, dateType, nil, domain.BookingRules{DaysDeadline: 1, Location: berlin}, now)

	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilterAvailable_DayCap(t *testing.T) {
	now := at("2024-05-01", "08:00")
	slots := []*domain.Slot{
		slotAt(3, at("2024-05-02", "11:00"), "1"),
		slotAt(1, at("2024-05-02", "09:00"), "1"),
		slotAt(2, at("2024-05-02", "10:00"), "1"),
		slotAt(4, at("2024-05-03", "09:00"), "1"),
	}
	dateType := &domain.DateType{Value: domain.DateTypeChoir}
	rules := domain.BookingRules{DatesPerDay: 2, Location: berlin}

	got := FilterAvailable(slots, dateType, nil, rules, now)

	assert.Equal(t, []int64{1, 2, 4}, ids(got))
}

func TestFilterAvailable_DayCapCountsOnlyVisibleSlots(t *testing.T) {
	now := at("2024-05-02", "09:30")
	slots := []*domain.Slot{
		slotAt(1, at("2024-05-02", "09:00"), "1"),
		slotAt(2, at("2024-05-02", "10:00"), "1"),
		slotAt(3, at("2024-05-02", "11:00"), "1"),
	}
	dateType := &domain.DateType{Value: domain.DateTypeChoir}

	got := FilterAvailable(slots, dateType, nil, domain.BookingRules{DatesPerDay: 1, Location: berlin}, now)

	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilterAvailable_AbsoluteDeadline(t *testing.T) {
	deadline := at("2024-05-01", "12:00")
	now := at("2024-05-01", "12:00")
	slots := []*domain.Slot{slotAt(1, at("2024-06-01", "10:00"), "1")}
	dateType := &domain.DateType{Value: domain.DateTypeChoir, ApplicationDeadline: &deadline}
	rules := domain.BookingRules{Location: berlin}

	tests := []struct {
		name  string
		entry *domain.WaitingListEntry
		want  []int64
	}{
		{
			name: "anonymous viewer",
			want: []int64{},
		},
		{
			name:  "early registrant",
			entry: &domain.WaitingListEntry{DateType: domain.DateTypeChoir, Entered: deadline.Add(-time.Second)},
			want:  []int64{1},
		},
		{
			name:  "registered at the deadline",
			entry: &domain.WaitingListEntry{DateType: domain.DateTypeChoir, Entered: deadline},
			want:  []int64{},
		},
		{
			name:  "entry of another date type",
			entry: &domain.WaitingListEntry{DateType: domain.DateTypeOrchestra, Entered: deadline.Add(-time.Hour)},
			want:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAvailable(slots, dateType, tt.entry, rules, now)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterAvailable_DeadlineNotReached(t *testing.T) {
	deadline := at("2024-05-10", "12:00")
	now := at("2024-05-01", "12:00")
	slots := []*domain.Slot{slotAt(1, at("2024-06-01", "10:00"), "1")}
	dateType := &domain.DateType{Value: domain.DateTypeChoir, ApplicationDeadline: &deadline}

	got := FilterAvailable(slots, dateType, nil, domain.BookingRules{Location: berlin}, now)

	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilterAvailable_BypassKeepsOtherRules(t *testing.T) {
	deadline := at("2024-05-01", "12:00")
	now := at("2024-05-02", "12:00")
	slots := []*domain.Slot{
		slotAt(1, at("2024-05-02", "11:00"), "1"),
		slotAt(2, at("2024-05-02", "13:00"), "1"),
	}
	dateType := &domain.DateType{Value: domain.DateTypeChoir, ApplicationDeadline: &deadline}
	entry := &domain.WaitingListEntry{DateType: domain.DateTypeChoir, Entered: at("2024-04-01", "00:00")}

	got := FilterAvailable(slots, dateType, entry, domain.BookingRules{Location: berlin}, now)

	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilterAvailable_Ordering(t *testing.T) {
	now := at("2024-05-01", "08:00")
	from := at("2024-05-02", "10:00")
	slots := []*domain.Slot{
		slotAt(3, from, "B"),
		slotAt(4, from.Add(time.Hour), "A"),
		slotAt(2, from, "A"),
		{ID: 1, From: from, To: from.Add(time.Hour), RoomNumber: "Z", DateType: domain.DateTypeChamberChoir},
	}
	dateType := &domain.DateType{Value: domain.DateTypeChoir}

	got := FilterAvailable(slots, dateType, nil, domain.BookingRules{Location: berlin}, now)

	require.Len(t, got, 4)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
	assert.Equal(t, int64(3), slots[0].ID, "input must not be reordered")
}

func TestFilterAvailable_Empty(t *testing.T) {
	dateType := &domain.DateType{Value: domain.DateTypeChoir}

	got := FilterAvailable(nil, dateType, nil, domain.BookingRules{DatesPerDay: 3}, time.Now())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
