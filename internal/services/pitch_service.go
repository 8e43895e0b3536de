package services

import (
	"context"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

type PitchService struct {
	repos *store.Repositories
}

func NewPitchService(repos *store.Repositories) *PitchService {
	return &PitchService{repos: repos}
}

type EventView struct {
	models.PitchEvent
	Registered bool `json:"registered"`
}

type CalendarDay struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	HasEvent bool   `json:"hasEvent"`
	IsToday  bool   `json:"isToday"`
}

type Calendar struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	MonthName     string        `json:"monthName"`
	DayNames      []string      `json:"dayNames"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []CalendarDay `json:"days"`
}

var calendarDayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (service *PitchService) Events(ctx context.Context, user models.User) ([]EventView, error) {
	events, err := service.repos.PitchEvents.All(ctx)
	if err != nil {
		return nil, err
	}
	registered, err := service.registeredEventIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]EventView, 0, len(events))
	for _, event := range events {
		_, ok := registered[event.ID]
		views = append(views, EventView{PitchEvent: event, Registered: ok})
	}
	return views, nil
}

// Register records the user's attendance. Like applications, uniqueness
// per (user, event) is checked here rather than by the collection.
func (service *PitchService) Register(ctx context.Context, user models.User, eventID string, now time.Time) (models.EventRegistration, error) {
	_, found, err := service.repos.PitchEvents.FindBy(ctx, "id", eventID)
	if err != nil {
		return models.EventRegistration{}, err
	}
	if !found {
		return models.EventRegistration{}, ErrEventUnknown
	}

	already, err := service.repos.EventRegistrations.Exists(ctx, func(registration models.EventRegistration) bool {
		return registration.UserID == user.ID && registration.EventID == eventID
	})
	if err != nil {
		return models.EventRegistration{}, err
	}
	if already {
		return models.EventRegistration{}, ErrAlreadyRegistered
	}

	registration := models.EventRegistration{UserID: user.ID, EventID: eventID, Date: now.UTC()}
	if err := service.repos.EventRegistrations.Append(ctx, registration); err != nil {
		return models.EventRegistration{}, err
	}
	return registration, nil
}

// Calendar lays out the month containing month, marking days with an event
// the user registered for and today's date.
func (service *PitchService) Calendar(ctx context.Context, user models.User, month time.Time, now time.Time) (Calendar, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	events, err := service.repos.PitchEvents.All(ctx)
	if err != nil {
		return Calendar{}, err
	}
	registered, err := service.registeredEventIDs(ctx, user.ID)
	if err != nil {
		return Calendar{}, err
	}
	eventDays := map[int]bool{}
	for _, event := range events {
		if _, ok := registered[event.ID]; !ok {
			continue
		}
		date, ok := parseRecordDate(event.Date)
		if !ok || date.Year() != first.Year() || date.Month() != first.Month() {
			continue
		}
		eventDays[date.Day()] = true
	}

	calendar := Calendar{
		Year:          first.Year(),
		Month:         int(first.Month()),
		MonthName:     first.Month().String(),
		DayNames:      append([]string(nil), calendarDayNames...),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		calendar.Days = append(calendar.Days, CalendarDay{
			Day:      day,
			Date:     date.Format("2006-01-02"),
			HasEvent: eventDays[day],
			IsToday:  date.Year() == now.Year() && date.Month() == now.Month() && day == now.Day(),
		})
	}
	return calendar, nil
}

func (service *PitchService) registeredEventIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	registrations, err := service.repos.EventRegistrations.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(registrations))
	for _, registration := range registrations {
		ids[registration.EventID] = struct{}{}
	}
	return ids, nil
}
