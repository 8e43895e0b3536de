package services

import (
	"context"
	"sort"
	"time"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

type ChatService struct {
	repos *store.Repositories
}

func NewChatService(repos *store.Repositories) *ChatService {
	return &ChatService{repos: repos}
}

type Contact struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Role          string     `json:"role,omitempty"`
	UnreadCount   int        `json:"unreadCount"`
	LastMessage   string     `json:"lastMessage"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	LastActivity  string     `json:"lastActivity,omitempty"`
}

type ThreadMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sent      bool      `json:"sent"`
	Timestamp time.Time `json:"timestamp"`
	Time      string    `json:"time"`
}

type Thread struct {
	ContactID   string          `json:"contactId"`
	ContactName string          `json:"contactName"`
	Messages    []ThreadMessage `json:"messages"`
}

// Contacts derives the contact list: everyone the user exchanged messages
// with, plus investors who left feedback for an entrepreneur, plus startups
// (with a profile) a freelancer applied to. Contacts whose account is gone
// stay listed as "Unknown".
func (service *ChatService) Contacts(ctx context.Context, user models.User, now time.Time) ([]Contact, error) {
	messages, err := service.repos.Messages.All(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := service.contactIDs(ctx, user, messages)
	if err != nil {
		return nil, err
	}
	users, err := usersByID(ctx, service.repos)
	if err != nil {
		return nil, err
	}

	contacts := make([]Contact, 0, len(ids))
	for _, id := range ids {
		contact := Contact{
			ID:          id,
			Name:        userName(users, id, models.PlaceholderUnknown),
			Role:        users[id].Role,
			LastMessage: models.PlaceholderNoMessages,
		}
		var last *models.Message
		for index := range messages {
			message := &messages[index]
			if !message.Involves(user.ID, id) {
				continue
			}
			if message.FromID == id && message.ToID == user.ID && !message.Read {
				contact.UnreadCount++
			}
			if last == nil || message.Timestamp.After(last.Timestamp) {
				last = message
			}
		}
		if last != nil {
			at := last.Timestamp
			contact.LastMessage = last.Text
			contact.LastMessageAt = &at
			contact.LastActivity = FormatRelative(at, now)
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// OpenThread marks the contact's messages to the user as read and only then
// loads the conversation, oldest first.
func (service *ChatService) OpenThread(ctx context.Context, user models.User, contactID string) (Thread, error) {
	if _, err := service.repos.Messages.SetWhere(ctx, func(message models.Message) bool {
		return message.FromID == contactID && message.ToID == user.ID && !message.Read
	}, "read", true); err != nil {
		return Thread{}, err
	}

	messages, err := service.repos.Messages.Filter(ctx, func(message models.Message) bool {
		return message.Involves(user.ID, contactID)
	})
	if err != nil {
		return Thread{}, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	contact, _, err := service.repos.Users.FindBy(ctx, "id", contactID)
	if err != nil {
		return Thread{}, err
	}

	thread := Thread{
		ContactID:   contactID,
		ContactName: orPlaceholder(contact.Name, models.PlaceholderUnknown),
		Messages:    make([]ThreadMessage, 0, len(messages)),
	}
	for _, message := range messages {
		thread.Messages = append(thread.Messages, ThreadMessage{
			ID:        message.ID,
			Text:      message.Text,
			Sent:      message.FromID == user.ID,
			Timestamp: message.Timestamp,
			Time:      message.Timestamp.Format("03:04 PM"),
		})
	}
	return thread, nil
}

func (service *ChatService) Send(ctx context.Context, user models.User, contactID string, text string, now time.Time) (models.Message, error) {
	contactID = trimmed(contactID)
	text = trimmed(text)
	if contactID == "" {
		return models.Message{}, ErrMessageRecipient
	}
	if text == "" {
		return models.Message{}, ErrMessageEmpty
	}

	message := models.Message{
		ID:        models.NewID(),
		FromID:    user.ID,
		ToID:      contactID,
		Text:      text,
		Timestamp: now.UTC(),
	}
	if err := service.repos.Messages.Append(ctx, message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// UnreadTotal counts every unread message addressed to the user.
func (service *ChatService) UnreadTotal(ctx context.Context, user models.User) (int, error) {
	unread, err := service.repos.Messages.Filter(ctx, func(message models.Message) bool {
		return message.ToID == user.ID && !message.Read
	})
	return len(unread), err
}

func (service *ChatService) contactIDs(ctx context.Context, user models.User, messages []models.Message) ([]string, error) {
	ordered := make([]string, 0)
	seen := map[string]struct{}{}
	add := func(id string) {
		if id == "" || id == user.ID {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	for _, message := range messages {
		if message.FromID == user.ID {
			add(message.ToID)
		}
		if message.ToID == user.ID {
			add(message.FromID)
		}
	}

	switch user.Role {
	case models.RoleEntrepreneur:
		feedback, err := service.repos.Feedback.ListFor(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		for _, entry := range feedback {
			add(entry.InvestorID)
		}
	case models.RoleFreelancer:
		applications, err := service.repos.Applications.ListFor(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		_, profiles, err := startupProfilesByUser(ctx, service.repos)
		if err != nil {
			return nil, err
		}
		for _, application := range applications {
			if _, ok := profiles[application.StartupID]; ok {
				add(application.StartupID)
			}
		}
	}
	return ordered, nil
}
