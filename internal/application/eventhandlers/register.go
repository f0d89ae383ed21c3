package eventhandlers

import (
	"fmt"

	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/user"
)

// Dispatcher is the subset of the event dispatcher handlers attach to.
type Dispatcher interface {
	Subscribe(eventType string, handler events.EventHandler) error
}

// RegisterAll attaches every handler to its event types. Handlers are
// optional; nil handlers are skipped so callers can disable concerns.
func RegisterAll(
	dispatcher Dispatcher,
	notifier *NotificationHandler,
	auditor *AuditHandler,
	activity *ActivityHandler,
	dashboard *DashboardHandler,
	callbacks *CallbackHandler,
) error {
	type subscription struct {
		eventType string
		handle    func(events.DomainEvent) error
	}
	var subs []subscription

	if notifier != nil {
		subs = append(subs,
			subscription{issue.EventTypeIssueCreated, notifier.HandleIssueCreated},
			subscription{issue.EventTypeIssueAssigned, notifier.HandleIssueAssigned},
			subscription{issue.EventTypeIssueResolved, notifier.HandleIssueResolved},
			subscription{issue.EventTypeIssueEscalated, notifier.HandleIssueEscalated},
			subscription{issue.EventTypeCommentAdded, notifier.HandleCommentAdded},
			subscription{issue.EventTypeIssueStatusChanged, notifier.HandleStatusChanged},
		)
	}
	if auditor != nil {
		subs = append(subs,
			subscription{issue.EventTypeIssueCreated, auditor.HandleIssueCreated},
			subscription{issue.EventTypeIssueAssigned, auditor.HandleIssueAssigned},
			subscription{issue.EventTypeIssueStatusChanged, auditor.HandleStatusChanged},
			subscription{issue.EventTypeCommentAdded, auditor.HandleCommentAdded},
			subscription{user.EventTypeUserLoggedIn, auditor.HandleUserLoggedIn},
			subscription{user.EventTypeUserLoggedOut, auditor.HandleUserLoggedOut},
		)
	}
	if activity != nil {
		subs = append(subs,
			subscription{issue.EventTypeIssueCreated, activity.HandleIssueCreated},
			subscription{issue.EventTypeIssueAssigned, activity.HandleIssueAssigned},
			subscription{issue.EventTypeIssueStatusChanged, activity.HandleStatusChanged},
			subscription{issue.EventTypeCommentAdded, activity.HandleCommentAdded},
			subscription{user.EventTypeUserLoggedIn, activity.HandleUserLoggedIn},
			subscription{user.EventTypeUserLoggedOut, activity.HandleUserLoggedOut},
		)
	}
	if dashboard != nil {
		for _, eventType := range []string{
			issue.EventTypeIssueCreated,
			issue.EventTypeIssueAssigned,
			issue.EventTypeIssueStatusChanged,
			issue.EventTypeIssueResolved,
			issue.EventTypeIssueEscalated,
		} {
			subs = append(subs, subscription{eventType, dashboard.HandleIssueEvent})
		}
	}
	if callbacks != nil {
		for _, eventType := range []string{
			issue.EventTypeIssueCreated,
			issue.EventTypeIssueAssigned,
			issue.EventTypeIssueStatusChanged,
			issue.EventTypeIssueResolved,
			issue.EventTypeIssueEscalated,
		} {
			subs = append(subs, subscription{eventType, callbacks.HandleIssueEvent})
		}
	}

	for _, s := range subs {
		handler := events.NewSimpleEventHandler(s.eventType, s.handle)
		if err := dispatcher.Subscribe(s.eventType, handler); err != nil {
			return fmt.Errorf("failed to subscribe handler for %s: %w", s.eventType, err)
		}
	}
	return nil
}
