// Package demo holds the bundled sample data behind the --demo flag.
// The web console used to fall back to this data silently whenever the
// reviews or tickets endpoints came back empty; here the fallback is
// explicit opt-in configuration and never happens on its own.
package demo

import (
	"time"

	"github.com/lawyerdirect/lawadmin/internal/api"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func person(first, last string) api.PersonName {
	return api.PersonName{FirstName: first, LastName: last}
}

var reviews = []api.Review{
	{ID: "rev-1", Rating: 5, Comment: "Resolved my lease dispute in two calls. Could not recommend more.", Status: api.ReviewPending, CreatedAt: day("2026-02-03"), Client: person("John", "Davis")},
	{ID: "rev-2", Rating: 4, Comment: "Clear advice on my employment contract, though scheduling took a while.", Status: api.ReviewApproved, CreatedAt: day("2026-01-28"), Client: person("Maria", "Garcia")},
	{ID: "rev-3", Rating: 2, Comment: "Consultation felt rushed and I still have open questions.", Status: api.ReviewPending, CreatedAt: day("2026-01-25"), Client: person("Emily", "Watson")},
	{ID: "rev-4", Rating: 5, Comment: "Walked me through the incorporation paperwork step by step.", Status: api.ReviewApproved, CreatedAt: day("2026-01-19"), Client: person("Priya", "Patel")},
	{ID: "rev-5", Rating: 1, Comment: "Lawyer never joined the scheduled call.", Status: api.ReviewRejected, CreatedAt: day("2026-01-14"), Client: person("Lisa", "Park")},
	{ID: "rev-6", Rating: 4, Comment: "Solid guidance on a custody matter. Responsive over chat.", Status: api.ReviewApproved, CreatedAt: day("2026-01-09"), Client: person("Rachel", "Adams")},
	{ID: "rev-7", Rating: 3, Comment: "Got what I needed but billing was confusing.", Status: api.ReviewPending, CreatedAt: day("2026-01-05"), Client: person("Alex", "Thompson")},
}

var tickets = []api.Ticket{
	{ID: "tkt-1", Subject: "Charged twice for one consultation", Message: "My card shows two charges for the Jan 28 session.", Category: api.TicketBilling, Status: api.TicketOpen, CreatedAt: day("2026-02-04"), Requester: person("Maria", "Garcia")},
	{ID: "tkt-2", Subject: "Cannot upload license image", Message: "The verification form rejects my PNG upload.", Category: api.TicketTechnical, Status: api.TicketInProgress, CreatedAt: day("2026-02-02"), Requester: person("Robert", "Chen")},
	{ID: "tkt-3", Subject: "Change account email", Message: "I need my login moved to a new address.", Category: api.TicketAccount, Status: api.TicketOpen, CreatedAt: day("2026-01-30"), Requester: person("John", "Davis")},
	{ID: "tkt-4", Subject: "Question about retainer terms", Message: "Is the trial consultation covered by the platform fee?", Category: api.TicketLegal, Status: api.TicketResolved, CreatedAt: day("2026-01-22"), Requester: person("Emily", "Watson")},
	{ID: "tkt-5", Subject: "App crashes on notifications tab", Message: "Android app closes when I open notifications.", Category: api.TicketTechnical, Status: api.TicketClosed, CreatedAt: day("2026-01-15"), Requester: person("David", "Kim")},
	{ID: "tkt-6", Subject: "Feedback on new calendar", Message: "Would love a weekly view.", Category: api.TicketOther, Status: api.TicketOpen, CreatedAt: day("2026-01-10"), Requester: person("Rachel", "Adams")},
}

func paginate[T any](rows []T, page api.PageRequest) *api.Page[T] {
	total := len(rows)
	start := (page.Page - 1) * page.Limit
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return &api.Page[T]{
		Data: rows[start:end],
		Pagination: api.Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: api.PageCount(total, page.Limit),
		},
	}
}

// Reviews returns a page of sample reviews, filtered client-side the
// same way the server would filter.
func Reviews(status string, rating int, page api.PageRequest) *api.Page[api.Review] {
	filtered := make([]api.Review, 0, len(reviews))
	for _, r := range reviews {
		if status != "" && r.Status != status {
			continue
		}
		if rating != 0 && r.Rating != rating {
			continue
		}
		filtered = append(filtered, r)
	}
	return paginate(filtered, page)
}

// Tickets returns a page of sample support tickets.
func Tickets(status, category string, page api.PageRequest) *api.Page[api.Ticket] {
	filtered := make([]api.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if status != "" && t.Status != status {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		filtered = append(filtered, t)
	}
	return paginate(filtered, page)
}
