// internal/app/features/events/types.go
package events

import (
	"github.com/datasea-id/webhub/internal/app/system/formutil"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/datasea-id/webhub/internal/domain/models"
)

const (
	publicPageSize = 9
	adminPageSize  = 6
)

// eventListConfig drives both the public and the admin list. Statuses are
// normalized at the store boundary, so the filter is a plain equality match.
func eventListConfig(pageSize int) listview.Config[models.Event] {
	return listview.Config[models.Event]{
		PageSize: pageSize,
		SearchText: func(ev models.Event) []string {
			return []string{ev.Name, ev.Location, ev.Organizer}
		},
		FilterValue: func(ev models.Event) string { return ev.Status },
	}
}

// listData is the view model for both event list pages.
type listData struct {
	viewdata.BaseVM
	Page     listview.Page[models.Event]
	Query    string
	Filter   string
	Statuses []string
}

// eventFormVM echoes submitted values back into the form on validation
// failure. PosterURL is only ever the stored URL, never the failed upload.
type eventFormVM struct {
	formutil.Base
	IsEdit           bool
	EventID          string
	Name             string
	Description      string
	Date             string
	Time             string
	Location         string
	Organizer        string
	RegistrationLink string
	PosterURL        string
	Status           string
	Statuses         []string
}
