// internal/app/features/events/public.go
package events

import (
	"context"
	"net/http"

	eventstore "github.com/datasea-id/webhub/internal/app/store/events"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
)

// ServeList handles GET /acara, the public event archive. Events are listed
// by date ascending; the status tabs and search narrow the list before
// paging.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := eventstore.New(h.DB).AllByDate(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load events failed", err, "Unable to load events.", "/")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := eventListConfig(publicPageSize).Apply(all, p)

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Acara", "/"),
		Page:     page,
		Query:    p.Query,
		Filter:   p.Filter,
		Statuses: models.EventStatuses,
	}
	templates.Render(w, r, "events_public", data)
}
