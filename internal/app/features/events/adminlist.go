// internal/app/features/events/adminlist.go
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

// ServeAdminList handles GET /admin/acara.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := eventstore.New(h.DB).All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load events failed", err, "Unable to load events.", "/admin")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := eventListConfig(adminPageSize).Apply(all, p)

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Kelola Acara", "/admin"),
		Page:     page,
		Query:    p.Query,
		Filter:   p.Filter,
		Statuses: models.EventStatuses,
	}
	templates.Render(w, r, "events_admin", data)
}
