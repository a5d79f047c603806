// internal/app/features/about/division.go
package about

import (
	"context"
	"net/http"
	"strings"

	teamstore "github.com/datasea-id/webhub/internal/app/store/team"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type divisionData struct {
	viewdata.BaseVM
	Profile divisionProfile
	Leaders []models.TeamMember
	Staff   []models.TeamMember
}

// ServeDivision handles GET /tentang/{slug}, the per-division profile page:
// a static description and task list plus the members of that division.
// Leads render above the rest of the division.
func (h *Handler) ServeDivision(w http.ResponseWriter, r *http.Request) {
	profile, ok := divisionBySlug(chi.URLParam(r, "slug"))
	if !ok {
		h.ErrLog.LogNotFound(w, r, "division not found", "Divisi tidak ditemukan.", "/tentang")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := teamstore.New(h.DB).Find(ctx, bson.M{"divisi": profile.Name},
		options.Find().SetSort(bson.D{{Key: "nama_ci", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load division members failed", err, "Unable to load the page.", "/tentang")
		return
	}

	leaders, staff := splitByLeadRole(members)

	data := divisionData{
		BaseVM:  viewdata.NewBaseVM(r, profile.Name, "/tentang"),
		Profile: profile,
		Leaders: leaders,
		Staff:   staff,
	}
	templates.Render(w, r, "about_division", data)
}

// splitByLeadRole separates division leads from the rest. A lead is anyone
// whose role names them ketua, koordinator, or kepala.
func splitByLeadRole(members []models.TeamMember) (leaders, staff []models.TeamMember) {
	for _, m := range members {
		if isLeadRole(m.Role) {
			leaders = append(leaders, m)
		} else {
			staff = append(staff, m)
		}
	}
	return leaders, staff
}

func isLeadRole(role string) bool {
	role = strings.ToLower(role)
	return strings.Contains(role, "ketua") ||
		strings.Contains(role, "koordinator") ||
		strings.Contains(role, "kepala")
}
