// internal/app/features/programs/types.go
package programs

import (
	"html/template"

	"github.com/datasea-id/webhub/internal/app/system/formutil"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/datasea-id/webhub/internal/domain/models"
)

const programPageSize = 8

// publicListConfig pages one kategori tab. The tab itself selects the data
// set, so the config only carries the search.
func publicListConfig() listview.Config[models.WorkProgram] {
	return listview.Config[models.WorkProgram]{
		PageSize: programPageSize,
		SearchText: func(p models.WorkProgram) []string {
			return []string{p.Name, p.Division}
		},
	}
}

// adminListConfig filters the full collection by status.
func adminListConfig() listview.Config[models.WorkProgram] {
	return listview.Config[models.WorkProgram]{
		PageSize: programPageSize,
		SearchText: func(p models.WorkProgram) []string {
			return []string{p.Name, p.Division}
		},
		FilterValue: func(p models.WorkProgram) string { return p.Status },
	}
}

// programCard is one rendered program on the public page. Description is
// sanitized before it becomes template.HTML.
type programCard struct {
	Name        string
	Division    string
	Status      string
	Description template.HTML
}

type publicListData struct {
	viewdata.BaseVM
	Kategori string
	Page     listview.Page[models.WorkProgram]
	Cards    []programCard
	Query    string
}

type adminListData struct {
	viewdata.BaseVM
	Page     listview.Page[models.WorkProgram]
	Query    string
	Filter   string
	Statuses []string
}

type programFormVM struct {
	formutil.Base
	IsEdit      bool
	ProgramID   string
	Name        string
	Description string
	Division    string
	Status      string
	Kategori    string
	Statuses    []string
	Kategoris   []string
}
