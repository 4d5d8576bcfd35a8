package cli

import (
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
)

func (a *App) showAttachments(label string, set *models.AttachmentSet) {
	list := set.Active()
	a.printf("  %s (%d/%d):\n", label, len(list), set.Policy().Limit)
	for i, at := range list {
		where := at.RemoteURL
		if !at.Persisted() {
			where = "local " + at.Local.Path
		}
		a.printf("    %d. [sort %d] %s  %s\n", i+1, at.Sort, at.Name, where)
	}
	if n := len(set.Pending()); n > 0 {
		a.printf("    (%d queued for deletion)\n", n)
	}
}

func (a *App) showFacility(f *models.Facility) {
	a.printf("Forest #%d\n", f.SeqNo)
	a.printf("  name:     %s\n  main:     %s\n", f.Name, f.MainYn)
	a.printf("  address:  %s %s\n  tel:      %s\n  business: %s\n", f.Addr1, f.Addr2, f.TelNo, f.BusinessNum)
	a.printf("  summary:  %s\n  desc:     %s\n", f.SimpleDesc, f.Desc)
	a.showAttachments("images", f.Images)
	a.showAttachments("map", f.Map)
}

func (a *App) showExperience(n int, e *models.Experience) {
	a.printf("%d. #%d %s [%s/%s] %q images:%d\n", n, e.SeqNo, e.Name, e.Categ1, e.Categ2, e.Title, e.Images.Len())
}

func (a *App) showVideo(n int, v *models.Video) {
	file := "-"
	if at, ok := v.File.At(0); ok {
		file = at.Name
	}
	a.printf("%d. #%d season %s file %s\n", n, v.SeqNo, v.Categ1, file)
	for i, r := range v.Rows() {
		a.printf("     %d) exp %d at %q\n", i+1, r.ExpSeqNo, r.PointTime)
	}
}

func (a *App) showNotice(n *models.Notice) {
	a.printf("Notice #%d (use %s)\n  title:    %s\n  contents: %s\n", n.SeqNo, n.UseYn, n.Title, n.Contents)
	for i, u := range []string{n.URL1, n.URL2, n.URL3} {
		if u != "" {
			a.printf("  url%d:     %s\n", i+1, u)
		}
	}
}
