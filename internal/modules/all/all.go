// Package all lists the content modules mounted by the server and migrated by cmsctl.
package all

import (
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules/careers"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules/leads"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules/portfolio"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules/sitesettings"
)

func Modules() []modules.Module {
	return []modules.Module{
		sitesettings.New(),
		careers.New(),
		portfolio.New(),
		leads.New(),
	}
}

// Models returns every module model, in module order.
func Models() []interface{} {
	var out []interface{}
	for _, m := range Modules() {
		out = append(out, m.Models()...)
	}
	return out
}
