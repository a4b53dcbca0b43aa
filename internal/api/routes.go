package api

import "github.com/kpdinfo/kpdinfo/pkg/routes"

func (d *domain) routes() routes.Group {
	group := routes.Group{
		Prefix: "/kpdinfo",
		Children: []routes.Group{
			d.classify.Handler().Routes(),
			d.examples.Routes(),
		},
	}

	if d.history != nil {
		group.Children = append(group.Children, d.history.Handler().Routes())
	}

	return group
}
