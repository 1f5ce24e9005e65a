package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection := core.NewBaseCollection("profiles")
		collection.Fields.Add(
			&core.TextField{Name: "first_name"},
			&core.TextField{Name: "last_name"},
			&core.TextField{Name: "full_name"},
			&core.EmailField{Name: "email"},
			&core.TextField{Name: "phone"},
			&core.TextField{Name: "organization_name"},
			&core.TextField{Name: "profile_image"},
			&core.TextField{Name: "company"},
			&core.TextField{Name: "position"},
			&core.TextField{Name: "status"},
			&core.TextField{Name: "ticket_type"},
			&core.BoolField{Name: "checked_in"},
			&core.TextField{Name: "location"},
			&core.AutodateField{Name: "created", OnCreate: true},
			&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
		)
		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("profiles")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}
