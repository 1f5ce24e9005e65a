package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Extends the built-in auth collection with the profile fields the
// client reads straight off the session identity.
func init() {
	m.Register(func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}
		collection.Fields.Add(
			&core.TextField{Name: "first_name"},
			&core.TextField{Name: "last_name"},
			&core.TextField{Name: "phone"},
			&core.TextField{Name: "organization_name"},
			&core.TextField{Name: "profile_image"},
		)
		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}
		for _, name := range []string{"first_name", "last_name", "phone", "organization_name", "profile_image"} {
			collection.Fields.RemoveByName(name)
		}
		return app.Save(collection)
	})
}
