package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		venues, err := app.FindCollectionByNameOrId("venues")
		if err != nil {
			return err
		}
		users, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		collection := core.NewBaseCollection("events")
		collection.Fields.Add(
			&core.TextField{Name: "title", Required: true},
			&core.TextField{Name: "description"},
			&core.DateField{Name: "event_date"},
			&core.TextField{Name: "start_time"},
			&core.TextField{Name: "end_time"},
			&core.RelationField{Name: "venue", CollectionId: venues.Id, MaxSelect: 1},
			&core.TextField{Name: "location_override"},
			&core.TextField{Name: "address_override"},
			&core.RelationField{Name: "organizer", CollectionId: users.Id, MaxSelect: 1},
			&core.TextField{Name: "image"},
			&core.SelectField{Name: "status", Values: []string{"draft", "upcoming", "live", "completed", "cancelled"}, MaxSelect: 1},
			&core.TextField{Name: "category"},
			&core.TextField{Name: "size"},
			&core.NumberField{Name: "price"},
			&core.NumberField{Name: "original_price"},
			&core.NumberField{Name: "max_attendees"},
			&core.NumberField{Name: "attendees_count"},
			&core.NumberField{Name: "registrations_count"},
			&core.TextField{Name: "attendees"},
			&core.NumberField{Name: "rating"},
			&core.NumberField{Name: "reviews"},
			&core.JSONField{Name: "tags", MaxSize: 2000},
			&core.JSONField{Name: "highlights", MaxSize: 5000},
			&core.JSONField{Name: "agenda", MaxSize: 10000},
			&core.JSONField{Name: "speakers", MaxSize: 10000},
			&core.JSONField{Name: "comments", MaxSize: 50000},
			&core.AutodateField{Name: "created", OnCreate: true},
			&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
		)
		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("events")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}
