// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"call", "email", "meeting", "viewing", "note"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deal_id", Type: field.TypeInt, Nullable: true},
		{Name: "lead_id", Type: field.TypeInt, Nullable: true},
		{Name: "property_id", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_deals_activities",
				Columns:    []*schema.Column{ActivitiesColumns[4]},
				RefColumns: []*schema.Column{DealsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "activities_leads_activities",
				Columns:    []*schema.Column{ActivitiesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "activities_properties_activities",
				Columns:    []*schema.Column{ActivitiesColumns[6]},
				RefColumns: []*schema.Column{PropertiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "activities_users_activities",
				Columns:    []*schema.Column{ActivitiesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[3]},
			},
			{
				Name:    "activity_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[7], ActivitiesColumns[3]},
			},
			{
				Name:    "activity_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[5], ActivitiesColumns[3]},
			},
		},
	}
	// DealsColumns holds the columns for the "deals" table.
	DealsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"negotiation", "under_contract", "closed", "fallthrough"}, Default: "negotiation"},
		{Name: "offer_price", Type: field.TypeFloat64, Nullable: true},
		{Name: "closed_price", Type: field.TypeFloat64, Nullable: true},
		{Name: "commission_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "expected_close_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "property_id", Type: field.TypeInt},
	}
	// DealsTable holds the schema information for the "deals" table.
	DealsTable = &schema.Table{
		Name:       "deals",
		Columns:    DealsColumns,
		PrimaryKey: []*schema.Column{DealsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deals_leads_deals",
				Columns:    []*schema.Column{DealsColumns[8]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "deals_properties_deals",
				Columns:    []*schema.Column{DealsColumns[9]},
				RefColumns: []*schema.Column{PropertiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deal_lead_id",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[8]},
			},
			{
				Name:    "deal_property_id",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[9]},
			},
			{
				Name:    "deal_stage",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[1]},
			},
			{
				Name:    "deal_stage_updated_at",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[1], DealsColumns[7]},
			},
			{
				Name:    "deal_created_at",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[6]},
			},
		},
	}
	// FormSubmissionsColumns holds the columns for the "form_submissions" table.
	FormSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "property_id", Type: field.TypeInt},
	}
	// FormSubmissionsTable holds the schema information for the "form_submissions" table.
	FormSubmissionsTable = &schema.Table{
		Name:       "form_submissions",
		Columns:    FormSubmissionsColumns,
		PrimaryKey: []*schema.Column{FormSubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "form_submissions_leads_submissions",
				Columns:    []*schema.Column{FormSubmissionsColumns[6]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "form_submissions_properties_submissions",
				Columns:    []*schema.Column{FormSubmissionsColumns[7]},
				RefColumns: []*schema.Column{PropertiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "formsubmission_property_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FormSubmissionsColumns[7], FormSubmissionsColumns[5]},
			},
			{
				Name:    "formsubmission_lead_id",
				Unique:  false,
				Columns: []*schema.Column{FormSubmissionsColumns[6]},
			},
			{
				Name:    "formsubmission_email",
				Unique:  false,
				Columns: []*schema.Column{FormSubmissionsColumns[2]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"landing_page", "manual", "referral", "other"}, Default: "manual"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "viewing_scheduled", "offer_made", "closed", "lost"}, Default: "new"},
		{Name: "budget_min", Type: field.TypeFloat64, Nullable: true},
		{Name: "budget_max", Type: field.TypeFloat64, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "assigned_to_id", Type: field.TypeInt, Nullable: true},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_users_assigned_leads",
				Columns:    []*schema.Column{LeadsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_email",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[2]},
			},
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[5]},
			},
			{
				Name:    "lead_source",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[4]},
			},
			{
				Name:    "lead_assigned_to_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9]},
			},
		},
	}
	// PropertiesColumns holds the columns for the "properties" table.
	PropertiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "address", Type: field.TypeString},
		{Name: "city", Type: field.TypeString},
		{Name: "country", Type: field.TypeString},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "under_contract", "sold", "off_market"}, Default: "active"},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "main_image_url", Type: field.TypeString, Nullable: true},
		{Name: "gallery", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "beds", Type: field.TypeInt, Nullable: true},
		{Name: "baths", Type: field.TypeInt, Nullable: true},
		{Name: "area_sqm", Type: field.TypeFloat64, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "hero_title", Type: field.TypeString, Nullable: true},
		{Name: "hero_subtitle", Type: field.TypeString, Nullable: true},
		{Name: "cta_text", Type: field.TypeString, Nullable: true},
		{Name: "meta_title", Type: field.TypeString, Nullable: true},
		{Name: "meta_description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PropertiesTable holds the schema information for the "properties" table.
	PropertiesTable = &schema.Table{
		Name:       "properties",
		Columns:    PropertiesColumns,
		PrimaryKey: []*schema.Column{PropertiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "property_slug",
				Unique:  true,
				Columns: []*schema.Column{PropertiesColumns[2]},
			},
			{
				Name:    "property_status",
				Unique:  false,
				Columns: []*schema.Column{PropertiesColumns[7]},
			},
			{
				Name:    "property_published",
				Unique:  false,
				Columns: []*schema.Column{PropertiesColumns[8]},
			},
			{
				Name:    "property_city",
				Unique:  false,
				Columns: []*schema.Column{PropertiesColumns[4]},
			},
			{
				Name:    "property_created_at",
				Unique:  false,
				Columns: []*schema.Column{PropertiesColumns[20]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "agent"}, Default: "agent"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[2]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		DealsTable,
		FormSubmissionsTable,
		LeadsTable,
		PropertiesTable,
		UsersTable,
	}
)

func init() {
	ActivitiesTable.ForeignKeys[0].RefTable = DealsTable
	ActivitiesTable.ForeignKeys[1].RefTable = LeadsTable
	ActivitiesTable.ForeignKeys[2].RefTable = PropertiesTable
	ActivitiesTable.ForeignKeys[3].RefTable = UsersTable
	DealsTable.ForeignKeys[0].RefTable = LeadsTable
	DealsTable.ForeignKeys[1].RefTable = PropertiesTable
	FormSubmissionsTable.ForeignKeys[0].RefTable = LeadsTable
	FormSubmissionsTable.ForeignKeys[1].RefTable = PropertiesTable
	LeadsTable.ForeignKeys[0].RefTable = UsersTable
}
