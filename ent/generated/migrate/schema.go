// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString, Size: 100},
		{Name: "quantity", Type: field.TypeUint32, Default: 1},
		{Name: "condition", Type: field.TypeEnum, Enums: []string{"good", "average", "poor"}, Default: "good"},
		{Name: "position", Type: field.TypeUint32, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "items_tasks_items",
				Columns:    []*schema.Column{ItemsColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "item_task_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[6]},
			},
		},
	}
	// LocationLogsColumns holds the columns for the "location_logs" table.
	LocationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "latitude", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(9,6)"}},
		{Name: "longitude", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(9,6)"}},
		{Name: "event", Type: field.TypeEnum, Enums: []string{"start", "complete"}},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// LocationLogsTable holds the schema information for the "location_logs" table.
	LocationLogsTable = &schema.Table{
		Name:       "location_logs",
		Columns:    LocationLogsColumns,
		PrimaryKey: []*schema.Column{LocationLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "location_logs_tasks_location_logs",
				Columns:    []*schema.Column{LocationLogsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "locationlog_task_id",
				Unique:  false,
				Columns: []*schema.Column{LocationLogsColumns[5]},
			},
			{
				Name:    "locationlog_task_id_event",
				Unique:  false,
				Columns: []*schema.Column{LocationLogsColumns[5], LocationLogsColumns[3]},
			},
		},
	}
	// SecurityEventsColumns holds the columns for the "security_events" table.
	SecurityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"login_success", "login_failed", "permission_denied", "task_claim_conflict", "account_locked", "account_unlocked", "driver_created", "driver_deleted", "security_alert"}},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "low"},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// SecurityEventsTable holds the schema information for the "security_events" table.
	SecurityEventsTable = &schema.Table{
		Name:       "security_events",
		Columns:    SecurityEventsColumns,
		PrimaryKey: []*schema.Column{SecurityEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "security_events_users_security_events",
				Columns:    []*schema.Column{SecurityEventsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "securityevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[9]},
			},
			{
				Name:    "securityevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[1]},
			},
			{
				Name:    "securityevent_severity",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[6]},
			},
			{
				Name:    "securityevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[8]},
			},
			{
				Name:    "securityevent_resolved_severity_created_at",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[7], SecurityEventsColumns[6], SecurityEventsColumns[8]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "donor_name", Type: field.TypeString, Size: 255},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "phone_numbers", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "location_link", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"furniture", "clothes", "electronics", "food", "books", "other"}, Default: "other"},
		{Name: "quantity", Type: field.TypeUint32, Nullable: true},
		{Name: "is_urgent", Type: field.TypeBool, Default: false},
		{Name: "is_broadcast", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"assigned", "in_progress", "completed", "cancelled"}, Default: "assigned"},
		{Name: "visitor_form_filled", Type: field.TypeBool, Default: false},
		{Name: "trust_notice_given", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "assigned_to", Type: field.TypeUUID, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_users_created_tasks",
				Columns:    []*schema.Column{TasksColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_users_assigned_tasks",
				Columns:    []*schema.Column{TasksColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9]},
			},
			{
				Name:    "task_assigned_to",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16]},
			},
			{
				Name:    "task_is_broadcast_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[9]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12]},
			},
		},
	}
	// TaskPhotosColumns holds the columns for the "task_photos" table.
	TaskPhotosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString, Size: 500},
		{Name: "photo_type", Type: field.TypeEnum, Enums: []string{"item", "donor", "visitor_form", "other"}, Default: "item"},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// TaskPhotosTable holds the schema information for the "task_photos" table.
	TaskPhotosTable = &schema.Table{
		Name:       "task_photos",
		Columns:    TaskPhotosColumns,
		PrimaryKey: []*schema.Column{TaskPhotosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_photos_tasks_photos",
				Columns:    []*schema.Column{TaskPhotosColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskphoto_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskPhotosColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20, Default: ""},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "driver"}, Default: "driver"},
		{Name: "is_superuser", Type: field.TypeBool, Default: false},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "account_locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
		{Name: "refresh_token", Type: field.TypeString, Nullable: true},
		{Name: "refresh_token_expires_at", Type: field.TypeTime, Nullable: true},
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
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_account_locked_until",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ItemsTable,
		LocationLogsTable,
		SecurityEventsTable,
		TasksTable,
		TaskPhotosTable,
		UsersTable,
	}
)

func init() {
	ItemsTable.ForeignKeys[0].RefTable = TasksTable
	LocationLogsTable.ForeignKeys[0].RefTable = TasksTable
	SecurityEventsTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[1].RefTable = UsersTable
	TaskPhotosTable.ForeignKeys[0].RefTable = TasksTable
}
