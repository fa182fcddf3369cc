// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "time_slot_id", Type: field.TypeUUID, Nullable: true},
		{Name: "assessment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"initial_consultation", "follow_up", "assessment_review", "therapy_session"}, Default: "initial_consultation"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "in_progress", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancel_requested_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"client", "therapist"}},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_therapist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_therapist_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[10], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[10]},
			},
		},
	}
	// MatchResultsColumns holds the columns for the "match_results" table.
	MatchResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "total_score", Type: field.TypeFloat64},
		{Name: "breakdown", Type: field.TypeJSON},
		{Name: "compatibility_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "potential_concerns", Type: field.TypeJSON, Nullable: true},
	}
	// MatchResultsTable holds the schema information for the "match_results" table.
	MatchResultsTable = &schema.Table{
		Name:       "match_results",
		Columns:    MatchResultsColumns,
		PrimaryKey: []*schema.Column{MatchResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "matchresult_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MatchResultsColumns[2], MatchResultsColumns[1]},
			},
			{
				Name:    "matchresult_user_id_therapist_id",
				Unique:  false,
				Columns: []*schema.Column{MatchResultsColumns[2], MatchResultsColumns[3]},
			},
		},
	}
	// MentalAssessmentsColumns holds the columns for the "mental_assessments" table.
	MentalAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "assessment_id", Type: field.TypeString, Size: 64},
		{Name: "responses", Type: field.TypeJSON},
		{Name: "phq9_score", Type: field.TypeInt},
		{Name: "gad7_score", Type: field.TypeInt},
		{Name: "pss_score", Type: field.TypeInt},
		{Name: "who_wellbeing_score", Type: field.TypeInt},
		{Name: "risk_level", Type: field.TypeString, Size: 32},
		{Name: "suicide_risk", Type: field.TypeBool, Default: false},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// MentalAssessmentsTable holds the schema information for the "mental_assessments" table.
	MentalAssessmentsTable = &schema.Table{
		Name:       "mental_assessments",
		Columns:    MentalAssessmentsColumns,
		PrimaryKey: []*schema.Column{MentalAssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mentalassessment_risk_level",
				Unique:  false,
				Columns: []*schema.Column{MentalAssessmentsColumns[10]},
			},
			{
				Name:    "mentalassessment_suicide_risk",
				Unique:  false,
				Columns: []*schema.Column{MentalAssessmentsColumns[11]},
			},
		},
	}
	// TherapistProfilesColumns holds the columns for the "therapist_profiles" table.
	TherapistProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "gender", Type: field.TypeEnum, Enums: []string{"male", "female", "non_binary", "not_specified"}, Default: "not_specified"},
		{Name: "license_type", Type: field.TypeString, Size: 50},
		{Name: "years_experience", Type: field.TypeInt, Default: 0},
		{Name: "years_private_practice", Type: field.TypeInt, Default: 0},
		{Name: "specializations", Type: field.TypeJSON, Nullable: true},
		{Name: "therapy_approaches", Type: field.TypeJSON, Nullable: true},
		{Name: "client_demographics", Type: field.TypeJSON, Nullable: true},
		{Name: "severity_levels", Type: field.TypeJSON, Nullable: true},
		{Name: "crisis_intervention_trained", Type: field.TypeBool, Default: false},
		{Name: "trauma_informed_certified", Type: field.TypeBool, Default: false},
		{Name: "languages", Type: field.TypeJSON, Nullable: true},
		{Name: "availability_slots", Type: field.TypeJSON, Nullable: true},
		{Name: "session_durations", Type: field.TypeJSON, Nullable: true},
		{Name: "rate_individual", Type: field.TypeFloat64, Default: 0},
		{Name: "rate_couples", Type: field.TypeFloat64, Default: 0},
		{Name: "rate_family", Type: field.TypeFloat64, Default: 0},
		{Name: "rate_group", Type: field.TypeFloat64, Default: 0},
		{Name: "sliding_scale_available", Type: field.TypeBool, Default: false},
		{Name: "insurance_accepted", Type: field.TypeJSON, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "services_offered", Type: field.TypeJSON, Nullable: true},
		{Name: "emergency_availability", Type: field.TypeBool, Default: false},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "suspended"}, Default: "pending"},
	}
	// TherapistProfilesTable holds the schema information for the "therapist_profiles" table.
	TherapistProfilesTable = &schema.Table{
		Name:       "therapist_profiles",
		Columns:    TherapistProfilesColumns,
		PrimaryKey: []*schema.Column{TherapistProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "therapistprofile_status",
				Unique:  false,
				Columns: []*schema.Column{TherapistProfilesColumns[28]},
			},
			{
				Name:    "therapistprofile_status_gender",
				Unique:  false,
				Columns: []*schema.Column{TherapistProfilesColumns[28], TherapistProfilesColumns[5]},
			},
		},
	}
	// TimeSlotsColumns holds the columns for the "time_slots" table.
	TimeSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "booked", "blocked", "cancelled"}, Default: "available"},
	}
	// TimeSlotsTable holds the schema information for the "time_slots" table.
	TimeSlotsTable = &schema.Table{
		Name:       "time_slots",
		Columns:    TimeSlotsColumns,
		PrimaryKey: []*schema.Column{TimeSlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timeslot_therapist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[4]},
			},
			{
				Name:    "timeslot_therapist_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[7], TimeSlotsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"client", "therapist", "admin"}, Default: "client"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		MatchResultsTable,
		MentalAssessmentsTable,
		TherapistProfilesTable,
		TimeSlotsTable,
		UsersTable,
	}
)

func init() {
}
