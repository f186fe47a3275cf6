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
		{Name: "appointment_number", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "appointment_date", Type: field.TypeTime},
		{Name: "serial_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"waiting", "called", "in_progress", "completed", "cancelled", "no_show"}, Default: "waiting"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "room_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "total_amount", Type: field.TypeInt64, Default: 0},
		{Name: "amount_paid", Type: field.TypeInt64, Default: 0},
		{Name: "checked_in_at", Type: field.TypeTime, Nullable: true},
		{Name: "called_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "no_show_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_appointment_date_serial_number",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[6], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_doctor_id_appointment_date_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[6], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8]},
			},
		},
	}
	// CanteenItemsColumns holds the columns for the "canteen_items" table.
	CanteenItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "price", Type: field.TypeInt64},
		{Name: "available", Type: field.TypeBool, Default: true},
	}
	// CanteenItemsTable holds the schema information for the "canteen_items" table.
	CanteenItemsTable = &schema.Table{
		Name:       "canteen_items",
		Columns:    CanteenItemsColumns,
		PrimaryKey: []*schema.Column{CanteenItemsColumns[0]},
	}
	// CanteenSalesColumns holds the columns for the "canteen_sales" table.
	CanteenSalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "sale_number", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "total_amount", Type: field.TypeInt64},
		{Name: "amount_paid", Type: field.TypeInt64, Default: 0},
		{Name: "sold_by", Type: field.TypeUUID},
	}
	// CanteenSalesTable holds the schema information for the "canteen_sales" table.
	CanteenSalesTable = &schema.Table{
		Name:       "canteen_sales",
		Columns:    CanteenSalesColumns,
		PrimaryKey: []*schema.Column{CanteenSalesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "canteensale_created_at",
				Unique:  false,
				Columns: []*schema.Column{CanteenSalesColumns[1]},
			},
		},
	}
	// CanteenSaleItemsColumns holds the columns for the "canteen_sale_items" table.
	CanteenSaleItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sale_id", Type: field.TypeUUID},
		{Name: "item_id", Type: field.TypeUUID},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeInt64},
		{Name: "subtotal", Type: field.TypeInt64},
	}
	// CanteenSaleItemsTable holds the schema information for the "canteen_sale_items" table.
	CanteenSaleItemsTable = &schema.Table{
		Name:       "canteen_sale_items",
		Columns:    CanteenSaleItemsColumns,
		PrimaryKey: []*schema.Column{CanteenSaleItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "canteensaleitem_sale_id",
				Unique:  false,
				Columns: []*schema.Column{CanteenSaleItemsColumns[2]},
			},
		},
	}
	// DoctorAvailabilitiesColumns holds the columns for the "doctor_availabilities" table.
	DoctorAvailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "available", Type: field.TypeBool, Default: false},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// DoctorAvailabilitiesTable holds the schema information for the "doctor_availabilities" table.
	DoctorAvailabilitiesTable = &schema.Table{
		Name:       "doctor_availabilities",
		Columns:    DoctorAvailabilitiesColumns,
		PrimaryKey: []*schema.Column{DoctorAvailabilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctoravailability_doctor_id_date",
				Unique:  true,
				Columns: []*schema.Column{DoctorAvailabilitiesColumns[3], DoctorAvailabilitiesColumns[4]},
			},
		},
	}
	// DoctorSchedulesColumns holds the columns for the "doctor_schedules" table.
	DoctorSchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "weekday", Type: field.TypeInt},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "max_patients", Type: field.TypeInt, Default: 20},
		{Name: "consultation_minutes", Type: field.TypeInt, Default: 15},
		{Name: "room_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// DoctorSchedulesTable holds the schema information for the "doctor_schedules" table.
	DoctorSchedulesTable = &schema.Table{
		Name:       "doctor_schedules",
		Columns:    DoctorSchedulesColumns,
		PrimaryKey: []*schema.Column{DoctorSchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctorschedule_doctor_id_weekday_start_time",
				Unique:  true,
				Columns: []*schema.Column{DoctorSchedulesColumns[3], DoctorSchedulesColumns[4], DoctorSchedulesColumns[5]},
			},
			{
				Name:    "doctorschedule_doctor_id_active",
				Unique:  false,
				Columns: []*schema.Column{DoctorSchedulesColumns[3], DoctorSchedulesColumns[10]},
			},
		},
	}
	// DrugsColumns holds the columns for the "drugs" table.
	DrugsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "generic_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "batch_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "unit_price", Type: field.TypeInt64},
		{Name: "stock_quantity", Type: field.TypeInt, Default: 0},
		{Name: "reorder_level", Type: field.TypeInt, Default: 10},
		{Name: "expiry_date", Type: field.TypeTime, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// DrugsTable holds the schema information for the "drugs" table.
	DrugsTable = &schema.Table{
		Name:       "drugs",
		Columns:    DrugsColumns,
		PrimaryKey: []*schema.Column{DrugsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drug_name_batch_number",
				Unique:  true,
				Columns: []*schema.Column{DrugsColumns[3], DrugsColumns[7]},
			},
			{
				Name:    "drug_active_stock_quantity",
				Unique:  false,
				Columns: []*schema.Column{DrugsColumns[12], DrugsColumns[9]},
			},
		},
	}
	// ExpensesColumns holds the columns for the "expenses" table.
	ExpensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expense_type", Type: field.TypeEnum, Enums: []string{"salary", "utility", "supplies", "maintenance", "other"}},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "recorded_by", Type: field.TypeUUID, Nullable: true},
		{Name: "incurred_at", Type: field.TypeTime},
	}
	// ExpensesTable holds the schema information for the "expenses" table.
	ExpensesTable = &schema.Table{
		Name:       "expenses",
		Columns:    ExpensesColumns,
		PrimaryKey: []*schema.Column{ExpensesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "expense_expense_type_incurred_at",
				Unique:  false,
				Columns: []*schema.Column{ExpensesColumns[2], ExpensesColumns[6]},
			},
			{
				Name:    "expense_incurred_at",
				Unique:  false,
				Columns: []*schema.Column{ExpensesColumns[6]},
			},
		},
	}
	// IncomesColumns holds the columns for the "incomes" table.
	IncomesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"appointment", "lab", "pharmacy", "canteen", "other"}},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reference_id", Type: field.TypeUUID, Nullable: true},
		{Name: "received_by", Type: field.TypeUUID, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
	}
	// IncomesTable holds the schema information for the "incomes" table.
	IncomesTable = &schema.Table{
		Name:       "incomes",
		Columns:    IncomesColumns,
		PrimaryKey: []*schema.Column{IncomesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "income_source_received_at",
				Unique:  false,
				Columns: []*schema.Column{IncomesColumns[2], IncomesColumns[7]},
			},
			{
				Name:    "income_received_at",
				Unique:  false,
				Columns: []*schema.Column{IncomesColumns[7]},
			},
		},
	}
	// LabOrdersColumns holds the columns for the "lab_orders" table.
	LabOrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_number", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "ordered_by", Type: field.TypeUUID, Nullable: true},
		{Name: "prescription_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ordered", "sample_collected", "in_progress", "completed", "verified", "cancelled"}, Default: "ordered"},
		{Name: "total_amount", Type: field.TypeInt64, Default: 0},
		{Name: "amount_paid", Type: field.TypeInt64, Default: 0},
		{Name: "sample_collected_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LabOrdersTable holds the schema information for the "lab_orders" table.
	LabOrdersTable = &schema.Table{
		Name:       "lab_orders",
		Columns:    LabOrdersColumns,
		PrimaryKey: []*schema.Column{LabOrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "laborder_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LabOrdersColumns[4], LabOrdersColumns[1]},
			},
			{
				Name:    "laborder_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{LabOrdersColumns[7], LabOrdersColumns[1]},
			},
		},
	}
	// LabResultsColumns holds the columns for the "lab_results" table.
	LabResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeUUID},
		{Name: "test_id", Type: field.TypeUUID},
		{Name: "price", Type: field.TypeInt64},
		{Name: "result_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "unit", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "abnormal", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "verified"}, Default: "pending"},
		{Name: "entered_by", Type: field.TypeUUID, Nullable: true},
		{Name: "verified_by", Type: field.TypeUUID, Nullable: true},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
	}
	// LabResultsTable holds the schema information for the "lab_results" table.
	LabResultsTable = &schema.Table{
		Name:       "lab_results",
		Columns:    LabResultsColumns,
		PrimaryKey: []*schema.Column{LabResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "labresult_order_id_test_id",
				Unique:  true,
				Columns: []*schema.Column{LabResultsColumns[3], LabResultsColumns[4]},
			},
		},
	}
	// LabTestsColumns holds the columns for the "lab_tests" table.
	LabTestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "price", Type: field.TypeInt64},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "sample_type", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "normal_range", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// LabTestsTable holds the schema information for the "lab_tests" table.
	LabTestsTable = &schema.Table{
		Name:       "lab_tests",
		Columns:    LabTestsColumns,
		PrimaryKey: []*schema.Column{LabTestsColumns[0]},
	}
	// PcTransactionsColumns holds the columns for the "pc_transactions" table.
	PcTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "referrer_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID, Nullable: true},
		{Name: "total_amount", Type: field.TypeInt64},
		{Name: "commission_amount", Type: field.TypeInt64},
		{Name: "admin_share", Type: field.TypeInt64},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// PcTransactionsTable holds the schema information for the "pc_transactions" table.
	PcTransactionsTable = &schema.Table{
		Name:       "pc_transactions",
		Columns:    PcTransactionsColumns,
		PrimaryKey: []*schema.Column{PcTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pctransaction_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{PcTransactionsColumns[8]},
			},
			{
				Name:    "pctransaction_referrer_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{PcTransactionsColumns[2], PcTransactionsColumns[8]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other"}},
		{Name: "blood_group", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emergency_contact", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "medical_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_phone",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[6]},
			},
			{
				Name:    "patient_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[5], PatientsColumns[4]},
			},
		},
	}
	// PharmacySalesColumns holds the columns for the "pharmacy_sales" table.
	PharmacySalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "sale_number", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "patient_id", Type: field.TypeUUID, Nullable: true},
		{Name: "prescription_id", Type: field.TypeUUID, Nullable: true},
		{Name: "total_amount", Type: field.TypeInt64},
		{Name: "amount_paid", Type: field.TypeInt64, Default: 0},
		{Name: "sold_by", Type: field.TypeUUID},
	}
	// PharmacySalesTable holds the schema information for the "pharmacy_sales" table.
	PharmacySalesTable = &schema.Table{
		Name:       "pharmacy_sales",
		Columns:    PharmacySalesColumns,
		PrimaryKey: []*schema.Column{PharmacySalesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pharmacysale_created_at",
				Unique:  false,
				Columns: []*schema.Column{PharmacySalesColumns[1]},
			},
			{
				Name:    "pharmacysale_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PharmacySalesColumns[4]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "prescription_number", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "diagnosis", Type: field.TypeString, Size: 2147483647},
		{Name: "advice", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "follow_up_date", Type: field.TypeTime, Nullable: true},
		{Name: "printed_at", Type: field.TypeTime, Nullable: true},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[4], PrescriptionsColumns[1]},
			},
			{
				Name:    "prescription_doctor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[5], PrescriptionsColumns[1]},
			},
		},
	}
	// PrescriptionMedicinesColumns holds the columns for the "prescription_medicines" table.
	PrescriptionMedicinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "prescription_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "dosage", Type: field.TypeString, Size: 100},
		{Name: "frequency", Type: field.TypeString, Size: 100},
		{Name: "duration", Type: field.TypeString, Size: 100},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PrescriptionMedicinesTable holds the schema information for the "prescription_medicines" table.
	PrescriptionMedicinesTable = &schema.Table{
		Name:       "prescription_medicines",
		Columns:    PrescriptionMedicinesColumns,
		PrimaryKey: []*schema.Column{PrescriptionMedicinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prescriptionmedicine_prescription_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionMedicinesColumns[2]},
			},
		},
	}
	// SaleItemsColumns holds the columns for the "sale_items" table.
	SaleItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sale_id", Type: field.TypeUUID},
		{Name: "drug_id", Type: field.TypeUUID},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeInt64},
		{Name: "subtotal", Type: field.TypeInt64},
	}
	// SaleItemsTable holds the schema information for the "sale_items" table.
	SaleItemsTable = &schema.Table{
		Name:       "sale_items",
		Columns:    SaleItemsColumns,
		PrimaryKey: []*schema.Column{SaleItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "saleitem_sale_id",
				Unique:  false,
				Columns: []*schema.Column{SaleItemsColumns[2]},
			},
			{
				Name:    "saleitem_drug_id",
				Unique:  false,
				Columns: []*schema.Column{SaleItemsColumns[3]},
			},
		},
	}
	// StaffsColumns holds the columns for the "staffs" table.
	StaffsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "must_change_password", Type: field.TypeBool, Default: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "doctor", "receptionist", "lab_tech", "pharmacist", "canteen_staff", "display"}},
		{Name: "specialization", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "license_number", Type: field.TypeString, Nullable: true, Size: 60},
		{Name: "consultation_fee", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// StaffsTable holds the schema information for the "staffs" table.
	StaffsTable = &schema.Table{
		Name:       "staffs",
		Columns:    StaffsColumns,
		PrimaryKey: []*schema.Column{StaffsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "staff_role_status",
				Unique:  false,
				Columns: []*schema.Column{StaffsColumns[10], StaffsColumns[14]},
			},
		},
	}
	// StockAdjustmentsColumns holds the columns for the "stock_adjustments" table.
	StockAdjustmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "drug_id", Type: field.TypeUUID},
		{Name: "delta", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeEnum, Enums: []string{"purchase", "sale", "expired", "damaged", "correction"}},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "adjusted_by", Type: field.TypeUUID, Nullable: true},
	}
	// StockAdjustmentsTable holds the schema information for the "stock_adjustments" table.
	StockAdjustmentsTable = &schema.Table{
		Name:       "stock_adjustments",
		Columns:    StockAdjustmentsColumns,
		PrimaryKey: []*schema.Column{StockAdjustmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stockadjustment_drug_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StockAdjustmentsColumns[2], StockAdjustmentsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		CanteenItemsTable,
		CanteenSalesTable,
		CanteenSaleItemsTable,
		DoctorAvailabilitiesTable,
		DoctorSchedulesTable,
		DrugsTable,
		ExpensesTable,
		IncomesTable,
		LabOrdersTable,
		LabResultsTable,
		LabTestsTable,
		PcTransactionsTable,
		PatientsTable,
		PharmacySalesTable,
		PrescriptionsTable,
		PrescriptionMedicinesTable,
		SaleItemsTable,
		StaffsTable,
		StockAdjustmentsTable,
	}
)

func init() {
}
