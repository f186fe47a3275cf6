// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// CanteenItem is the predicate function for canteenitem builders.
type CanteenItem func(*sql.Selector)

// CanteenSale is the predicate function for canteensale builders.
type CanteenSale func(*sql.Selector)

// CanteenSaleItem is the predicate function for canteensaleitem builders.
type CanteenSaleItem func(*sql.Selector)

// DoctorAvailability is the predicate function for doctoravailability builders.
type DoctorAvailability func(*sql.Selector)

// DoctorSchedule is the predicate function for doctorschedule builders.
type DoctorSchedule func(*sql.Selector)

// Drug is the predicate function for drug builders.
type Drug func(*sql.Selector)

// Expense is the predicate function for expense builders.
type Expense func(*sql.Selector)

// Income is the predicate function for income builders.
type Income func(*sql.Selector)

// LabOrder is the predicate function for laborder builders.
type LabOrder func(*sql.Selector)

// LabResult is the predicate function for labresult builders.
type LabResult func(*sql.Selector)

// LabTest is the predicate function for labtest builders.
type LabTest func(*sql.Selector)

// PCTransaction is the predicate function for pctransaction builders.
type PCTransaction func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PharmacySale is the predicate function for pharmacysale builders.
type PharmacySale func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// PrescriptionMedicine is the predicate function for prescriptionmedicine builders.
type PrescriptionMedicine func(*sql.Selector)

// SaleItem is the predicate function for saleitem builders.
type SaleItem func(*sql.Selector)

// Staff is the predicate function for staff builders.
type Staff func(*sql.Selector)

// StockAdjustment is the predicate function for stockadjustment builders.
type StockAdjustment func(*sql.Selector)
