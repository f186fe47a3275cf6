// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/appointment"
	"github.com/niramoy/niramoy_backend/internal/repo/canteenitem"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensale"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensaleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/doctoravailability"
	"github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
	"github.com/niramoy/niramoy_backend/internal/repo/drug"
	"github.com/niramoy/niramoy_backend/internal/repo/expense"
	"github.com/niramoy/niramoy_backend/internal/repo/income"
	"github.com/niramoy/niramoy_backend/internal/repo/laborder"
	"github.com/niramoy/niramoy_backend/internal/repo/labresult"
	"github.com/niramoy/niramoy_backend/internal/repo/labtest"
	"github.com/niramoy/niramoy_backend/internal/repo/patient"
	"github.com/niramoy/niramoy_backend/internal/repo/pctransaction"
	"github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
	"github.com/niramoy/niramoy_backend/internal/repo/prescription"
	"github.com/niramoy/niramoy_backend/internal/repo/prescriptionmedicine"
	"github.com/niramoy/niramoy_backend/internal/repo/saleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/staff"
	"github.com/niramoy/niramoy_backend/internal/repo/stockadjustment"
	"github.com/niramoy/niramoy_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescAppointmentNumber is the schema descriptor for appointment_number field.
	appointmentDescAppointmentNumber := appointmentFields[0].Descriptor()
	// appointment.AppointmentNumberValidator is a validator for the "appointment_number" field. It is called by the builders before save.
	appointment.AppointmentNumberValidator = appointmentDescAppointmentNumber.Validators[0].(func(string) error)
	// appointmentDescSerialNumber is the schema descriptor for serial_number field.
	appointmentDescSerialNumber := appointmentFields[4].Descriptor()
	// appointment.SerialNumberValidator is a validator for the "serial_number" field. It is called by the builders before save.
	appointment.SerialNumberValidator = appointmentDescSerialNumber.Validators[0].(func(int) error)
	// appointmentDescRoomNumber is the schema descriptor for room_number field.
	appointmentDescRoomNumber := appointmentFields[7].Descriptor()
	// appointment.RoomNumberValidator is a validator for the "room_number" field. It is called by the builders before save.
	appointment.RoomNumberValidator = appointmentDescRoomNumber.Validators[0].(func(string) error)
	// appointmentDescTotalAmount is the schema descriptor for total_amount field.
	appointmentDescTotalAmount := appointmentFields[8].Descriptor()
	// appointment.DefaultTotalAmount holds the default value on creation for the total_amount field.
	appointment.DefaultTotalAmount = appointmentDescTotalAmount.Default.(int64)
	// appointmentDescAmountPaid is the schema descriptor for amount_paid field.
	appointmentDescAmountPaid := appointmentFields[9].Descriptor()
	// appointment.DefaultAmountPaid holds the default value on creation for the amount_paid field.
	appointment.DefaultAmountPaid = appointmentDescAmountPaid.Default.(int64)
	// appointment.AmountPaidValidator is a validator for the "amount_paid" field. It is called by the builders before save.
	appointment.AmountPaidValidator = appointmentDescAmountPaid.Validators[0].(func(int64) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	canteenitemMixin := schema.CanteenItem{}.Mixin()
	canteenitemMixinFields0 := canteenitemMixin[0].Fields()
	_ = canteenitemMixinFields0
	canteenitemMixinFields1 := canteenitemMixin[1].Fields()
	_ = canteenitemMixinFields1
	canteenitemFields := schema.CanteenItem{}.Fields()
	_ = canteenitemFields
	// canteenitemDescCreatedAt is the schema descriptor for created_at field.
	canteenitemDescCreatedAt := canteenitemMixinFields1[0].Descriptor()
	// canteenitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	canteenitem.DefaultCreatedAt = canteenitemDescCreatedAt.Default.(func() time.Time)
	// canteenitemDescUpdatedAt is the schema descriptor for updated_at field.
	canteenitemDescUpdatedAt := canteenitemMixinFields1[1].Descriptor()
	// canteenitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	canteenitem.DefaultUpdatedAt = canteenitemDescUpdatedAt.Default.(func() time.Time)
	// canteenitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	canteenitem.UpdateDefaultUpdatedAt = canteenitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// canteenitemDescName is the schema descriptor for name field.
	canteenitemDescName := canteenitemFields[0].Descriptor()
	// canteenitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	canteenitem.NameValidator = canteenitemDescName.Validators[0].(func(string) error)
	// canteenitemDescCategory is the schema descriptor for category field.
	canteenitemDescCategory := canteenitemFields[1].Descriptor()
	// canteenitem.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	canteenitem.CategoryValidator = canteenitemDescCategory.Validators[0].(func(string) error)
	// canteenitemDescPrice is the schema descriptor for price field.
	canteenitemDescPrice := canteenitemFields[2].Descriptor()
	// canteenitem.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	canteenitem.PriceValidator = canteenitemDescPrice.Validators[0].(func(int64) error)
	// canteenitemDescAvailable is the schema descriptor for available field.
	canteenitemDescAvailable := canteenitemFields[3].Descriptor()
	// canteenitem.DefaultAvailable holds the default value on creation for the available field.
	canteenitem.DefaultAvailable = canteenitemDescAvailable.Default.(bool)
	// canteenitemDescID is the schema descriptor for id field.
	canteenitemDescID := canteenitemMixinFields0[0].Descriptor()
	// canteenitem.DefaultID holds the default value on creation for the id field.
	canteenitem.DefaultID = canteenitemDescID.Default.(func() uuid.UUID)
	canteensaleMixin := schema.CanteenSale{}.Mixin()
	canteensaleMixinFields0 := canteensaleMixin[0].Fields()
	_ = canteensaleMixinFields0
	canteensaleMixinFields1 := canteensaleMixin[1].Fields()
	_ = canteensaleMixinFields1
	canteensaleFields := schema.CanteenSale{}.Fields()
	_ = canteensaleFields
	// canteensaleDescCreatedAt is the schema descriptor for created_at field.
	canteensaleDescCreatedAt := canteensaleMixinFields1[0].Descriptor()
	// canteensale.DefaultCreatedAt holds the default value on creation for the created_at field.
	canteensale.DefaultCreatedAt = canteensaleDescCreatedAt.Default.(func() time.Time)
	// canteensaleDescUpdatedAt is the schema descriptor for updated_at field.
	canteensaleDescUpdatedAt := canteensaleMixinFields1[1].Descriptor()
	// canteensale.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	canteensale.DefaultUpdatedAt = canteensaleDescUpdatedAt.Default.(func() time.Time)
	// canteensale.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	canteensale.UpdateDefaultUpdatedAt = canteensaleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// canteensaleDescSaleNumber is the schema descriptor for sale_number field.
	canteensaleDescSaleNumber := canteensaleFields[0].Descriptor()
	// canteensale.SaleNumberValidator is a validator for the "sale_number" field. It is called by the builders before save.
	canteensale.SaleNumberValidator = canteensaleDescSaleNumber.Validators[0].(func(string) error)
	// canteensaleDescTotalAmount is the schema descriptor for total_amount field.
	canteensaleDescTotalAmount := canteensaleFields[1].Descriptor()
	// canteensale.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	canteensale.TotalAmountValidator = canteensaleDescTotalAmount.Validators[0].(func(int64) error)
	// canteensaleDescAmountPaid is the schema descriptor for amount_paid field.
	canteensaleDescAmountPaid := canteensaleFields[2].Descriptor()
	// canteensale.DefaultAmountPaid holds the default value on creation for the amount_paid field.
	canteensale.DefaultAmountPaid = canteensaleDescAmountPaid.Default.(int64)
	// canteensale.AmountPaidValidator is a validator for the "amount_paid" field. It is called by the builders before save.
	canteensale.AmountPaidValidator = canteensaleDescAmountPaid.Validators[0].(func(int64) error)
	// canteensaleDescID is the schema descriptor for id field.
	canteensaleDescID := canteensaleMixinFields0[0].Descriptor()
	// canteensale.DefaultID holds the default value on creation for the id field.
	canteensale.DefaultID = canteensaleDescID.Default.(func() uuid.UUID)
	canteensaleitemMixin := schema.CanteenSaleItem{}.Mixin()
	canteensaleitemMixinFields0 := canteensaleitemMixin[0].Fields()
	_ = canteensaleitemMixinFields0
	canteensaleitemMixinFields1 := canteensaleitemMixin[1].Fields()
	_ = canteensaleitemMixinFields1
	canteensaleitemFields := schema.CanteenSaleItem{}.Fields()
	_ = canteensaleitemFields
	// canteensaleitemDescCreatedAt is the schema descriptor for created_at field.
	canteensaleitemDescCreatedAt := canteensaleitemMixinFields1[0].Descriptor()
	// canteensaleitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	canteensaleitem.DefaultCreatedAt = canteensaleitemDescCreatedAt.Default.(func() time.Time)
	// canteensaleitemDescQuantity is the schema descriptor for quantity field.
	canteensaleitemDescQuantity := canteensaleitemFields[2].Descriptor()
	// canteensaleitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	canteensaleitem.QuantityValidator = canteensaleitemDescQuantity.Validators[0].(func(int) error)
	// canteensaleitemDescUnitPrice is the schema descriptor for unit_price field.
	canteensaleitemDescUnitPrice := canteensaleitemFields[3].Descriptor()
	// canteensaleitem.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	canteensaleitem.UnitPriceValidator = canteensaleitemDescUnitPrice.Validators[0].(func(int64) error)
	// canteensaleitemDescSubtotal is the schema descriptor for subtotal field.
	canteensaleitemDescSubtotal := canteensaleitemFields[4].Descriptor()
	// canteensaleitem.SubtotalValidator is a validator for the "subtotal" field. It is called by the builders before save.
	canteensaleitem.SubtotalValidator = canteensaleitemDescSubtotal.Validators[0].(func(int64) error)
	// canteensaleitemDescID is the schema descriptor for id field.
	canteensaleitemDescID := canteensaleitemMixinFields0[0].Descriptor()
	// canteensaleitem.DefaultID holds the default value on creation for the id field.
	canteensaleitem.DefaultID = canteensaleitemDescID.Default.(func() uuid.UUID)
	doctoravailabilityMixin := schema.DoctorAvailability{}.Mixin()
	doctoravailabilityMixinFields0 := doctoravailabilityMixin[0].Fields()
	_ = doctoravailabilityMixinFields0
	doctoravailabilityMixinFields1 := doctoravailabilityMixin[1].Fields()
	_ = doctoravailabilityMixinFields1
	doctoravailabilityFields := schema.DoctorAvailability{}.Fields()
	_ = doctoravailabilityFields
	// doctoravailabilityDescCreatedAt is the schema descriptor for created_at field.
	doctoravailabilityDescCreatedAt := doctoravailabilityMixinFields1[0].Descriptor()
	// doctoravailability.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctoravailability.DefaultCreatedAt = doctoravailabilityDescCreatedAt.Default.(func() time.Time)
	// doctoravailabilityDescUpdatedAt is the schema descriptor for updated_at field.
	doctoravailabilityDescUpdatedAt := doctoravailabilityMixinFields1[1].Descriptor()
	// doctoravailability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctoravailability.DefaultUpdatedAt = doctoravailabilityDescUpdatedAt.Default.(func() time.Time)
	// doctoravailability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctoravailability.UpdateDefaultUpdatedAt = doctoravailabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctoravailabilityDescAvailable is the schema descriptor for available field.
	doctoravailabilityDescAvailable := doctoravailabilityFields[2].Descriptor()
	// doctoravailability.DefaultAvailable holds the default value on creation for the available field.
	doctoravailability.DefaultAvailable = doctoravailabilityDescAvailable.Default.(bool)
	// doctoravailabilityDescReason is the schema descriptor for reason field.
	doctoravailabilityDescReason := doctoravailabilityFields[3].Descriptor()
	// doctoravailability.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	doctoravailability.ReasonValidator = doctoravailabilityDescReason.Validators[0].(func(string) error)
	// doctoravailabilityDescID is the schema descriptor for id field.
	doctoravailabilityDescID := doctoravailabilityMixinFields0[0].Descriptor()
	// doctoravailability.DefaultID holds the default value on creation for the id field.
	doctoravailability.DefaultID = doctoravailabilityDescID.Default.(func() uuid.UUID)
	doctorscheduleMixin := schema.DoctorSchedule{}.Mixin()
	doctorscheduleMixinFields0 := doctorscheduleMixin[0].Fields()
	_ = doctorscheduleMixinFields0
	doctorscheduleMixinFields1 := doctorscheduleMixin[1].Fields()
	_ = doctorscheduleMixinFields1
	doctorscheduleFields := schema.DoctorSchedule{}.Fields()
	_ = doctorscheduleFields
	// doctorscheduleDescCreatedAt is the schema descriptor for created_at field.
	doctorscheduleDescCreatedAt := doctorscheduleMixinFields1[0].Descriptor()
	// doctorschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorschedule.DefaultCreatedAt = doctorscheduleDescCreatedAt.Default.(func() time.Time)
	// doctorscheduleDescUpdatedAt is the schema descriptor for updated_at field.
	doctorscheduleDescUpdatedAt := doctorscheduleMixinFields1[1].Descriptor()
	// doctorschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorschedule.DefaultUpdatedAt = doctorscheduleDescUpdatedAt.Default.(func() time.Time)
	// doctorschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorschedule.UpdateDefaultUpdatedAt = doctorscheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorscheduleDescWeekday is the schema descriptor for weekday field.
	doctorscheduleDescWeekday := doctorscheduleFields[1].Descriptor()
	// doctorschedule.WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	doctorschedule.WeekdayValidator = func() func(int) error {
		validators := doctorscheduleDescWeekday.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(weekday int) error {
			for _, fn := range fns {
				if err := fn(weekday); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorscheduleDescStartTime is the schema descriptor for start_time field.
	doctorscheduleDescStartTime := doctorscheduleFields[2].Descriptor()
	// doctorschedule.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	doctorschedule.StartTimeValidator = doctorscheduleDescStartTime.Validators[0].(func(string) error)
	// doctorscheduleDescEndTime is the schema descriptor for end_time field.
	doctorscheduleDescEndTime := doctorscheduleFields[3].Descriptor()
	// doctorschedule.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	doctorschedule.EndTimeValidator = doctorscheduleDescEndTime.Validators[0].(func(string) error)
	// doctorscheduleDescMaxPatients is the schema descriptor for max_patients field.
	doctorscheduleDescMaxPatients := doctorscheduleFields[4].Descriptor()
	// doctorschedule.DefaultMaxPatients holds the default value on creation for the max_patients field.
	doctorschedule.DefaultMaxPatients = doctorscheduleDescMaxPatients.Default.(int)
	// doctorschedule.MaxPatientsValidator is a validator for the "max_patients" field. It is called by the builders before save.
	doctorschedule.MaxPatientsValidator = doctorscheduleDescMaxPatients.Validators[0].(func(int) error)
	// doctorscheduleDescConsultationMinutes is the schema descriptor for consultation_minutes field.
	doctorscheduleDescConsultationMinutes := doctorscheduleFields[5].Descriptor()
	// doctorschedule.DefaultConsultationMinutes holds the default value on creation for the consultation_minutes field.
	doctorschedule.DefaultConsultationMinutes = doctorscheduleDescConsultationMinutes.Default.(int)
	// doctorschedule.ConsultationMinutesValidator is a validator for the "consultation_minutes" field. It is called by the builders before save.
	doctorschedule.ConsultationMinutesValidator = doctorscheduleDescConsultationMinutes.Validators[0].(func(int) error)
	// doctorscheduleDescRoomNumber is the schema descriptor for room_number field.
	doctorscheduleDescRoomNumber := doctorscheduleFields[6].Descriptor()
	// doctorschedule.RoomNumberValidator is a validator for the "room_number" field. It is called by the builders before save.
	doctorschedule.RoomNumberValidator = doctorscheduleDescRoomNumber.Validators[0].(func(string) error)
	// doctorscheduleDescActive is the schema descriptor for active field.
	doctorscheduleDescActive := doctorscheduleFields[7].Descriptor()
	// doctorschedule.DefaultActive holds the default value on creation for the active field.
	doctorschedule.DefaultActive = doctorscheduleDescActive.Default.(bool)
	// doctorscheduleDescID is the schema descriptor for id field.
	doctorscheduleDescID := doctorscheduleMixinFields0[0].Descriptor()
	// doctorschedule.DefaultID holds the default value on creation for the id field.
	doctorschedule.DefaultID = doctorscheduleDescID.Default.(func() uuid.UUID)
	drugMixin := schema.Drug{}.Mixin()
	drugMixinFields0 := drugMixin[0].Fields()
	_ = drugMixinFields0
	drugMixinFields1 := drugMixin[1].Fields()
	_ = drugMixinFields1
	drugFields := schema.Drug{}.Fields()
	_ = drugFields
	// drugDescCreatedAt is the schema descriptor for created_at field.
	drugDescCreatedAt := drugMixinFields1[0].Descriptor()
	// drug.DefaultCreatedAt holds the default value on creation for the created_at field.
	drug.DefaultCreatedAt = drugDescCreatedAt.Default.(func() time.Time)
	// drugDescUpdatedAt is the schema descriptor for updated_at field.
	drugDescUpdatedAt := drugMixinFields1[1].Descriptor()
	// drug.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	drug.DefaultUpdatedAt = drugDescUpdatedAt.Default.(func() time.Time)
	// drug.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	drug.UpdateDefaultUpdatedAt = drugDescUpdatedAt.UpdateDefault.(func() time.Time)
	// drugDescName is the schema descriptor for name field.
	drugDescName := drugFields[0].Descriptor()
	// drug.NameValidator is a validator for the "name" field. It is called by the builders before save.
	drug.NameValidator = drugDescName.Validators[0].(func(string) error)
	// drugDescGenericName is the schema descriptor for generic_name field.
	drugDescGenericName := drugFields[1].Descriptor()
	// drug.GenericNameValidator is a validator for the "generic_name" field. It is called by the builders before save.
	drug.GenericNameValidator = drugDescGenericName.Validators[0].(func(string) error)
	// drugDescCategory is the schema descriptor for category field.
	drugDescCategory := drugFields[2].Descriptor()
	// drug.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	drug.CategoryValidator = drugDescCategory.Validators[0].(func(string) error)
	// drugDescManufacturer is the schema descriptor for manufacturer field.
	drugDescManufacturer := drugFields[3].Descriptor()
	// drug.ManufacturerValidator is a validator for the "manufacturer" field. It is called by the builders before save.
	drug.ManufacturerValidator = drugDescManufacturer.Validators[0].(func(string) error)
	// drugDescBatchNumber is the schema descriptor for batch_number field.
	drugDescBatchNumber := drugFields[4].Descriptor()
	// drug.BatchNumberValidator is a validator for the "batch_number" field. It is called by the builders before save.
	drug.BatchNumberValidator = drugDescBatchNumber.Validators[0].(func(string) error)
	// drugDescUnitPrice is the schema descriptor for unit_price field.
	drugDescUnitPrice := drugFields[5].Descriptor()
	// drug.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	drug.UnitPriceValidator = drugDescUnitPrice.Validators[0].(func(int64) error)
	// drugDescStockQuantity is the schema descriptor for stock_quantity field.
	drugDescStockQuantity := drugFields[6].Descriptor()
	// drug.DefaultStockQuantity holds the default value on creation for the stock_quantity field.
	drug.DefaultStockQuantity = drugDescStockQuantity.Default.(int)
	// drug.StockQuantityValidator is a validator for the "stock_quantity" field. It is called by the builders before save.
	drug.StockQuantityValidator = drugDescStockQuantity.Validators[0].(func(int) error)
	// drugDescReorderLevel is the schema descriptor for reorder_level field.
	drugDescReorderLevel := drugFields[7].Descriptor()
	// drug.DefaultReorderLevel holds the default value on creation for the reorder_level field.
	drug.DefaultReorderLevel = drugDescReorderLevel.Default.(int)
	// drug.ReorderLevelValidator is a validator for the "reorder_level" field. It is called by the builders before save.
	drug.ReorderLevelValidator = drugDescReorderLevel.Validators[0].(func(int) error)
	// drugDescActive is the schema descriptor for active field.
	drugDescActive := drugFields[9].Descriptor()
	// drug.DefaultActive holds the default value on creation for the active field.
	drug.DefaultActive = drugDescActive.Default.(bool)
	// drugDescID is the schema descriptor for id field.
	drugDescID := drugMixinFields0[0].Descriptor()
	// drug.DefaultID holds the default value on creation for the id field.
	drug.DefaultID = drugDescID.Default.(func() uuid.UUID)
	expenseMixin := schema.Expense{}.Mixin()
	expenseMixinFields0 := expenseMixin[0].Fields()
	_ = expenseMixinFields0
	expenseMixinFields1 := expenseMixin[1].Fields()
	_ = expenseMixinFields1
	expenseFields := schema.Expense{}.Fields()
	_ = expenseFields
	// expenseDescCreatedAt is the schema descriptor for created_at field.
	expenseDescCreatedAt := expenseMixinFields1[0].Descriptor()
	// expense.DefaultCreatedAt holds the default value on creation for the created_at field.
	expense.DefaultCreatedAt = expenseDescCreatedAt.Default.(func() time.Time)
	// expenseDescAmount is the schema descriptor for amount field.
	expenseDescAmount := expenseFields[1].Descriptor()
	// expense.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	expense.AmountValidator = expenseDescAmount.Validators[0].(func(int64) error)
	// expenseDescID is the schema descriptor for id field.
	expenseDescID := expenseMixinFields0[0].Descriptor()
	// expense.DefaultID holds the default value on creation for the id field.
	expense.DefaultID = expenseDescID.Default.(func() uuid.UUID)
	incomeMixin := schema.Income{}.Mixin()
	incomeMixinFields0 := incomeMixin[0].Fields()
	_ = incomeMixinFields0
	incomeMixinFields1 := incomeMixin[1].Fields()
	_ = incomeMixinFields1
	incomeFields := schema.Income{}.Fields()
	_ = incomeFields
	// incomeDescCreatedAt is the schema descriptor for created_at field.
	incomeDescCreatedAt := incomeMixinFields1[0].Descriptor()
	// income.DefaultCreatedAt holds the default value on creation for the created_at field.
	income.DefaultCreatedAt = incomeDescCreatedAt.Default.(func() time.Time)
	// incomeDescAmount is the schema descriptor for amount field.
	incomeDescAmount := incomeFields[1].Descriptor()
	// income.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	income.AmountValidator = incomeDescAmount.Validators[0].(func(int64) error)
	// incomeDescID is the schema descriptor for id field.
	incomeDescID := incomeMixinFields0[0].Descriptor()
	// income.DefaultID holds the default value on creation for the id field.
	income.DefaultID = incomeDescID.Default.(func() uuid.UUID)
	laborderMixin := schema.LabOrder{}.Mixin()
	laborderMixinFields0 := laborderMixin[0].Fields()
	_ = laborderMixinFields0
	laborderMixinFields1 := laborderMixin[1].Fields()
	_ = laborderMixinFields1
	laborderFields := schema.LabOrder{}.Fields()
	_ = laborderFields
	// laborderDescCreatedAt is the schema descriptor for created_at field.
	laborderDescCreatedAt := laborderMixinFields1[0].Descriptor()
	// laborder.DefaultCreatedAt holds the default value on creation for the created_at field.
	laborder.DefaultCreatedAt = laborderDescCreatedAt.Default.(func() time.Time)
	// laborderDescUpdatedAt is the schema descriptor for updated_at field.
	laborderDescUpdatedAt := laborderMixinFields1[1].Descriptor()
	// laborder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	laborder.DefaultUpdatedAt = laborderDescUpdatedAt.Default.(func() time.Time)
	// laborder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	laborder.UpdateDefaultUpdatedAt = laborderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// laborderDescOrderNumber is the schema descriptor for order_number field.
	laborderDescOrderNumber := laborderFields[0].Descriptor()
	// laborder.OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	laborder.OrderNumberValidator = laborderDescOrderNumber.Validators[0].(func(string) error)
	// laborderDescTotalAmount is the schema descriptor for total_amount field.
	laborderDescTotalAmount := laborderFields[5].Descriptor()
	// laborder.DefaultTotalAmount holds the default value on creation for the total_amount field.
	laborder.DefaultTotalAmount = laborderDescTotalAmount.Default.(int64)
	// laborder.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	laborder.TotalAmountValidator = laborderDescTotalAmount.Validators[0].(func(int64) error)
	// laborderDescAmountPaid is the schema descriptor for amount_paid field.
	laborderDescAmountPaid := laborderFields[6].Descriptor()
	// laborder.DefaultAmountPaid holds the default value on creation for the amount_paid field.
	laborder.DefaultAmountPaid = laborderDescAmountPaid.Default.(int64)
	// laborder.AmountPaidValidator is a validator for the "amount_paid" field. It is called by the builders before save.
	laborder.AmountPaidValidator = laborderDescAmountPaid.Validators[0].(func(int64) error)
	// laborderDescID is the schema descriptor for id field.
	laborderDescID := laborderMixinFields0[0].Descriptor()
	// laborder.DefaultID holds the default value on creation for the id field.
	laborder.DefaultID = laborderDescID.Default.(func() uuid.UUID)
	labresultMixin := schema.LabResult{}.Mixin()
	labresultMixinFields0 := labresultMixin[0].Fields()
	_ = labresultMixinFields0
	labresultMixinFields1 := labresultMixin[1].Fields()
	_ = labresultMixinFields1
	labresultFields := schema.LabResult{}.Fields()
	_ = labresultFields
	// labresultDescCreatedAt is the schema descriptor for created_at field.
	labresultDescCreatedAt := labresultMixinFields1[0].Descriptor()
	// labresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	labresult.DefaultCreatedAt = labresultDescCreatedAt.Default.(func() time.Time)
	// labresultDescUpdatedAt is the schema descriptor for updated_at field.
	labresultDescUpdatedAt := labresultMixinFields1[1].Descriptor()
	// labresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	labresult.DefaultUpdatedAt = labresultDescUpdatedAt.Default.(func() time.Time)
	// labresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	labresult.UpdateDefaultUpdatedAt = labresultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labresultDescPrice is the schema descriptor for price field.
	labresultDescPrice := labresultFields[2].Descriptor()
	// labresult.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	labresult.PriceValidator = labresultDescPrice.Validators[0].(func(int64) error)
	// labresultDescUnit is the schema descriptor for unit field.
	labresultDescUnit := labresultFields[4].Descriptor()
	// labresult.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	labresult.UnitValidator = labresultDescUnit.Validators[0].(func(string) error)
	// labresultDescAbnormal is the schema descriptor for abnormal field.
	labresultDescAbnormal := labresultFields[5].Descriptor()
	// labresult.DefaultAbnormal holds the default value on creation for the abnormal field.
	labresult.DefaultAbnormal = labresultDescAbnormal.Default.(bool)
	// labresultDescID is the schema descriptor for id field.
	labresultDescID := labresultMixinFields0[0].Descriptor()
	// labresult.DefaultID holds the default value on creation for the id field.
	labresult.DefaultID = labresultDescID.Default.(func() uuid.UUID)
	labtestMixin := schema.LabTest{}.Mixin()
	labtestMixinFields0 := labtestMixin[0].Fields()
	_ = labtestMixinFields0
	labtestMixinFields1 := labtestMixin[1].Fields()
	_ = labtestMixinFields1
	labtestFields := schema.LabTest{}.Fields()
	_ = labtestFields
	// labtestDescCreatedAt is the schema descriptor for created_at field.
	labtestDescCreatedAt := labtestMixinFields1[0].Descriptor()
	// labtest.DefaultCreatedAt holds the default value on creation for the created_at field.
	labtest.DefaultCreatedAt = labtestDescCreatedAt.Default.(func() time.Time)
	// labtestDescUpdatedAt is the schema descriptor for updated_at field.
	labtestDescUpdatedAt := labtestMixinFields1[1].Descriptor()
	// labtest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	labtest.DefaultUpdatedAt = labtestDescUpdatedAt.Default.(func() time.Time)
	// labtest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	labtest.UpdateDefaultUpdatedAt = labtestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labtestDescName is the schema descriptor for name field.
	labtestDescName := labtestFields[0].Descriptor()
	// labtest.NameValidator is a validator for the "name" field. It is called by the builders before save.
	labtest.NameValidator = labtestDescName.Validators[0].(func(string) error)
	// labtestDescCode is the schema descriptor for code field.
	labtestDescCode := labtestFields[1].Descriptor()
	// labtest.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	labtest.CodeValidator = labtestDescCode.Validators[0].(func(string) error)
	// labtestDescPrice is the schema descriptor for price field.
	labtestDescPrice := labtestFields[2].Descriptor()
	// labtest.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	labtest.PriceValidator = labtestDescPrice.Validators[0].(func(int64) error)
	// labtestDescCategory is the schema descriptor for category field.
	labtestDescCategory := labtestFields[3].Descriptor()
	// labtest.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	labtest.CategoryValidator = labtestDescCategory.Validators[0].(func(string) error)
	// labtestDescSampleType is the schema descriptor for sample_type field.
	labtestDescSampleType := labtestFields[4].Descriptor()
	// labtest.SampleTypeValidator is a validator for the "sample_type" field. It is called by the builders before save.
	labtest.SampleTypeValidator = labtestDescSampleType.Validators[0].(func(string) error)
	// labtestDescNormalRange is the schema descriptor for normal_range field.
	labtestDescNormalRange := labtestFields[5].Descriptor()
	// labtest.NormalRangeValidator is a validator for the "normal_range" field. It is called by the builders before save.
	labtest.NormalRangeValidator = labtestDescNormalRange.Validators[0].(func(string) error)
	// labtestDescActive is the schema descriptor for active field.
	labtestDescActive := labtestFields[6].Descriptor()
	// labtest.DefaultActive holds the default value on creation for the active field.
	labtest.DefaultActive = labtestDescActive.Default.(bool)
	// labtestDescID is the schema descriptor for id field.
	labtestDescID := labtestMixinFields0[0].Descriptor()
	// labtest.DefaultID holds the default value on creation for the id field.
	labtest.DefaultID = labtestDescID.Default.(func() uuid.UUID)
	pctransactionMixin := schema.PCTransaction{}.Mixin()
	pctransactionMixinFields0 := pctransactionMixin[0].Fields()
	_ = pctransactionMixinFields0
	pctransactionMixinFields1 := pctransactionMixin[1].Fields()
	_ = pctransactionMixinFields1
	pctransactionFields := schema.PCTransaction{}.Fields()
	_ = pctransactionFields
	// pctransactionDescCreatedAt is the schema descriptor for created_at field.
	pctransactionDescCreatedAt := pctransactionMixinFields1[0].Descriptor()
	// pctransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	pctransaction.DefaultCreatedAt = pctransactionDescCreatedAt.Default.(func() time.Time)
	// pctransactionDescTotalAmount is the schema descriptor for total_amount field.
	pctransactionDescTotalAmount := pctransactionFields[2].Descriptor()
	// pctransaction.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	pctransaction.TotalAmountValidator = pctransactionDescTotalAmount.Validators[0].(func(int64) error)
	// pctransactionDescCommissionAmount is the schema descriptor for commission_amount field.
	pctransactionDescCommissionAmount := pctransactionFields[3].Descriptor()
	// pctransaction.CommissionAmountValidator is a validator for the "commission_amount" field. It is called by the builders before save.
	pctransaction.CommissionAmountValidator = pctransactionDescCommissionAmount.Validators[0].(func(int64) error)
	// pctransactionDescAdminShare is the schema descriptor for admin_share field.
	pctransactionDescAdminShare := pctransactionFields[4].Descriptor()
	// pctransaction.AdminShareValidator is a validator for the "admin_share" field. It is called by the builders before save.
	pctransaction.AdminShareValidator = pctransactionDescAdminShare.Validators[0].(func(int64) error)
	// pctransactionDescID is the schema descriptor for id field.
	pctransactionDescID := pctransactionMixinFields0[0].Descriptor()
	// pctransaction.DefaultID holds the default value on creation for the id field.
	pctransaction.DefaultID = pctransactionDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[0].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[1].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[2].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[3].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescBloodGroup is the schema descriptor for blood_group field.
	patientDescBloodGroup := patientFields[6].Descriptor()
	// patient.BloodGroupValidator is a validator for the "blood_group" field. It is called by the builders before save.
	patient.BloodGroupValidator = patientDescBloodGroup.Validators[0].(func(string) error)
	// patientDescEmergencyContact is the schema descriptor for emergency_contact field.
	patientDescEmergencyContact := patientFields[8].Descriptor()
	// patient.EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	patient.EmergencyContactValidator = patientDescEmergencyContact.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	pharmacysaleMixin := schema.PharmacySale{}.Mixin()
	pharmacysaleMixinFields0 := pharmacysaleMixin[0].Fields()
	_ = pharmacysaleMixinFields0
	pharmacysaleMixinFields1 := pharmacysaleMixin[1].Fields()
	_ = pharmacysaleMixinFields1
	pharmacysaleFields := schema.PharmacySale{}.Fields()
	_ = pharmacysaleFields
	// pharmacysaleDescCreatedAt is the schema descriptor for created_at field.
	pharmacysaleDescCreatedAt := pharmacysaleMixinFields1[0].Descriptor()
	// pharmacysale.DefaultCreatedAt holds the default value on creation for the created_at field.
	pharmacysale.DefaultCreatedAt = pharmacysaleDescCreatedAt.Default.(func() time.Time)
	// pharmacysaleDescUpdatedAt is the schema descriptor for updated_at field.
	pharmacysaleDescUpdatedAt := pharmacysaleMixinFields1[1].Descriptor()
	// pharmacysale.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pharmacysale.DefaultUpdatedAt = pharmacysaleDescUpdatedAt.Default.(func() time.Time)
	// pharmacysale.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pharmacysale.UpdateDefaultUpdatedAt = pharmacysaleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pharmacysaleDescSaleNumber is the schema descriptor for sale_number field.
	pharmacysaleDescSaleNumber := pharmacysaleFields[0].Descriptor()
	// pharmacysale.SaleNumberValidator is a validator for the "sale_number" field. It is called by the builders before save.
	pharmacysale.SaleNumberValidator = pharmacysaleDescSaleNumber.Validators[0].(func(string) error)
	// pharmacysaleDescTotalAmount is the schema descriptor for total_amount field.
	pharmacysaleDescTotalAmount := pharmacysaleFields[3].Descriptor()
	// pharmacysale.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	pharmacysale.TotalAmountValidator = pharmacysaleDescTotalAmount.Validators[0].(func(int64) error)
	// pharmacysaleDescAmountPaid is the schema descriptor for amount_paid field.
	pharmacysaleDescAmountPaid := pharmacysaleFields[4].Descriptor()
	// pharmacysale.DefaultAmountPaid holds the default value on creation for the amount_paid field.
	pharmacysale.DefaultAmountPaid = pharmacysaleDescAmountPaid.Default.(int64)
	// pharmacysale.AmountPaidValidator is a validator for the "amount_paid" field. It is called by the builders before save.
	pharmacysale.AmountPaidValidator = pharmacysaleDescAmountPaid.Validators[0].(func(int64) error)
	// pharmacysaleDescID is the schema descriptor for id field.
	pharmacysaleDescID := pharmacysaleMixinFields0[0].Descriptor()
	// pharmacysale.DefaultID holds the default value on creation for the id field.
	pharmacysale.DefaultID = pharmacysaleDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescUpdatedAt is the schema descriptor for updated_at field.
	prescriptionDescUpdatedAt := prescriptionMixinFields1[1].Descriptor()
	// prescription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prescription.DefaultUpdatedAt = prescriptionDescUpdatedAt.Default.(func() time.Time)
	// prescription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prescription.UpdateDefaultUpdatedAt = prescriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prescriptionDescPrescriptionNumber is the schema descriptor for prescription_number field.
	prescriptionDescPrescriptionNumber := prescriptionFields[0].Descriptor()
	// prescription.PrescriptionNumberValidator is a validator for the "prescription_number" field. It is called by the builders before save.
	prescription.PrescriptionNumberValidator = prescriptionDescPrescriptionNumber.Validators[0].(func(string) error)
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	prescriptionmedicineMixin := schema.PrescriptionMedicine{}.Mixin()
	prescriptionmedicineMixinFields0 := prescriptionmedicineMixin[0].Fields()
	_ = prescriptionmedicineMixinFields0
	prescriptionmedicineMixinFields1 := prescriptionmedicineMixin[1].Fields()
	_ = prescriptionmedicineMixinFields1
	prescriptionmedicineFields := schema.PrescriptionMedicine{}.Fields()
	_ = prescriptionmedicineFields
	// prescriptionmedicineDescCreatedAt is the schema descriptor for created_at field.
	prescriptionmedicineDescCreatedAt := prescriptionmedicineMixinFields1[0].Descriptor()
	// prescriptionmedicine.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescriptionmedicine.DefaultCreatedAt = prescriptionmedicineDescCreatedAt.Default.(func() time.Time)
	// prescriptionmedicineDescName is the schema descriptor for name field.
	prescriptionmedicineDescName := prescriptionmedicineFields[1].Descriptor()
	// prescriptionmedicine.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prescriptionmedicine.NameValidator = prescriptionmedicineDescName.Validators[0].(func(string) error)
	// prescriptionmedicineDescDosage is the schema descriptor for dosage field.
	prescriptionmedicineDescDosage := prescriptionmedicineFields[2].Descriptor()
	// prescriptionmedicine.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	prescriptionmedicine.DosageValidator = prescriptionmedicineDescDosage.Validators[0].(func(string) error)
	// prescriptionmedicineDescFrequency is the schema descriptor for frequency field.
	prescriptionmedicineDescFrequency := prescriptionmedicineFields[3].Descriptor()
	// prescriptionmedicine.FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	prescriptionmedicine.FrequencyValidator = prescriptionmedicineDescFrequency.Validators[0].(func(string) error)
	// prescriptionmedicineDescDuration is the schema descriptor for duration field.
	prescriptionmedicineDescDuration := prescriptionmedicineFields[4].Descriptor()
	// prescriptionmedicine.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	prescriptionmedicine.DurationValidator = prescriptionmedicineDescDuration.Validators[0].(func(string) error)
	// prescriptionmedicineDescID is the schema descriptor for id field.
	prescriptionmedicineDescID := prescriptionmedicineMixinFields0[0].Descriptor()
	// prescriptionmedicine.DefaultID holds the default value on creation for the id field.
	prescriptionmedicine.DefaultID = prescriptionmedicineDescID.Default.(func() uuid.UUID)
	saleitemMixin := schema.SaleItem{}.Mixin()
	saleitemMixinFields0 := saleitemMixin[0].Fields()
	_ = saleitemMixinFields0
	saleitemMixinFields1 := saleitemMixin[1].Fields()
	_ = saleitemMixinFields1
	saleitemFields := schema.SaleItem{}.Fields()
	_ = saleitemFields
	// saleitemDescCreatedAt is the schema descriptor for created_at field.
	saleitemDescCreatedAt := saleitemMixinFields1[0].Descriptor()
	// saleitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	saleitem.DefaultCreatedAt = saleitemDescCreatedAt.Default.(func() time.Time)
	// saleitemDescQuantity is the schema descriptor for quantity field.
	saleitemDescQuantity := saleitemFields[2].Descriptor()
	// saleitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	saleitem.QuantityValidator = saleitemDescQuantity.Validators[0].(func(int) error)
	// saleitemDescUnitPrice is the schema descriptor for unit_price field.
	saleitemDescUnitPrice := saleitemFields[3].Descriptor()
	// saleitem.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	saleitem.UnitPriceValidator = saleitemDescUnitPrice.Validators[0].(func(int64) error)
	// saleitemDescSubtotal is the schema descriptor for subtotal field.
	saleitemDescSubtotal := saleitemFields[4].Descriptor()
	// saleitem.SubtotalValidator is a validator for the "subtotal" field. It is called by the builders before save.
	saleitem.SubtotalValidator = saleitemDescSubtotal.Validators[0].(func(int64) error)
	// saleitemDescID is the schema descriptor for id field.
	saleitemDescID := saleitemMixinFields0[0].Descriptor()
	// saleitem.DefaultID holds the default value on creation for the id field.
	saleitem.DefaultID = saleitemDescID.Default.(func() uuid.UUID)
	staffMixin := schema.Staff{}.Mixin()
	staffMixinFields0 := staffMixin[0].Fields()
	_ = staffMixinFields0
	staffMixinFields1 := staffMixin[1].Fields()
	_ = staffMixinFields1
	staffFields := schema.Staff{}.Fields()
	_ = staffFields
	// staffDescCreatedAt is the schema descriptor for created_at field.
	staffDescCreatedAt := staffMixinFields1[0].Descriptor()
	// staff.DefaultCreatedAt holds the default value on creation for the created_at field.
	staff.DefaultCreatedAt = staffDescCreatedAt.Default.(func() time.Time)
	// staffDescUpdatedAt is the schema descriptor for updated_at field.
	staffDescUpdatedAt := staffMixinFields1[1].Descriptor()
	// staff.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staff.DefaultUpdatedAt = staffDescUpdatedAt.Default.(func() time.Time)
	// staff.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staff.UpdateDefaultUpdatedAt = staffDescUpdatedAt.UpdateDefault.(func() time.Time)
	// staffDescFirstName is the schema descriptor for first_name field.
	staffDescFirstName := staffFields[0].Descriptor()
	// staff.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	staff.FirstNameValidator = staffDescFirstName.Validators[0].(func(string) error)
	// staffDescLastName is the schema descriptor for last_name field.
	staffDescLastName := staffFields[1].Descriptor()
	// staff.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	staff.LastNameValidator = staffDescLastName.Validators[0].(func(string) error)
	// staffDescPhone is the schema descriptor for phone field.
	staffDescPhone := staffFields[2].Descriptor()
	// staff.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	staff.PhoneValidator = staffDescPhone.Validators[0].(func(string) error)
	// staffDescEmail is the schema descriptor for email field.
	staffDescEmail := staffFields[3].Descriptor()
	// staff.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	staff.EmailValidator = staffDescEmail.Validators[0].(func(string) error)
	// staffDescMustChangePassword is the schema descriptor for must_change_password field.
	staffDescMustChangePassword := staffFields[5].Descriptor()
	// staff.DefaultMustChangePassword holds the default value on creation for the must_change_password field.
	staff.DefaultMustChangePassword = staffDescMustChangePassword.Default.(bool)
	// staffDescSpecialization is the schema descriptor for specialization field.
	staffDescSpecialization := staffFields[7].Descriptor()
	// staff.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	staff.SpecializationValidator = staffDescSpecialization.Validators[0].(func(string) error)
	// staffDescLicenseNumber is the schema descriptor for license_number field.
	staffDescLicenseNumber := staffFields[8].Descriptor()
	// staff.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	staff.LicenseNumberValidator = staffDescLicenseNumber.Validators[0].(func(string) error)
	// staffDescConsultationFee is the schema descriptor for consultation_fee field.
	staffDescConsultationFee := staffFields[9].Descriptor()
	// staff.DefaultConsultationFee holds the default value on creation for the consultation_fee field.
	staff.DefaultConsultationFee = staffDescConsultationFee.Default.(int64)
	// staffDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	staffDescFailedLoginAttempts := staffFields[12].Descriptor()
	// staff.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	staff.DefaultFailedLoginAttempts = staffDescFailedLoginAttempts.Default.(int)
	// staff.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	staff.FailedLoginAttemptsValidator = staffDescFailedLoginAttempts.Validators[0].(func(int) error)
	// staffDescID is the schema descriptor for id field.
	staffDescID := staffMixinFields0[0].Descriptor()
	// staff.DefaultID holds the default value on creation for the id field.
	staff.DefaultID = staffDescID.Default.(func() uuid.UUID)
	stockadjustmentMixin := schema.StockAdjustment{}.Mixin()
	stockadjustmentMixinFields0 := stockadjustmentMixin[0].Fields()
	_ = stockadjustmentMixinFields0
	stockadjustmentMixinFields1 := stockadjustmentMixin[1].Fields()
	_ = stockadjustmentMixinFields1
	stockadjustmentFields := schema.StockAdjustment{}.Fields()
	_ = stockadjustmentFields
	// stockadjustmentDescCreatedAt is the schema descriptor for created_at field.
	stockadjustmentDescCreatedAt := stockadjustmentMixinFields1[0].Descriptor()
	// stockadjustment.DefaultCreatedAt holds the default value on creation for the created_at field.
	stockadjustment.DefaultCreatedAt = stockadjustmentDescCreatedAt.Default.(func() time.Time)
	// stockadjustmentDescID is the schema descriptor for id field.
	stockadjustmentDescID := stockadjustmentMixinFields0[0].Descriptor()
	// stockadjustment.DefaultID holds the default value on creation for the id field.
	stockadjustment.DefaultID = stockadjustmentDescID.Default.(func() uuid.UUID)
}
