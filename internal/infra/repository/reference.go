package repository

import (
	"errors"
	"strconv"

	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
)

const bookingRequestPackageConstraint = "booking_requests_package_id_fkey"

// referenceFields maps a foreign key to the request field that supplied the
// referenced id.
var referenceFields = map[string]string{
	"bookings_package_id_fkey":              "packageId",
	"bookings_patient_id_fkey":              "patientId",
	"bookings_therapy_type_id_fkey":         "therapyId",
	"bookings_provider_id_fkey":             "providerId",
	"bookings_booking_request_id_fkey":      "bookingRequestId",
	"booking_sessions_provider_id_fkey":     "providerId",
	"booking_sessions_therapy_type_id_fkey": "therapyId",
	bookingRequestPackageConstraint:         "packageId",
	"booking_requests_patient_id_fkey":      "patientId",
	"booking_requests_therapy_type_id_fkey": "therapyId",
	"session_edit_requests_patient_id_fkey": "patientId",
}

// sessionReferences are reported against the failing session's position.
var sessionReferences = map[string]bool{
	"booking_sessions_provider_id_fkey":     true,
	"booking_sessions_therapy_type_id_fkey": true,
}

// unknownReference reports a foreign key violation on a known constraint as
// a ValidationError naming the field. It returns nil for anything else.
func unknownReference(err error) error {
	if !infra.IsKind(err, infra.KindForeignKeyViolated) {
		return nil
	}
	constraint := infra.ConstraintName(err)
	field, ok := referenceFields[constraint]
	if !ok {
		return nil
	}
	var item *sqlc.BatchItemError
	if sessionReferences[constraint] && errors.As(err, &item) {
		field = "sessions[" + strconv.Itoa(item.Index) + "]." + field
	}
	return errs.NewValidation("unknown reference", field)
}
