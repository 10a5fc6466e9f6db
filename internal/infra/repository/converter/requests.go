package converter

import (
	"encoding/json"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/pkg/pgconv"
)

func EditRequestToCreateParams(r *editrequest.Request) (sqlc.CreateSessionEditRequestParams, error) {
	sessions, err := json.Marshal(r.Changes())
	if err != nil {
		return sqlc.CreateSessionEditRequestParams{}, errs.Wrap(err, "marshal edit request sessions")
	}
	return sqlc.CreateSessionEditRequestParams{
		ID:          r.ID(),
		RequestCode: r.Code(),
		BookingID:   r.BookingID(),
		PatientID:   r.PatientID(),
		Sessions:    sessions,
		Status:      string(r.Status()),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}, nil
}

func EditRequestToUpdateParams(r *editrequest.Request) (sqlc.UpdateSessionEditRequestParams, error) {
	sessions, err := json.Marshal(r.Changes())
	if err != nil {
		return sqlc.UpdateSessionEditRequestParams{}, errs.Wrap(err, "marshal edit request sessions")
	}
	return sqlc.UpdateSessionEditRequestParams{
		ID:        r.ID(),
		Sessions:  sessions,
		Status:    string(r.Status()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func EditRequestFromRow(row sqlc.SessionEditRequest) (*editrequest.Request, error) {
	var changes []editrequest.Change
	if err := json.Unmarshal(row.Sessions, &changes); err != nil {
		return nil, errs.Wrap(err, "unmarshal edit request sessions")
	}
	return editrequest.Reconstruct(
		row.ID,
		row.RequestCode,
		row.BookingID,
		row.PatientID,
		changes,
		editrequest.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingRequestToCreateParams(r *bookingrequest.Request) (sqlc.CreateBookingRequestParams, error) {
	sessions, err := json.Marshal(r.Sessions())
	if err != nil {
		return sqlc.CreateBookingRequestParams{}, errs.Wrap(err, "marshal booking request sessions")
	}
	return sqlc.CreateBookingRequestParams{
		ID:            r.ID(),
		RequestCode:   r.Code(),
		PackageID:     r.PackageID(),
		PatientID:     r.PatientID(),
		TherapyTypeID: r.TherapyTypeID(),
		Sessions:      sessions,
		Remark:        pgconv.StringToPgtype(r.Remark()),
		Status:        string(r.Status()),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
	}, nil
}

func BookingRequestToUpdateParams(r *bookingrequest.Request) (sqlc.UpdateBookingRequestParams, error) {
	sessions, err := json.Marshal(r.Sessions())
	if err != nil {
		return sqlc.UpdateBookingRequestParams{}, errs.Wrap(err, "marshal booking request sessions")
	}
	return sqlc.UpdateBookingRequestParams{
		ID:            r.ID(),
		PackageID:     r.PackageID(),
		PatientID:     r.PatientID(),
		TherapyTypeID: r.TherapyTypeID(),
		Sessions:      sessions,
		Remark:        pgconv.StringToPgtype(r.Remark()),
	}, nil
}

func BookingRequestFromRow(row sqlc.BookingRequest) (*bookingrequest.Request, error) {
	var sessions []bookingrequest.PreferredSession
	if len(row.Sessions) > 0 {
		if err := json.Unmarshal(row.Sessions, &sessions); err != nil {
			return nil, errs.Wrap(err, "unmarshal booking request sessions")
		}
	}
	return bookingrequest.Reconstruct(
		row.ID,
		row.RequestCode,
		row.PackageID,
		row.PatientID,
		row.TherapyTypeID,
		sessions,
		pgconv.StringFromPgtype(row.Remark),
		bookingrequest.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
