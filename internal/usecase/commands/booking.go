package commands

import (
	"context"
	"strconv"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/domain/sequence"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownProvider  = errs.Sentinel("unknown provider", errs.ErrValidation)
	ErrCreatedCancelled = errs.Sentinel("a new booking cannot be cancelled", errs.ErrValidation)
)

type SessionInput struct {
	Date      string
	SlotID    string
	TimeLabel string
	// ProviderID and TherapyTypeID override the booking-level values.
	ProviderID    *uuid.UUID
	TherapyTypeID *uuid.UUID
}

type BookingInput struct {
	PackageID        uuid.UUID
	PatientID        uuid.UUID
	TherapyTypeID    uuid.UUID
	ProviderID       uuid.UUID
	Sessions         []SessionInput
	Status           string
	CouponCode       string
	Notes            string
	Remark           string
	Attribution      booking.Attribution
	Followup         booking.Followup
	IsBookingRequest bool
	BookingRequestID *uuid.UUID
}

type CheckInResult struct {
	AlreadyCheckedIn bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in BookingInput) (uuid.UUID, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, in BookingInput) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	CheckIn(ctx context.Context, bookingID, sessionID uuid.UUID) (*CheckInResult, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	oracle    AvailabilityOracle
	providers ProviderDirectory
	locker    SlotLocker
	events    EventPublisher
	settings  BookingSettings
	clock     clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	oracle AvailabilityOracle,
	providers ProviderDirectory,
	locker SlotLocker,
	events EventPublisher,
	settings BookingSettings,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		oracle:    oracle,
		providers: providers,
		locker:    locker,
		events:    events,
		settings:  settings,
		clock:     clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in BookingInput) (uuid.UUID, error) {
	if err := validateCreateInput(in); err != nil {
		return uuid.Nil, err
	}
	status, err := booking.ParseStatus(in.Status)
	if err != nil {
		return uuid.Nil, err
	}
	if !status.Claims() {
		return uuid.Nil, errs.Mark(errs.NewValidation(ErrCreatedCancelled.Error(), "status"), ErrCreatedCancelled)
	}

	sessions := normalizeSessions(in.Sessions, in.ProviderID, in.TherapyTypeID)
	if err := uc.resolveProviderRefs(ctx, sessions); err != nil {
		return uuid.Nil, err
	}

	if conflicts, err := uc.detectConflicts(ctx, sessions); err != nil {
		return uuid.Nil, err
	} else if len(conflicts) > 0 {
		return uuid.Nil, booking.NewConflictError(conflicts)
	}

	release, err := uc.lockSlots(ctx, sessions)
	if err != nil {
		return uuid.Nil, err
	}
	defer release()

	details := booking.Details{
		PackageID:     in.PackageID,
		PatientID:     in.PatientID,
		TherapyTypeID: in.TherapyTypeID,
		ProviderID:    in.ProviderID,
		Status:        status,
		Notes:         in.Notes,
		Remark:        in.Remark,
		Attribution:   in.Attribution,
		Followup:      in.Followup,
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		seq, derr := tx.Sequences().Next(ctx, tx.DB(), sequence.CounterAppointment)
		if derr != nil {
			return derr
		}
		b, derr := booking.NewBooking(sequence.AppointmentID(seq), details, sessions, now)
		if derr != nil {
			return derr
		}

		quote, deal, derr := uc.price(ctx, tx, details, in.CouponCode, now)
		if derr != nil {
			return derr
		}
		if deal != nil {
			b.ApplyCoupon(&booking.CouponRef{
				DealID:        deal.ID(),
				Code:          deal.Code(),
				AppliedAt:     now,
				DiscountCents: quote.DiscountCents,
			})
		}

		paySeq, derr := tx.Sequences().Next(ctx, tx.DB(), sequence.CounterPayment)
		if derr != nil {
			return derr
		}
		p, derr := payment.NewPending(sequence.PaymentID(paySeq, now), quote.SubtotalCents, quote.TotalPayableCents, uc.settings.PaymentMethod)
		if derr != nil {
			return derr
		}
		if derr = tx.Payments().Create(ctx, tx.DB(), p); derr != nil {
			return derr
		}
		b.AttachPayment(p.ID())

		var req *bookingrequest.Request
		if in.IsBookingRequest {
			req, derr = tx.Reads().BookingRequestByID(ctx, *in.BookingRequestID)
			if derr != nil {
				return derr
			}
			if derr = req.Approve(b.ID()); derr != nil {
				return derr
			}
			b.LinkRequest(req.ID())
		}

		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if derr = adjustCapacity(ctx, tx, b.Sessions(), 1); derr != nil {
			return derr
		}
		if req != nil {
			if derr = tx.BookingRequests().UpdateStatus(ctx, tx.DB(), req); derr != nil {
				return derr
			}
		}

		created = b
		return nil
	})
	release()
	if err != nil {
		return uuid.Nil, uc.slotRace(ctx, err, sessions)
	}

	publish(ctx, uc.events, EventBookingCreated, BookingEvent{
		BookingID:     created.ID(),
		AppointmentID: created.AppointmentID(),
		PatientID:     created.Details().PatientID,
		Added:         slotsOf(created.Sessions()),
		OccurredAt:    created.CreatedAt(),
	})
	return created.ID(), nil
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, in BookingInput) error {
	if err := validateSessionInputs(in.Sessions); err != nil {
		return err
	}
	status, err := booking.ParseStatus(in.Status)
	if err != nil {
		return err
	}

	prev, err := uc.uow.CommandReads().BookingByID(ctx, id)
	if err != nil {
		return err
	}
	details := mergeDetails(prev.Details(), in, status)

	sessions := normalizeSessions(in.Sessions, details.ProviderID, details.TherapyTypeID)
	if err := uc.resolveProviderRefs(ctx, sessions); err != nil {
		return err
	}

	if dups := booking.DuplicateSessions(sessions); len(dups) > 0 {
		return booking.NewConflictError(dups)
	}

	// only keys the booking does not already hold are checked
	added := booking.PlanSessions(prev.Sessions(), prev.Details().Status, sessions, details.Status).Added
	if conflicts, err := uc.detectConflicts(ctx, added); err != nil {
		return err
	} else if len(conflicts) > 0 {
		return booking.NewConflictError(conflicts)
	}

	release, err := uc.lockSlots(ctx, added)
	if err != nil {
		return err
	}
	defer release()

	var updated *booking.Booking
	var diff booking.Diff
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		b, derr := tx.Reads().BookingByID(ctx, id)
		if derr != nil {
			return derr
		}
		previousCoupon := b.Coupon()
		packageChanged := b.Details().PackageID != details.PackageID

		diff, derr = b.Replace(details, sessions, now)
		if derr != nil {
			return derr
		}

		if derr = uc.reprice(ctx, tx, b, previousCoupon, packageChanged, in.CouponCode, now); derr != nil {
			return derr
		}

		if derr = tx.Bookings().Update(ctx, tx.DB(), b); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return booking.ErrBookingNotFound
			}
			return derr
		}
		if derr = applyDiff(ctx, tx, diff); derr != nil {
			return derr
		}

		updated = b
		return nil
	})
	release()
	if err != nil {
		return uc.slotRace(ctx, err, diff.Added)
	}

	publish(ctx, uc.events, EventBookingUpdated, BookingEvent{
		BookingID:     updated.ID(),
		AppointmentID: updated.AppointmentID(),
		PatientID:     updated.Details().PatientID,
		Added:         slotsOf(diff.Added),
		Removed:       slotsOf(diff.Removed),
		OccurredAt:    updated.UpdatedAt(),
	})
	return nil
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	var deleted *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingByID(ctx, id)
		if derr != nil {
			return derr
		}
		if b.Details().Status.Claims() {
			if derr = adjustCapacity(ctx, tx, b.Sessions(), -1); derr != nil {
				return derr
			}
		}
		if derr = tx.Bookings().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return booking.ErrBookingNotFound
			}
			return derr
		}
		deleted = b
		return nil
	})
	if err != nil {
		return err
	}

	event := BookingEvent{
		BookingID:     deleted.ID(),
		AppointmentID: deleted.AppointmentID(),
		PatientID:     deleted.Details().PatientID,
		OccurredAt:    uc.clock.Now(),
	}
	if deleted.Details().Status.Claims() {
		event.Removed = slotsOf(deleted.Sessions())
	}
	publish(ctx, uc.events, EventBookingDeleted, event)
	return nil
}

func (uc *bookingUseCaseImpl) CheckIn(ctx context.Context, bookingID, sessionID uuid.UUID) (*CheckInResult, error) {
	var missing []string
	if bookingID == uuid.Nil {
		missing = append(missing, "bookingId")
	}
	if sessionID == uuid.Nil {
		missing = append(missing, "sessionId")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidation("missing required fields", missing...)
	}

	result := &CheckInResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()
		already, derr := b.CheckIn(sessionID, now)
		if derr != nil {
			return derr
		}
		if already {
			result.AlreadyCheckedIn = true
			return nil
		}
		return tx.Bookings().MarkSessionCheckedIn(ctx, tx.DB(), bookingID, sessionID, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// price quotes the package as one service line and looks up the coupon, if
// any. A code that matches no usable deal prices at full cost.
func (uc *bookingUseCaseImpl) price(ctx context.Context, tx shared.Tx, d booking.Details, code string, now time.Time) (discount.Quote, *discount.Deal, error) {
	pkg, err := tx.Reads().PackageByID(ctx, d.PackageID)
	if err != nil {
		return discount.Quote{}, nil, err
	}
	therapy, err := tx.Reads().TherapyTypeByID(ctx, d.TherapyTypeID)
	if err != nil {
		return discount.Quote{}, nil, err
	}

	var deal *discount.Deal
	if discount.NormalizeCode(code) != "" {
		deal, err = tx.Reads().ActiveDeal(ctx, code, nil, clock.Today(uc.clock, uc.settings.Location))
		if err != nil {
			return discount.Quote{}, nil, err
		}
	}

	lines := discount.SingleLine(therapy.ID, therapy.Name, pkg.ID, pkg.Name, pkg.TotalCostCents)
	return discount.NewQuote(lines, deal), deal, nil
}

// reprice refreshes the coupon and, while the payment is still open, the
// amount due. An unchanged code on an unchanged package keeps the discount it
// was booked with.
func (uc *bookingUseCaseImpl) reprice(
	ctx context.Context,
	tx shared.Tx,
	b *booking.Booking,
	previous *booking.CouponRef,
	packageChanged bool,
	code string,
	now time.Time,
) error {
	code = discount.NormalizeCode(code)
	if previous != nil && !packageChanged && code == previous.Code {
		return nil
	}

	quote, deal, err := uc.price(ctx, tx, b.Details(), code, now)
	if err != nil {
		return err
	}
	if deal != nil {
		b.ApplyCoupon(&booking.CouponRef{
			DealID:        deal.ID(),
			Code:          deal.Code(),
			AppliedAt:     now,
			DiscountCents: quote.DiscountCents,
		})
	} else {
		b.ApplyCoupon(nil)
	}

	if b.PaymentID() == nil || b.PaymentStatus() == payment.StatusPaid {
		return nil
	}
	return tx.Payments().Reprice(ctx, tx.DB(), *b.PaymentID(), quote.SubtotalCents, quote.TotalPayableCents)
}

func (uc *bookingUseCaseImpl) resolveProviderRefs(ctx context.Context, sessions []booking.Session) error {
	ids := make([]uuid.UUID, 0, len(sessions))
	seen := make(map[uuid.UUID]struct{}, len(sessions))
	for _, s := range sessions {
		if _, ok := seen[s.ProviderID]; ok {
			continue
		}
		seen[s.ProviderID] = struct{}{}
		ids = append(ids, s.ProviderID)
	}

	refs, err := uc.providers.ProviderRefs(ctx, ids)
	if err != nil {
		return err
	}

	var unknown []string
	for i := range sessions {
		ref, ok := refs[sessions[i].ProviderID]
		if !ok {
			unknown = append(unknown, sessionField(i, "providerId"))
			continue
		}
		sessions[i].ProviderRef = ref
	}
	if len(unknown) > 0 {
		return errs.Mark(errs.NewValidation("unknown provider", unknown...), ErrUnknownProvider)
	}
	return nil
}

// detectConflicts reads the oracle once per distinct provider over the span
// of that provider's sessions.
func (uc *bookingUseCaseImpl) detectConflicts(ctx context.Context, sessions []booking.Session) ([]booking.Conflict, error) {
	if len(sessions) == 0 {
		return nil, nil
	}

	order, ranges := booking.RangesByProvider(sessions)
	snap := booking.NewSnapshot()
	for _, providerID := range order {
		r := ranges[providerID]
		days, err := uc.oracle.Query(ctx, providerID, r.From, r.To)
		if err != nil {
			return nil, err
		}
		snap.Merge(days)
	}
	return booking.DetectConflicts(sessions, snap), nil
}

func (uc *bookingUseCaseImpl) lockSlots(ctx context.Context, sessions []booking.Session) (func(), error) {
	if len(sessions) == 0 {
		return func() {}, nil
	}
	keys := make([]booking.SlotKey, len(sessions))
	for i, s := range sessions {
		keys[i] = s.Key()
	}

	release, held, err := uc.locker.Acquire(ctx, keys)
	if err != nil {
		return nil, err
	}
	if len(held) > 0 {
		conflicts := make([]booking.Conflict, len(held))
		for i, k := range held {
			conflicts[i] = booking.Conflict{Date: k.Date, SlotID: k.SlotID, ProviderID: k.ProviderID}
		}
		return nil, booking.NewConflictError(conflicts)
	}
	return release, nil
}

// slotRace turns a lost race on the session uniqueness index into a
// ConflictError naming the slots that are now taken.
func (uc *bookingUseCaseImpl) slotRace(ctx context.Context, err error, sessions []booking.Session) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) || infra.ConstraintName(err) != repository.SessionSlotConstraint {
		return err
	}

	conflicts, oracleErr := uc.detectConflicts(ctx, sessions)
	if oracleErr != nil || len(conflicts) == 0 {
		conflicts = make([]booking.Conflict, len(sessions))
		for i, s := range sessions {
			conflicts[i] = booking.Conflict{Date: s.Date, SlotID: s.SlotID, ProviderID: s.ProviderID}
		}
	}
	return booking.NewConflictError(conflicts)
}

func validateCreateInput(in BookingInput) error {
	var missing []string
	if in.PackageID == uuid.Nil {
		missing = append(missing, "packageId")
	}
	if in.PatientID == uuid.Nil {
		missing = append(missing, "patientId")
	}
	if in.TherapyTypeID == uuid.Nil {
		missing = append(missing, "therapyId")
	}
	if in.ProviderID == uuid.Nil {
		missing = append(missing, "providerId")
	}
	if in.IsBookingRequest && (in.BookingRequestID == nil || *in.BookingRequestID == uuid.Nil) {
		missing = append(missing, "bookingRequestId")
	}
	if len(in.Sessions) == 0 {
		missing = append(missing, "sessions")
	}
	missing = append(missing, missingSessionFields(in.Sessions)...)
	if len(missing) > 0 {
		return errs.NewValidation("missing required fields", missing...)
	}
	return nil
}

func validateSessionInputs(sessions []SessionInput) error {
	if len(sessions) == 0 {
		return errs.NewValidation("missing required fields", "sessions")
	}
	if missing := missingSessionFields(sessions); len(missing) > 0 {
		return errs.NewValidation("missing required fields", missing...)
	}
	return nil
}

func missingSessionFields(sessions []SessionInput) []string {
	var missing []string
	for i, s := range sessions {
		if !clock.IsDate(s.Date) {
			missing = append(missing, sessionField(i, "date"))
		}
		if s.SlotID == "" {
			missing = append(missing, sessionField(i, "slotId"))
		}
	}
	return missing
}

func sessionField(i int, name string) string {
	return "sessions[" + strconv.Itoa(i) + "]." + name
}

// normalizeSessions resolves each session's provider and therapy type,
// falling back to the booking-level values.
func normalizeSessions(in []SessionInput, providerID, therapyTypeID uuid.UUID) []booking.Session {
	out := make([]booking.Session, len(in))
	for i, s := range in {
		sess := booking.Session{
			Date:          s.Date,
			TimeLabel:     s.TimeLabel,
			SlotID:        s.SlotID,
			ProviderID:    providerID,
			TherapyTypeID: therapyTypeID,
		}
		if s.ProviderID != nil && *s.ProviderID != uuid.Nil {
			sess.ProviderID = *s.ProviderID
		}
		if s.TherapyTypeID != nil && *s.TherapyTypeID != uuid.Nil {
			sess.TherapyTypeID = *s.TherapyTypeID
		}
		out[i] = sess
	}
	return out
}

// mergeDetails overlays an update onto the stored details. Zero ids keep the
// stored value.
func mergeDetails(prev booking.Details, in BookingInput, status booking.Status) booking.Details {
	d := booking.Details{
		PackageID:     prev.PackageID,
		PatientID:     prev.PatientID,
		TherapyTypeID: prev.TherapyTypeID,
		ProviderID:    prev.ProviderID,
		Status:        prev.Status,
		Notes:         in.Notes,
		Remark:        in.Remark,
		Attribution:   in.Attribution,
		Followup:      in.Followup,
	}
	if in.PackageID != uuid.Nil {
		d.PackageID = in.PackageID
	}
	if in.PatientID != uuid.Nil {
		d.PatientID = in.PatientID
	}
	if in.TherapyTypeID != uuid.Nil {
		d.TherapyTypeID = in.TherapyTypeID
	}
	if in.ProviderID != uuid.Nil {
		d.ProviderID = in.ProviderID
	}
	if in.Status != "" {
		d.Status = status
	}
	return d
}
