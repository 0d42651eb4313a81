package bookingRepo

import (
	"context"
	"fmt"

	"boardroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConflictError reports the confirmed booking that blocked a write.
type ConflictError struct {
	Existing models.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s already booked %s %d-%d by booking %s",
		e.Existing.RoomID, e.Existing.Date, e.Existing.Start, e.Existing.End, e.Existing.ID)
}

// CreateIfFree runs the conflict check and insert inside one session
// transaction so two racing requests for the same room and interval cannot
// both pass the check.
func (r *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	return r.withConflictGuard(ctx, booking, func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// ReplaceIfFree re-checks the new interval against every other confirmed
// booking and replaces the document, all within one transaction.
func (r *MongoBookingRepo) ReplaceIfFree(ctx context.Context, booking *models.Booking) error {
	return r.withConflictGuard(ctx, booking, func(sc mongo.SessionContext) error {
		res, err := r.coll.ReplaceOne(sc, bson.M{"id": booking.ID}, booking)
		if err != nil {
			return fmt.Errorf("replace booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking with id %s not found", booking.ID)
		}
		return nil
	})
}

func (r *MongoBookingRepo) withConflictGuard(ctx context.Context, booking *models.Booking, write func(mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := conflictFilter(booking.RoomID, booking.Date, booking.Start, booking.End, booking.ID)
		var existing models.Booking
		err := r.coll.FindOne(sc, filter).Decode(&existing)
		if err == nil {
			return &ConflictError{Existing: existing}
		}
		if err != mongo.ErrNoDocuments {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		return write(sc)
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
