package bookingRepo

import (
	"fmt"
	"time"

	"boardroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// conflictFilter matches any confirmed booking on the room whose half-open
// interval overlaps [start, end) on the given date: start < end' AND end > start'.
func conflictFilter(roomID, date string, start, end int, excludeID string) bson.M {
	filter := bson.M{
		"room_id": roomID,
		"date":    date,
		"status":  models.StatusConfirmed,
		"start":   bson.M{"$lt": end},
		"end":     bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// FindConflicting returns the first overlapping confirmed booking, or nil.
func (r *MongoBookingRepo) FindConflicting(roomID, date string, start, end int, excludeID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, conflictFilter(roomID, date, start, end, excludeID)).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding conflicting booking: %w", err)
	}
	return &booking, nil
}

// GetConfirmedByRoomAndDate fetches the day's confirmed bookings for a room,
// ordered by start time. One call serves the whole slot grid.
func (r *MongoBookingRepo) GetConfirmedByRoomAndDate(roomID, date string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"room_id": roomID,
		"date":    date,
		"status":  models.StatusConfirmed,
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for room %s on %s: %w", roomID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// GetForUser fetches bookings the user created or attends, newest date first.
func (r *MongoBookingRepo) GetForUser(userID string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"user_id": userID},
		{"attendees.user_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
